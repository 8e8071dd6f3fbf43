// Package input translates SDL2 events into viewer input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/bishop-viewer/internal/viewer"
)

// EventType identifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKey     // printable-key path
	EventSpecial // special-key path
	EventPointerDown
	EventPointerUp
	EventPointerMove
)

// Event is a processed input event.
type Event struct {
	Type    EventType
	Key     rune
	Special viewer.SpecialKey
	Mods    viewer.Modifiers
	Button  viewer.Button
	X, Y    int
	Width   int
	Height  int
}

// Input collects translated events once per frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls pending SDL events and translates them.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev := Translate(event)
		if ev.Type == EventNone {
			continue
		}
		if ev.Type == EventQuit {
			quit = true
		}
		i.events = append(i.events, ev)
	}
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Translate converts a single SDL event.
func Translate(event sdl.Event) Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return TranslateKey(e.Keysym.Sym, sdl.Keymod(e.Keysym.Mod))
		}

	case *sdl.MouseMotionEvent:
		return Event{Type: EventPointerMove, X: int(e.X), Y: int(e.Y)}

	case *sdl.MouseButtonEvent:
		t := EventPointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventPointerDown
		}
		return Event{Type: t, Button: viewer.Button(e.Button), X: int(e.X), Y: int(e.Y)}
	}
	return Event{Type: EventNone}
}

// TranslateKey routes a key press to the printable or special path.
// Printable ASCII and ESC go to the printable path; arrows and function
// keys go to the special path; everything else is dropped.
func TranslateKey(sym sdl.Keycode, mod sdl.Keymod) Event {
	mods := translateMods(mod)

	switch {
	case sym == sdl.K_ESCAPE:
		return Event{Type: EventKey, Key: viewer.KeyEscape, Mods: mods}
	case sym >= ' ' && sym <= '~':
		return Event{Type: EventKey, Key: rune(sym), Mods: mods}
	case sym >= sdl.K_F1 && sym <= sdl.K_F12:
		return Event{Type: EventSpecial, Special: viewer.KeyF1 + viewer.SpecialKey(sym-sdl.K_F1), Mods: mods}
	}

	switch sym {
	case sdl.K_LEFT:
		return Event{Type: EventSpecial, Special: viewer.KeyLeft, Mods: mods}
	case sdl.K_RIGHT:
		return Event{Type: EventSpecial, Special: viewer.KeyRight, Mods: mods}
	case sdl.K_UP:
		return Event{Type: EventSpecial, Special: viewer.KeyUp, Mods: mods}
	case sdl.K_DOWN:
		return Event{Type: EventSpecial, Special: viewer.KeyDown, Mods: mods}
	}
	return Event{Type: EventNone}
}

func translateMods(mod sdl.Keymod) viewer.Modifiers {
	var m viewer.Modifiers
	if mod&sdl.KMOD_SHIFT != 0 {
		m |= viewer.ModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		m |= viewer.ModCtrl
	}
	if mod&sdl.KMOD_ALT != 0 {
		m |= viewer.ModAlt
	}
	return m
}
