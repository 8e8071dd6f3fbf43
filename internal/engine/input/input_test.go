package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/bishop-viewer/internal/viewer"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		sym  sdl.Keycode
		mod  sdl.Keymod
		want Event
	}{
		{"quit", sdl.K_q, sdl.KMOD_NONE, Event{Type: EventKey, Key: 'q'}},
		{"escape", sdl.K_ESCAPE, sdl.KMOD_NONE, Event{Type: EventKey, Key: viewer.KeyEscape}},
		{"alt equals", sdl.K_EQUALS, sdl.KMOD_LALT, Event{Type: EventKey, Key: '=', Mods: viewer.ModAlt}},
		{"right alt digit", sdl.K_1, sdl.KMOD_RALT, Event{Type: EventKey, Key: '1', Mods: viewer.ModAlt}},
		{"shift ctrl minus", sdl.K_MINUS, sdl.KMOD_LSHIFT | sdl.KMOD_RCTRL, Event{Type: EventKey, Key: '-', Mods: viewer.ModShift | viewer.ModCtrl}},
		{"num lock ignored", sdl.K_e, sdl.KMOD_NUM, Event{Type: EventKey, Key: 'e'}},
		{"left arrow", sdl.K_LEFT, sdl.KMOD_NONE, Event{Type: EventSpecial, Special: viewer.KeyLeft}},
		{"up arrow", sdl.K_UP, sdl.KMOD_NONE, Event{Type: EventSpecial, Special: viewer.KeyUp}},
		{"f1", sdl.K_F1, sdl.KMOD_NONE, Event{Type: EventSpecial, Special: viewer.KeyF1}},
		{"f12", sdl.K_F12, sdl.KMOD_NONE, Event{Type: EventSpecial, Special: viewer.KeyF12}},
		{"dropped", sdl.K_LCTRL, sdl.KMOD_NONE, Event{Type: EventNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateKey(tt.sym, tt.mod); got != tt.want {
				t.Errorf("TranslateKey(%v, %v) = %+v, want %+v", tt.sym, tt.mod, got, tt.want)
			}
		})
	}
}

func TestTranslatePointer(t *testing.T) {
	down := Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 10, Y: 20})
	if down.Type != EventPointerDown || down.Button != viewer.ButtonLeft || down.X != 10 || down.Y != 20 {
		t.Errorf("unexpected pointer down: %+v", down)
	}
	up := Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT})
	if up.Type != EventPointerUp || up.Button != viewer.ButtonRight {
		t.Errorf("unexpected pointer up: %+v", up)
	}
	move := Translate(&sdl.MouseMotionEvent{X: 3, Y: 4})
	if move.Type != EventPointerMove || move.X != 3 || move.Y != 4 {
		t.Errorf("unexpected pointer move: %+v", move)
	}
}

func TestTranslateKeyUpIgnored(t *testing.T) {
	ev := Translate(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_q}})
	if ev.Type != EventNone {
		t.Errorf("expected key up to be dropped, got %+v", ev)
	}
}
