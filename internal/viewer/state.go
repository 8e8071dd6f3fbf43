// Package viewer holds the interaction state of the bishop viewer and the
// input handlers that mutate it.
package viewer

import (
	"github.com/Faultbox/bishop-viewer/internal/mesh"
	"github.com/Faultbox/bishop-viewer/internal/texture"
)

// Options are the initial values and step sizes for a State.
type Options struct {
	Resolution        mesh.Resolution
	Color             [3]float64
	ColorStep         float64
	TextureEnabled    bool
	Mode              texture.Kind
	LightPosition     [3]float64 // used until the first special key event
	LightDistance     float64
	SpinStep          float64 // degrees per arrow key press
	DistanceStep      float64
	RotateSensitivity float64 // degrees per pixel of drag
	DarkBackground    bool
	Floor             bool
}

// DefaultOptions returns the stock viewer settings.
func DefaultOptions() Options {
	return Options{
		Resolution:        mesh.Resolution{Stacks: 100, Slices: 100},
		Color:             [3]float64{0.5, 0.5, 0.5},
		ColorStep:         0.05,
		TextureEnabled:    true,
		Mode:              texture.KindDynamic,
		LightPosition:     [3]float64{2, 2, 2},
		LightDistance:     2,
		SpinStep:          5,
		DistanceStep:      0.1,
		RotateSensitivity: 0.2,
		DarkBackground:    true,
	}
}

// State is the process-wide interaction state. It is owned by the
// application loop, mutated by the input handlers, and read by the render
// step through Snapshot.
type State struct {
	RotX, RotY float64 // degrees

	rotating     bool
	lastX, lastY int

	Light Light

	TextureEnabled bool
	Mode           texture.Kind
	Color          Color

	Resolution mesh.Resolution

	DarkBackground bool
	Floor          bool

	colorStep    int
	spinStep     float64
	distanceStep float64
	sensitivity  float64
	dynamicDirty bool
}

// New creates a State from opts.
func New(opts Options) *State {
	s := &State{
		Light: Light{
			Distance: opts.LightDistance,
			Position: opts.LightPosition,
		},
		TextureEnabled: opts.TextureEnabled,
		Mode:           opts.Mode,
		Color: Color{
			R: ChannelOf(opts.Color[0]),
			G: ChannelOf(opts.Color[1]),
			B: ChannelOf(opts.Color[2]),
		},
		Resolution:     opts.Resolution.Normalize(),
		DarkBackground: opts.DarkBackground,
		Floor:          opts.Floor,
		colorStep:      int(ChannelOf(opts.ColorStep)),
		spinStep:       opts.SpinStep,
		distanceStep:   opts.DistanceStep,
		sensitivity:    opts.RotateSensitivity,
		dynamicDirty:   true,
	}
	return s
}

// Rotating reports whether a drag rotation is in progress.
func (s *State) Rotating() bool {
	return s.rotating
}

// PointerDown starts a drag rotation on the left button.
func (s *State) PointerDown(b Button, x, y int) {
	if b != ButtonLeft {
		return
	}
	s.rotating = true
	s.lastX, s.lastY = x, y
}

// PointerUp ends a drag rotation on the left button.
func (s *State) PointerUp(b Button, x, y int) {
	if b != ButtonLeft {
		return
	}
	s.rotating = false
}

// PointerMove accumulates rotation while dragging. It reports whether the
// state changed.
func (s *State) PointerMove(x, y int) bool {
	if !s.rotating {
		return false
	}
	s.RotX += float64(y-s.lastY) * s.sensitivity
	s.RotY += float64(x-s.lastX) * s.sensitivity
	s.lastX, s.lastY = x, y
	return true
}

// HandleSpecial processes a key from the special-key path. The light
// position is recomputed after every special key, handled or not.
func (s *State) HandleSpecial(k SpecialKey) {
	switch k {
	case KeyLeft:
		s.Light.SpinY -= s.spinStep
	case KeyRight:
		s.Light.SpinY += s.spinStep
	case KeyUp:
		s.Light.SpinX += s.spinStep
	case KeyDown:
		s.Light.SpinX -= s.spinStep
	case KeyLightCloser:
		s.Light.Distance -= s.distanceStep
	case KeyLightFarther:
		s.Light.Distance += s.distanceStep
	}
	s.Light.Update()
}

// HandleKey processes a key from the printable-key path. Alt selects the
// alternate binding only when it is the sole modifier held.
func (s *State) HandleKey(key rune, mods Modifiers) Action {
	alt := mods == ModAlt

	switch key {
	case KeyEscape, 'q':
		return ActionQuit

	case 't':
		s.DarkBackground = !s.DarkBackground

	case 'e':
		s.TextureEnabled = !s.TextureEnabled

	case '1', '2', '3':
		if !s.TextureEnabled {
			break
		}
		ch := s.channel(key)
		if alt {
			ch.add(-s.colorStep)
		} else {
			ch.add(s.colorStep)
		}
		s.dynamicDirty = true

	case '=':
		if alt {
			s.Resolution.IncSlices()
		} else {
			s.Resolution.IncStacks()
		}

	case '-':
		if alt {
			s.Resolution.DecSlices()
		} else {
			s.Resolution.DecStacks()
		}

	case 'm':
		s.Mode = s.Mode.Next()

	case 'f':
		s.Floor = !s.Floor

	case 'p':
		return ActionScreenshot
	}
	return ActionNone
}

func (s *State) channel(key rune) *Channel {
	switch key {
	case '1':
		return &s.Color.R
	case '2':
		return &s.Color.G
	default:
		return &s.Color.B
	}
}

// TakeDynamicDirty reports whether the dynamic color changed since the last
// call and clears the flag.
func (s *State) TakeDynamicDirty() bool {
	d := s.dynamicDirty
	s.dynamicDirty = false
	return d
}

// BackgroundColor returns the clear color for the current background.
func (s *State) BackgroundColor() [3]float32 {
	if s.DarkBackground {
		return [3]float32{0.1, 0.1, 0.1}
	}
	return [3]float32{0.8, 0.8, 0.8}
}

// TextColor returns the overlay text color that contrasts with the background.
func (s *State) TextColor() [3]float32 {
	if s.DarkBackground {
		return [3]float32{1, 1, 1}
	}
	return [3]float32{0, 0, 0}
}

// Frame is the per-frame view of State consumed by the render step.
type Frame struct {
	RotX, RotY     float32
	LightPosition  [3]float32
	TextureEnabled bool
	Mode           texture.Kind
	Color          Color
	Resolution     mesh.Resolution
	Background     [3]float32
	TextColor      [3]float32
	Floor          bool
}

// Snapshot captures the state for one frame.
func (s *State) Snapshot() Frame {
	p := s.Light.Position
	return Frame{
		RotX:           float32(s.RotX),
		RotY:           float32(s.RotY),
		LightPosition:  [3]float32{float32(p[0]), float32(p[1]), float32(p[2])},
		TextureEnabled: s.TextureEnabled,
		Mode:           s.Mode,
		Color:          s.Color,
		Resolution:     s.Resolution,
		Background:     s.BackgroundColor(),
		TextColor:      s.TextColor(),
		Floor:          s.Floor,
	}
}
