package viewer

// Button identifies a pointer button. Values match SDL button numbers.
type Button uint8

const (
	ButtonLeft   Button = 1
	ButtonMiddle Button = 2
	ButtonRight  Button = 3
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// SpecialKey is a non-printable key code on the special-key path.
// Values follow the GLUT numbering.
type SpecialKey int

const (
	KeyF1    SpecialKey = 1
	KeyF12   SpecialKey = 12
	KeyLeft  SpecialKey = 100
	KeyUp    SpecialKey = 101
	KeyRight SpecialKey = 102
	KeyDown  SpecialKey = 103
)

// Codes on the special-key path that move the light along its radius.
// They share characters with the plain-key color controls.
const (
	KeyLightCloser  SpecialKey = '1'
	KeyLightFarther SpecialKey = '2'
)

// KeyEscape is the printable-path code for ESC.
const KeyEscape rune = 27

// Action is a request from an input handler to the application loop.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
)
