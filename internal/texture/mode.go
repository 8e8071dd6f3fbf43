package texture

// Kind discriminates texture modes.
type Kind int

const (
	KindFlat Kind = iota
	KindCheckerboard
	KindRandom
	KindDynamic
)

var kindNames = [...]string{"flat", "checkerboard", "random", "dynamic"}

// String returns the config name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a config name to a Kind.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindDynamic, false
}

// Next returns the kind after k, wrapping around.
func (k Kind) Next() Kind {
	return (k + 1) % Kind(len(kindNames))
}

// Channels supplies the live color for the dynamic mode.
type Channels interface {
	RGB() (r, g, b float64)
}

// Mode is a texture mode carrying only the parameters its kind needs.
type Mode interface {
	Generator
	Kind() Kind
}

// FlatMode is a fixed solid color.
type FlatMode struct{ Flat }

// Kind implements Mode.
func (FlatMode) Kind() Kind { return KindFlat }

// CheckerMode is a checkerboard pattern.
type CheckerMode struct{ Checkerboard }

// Kind implements Mode.
func (CheckerMode) Kind() Kind { return KindCheckerboard }

// RandomMode is mid-band noise.
type RandomMode struct{ *Noise }

// Kind implements Mode.
func (RandomMode) Kind() Kind { return KindRandom }

// DynamicMode is a solid color read from user-adjustable channels at
// generation time.
type DynamicMode struct {
	Source Channels
}

// Kind implements Mode.
func (DynamicMode) Kind() Kind { return KindDynamic }

// Generate implements Generator.
func (d DynamicMode) Generate(size int) *Image {
	return FlatFromChannels(d.Source.RGB()).Generate(size)
}

// Set holds one configured instance of every mode.
type Set struct {
	modes [len(kindNames)]Mode
}

// NewSet builds the mode set. The random source is seeded here, once.
func NewSet(flat RGB, checker Checkerboard, noiseMin, noiseMax uint8, channels Channels) *Set {
	s := &Set{}
	s.modes[KindFlat] = FlatMode{Flat{Color: flat}}
	s.modes[KindCheckerboard] = CheckerMode{checker}
	s.modes[KindRandom] = RandomMode{NewNoise(noiseMin, noiseMax)}
	s.modes[KindDynamic] = DynamicMode{Source: channels}
	return s
}

// Mode returns the mode for kind k.
func (s *Set) Mode(k Kind) Mode {
	return s.modes[k]
}
