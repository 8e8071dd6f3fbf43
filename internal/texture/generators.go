package texture

import (
	"math/rand/v2"
)

// Flat fills every texel with one color.
type Flat struct {
	Color RGB
}

// FlatFromChannels builds a Flat generator from normalized channel values.
func FlatFromChannels(r, g, b float64) Flat {
	return Flat{Color: RGB{ChannelByte(r), ChannelByte(g), ChannelByte(b)}}
}

// Generate implements Generator.
func (f Flat) Generate(size int) *Image {
	img := NewImage(size)
	for o := 0; o < len(img.Pix); o += 3 {
		img.Pix[o] = f.Color[0]
		img.Pix[o+1] = f.Color[1]
		img.Pix[o+2] = f.Color[2]
	}
	return img
}

// Checkerboard alternates two colors in Block x Block squares.
type Checkerboard struct {
	Block int
	Even  RGB
	Odd   RGB
}

// DefaultCheckerboard returns a black and white board with 32 texel squares.
func DefaultCheckerboard() Checkerboard {
	return Checkerboard{
		Block: 32,
		Even:  RGB{0, 0, 0},
		Odd:   RGB{255, 255, 255},
	}
}

// IsOdd reports whether texel (i, j) falls on an odd square.
func (c Checkerboard) IsOdd(i, j int) bool {
	return ((i/c.Block)%2)^((j/c.Block)%2) == 1
}

// Generate implements Generator.
func (c Checkerboard) Generate(size int) *Image {
	img := NewImage(size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if c.IsOdd(i, j) {
				img.Set(i, j, c.Odd)
			} else {
				img.Set(i, j, c.Even)
			}
		}
	}
	return img
}

// Noise fills each channel of each texel independently with a value drawn
// uniformly from [Min, Max].
type Noise struct {
	Min uint8
	Max uint8
	rng *rand.Rand
}

// NewNoise creates a noise generator whose source is seeded once from the
// runtime entropy pool.
func NewNoise(lo, hi uint8) *Noise {
	return NewNoiseWithSeed(lo, hi, rand.Uint64(), rand.Uint64())
}

// NewNoiseWithSeed creates a reproducible noise generator.
func NewNoiseWithSeed(lo, hi uint8, seed1, seed2 uint64) *Noise {
	if lo > hi {
		lo, hi = hi, lo
	}
	return &Noise{
		Min: lo,
		Max: hi,
		rng: rand.New(rand.NewPCG(seed1, seed2)),
	}
}

// Generate implements Generator.
func (n *Noise) Generate(size int) *Image {
	img := NewImage(size)
	span := int(n.Max) - int(n.Min) + 1
	for o := range img.Pix {
		img.Pix[o] = n.Min + uint8(n.rng.IntN(span))
	}
	return img
}
