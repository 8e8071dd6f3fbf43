// Package texture provides procedural RGB texture generators and upload helpers.
package texture

import "math"

// RGB is an 8-bit color.
type RGB [3]uint8

// Image is a square RGB texel buffer, row-major, three bytes per texel.
type Image struct {
	Size int
	Pix  []byte
}

// NewImage allocates a size x size RGB image.
func NewImage(size int) *Image {
	return &Image{
		Size: size,
		Pix:  make([]byte, size*size*3),
	}
}

// At returns the texel at row i, column j.
func (img *Image) At(i, j int) RGB {
	o := (i*img.Size + j) * 3
	return RGB{img.Pix[o], img.Pix[o+1], img.Pix[o+2]}
}

// Set writes the texel at row i, column j.
func (img *Image) Set(i, j int, c RGB) {
	o := (i*img.Size + j) * 3
	img.Pix[o] = c[0]
	img.Pix[o+1] = c[1]
	img.Pix[o+2] = c[2]
}

// Generator produces a size x size RGB image.
type Generator interface {
	Generate(size int) *Image
}

// ChannelByte converts a normalized channel to a byte, clamping to [0,1] first.
func ChannelByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(math.Round(v * 255))
}
