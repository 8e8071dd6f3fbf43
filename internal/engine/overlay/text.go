// Package overlay draws the help and status text over the scene.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/bishop-viewer/internal/viewer"
)

const (
	lineHeight = 18
	padding    = 4
	border     = "+-----------------------------------------------+"
)

var instructions = []string{
	border,
	"|  1. Press [ q ] to quit.",
	"|  2. Press [ e ] to toggle textures.",
	"|  3. Press [ t ] to toggle background.",
	"|  4. Use arrow keys to move the light source.",
	"|  5. Click and drag mouse to rotate the object.",
	"|  6. Use [ = / - ] keys to increase / decrease stacks.",
	"|  7. Use [ Alt + [ = / - ] ] keys to increase / decrease slices.",
	"|  8. Use [ 1, 2, 3 ] / [ Alt + [ 1, 2, 3 ] ] to change bishop color.",
	"|  9. Press [ m ] texture mode, [ f ] floor, [ p ] screenshot.",
	border,
}

// Lines returns the overlay text for a frame. The color lines are shown
// only while texturing is enabled.
func Lines(f viewer.Frame, help bool) []string {
	var lines []string
	if help {
		lines = append(lines, instructions...)
	} else {
		lines = append(lines, border)
	}

	lines = append(lines,
		fmt.Sprintf("|  =>  Slices: %d  |  Stacks: %d", f.Resolution.Slices, f.Resolution.Stacks),
		border,
	)

	if f.TextureEnabled {
		lines = append(lines,
			fmt.Sprintf("|  =>  Red: %d  |  Green: %d  |  Blue: %d",
				f.Color.R.Byte(), f.Color.G.Byte(), f.Color.B.Byte()),
			fmt.Sprintf("|  =>  Texture: %s", f.Mode),
			border,
		)
	}
	return lines
}

// Rasterize renders lines into a transparent RGBA image using the fixed
// 7x13 bitmap face. Row 0 of the image is the top line.
func Rasterize(lines []string, c [3]float32) *image.RGBA {
	face := basicfont.Face7x13

	width := 0
	for _, l := range lines {
		if w := font.MeasureString(face, l).Ceil(); w > width {
			width = w
		}
	}
	width += 2 * padding
	height := len(lines)*lineHeight + 2*padding

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toRGBA(c)),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(padding, padding+i*lineHeight+ascent)
		d.DrawString(l)
	}
	return img
}

func toRGBA(c [3]float32) color.RGBA {
	return color.RGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: 255,
	}
}
