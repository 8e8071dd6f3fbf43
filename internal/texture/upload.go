package texture

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Upload creates a repeating, linearly filtered 2D texture from img.
// The caller should drop img afterwards; OpenGL keeps its own copy.
func Upload(img *Image) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	Replace(texID, img)
	return texID
}

// Replace overwrites the contents of an existing texture with img.
func Replace(texID uint32, img *Image) {
	gl.BindTexture(gl.TEXTURE_2D, texID)

	// Rows of 3-byte texels are not 4-byte aligned for every size.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8,
		int32(img.Size), int32(img.Size),
		0, gl.RGB, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}
