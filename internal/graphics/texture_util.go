package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// NewAlphaTexture creates a single-channel texture sized to img
func NewAlphaTexture(img *image.Alpha) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	uploadAlpha(img)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// UpdateAlphaTexture replaces the contents (and size) of texture with img
func UpdateAlphaTexture(texture uint32, img *image.Alpha) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	uploadAlpha(img)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func uploadAlpha(img *image.Alpha) {
	size := img.Rect.Size()
	// rows are tightly packed in image.Alpha when Stride == width
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride))
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.R8,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RED,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
}
