package inputs

import (
	"fmt"
	"image"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"
)

// Texture is the source image uploaded as a 2D texture.
type Texture struct {
	textureID uint32
	width     int
	height    int
	filter    Filter
}

// NewTexture uploads img as an sRGB texture. The rows are flipped so that
// texture coordinate (0,0) addresses the bottom-left of the image.
func NewTexture(img image.Image, filter Filter) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("input image is empty")
	}

	// Convert source image to RGBA for consistency.
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)
	rgba = vflip(rgba)

	width := int32(rgba.Rect.Dx())
	height := int32(rgba.Rect.Dy())

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	minFilter, magFilter := getFilterMode(filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.SRGB8_ALPHA8, // sampled values are linearized by the GPU
		width,
		height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	if filter == FilterMipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	log.Printf("Texture: uploaded %dx%d image (filter=%s)", width, height, filter)

	return &Texture{
		textureID: textureID,
		width:     int(width),
		height:    int(height),
		filter:    filter,
	}, nil
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.textureID)
}

// Unbind clears the binding on the given texture unit.
func (t *Texture) Unbind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (int, int) {
	return t.width, t.height
}

func (t *Texture) Destroy() {
	gl.DeleteTextures(1, &t.textureID)
}
