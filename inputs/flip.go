package inputs

import "image"

// vflip vertically flips the provided RGBA image. Image rows run top-down
// while GL textures and framebuffers run bottom-up.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	// This is faster than calling At/Set for each pixel
	rowSize := bounds.Dx() * 4 // 4 bytes per pixel (RGBA)
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// FlipRows returns a bottom-up RGBA pixel buffer of the given size as a
// top-down image.
func FlipRows(pix []byte, width, height int) *image.RGBA {
	src := &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return vflip(src)
}
