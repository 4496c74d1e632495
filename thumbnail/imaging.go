package thumbnail

import (
	"image"
	"image/draw"

	// Best-effort decode: register every format a thumbnail is likely
	// to arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
)

// scaleToFit scales an image to fit within maxWidth x maxHeight while
// preserving aspect ratio. The resize is shrink-only: a source already
// inside the bounding box is converted but never enlarged.
// Scaling is done on CPU with approximate bilinear interpolation.
func scaleToFit(src image.Image, maxWidth, maxHeight int) *image.RGBA {
	bounds := src.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	scaleX := float64(maxWidth) / float64(srcWidth)
	scaleY := float64(maxHeight) / float64(srcHeight)
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}
	if scale > 1 {
		scale = 1
	}

	newWidth := int(float64(srcWidth) * scale)
	newHeight := int(float64(srcHeight) * scale)

	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dstRect := image.Rect(0, 0, newWidth, newHeight)
	scaled := image.NewRGBA(dstRect)
	xdraw.ApproxBiLinear.Scale(scaled, dstRect, src, bounds, draw.Over, nil)

	return scaled
}
