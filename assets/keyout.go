package assets

import (
	"image"
	"image/draw"
)

// DefaultChromaThreshold is the R+G+B sum at and above which a pixel counts
// as background.
const DefaultChromaThreshold = 730

// Keyout returns a copy of img with every near-white pixel made fully
// transparent. A pixel is near-white when its 8-bit R+G+B sum is at or above
// threshold. The input image is never modified.
func Keyout(img image.Image, threshold int) *image.NRGBA {
	if threshold <= 0 {
		threshold = DefaultChromaThreshold
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := out.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r := int(out.Pix[row])
			g := int(out.Pix[row+1])
			b := int(out.Pix[row+2])
			if r+g+b >= threshold {
				out.Pix[row+3] = 0
			}
			row += 4
		}
	}
	return out
}
