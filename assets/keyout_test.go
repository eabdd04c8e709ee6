package assets

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nrgbaAt(img *image.NRGBA, x, y int) color.NRGBA {
	return img.NRGBAAt(x, y)
}

func TestKeyoutRemovesNearWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255}) // pure white: keyed
	src.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 255})    // dark: kept
	src.SetNRGBA(2, 0, color.NRGBA{244, 243, 243, 255}) // sum exactly 730: keyed
	src.SetNRGBA(3, 0, color.NRGBA{244, 243, 242, 255}) // sum 729: kept

	out := Keyout(src, 730)
	require.NotNil(t, out)

	assert.Equal(t, uint8(0), nrgbaAt(out, 0, 0).A)
	assert.Equal(t, uint8(255), nrgbaAt(out, 1, 0).A)
	assert.Equal(t, uint8(0), nrgbaAt(out, 2, 0).A)
	assert.Equal(t, uint8(255), nrgbaAt(out, 3, 0).A)

	// keyed pixels keep their color channels, only alpha drops
	assert.Equal(t, uint8(255), nrgbaAt(out, 0, 0).R)
}

func TestKeyoutDoesNotModifyInput(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})

	_ = Keyout(src, 730)
	assert.Equal(t, uint8(255), src.NRGBAAt(0, 0).A, "input image must stay untouched")
}

func TestKeyoutDefaultThreshold(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{244, 243, 243, 255}) // sum 730
	src.SetNRGBA(1, 0, color.NRGBA{100, 100, 100, 255})

	out := Keyout(src, 0)
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(255), out.NRGBAAt(1, 0).A)
}

func TestKeyoutNonNRGBASource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{255, 255, 255, 255})

	out := Keyout(src, 730)
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
}

func TestManifestCoversAllCategories(t *testing.T) {
	for cat, paths := range Manifest {
		assert.NotEmpty(t, paths, "category %v has no sources", cat)
	}
	assert.Len(t, Manifest, 5)
}
