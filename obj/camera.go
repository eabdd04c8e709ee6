package obj

import (
	"math"

	"github.com/pixelwander/spritewander/common"
)

// Camera derives the viewport's world-space top-left from the followed
// position each tick. It holds no accumulated state: given the same actor
// position, viewport, and world size it always lands on the same offset.
type Camera struct {
	X, Y float64

	viewW, viewH   float64
	worldW, worldH float64
}

func NewCamera(viewW, viewH, worldW, worldH float64) *Camera {
	return &Camera{viewW: viewW, viewH: viewH, worldW: worldW, worldH: worldH}
}

// SetViewport updates the visible size. Called every tick with the current
// window dimensions so resizes take effect immediately.
func (c *Camera) SetViewport(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	c.viewW = w
	c.viewH = h
}

// SetWorldBounds sets the world pixel dimensions used for clamping.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// Viewport returns the current visible size.
func (c *Camera) Viewport() (float64, float64) {
	return c.viewW, c.viewH
}

// Follow centers the view on the given world point and clamps the resulting
// offset into the world.
func (c *Camera) Follow(x, y float64) {
	c.X, c.Y = RecomputeOffset(x, y, c.viewW, c.viewH, c.worldW, c.worldH)
}

// ScreenToWorld converts a screen coordinate into world space.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return c.X + sx, c.Y + sy
}

// RecomputeOffset is the pure camera rule: center the viewport on the target,
// then clamp each axis independently to [0, world-view]. A world smaller than
// the viewport pins that axis at 0 instead of inverting the range. Offsets
// are rounded to whole pixels so tile edges stay crisp while scrolling.
func RecomputeOffset(x, y, viewW, viewH, worldW, worldH float64) (float64, float64) {
	offX := common.ClampOffset(x-viewW/2, worldW, viewW)
	offY := common.ClampOffset(y-viewH/2, worldH, viewH)
	return math.Round(offX), math.Round(offY)
}
