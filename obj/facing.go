package obj

import "github.com/pixelwander/spritewander/component"

// Facing is one of the four cardinal sprite orientations. It is derived from
// the dominant axis of the most recent displacement and is always one of the
// four; a stationary actor keeps its last facing.
type Facing int

const (
	FacingFront Facing = iota
	FacingBack
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingFront:
		return "front"
	case FacingBack:
		return "back"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	}
	return "unknown"
}

// Category maps a facing to its walk animation category. Left and Right share
// the side sheet; Left is mirrored at draw time.
func (f Facing) Category() component.Category {
	switch f {
	case FacingBack:
		return component.CategoryBack
	case FacingLeft, FacingRight:
		return component.CategorySide
	default:
		return component.CategoryFront
	}
}

// DetermineFacing picks the facing for a displacement. Horizontal dominance
// (|dx| > |dy|) chooses Left/Right, anything else falls to the vertical
// branch, so an exact diagonal reads as Front/Back.
func DetermineFacing(dx, dy float64) Facing {
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	if adx > ady {
		if dx >= 0 {
			return FacingRight
		}
		return FacingLeft
	}
	if dy >= 0 {
		return FacingFront
	}
	return FacingBack
}
