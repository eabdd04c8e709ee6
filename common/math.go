package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampOffset clamps a viewport offset to [0, world-view]. A world smaller
// than the view collapses to 0 rather than inverting the clamp range.
func ClampOffset(off, world, view float64) float64 {
	max := world - view
	if max < 0 {
		max = 0
	}
	return Clamp(off, 0, max)
}
