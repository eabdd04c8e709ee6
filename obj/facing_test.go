package obj

import "testing"

func TestDetermineFacing(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
		want   Facing
	}{
		{"right", 10, 3, FacingRight},
		{"right_zero_dy", 7, 0, FacingRight},
		{"left", -10, 3, FacingLeft},
		{"left_negative_dy", -10, -3, FacingLeft},
		{"front", 3, 10, FacingFront},
		{"back", 3, -10, FacingBack},
		{"zero_displacement", 0, 0, FacingFront},
		// exact diagonal falls to the vertical branch
		{"tie_positive", 5, 5, FacingFront},
		{"tie_negative_dy", 5, -5, FacingBack},
		{"tie_negative_dx", -5, 5, FacingFront},
		{"tie_all_negative", -5, -5, FacingBack},
		{"dy_zero_dx_zero_positive_dy_branch", 0, 0.0001, FacingFront},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DetermineFacing(c.dx, c.dy); got != c.want {
				t.Fatalf("DetermineFacing(%v, %v) = %v, want %v", c.dx, c.dy, got, c.want)
			}
		})
	}
}

func TestFacingCategory(t *testing.T) {
	if FacingLeft.Category() != FacingRight.Category() {
		t.Fatalf("left and right must share the side category")
	}
	if FacingFront.Category() == FacingBack.Category() {
		t.Fatalf("front and back must use distinct categories")
	}
}
