package obj

import (
	"math"
	"testing"
	"time"

	"github.com/pixelwander/spritewander/component"
)

const testStep = 16 * time.Millisecond

func newTestActor() *Actor {
	geo := NewGeometry(80, 60, 12)
	return NewActor(geo, DefaultTuning(geo.CellSize))
}

func TestActorStartsCenteredOnGround(t *testing.T) {
	a := newTestActor()
	if a.X != 2400 || a.Y != 800 {
		t.Fatalf("spawn = (%v, %v), want (2400, 800)", a.X, a.Y)
	}
	if a.Facing() != FacingFront {
		t.Fatalf("spawn facing = %v, want front", a.Facing())
	}
}

func TestTickIdempotentAtTarget(t *testing.T) {
	a := newTestActor()
	a.SetTarget(2000, 800)
	for i := 0; i < 200; i++ {
		a.Tick(testStep)
	}
	x, y, facing := a.X, a.Y, a.Facing()
	for i := 0; i < 10; i++ {
		a.Tick(testStep)
	}
	if a.X != x || a.Y != y {
		t.Fatalf("position moved while at target: (%v, %v) -> (%v, %v)", x, y, a.X, a.Y)
	}
	if a.Facing() != facing {
		t.Fatalf("facing flipped while stationary: %v -> %v", facing, a.Facing())
	}
}

func TestConvergenceInExactTicks(t *testing.T) {
	cases := []struct {
		name     string
		distance float64
	}{
		{"multiple_of_speed", 25},
		{"non_multiple", 23},
		{"less_than_speed", 3},
		{"single_step", 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := newTestActor()
			target := a.X + c.distance
			a.SetTarget(target, a.Y)

			want := int(math.Ceil(c.distance / 5))
			for i := 0; i < want-1; i++ {
				a.Tick(testStep)
				if a.X == target {
					t.Fatalf("arrived early at tick %d of %d", i+1, want)
				}
			}
			a.Tick(testStep)
			if a.X != target {
				t.Fatalf("after %d ticks x = %v, want exactly %v", want, a.X, target)
			}
		})
	}
}

func TestTargetClamping(t *testing.T) {
	a := newTestActor()
	cases := []struct {
		name  string
		x     float64
		wantX float64
	}{
		{"far_left", -500, 80},
		{"far_right", 99999, 4720},
		{"inside", 300, 300},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a.SetTarget(c.x, 800)
			if a.TargetX != c.wantX {
				t.Fatalf("TargetX = %v, want %v", a.TargetX, c.wantX)
			}
			if a.TargetY != 800 {
				t.Fatalf("TargetY = %v, want ground 800", a.TargetY)
			}
		})
	}
}

func TestJumpRoundTrip(t *testing.T) {
	a := newTestActor()
	a.StartJump()
	if !a.Jumping() {
		t.Fatalf("StartJump did not set jumping")
	}
	if a.VelocityY() != -20 {
		t.Fatalf("launch velocity = %v, want -20", a.VelocityY())
	}

	// a second request mid-air is swallowed
	a.Tick(testStep)
	v := a.VelocityY()
	a.StartJump()
	if a.VelocityY() != v {
		t.Fatalf("mid-air StartJump changed velocity: %v -> %v", v, a.VelocityY())
	}

	rose := false
	for i := 0; i < 1000 && a.Jumping(); i++ {
		if a.Y < 800 {
			rose = true
		}
		a.Tick(testStep)
	}
	if a.Jumping() {
		t.Fatalf("jump never landed")
	}
	if !rose {
		t.Fatalf("actor never left the ground")
	}
	if a.Y != 800 {
		t.Fatalf("landed at y = %v, want exactly 800", a.Y)
	}
	if a.VelocityY() != 0 {
		t.Fatalf("velocity after landing = %v, want 0", a.VelocityY())
	}
}

func TestHorizontalSeekContinuesDuringJump(t *testing.T) {
	a := newTestActor()
	a.SetTarget(a.X+200, 800)
	a.StartJump()
	x := a.X
	a.Tick(testStep)
	if a.X != x+5 {
		t.Fatalf("airborne x step = %v, want %v", a.X, x+5)
	}
	if a.Y >= 800 {
		t.Fatalf("actor still grounded one tick into a jump: y = %v", a.Y)
	}
}

func TestThrowOverlay(t *testing.T) {
	a := newTestActor()
	if !a.StartThrow() {
		t.Fatalf("first StartThrow should start")
	}
	if a.StartThrow() {
		t.Fatalf("StartThrow during a throw should be a no-op")
	}
	if a.Overlay() != OverlayThrowing {
		t.Fatalf("overlay = %v, want throwing", a.Overlay())
	}

	// throwing wins over jumping in frame selection
	a.StartJump()
	if a.Overlay() != OverlayThrowing {
		t.Fatalf("overlay with jump+throw = %v, want throwing", a.Overlay())
	}

	// after the throw expires the jump overlay shows
	for i := 0; i < 3; i++ {
		a.Tick(200 * time.Millisecond)
	}
	if a.Throwing() {
		t.Fatalf("throw still active after 600ms with a 500ms duration")
	}
	if a.Jumping() && a.Overlay() != OverlayJumping {
		t.Fatalf("overlay = %v, want jumping", a.Overlay())
	}
}

func TestSelectFrameEmptyStore(t *testing.T) {
	a := newTestActor()
	store := component.NewStore()
	if _, _, ok := a.SelectFrame(store); ok {
		t.Fatalf("SelectFrame with nothing loaded must report not ok")
	}
}

func TestWalkScenarioEndToEnd(t *testing.T) {
	// world 60x12 at 80px cells; actor starts at world center on the ground;
	// a tap lands at world (100, 800).
	a := newTestActor()
	a.SetTarget(100, 800)
	if a.Facing() != FacingLeft {
		t.Fatalf("facing after tap = %v, want left", a.Facing())
	}

	prev := a.X
	for i := 0; i < 1000; i++ {
		a.Tick(testStep)
		if a.X > prev {
			t.Fatalf("x increased on the way left: %v -> %v", prev, a.X)
		}
		prev = a.X
		if a.X == 100 {
			break
		}
	}
	if a.X != 100 {
		t.Fatalf("never arrived: x = %v", a.X)
	}

	for i := 0; i < 20; i++ {
		a.Tick(testStep)
	}
	if a.X != 100 {
		t.Fatalf("drifted after arrival: x = %v", a.X)
	}
	if a.Facing() != FacingLeft {
		t.Fatalf("facing flipped once stationary: %v", a.Facing())
	}
}
