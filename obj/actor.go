package obj

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pixelwander/spritewander/component"
)

// Overlay is the action layered over normal target-seeking locomotion. At
// most one overlay is shown at a time; throwing wins over jumping when both
// are live because Overlay reports the one frame selection cares about.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayJumping
	OverlayThrowing
)

func (o Overlay) String() string {
	switch o {
	case OverlayJumping:
		return "jumping"
	case OverlayThrowing:
		return "throwing"
	}
	return "none"
}

// Tuning holds the actor's motion and animation constants. Values come from
// the prefabs world spec and can be swapped at runtime by hot reload.
type Tuning struct {
	// Speed is the per-tick walk speed in pixels.
	Speed float64
	// Gravity is added to the vertical velocity every tick while airborne.
	Gravity float64
	// JumpStrength is the upward launch speed of a jump.
	JumpStrength float64
	// FrameInterval gates animation frame advancement on the wall clock.
	FrameInterval time.Duration
	// ThrowDuration is how long the throw pose suppresses directional frames.
	ThrowDuration time.Duration
	// RenderW/RenderH are the drawn sprite size in world pixels.
	RenderW float64
	RenderH float64
}

func DefaultTuning(cellSize float64) Tuning {
	return Tuning{
		Speed:         5,
		Gravity:       1.2,
		JumpStrength:  20,
		FrameInterval: 250 * time.Millisecond,
		ThrowDuration: 500 * time.Millisecond,
		RenderW:       cellSize,
		RenderH:       cellSize,
	}
}

// Actor is the single player character: a position seeking a pointer-driven
// target on the ground line, with jump and throw overlays. All motion happens
// in Tick; input handlers only store intent through SetTarget/StartJump/
// StartThrow.
type Actor struct {
	X, Y             float64
	TargetX, TargetY float64

	geo    Geometry
	tuning Tuning
	facing Facing

	jumping   bool
	velocityY float64
	throwLeft time.Duration

	anim *component.Animator
}

// NewActor places the actor at world center on the ground, facing front, with
// its target at its own position so it starts stationary.
func NewActor(geo Geometry, tuning Tuning) *Actor {
	a := &Actor{
		X:      geo.CenterX(),
		Y:      geo.GroundY(),
		geo:    geo,
		tuning: tuning,
		facing: FacingFront,
		anim:   component.NewAnimator(tuning.FrameInterval),
	}
	a.TargetX = a.X
	a.TargetY = a.Y
	return a
}

// Facing returns the current sprite orientation.
func (a *Actor) Facing() Facing { return a.facing }

// Jumping reports whether the actor is airborne.
func (a *Actor) Jumping() bool { return a.jumping }

// Throwing reports whether the throw pose is still active.
func (a *Actor) Throwing() bool { return a.throwLeft > 0 }

// VelocityY returns the current vertical velocity; zero while grounded.
func (a *Actor) VelocityY() float64 { return a.velocityY }

// Retune swaps the motion constants. Used by spec hot reload; the animator
// keeps its counter so a reload doesn't visibly reset the animation.
func (a *Actor) Retune(t Tuning) {
	a.tuning = t
	a.anim.Interval = t.FrameInterval
	if a.anim.Interval <= 0 {
		a.anim.Interval = 250 * time.Millisecond
	}
}

// SetGeometry replaces the world geometry, re-clamping position and target so
// a shrunk world can never strand the actor outside it.
func (a *Actor) SetGeometry(geo Geometry) {
	a.geo = geo
	a.X = geo.ClampX(a.X)
	a.TargetX = geo.ClampX(a.TargetX)
	a.TargetY = geo.GroundY()
	if !a.jumping {
		a.Y = geo.GroundY()
	}
}

// SetTarget stores a world-space destination. The point is clamped into the
// walkable range silently; taps outside the world are normal input, not
// errors. Facing updates from the proposed displacement unless it is zero.
func (a *Actor) SetTarget(x, y float64) {
	dx := x - a.X
	dy := y - a.Y
	if dx != 0 || dy != 0 {
		a.facing = DetermineFacing(dx, dy)
	}
	a.TargetX = a.geo.ClampX(x)
	// The walk target lives on the ground line; a tap's vertical component
	// only contributes to facing.
	a.TargetY = a.geo.GroundY()
}

// StartJump launches a jump. Requesting one while airborne is a no-op.
func (a *Actor) StartJump() {
	if a.jumping {
		return
	}
	a.jumping = true
	a.velocityY = -a.tuning.JumpStrength
}

// StartThrow begins the throw pose and reports whether it actually started,
// so the caller knows to spawn a projectile. A throw during a throw is a
// no-op.
func (a *Actor) StartThrow() bool {
	if a.throwLeft > 0 {
		return false
	}
	a.throwLeft = a.tuning.ThrowDuration
	return true
}

// Overlay returns the action overlay shown this tick. Throwing takes
// precedence over jumping; both leave locomotion untouched.
func (a *Actor) Overlay() Overlay {
	if a.throwLeft > 0 {
		return OverlayThrowing
	}
	if a.jumping {
		return OverlayJumping
	}
	return OverlayNone
}

// Tick advances the actor by one update: seek the target, integrate the jump
// arc, re-clamp into the world, and run the animation and throw timers.
func (a *Actor) Tick(elapsed time.Duration) {
	dx := a.TargetX - a.X
	dy := a.TargetY - a.Y
	if a.jumping {
		// Airborne: vertical motion belongs to the jump arc, not the seek.
		dy = 0
	}
	dist := math.Hypot(dx, dy)
	if dist > 0 {
		a.facing = DetermineFacing(dx, dy)
	}
	if dist > a.tuning.Speed {
		a.X += a.tuning.Speed * dx / dist
		a.Y += a.tuning.Speed * dy / dist
	} else {
		// Close enough: snap exactly onto the target. Moving a full step
		// here would overshoot and oscillate forever.
		a.X += dx
		a.Y += dy
	}

	a.X = a.geo.ClampX(a.X)

	if a.jumping {
		a.Y += a.velocityY
		a.velocityY += a.tuning.Gravity
		if a.Y >= a.geo.GroundY() {
			a.Y = a.geo.GroundY()
			a.velocityY = 0
			a.jumping = false
		}
	} else {
		a.Y = a.geo.GroundY()
	}

	if a.throwLeft > 0 {
		a.throwLeft -= elapsed
		if a.throwLeft < 0 {
			a.throwLeft = 0
		}
	}

	a.anim.Update(elapsed)
}

// SelectFrame picks the animation category and wrapped frame index for the
// current state. Precedence is throw > jump > walk direction; a category with
// nothing loaded yet falls back to front, and ok is false when no usable
// frames exist at all (the draw is skipped for the tick).
func (a *Actor) SelectFrame(store *component.Store) (component.Category, int, bool) {
	var cat component.Category
	switch a.Overlay() {
	case OverlayThrowing:
		cat = component.CategoryThrow
	case OverlayJumping:
		cat = component.CategoryJump
	default:
		cat = a.facing.Category()
	}
	if store.Len(cat) == 0 {
		cat = component.CategoryFront
	}
	n := store.Len(cat)
	if n == 0 {
		return cat, 0, false
	}
	return cat, a.anim.Index() % n, true
}

// Draw renders the actor's current frame in screen space, scaled to the
// render size and mirrored horizontally when facing left. Skipped while no
// usable frame exists or the frame has degenerate dimensions.
func (a *Actor) Draw(screen *ebiten.Image, store *component.Store, camX, camY float64) {
	cat, idx, ok := a.SelectFrame(store)
	if !ok {
		return
	}
	frm, ok := store.Frame(cat, idx)
	if !ok || frm == nil {
		return
	}
	fw := frm.Bounds().Dx()
	fh := frm.Bounds().Dy()
	if fw <= 0 || fh <= 0 {
		return
	}

	sx := a.tuning.RenderW / float64(fw)
	sy := a.tuning.RenderH / float64(fh)
	// Feet sit at the actor's position: center horizontally, anchor the
	// sprite bottom on the ground line.
	drawX := math.Round(a.X - camX - a.tuning.RenderW/2)
	drawY := math.Round(a.Y - camY - a.tuning.RenderH)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if a.facing == FacingLeft {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(drawX+float64(fw)*sx, drawY)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(drawX, drawY)
	}
	screen.DrawImage(frm, op)
}
