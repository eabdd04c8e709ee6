package obj

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is what a single pointer press means after disambiguation.
type Command int

const (
	// CommandWalk sets the walk target at the pressed point.
	CommandWalk Command = iota
	// CommandJump launches a jump; presses in the top band of the screen.
	CommandJump
	// CommandThrow starts a throw; the second press of a double tap.
	CommandThrow
)

const (
	// DoubleTapWindow is the max gap between two presses that reads as a throw.
	DoubleTapWindow = 300 * time.Millisecond
	// JumpBand is the fraction of the viewport height, from the top, where a
	// press means jump instead of walk.
	JumpBand = 0.35
)

// Input polls pointer devices once per tick and translates presses into
// intent: a walk target, a jump trigger, or a throw trigger. It only writes
// intent fields; all motion happens later in the same tick when the actor
// consumes them.
type Input struct {
	// TargetSet is true when this tick's press placed a walk target.
	TargetSet        bool
	TargetX, TargetY float64
	// Jump/Throw are single-tick triggers.
	Jump  bool
	Throw bool

	camera    *Camera
	lastPress time.Time
	touchIDs  []ebiten.TouchID

	now func() time.Time
}

func NewInput(camera *Camera) *Input {
	return &Input{camera: camera, now: time.Now}
}

// Update polls the mouse and touch surfaces and rewrites the intent fields.
// Triggers last exactly one tick.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	i.TargetSet = false
	i.Jump = false
	i.Throw = false

	_, viewH := i.camera.Viewport()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		i.apply(float64(mx), float64(my), viewH, i.now())
	}

	i.touchIDs = inpututil.AppendJustPressedTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		i.apply(float64(tx), float64(ty), viewH, i.now())
	}
}

func (i *Input) apply(sx, sy, viewH float64, at time.Time) {
	switch i.Classify(sy, viewH, at) {
	case CommandThrow:
		i.Throw = true
	case CommandJump:
		i.Jump = true
	default:
		i.TargetSet = true
		i.TargetX, i.TargetY = i.camera.ScreenToWorld(sx, sy)
	}
}

// Classify decides what a press at screen height sy means. A press within
// DoubleTapWindow of the previous one is a throw regardless of position; a
// first press in the top JumpBand of the screen is a jump; anything else
// walks. The double-tap timer resets after firing so a triple tap doesn't
// throw twice.
func (i *Input) Classify(sy, viewH float64, at time.Time) Command {
	if !i.lastPress.IsZero() && at.Sub(i.lastPress) <= DoubleTapWindow {
		i.lastPress = time.Time{}
		return CommandThrow
	}
	i.lastPress = at
	if viewH > 0 && sy < viewH*JumpBand {
		return CommandJump
	}
	return CommandWalk
}
