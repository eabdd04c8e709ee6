package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pixelwander/spritewander/assets"
	"github.com/pixelwander/spritewander/component"
	"github.com/pixelwander/spritewander/obj"
	"github.com/pixelwander/spritewander/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game ties the world objects together and runs one update+render tick per
// display frame. Input handlers only write intent; the tick consumes intent,
// advances state, recomputes the camera, and then Draw renders - strictly in
// that order, once per frame.
type Game struct {
	frames   int
	lastTick time.Time
	paused   bool
	debug    bool

	viewW, viewH float64

	input      *obj.Input
	actor      *obj.Actor
	projectile *obj.Projectile
	camera     *obj.Camera
	level      *obj.Level
	store      *component.Store

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(debug bool) *Game {
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("failed to load world spec, using defaults: %v", err)
		spec = &prefabs.WorldSpec{}
		spec.ApplyDefaults()
	}

	geo := obj.NewGeometry(spec.World.CellSize, spec.World.Columns, spec.World.Rows)
	camera := obj.NewCamera(baseWidth, baseHeight, geo.WidthPixels(), geo.HeightPixels())
	input := obj.NewInput(camera)
	actor := obj.NewActor(geo, tuningFromSpec(spec))
	projectile := obj.NewProjectile(geo)
	level := obj.NewLevel(geo, paletteFromSpec(spec))

	store := component.NewStore()
	assets.LoadFrames(store, spec.ChromaThreshold)

	g := &Game{
		debug:      debug,
		viewW:      baseWidth,
		viewH:      baseHeight,
		input:      input,
		actor:      actor,
		projectile: projectile,
		camera:     camera,
		level:      level,
		store:      store,
	}
	g.pauseUI = NewPauseUI(g)

	// Watch the on-disk spec dir when present so tuning edits apply live.
	if info, err := os.Stat("prefabs"); err == nil && info.IsDir() {
		if w, err := prefabs.NewWatcher("prefabs"); err == nil {
			g.watcher = w
		} else {
			log.Printf("spec watcher disabled: %v", err)
		}
	}

	return g
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		g.lastTick = time.Time{}
		return nil
	}

	now := time.Now()
	var elapsed time.Duration
	if !g.lastTick.IsZero() {
		elapsed = now.Sub(g.lastTick)
	}
	g.lastTick = now

	g.pollSpecReload()

	g.camera.SetViewport(g.viewW, g.viewH)
	g.input.Update()

	if g.input.TargetSet {
		g.actor.SetTarget(g.input.TargetX, g.input.TargetY)
	}
	if g.input.Jump {
		g.actor.StartJump()
	}
	if g.input.Throw && g.actor.StartThrow() {
		g.projectile.Spawn(g.actor.X, g.actor.Y, g.actor.Facing())
	}

	g.actor.Tick(elapsed)
	g.projectile.Tick()
	g.camera.Follow(g.actor.X, g.actor.Y)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.level.Draw(screen, g.camera.X, g.camera.Y)
	g.actor.Draw(screen, g.store, g.camera.X, g.camera.Y)
	g.projectile.Draw(screen, g.camera.X, g.camera.Y)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f    pos: (%.0f, %.0f)    facing: %s    overlay: %s",
			ebiten.ActualFPS(), g.actor.X, g.actor.Y, g.actor.Facing(), g.actor.Overlay()))
	}
}

// LayoutF re-reads the window size every frame so the camera and the jump
// band always see the live viewport, never a cached one.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.viewW = outsideWidth
		g.viewH = outsideHeight
	}
	return g.viewW, g.viewH
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// pollSpecReload drains watcher events without blocking and re-applies the
// world spec when the file changed. Geometry and tuning swap in place; the
// frame store is left alone.
func (g *Game) pollSpecReload() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("spec watcher: %v", err)
		default:
			if !changed {
				return
			}
			spec, err := prefabs.LoadWorldSpec()
			if err != nil {
				log.Printf("spec reload failed: %v", err)
				return
			}
			g.applySpec(spec)
			return
		}
	}
}

func (g *Game) applySpec(spec *prefabs.WorldSpec) {
	geo := obj.NewGeometry(spec.World.CellSize, spec.World.Columns, spec.World.Rows)
	g.actor.Retune(tuningFromSpec(spec))
	g.actor.SetGeometry(geo)
	g.projectile.SetGeometry(geo)
	g.level.SetGeometry(geo)
	g.level.SetPalette(paletteFromSpec(spec))
	g.camera.SetWorldBounds(geo.WidthPixels(), geo.HeightPixels())
}

func tuningFromSpec(spec *prefabs.WorldSpec) obj.Tuning {
	return obj.Tuning{
		Speed:         spec.Actor.Speed,
		Gravity:       spec.Actor.Gravity,
		JumpStrength:  spec.Actor.JumpStrength,
		FrameInterval: time.Duration(spec.Actor.FrameIntervalMS) * time.Millisecond,
		ThrowDuration: time.Duration(spec.Actor.ThrowDurationMS) * time.Millisecond,
		RenderW:       spec.Actor.RenderW,
		RenderH:       spec.Actor.RenderH,
	}
}

func paletteFromSpec(spec *prefabs.WorldSpec) obj.Palette {
	return obj.Palette{
		Sky:   spec.Palette.Sky,
		Wall:  spec.Palette.Wall,
		Floor: spec.Palette.Floor,
	}
}
