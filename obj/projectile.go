package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// Projectile is the single throwable slot. There is never more than one in
// flight; spawning while one is live is swallowed. It travels horizontally at
// a fixed speed and expires once it leaves the world, touching nothing on the
// way - it is a cosmetic entity with no collision.
type Projectile struct {
	Active    bool
	X, Y      float64
	VelocityX float64
	Size      float64

	geo Geometry
	img *ebiten.Image
}

// ProjectileSpeed is the horizontal travel speed in pixels per tick.
const ProjectileSpeed = 12

func NewProjectile(geo Geometry) *Projectile {
	p := &Projectile{geo: geo, Size: geo.CellSize * 0.25}
	return p
}

// SetGeometry updates the world bounds the projectile expires against.
func (p *Projectile) SetGeometry(geo Geometry) {
	p.geo = geo
	p.Size = geo.CellSize * 0.25
	p.img = nil
}

// Spawn activates the projectile at the thrower's position, lifted slightly
// above hand height, travelling toward the facing side. Right goes positive;
// every other facing throws left. No-op while one is already in flight.
func (p *Projectile) Spawn(x, y float64, facing Facing) {
	if p.Active {
		return
	}
	p.Active = true
	p.X = x
	p.Y = y - p.geo.CellSize*0.3
	if facing == FacingRight {
		p.VelocityX = ProjectileSpeed
	} else {
		p.VelocityX = -ProjectileSpeed
	}
}

// Tick advances the projectile and deactivates it once it exits the world
// horizontally. Inactive projectiles are left untouched.
func (p *Projectile) Tick() {
	if !p.Active {
		return
	}
	p.X += p.VelocityX
	if p.X <= 0 || p.X >= p.geo.WidthPixels() {
		p.Active = false
	}
}

// Draw renders the projectile in screen space. Skipped entirely when
// inactive or degenerate.
func (p *Projectile) Draw(screen *ebiten.Image, camX, camY float64) {
	if !p.Active || screen == nil || p.Size <= 0 {
		return
	}
	if p.img == nil {
		size := int(math.Max(1, p.Size))
		p.img = ebiten.NewImage(size, size)
		p.img.Fill(projectileColor())
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(math.Round(p.X-camX-p.Size/2), math.Round(p.Y-camY-p.Size/2))
	screen.DrawImage(p.img, op)
}

func projectileColor() color.Color {
	return colornames.Sandybrown
}
