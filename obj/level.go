package obj

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Palette holds the tile colors as "#rrggbb" strings, straight out of the
// world spec.
type Palette struct {
	Sky   string
	Wall  string
	Floor string
}

// Level renders the procedural tile map. There is no stored grid; every
// visible cell is classified by position on the fly and drawn with the
// palette image for its kind.
type Level struct {
	geo     Geometry
	palette Palette

	sky      color.RGBA
	wallImg  *ebiten.Image
	floorImg *ebiten.Image
}

func NewLevel(geo Geometry, palette Palette) *Level {
	l := &Level{geo: geo}
	l.SetPalette(palette)
	return l
}

// SetGeometry swaps the world geometry, rebuilding tile images if the cell
// size changed.
func (l *Level) SetGeometry(geo Geometry) {
	rebuild := geo.CellSize != l.geo.CellSize
	l.geo = geo
	if rebuild {
		l.SetPalette(l.palette)
	}
}

// SetPalette applies new tile colors. Used by spec hot reload.
func (l *Level) SetPalette(p Palette) {
	l.palette = p
	l.sky = parseHexColor(p.Sky)
	l.wallImg = tileImageFromColor(int(l.geo.CellSize), parseHexColor(p.Wall))
	l.floorImg = tileImageFromColor(int(l.geo.CellSize), parseHexColor(p.Floor))
}

// Draw fills the sky and draws every tile intersecting the camera viewport,
// padded by one tile on each side so fast scrolls never show a seam.
func (l *Level) Draw(screen *ebiten.Image, camX, camY float64) {
	if l == nil || screen == nil {
		return
	}
	screen.Fill(l.sky)

	cell := l.geo.CellSize
	if cell <= 0 {
		return
	}
	viewW := float64(screen.Bounds().Dx())
	viewH := float64(screen.Bounds().Dy())

	startCol := int(math.Floor(camX/cell)) - 1
	endCol := int(math.Ceil((camX+viewW)/cell)) + 1
	startRow := int(math.Floor(camY/cell)) - 1
	endRow := int(math.Ceil((camY+viewH)/cell)) + 1
	if startCol < 0 {
		startCol = 0
	}
	if startRow < 0 {
		startRow = 0
	}
	if endCol > l.geo.Columns {
		endCol = l.geo.Columns
	}
	if endRow > l.geo.Rows {
		endRow = l.geo.Rows
	}

	for row := startRow; row < endRow; row++ {
		for col := startCol; col < endCol; col++ {
			var img *ebiten.Image
			switch l.geo.ClassifyCell(row, col) {
			case CellWall:
				img = l.wallImg
			case CellFloor:
				img = l.floorImg
			default:
				continue
			}
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.Filter = ebiten.FilterNearest
			op.GeoM.Translate(float64(col)*cell-camX, float64(row)*cell-camY)
			screen.DrawImage(img, op)
		}
	}
}

// tileImageFromColor creates a cell-sized image filled with the given color.
func tileImageFromColor(size int, c color.RGBA) *ebiten.Image {
	if size <= 0 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	return img
}

// parseHexColor parses "#rrggbb"; malformed strings come back opaque black.
func parseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
