package obj

import "github.com/pixelwander/spritewander/common"

// CellKind classifies a tile purely from its grid position. The map layout is
// procedural: border cells are walls, the ground row and below are floor, and
// everything above is open sky. No tile grid is stored anywhere.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellWall
	CellFloor
)

// Geometry is the immutable world configuration: a grid of Columns x Rows
// cells of CellSize pixels, with the ground two rows above the bottom edge.
type Geometry struct {
	CellSize float64
	Columns  int
	Rows     int
}

func NewGeometry(cellSize float64, columns, rows int) Geometry {
	if cellSize <= 0 {
		cellSize = 80
	}
	if columns < 3 {
		columns = 3
	}
	if rows < 3 {
		rows = 3
	}
	return Geometry{CellSize: cellSize, Columns: columns, Rows: rows}
}

// WidthPixels returns the world width in pixels.
func (g Geometry) WidthPixels() float64 {
	return g.CellSize * float64(g.Columns)
}

// HeightPixels returns the world height in pixels.
func (g Geometry) HeightPixels() float64 {
	return g.CellSize * float64(g.Rows)
}

// GroundRow is the row an actor stands on.
func (g Geometry) GroundRow() int {
	return g.Rows - 2
}

// GroundY is the ground level in world pixels.
func (g Geometry) GroundY() float64 {
	return float64(g.GroundRow()) * g.CellSize
}

// CenterX returns the horizontal world center, where the actor spawns.
func (g Geometry) CenterX() float64 {
	return g.WidthPixels() / 2
}

// ClassifyCell reports what occupies the given cell. Out-of-range cells are
// walls so the world reads as enclosed from every direction.
func (g Geometry) ClassifyCell(row, col int) CellKind {
	if row < 0 || col < 0 || row >= g.Rows || col >= g.Columns {
		return CellWall
	}
	if col == 0 || col == g.Columns-1 || row == g.Rows-1 {
		return CellWall
	}
	if row >= g.GroundRow() {
		return CellFloor
	}
	return CellEmpty
}

// ClampX keeps an x coordinate one cell inside the world's side walls.
func (g Geometry) ClampX(x float64) float64 {
	return common.Clamp(x, g.CellSize, g.WidthPixels()-g.CellSize)
}

// ClampY keeps a y coordinate between the ceiling cell and the ground.
func (g Geometry) ClampY(y float64) float64 {
	return common.Clamp(y, g.CellSize, g.GroundY())
}
