package gamemap

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Grid holds the wall/floor tiles of one dungeon level.
type Grid struct {
	Width, Height int
	tiles         rl.Grid
}

// New creates a Grid filled with walls.
func New(width, height int) *Grid {
	tiles := rl.NewGrid(width, height)
	tiles.Fill(Wall)
	return &Grid{Width: width, Height: height, tiles: tiles}
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x, y). Out of bounds positions read as Wall.
func (g *Grid) At(x, y int) rl.Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.tiles.At(gruid.Point{X: x, Y: y})
}

// IsFloor returns true when (x, y) is in bounds and carved.
func (g *Grid) IsFloor(x, y int) bool {
	return g.At(x, y) == Floor
}

func (g *Grid) isFloorAt(p gruid.Point) bool {
	return g.IsFloor(p.X, p.Y)
}

// CarveRange sets every tile of rg to Floor. The part of rg outside the grid
// is ignored.
func (g *Grid) CarveRange(rg gruid.Range) {
	rg = rg.Intersect(g.tiles.Range())
	if rg.Empty() {
		return
	}
	g.tiles.Slice(rg).Fill(Floor)
}

// CarveRect sets every tile inside r to Floor.
func (g *Grid) CarveRect(r Rect) {
	g.CarveRange(r.Range())
}

// CarveH digs a one tile high horizontal line at row y from x1 to x2
// inclusive, and returns the carved range.
func (g *Grid) CarveH(x1, x2, y int) gruid.Range {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	rg := gruid.NewRange(x1, y, x2+1, y+1)
	g.CarveRange(rg)
	return rg
}

// CarveV digs a one tile wide vertical line at column x from y1 to y2
// inclusive, and returns the carved range.
func (g *Grid) CarveV(y1, y2, x int) gruid.Range {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	rg := gruid.NewRange(x, y1, x+1, y2+1)
	g.CarveRange(rg)
	return rg
}

// FloorCount returns the number of carved tiles.
func (g *Grid) FloorCount() int {
	return g.tiles.Count(Floor)
}

// Rows returns the grid as a row-major boolean matrix, true meaning floor.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.Height)
	for y := range rows {
		rows[y] = make([]bool, g.Width)
		for x := range rows[y] {
			rows[y][x] = g.tiles.At(gruid.Point{X: x, Y: y}) == Floor
		}
	}
	return rows
}

// Equal reports whether g and other have the same size and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := gruid.Point{X: x, Y: y}
			if g.tiles.At(p) != other.tiles.At(p) {
				return false
			}
		}
	}
	return true
}
