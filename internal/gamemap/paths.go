package gamemap

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// floorPath implements paths.Pather over the carved tiles of a grid.
type floorPath struct {
	grid *Grid
	nbs  paths.Neighbors
}

func (fp *floorPath) Neighbors(p gruid.Point) []gruid.Point {
	if !fp.grid.isFloorAt(p) {
		return nil
	}
	return fp.nbs.Cardinal(p, fp.grid.isFloorAt)
}

// floodFill computes the cardinal connected component of floor tiles
// containing from. It returns nil when from is not a floor tile.
func (g *Grid) floodFill(from gruid.Point) *paths.PathRange {
	if !g.isFloorAt(from) {
		return nil
	}
	pr := paths.NewPathRange(g.tiles.Range())
	pr.CCMap(&floorPath{grid: g}, from)
	return pr
}

// Reachable returns the number of floor tiles reachable from the given
// position, including the position itself.
func (g *Grid) Reachable(from gruid.Point) int {
	pr := g.floodFill(from)
	if pr == nil {
		return 0
	}
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := gruid.Point{X: x, Y: y}
			if g.isFloorAt(p) && pr.CCMapAt(p) != -1 {
				n++
			}
		}
	}
	return n
}

// Connected reports whether every given position is a floor tile reachable
// from the first one. No positions at all is trivially connected.
func (g *Grid) Connected(ps ...gruid.Point) bool {
	if len(ps) == 0 {
		return true
	}
	pr := g.floodFill(ps[0])
	if pr == nil {
		return false
	}
	for _, p := range ps[1:] {
		if !g.isFloorAt(p) || pr.CCMapAt(p) == -1 {
			return false
		}
	}
	return true
}
