package gamemap

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// Rect is an axis-aligned rectangle used both for partition regions and for
// room footprints. X, Y is the top-left tile.
type Rect struct {
	X, Y, W, H int
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Center returns the center tile of the rectangle.
func (r Rect) Center() gruid.Point {
	return gruid.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Range returns the tiles covered by r as a gruid range (max exclusive).
func (r Rect) Range() gruid.Range {
	return gruid.NewRange(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Area returns the number of tiles covered by r.
func (r Rect) Area() int {
	return r.W * r.H
}

// Intersects reports whether r and other share at least one tile.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// ContainsWithMargin reports whether inner lies inside r leaving at least
// margin tiles free on every side.
func (r Rect) ContainsWithMargin(inner Rect, margin int) bool {
	return inner.X >= r.X+margin && inner.Y >= r.Y+margin &&
		inner.X+inner.W <= r.X+r.W-margin &&
		inner.Y+inner.H <= r.Y+r.H-margin
}
