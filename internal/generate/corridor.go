package generate

import (
	"math/rand/v2"

	"bsp-dungeon/internal/gamemap"

	"codeberg.org/anaseto/gruid"
)

// Corridor records one carved connection between two room centers.
type Corridor struct {
	From, To gruid.Point
	// Segments are the one tile wide ranges that were carved, in order.
	Segments []gruid.Range
}

// carveCorridor digs a tunnel between from and to in the given style.
func carveCorridor(gmap *gamemap.Grid, from, to gruid.Point, style CorridorStyle, rng *rand.Rand) Corridor {
	x1, y1, x2, y2 := from.X, from.Y, to.X, to.Y
	c := Corridor{From: from, To: to}
	switch style {
	case CorridorZShaped:
		c.Segments = carveZShaped(gmap, x1, y1, x2, y2)
	case CorridorStraight:
		c.Segments = []gruid.Range{gmap.CarveH(x1, x2, y1), gmap.CarveV(y1, y2, x2)}
	default: // LShaped
		if rng.IntN(2) == 0 {
			c.Segments = []gruid.Range{gmap.CarveH(x1, x2, y1), gmap.CarveV(y1, y2, x2)}
		} else {
			c.Segments = []gruid.Range{gmap.CarveV(y1, y2, x1), gmap.CarveH(x1, x2, y2)}
		}
	}
	return c
}

func carveZShaped(gmap *gamemap.Grid, x1, y1, x2, y2 int) []gruid.Range {
	midY := (y1 + y2) / 2
	return []gruid.Range{
		gmap.CarveV(y1, midY, x1),
		gmap.CarveH(x1, x2, midY),
		gmap.CarveV(midY, y2, x2),
	}
}
