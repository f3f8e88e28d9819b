package gamemap

import "codeberg.org/anaseto/gruid/rl"

// Tile kinds stored in a Grid. Wall is the zero value so a fresh rl.Grid is
// solid rock.
const (
	Wall rl.Cell = iota
	Floor
)
