package generate

import (
	"iter"
	"log/slog"
	"math/rand/v2"

	"bsp-dungeon/internal/gamemap"

	"codeberg.org/anaseto/gruid"
)

// bspNode is a node in the BSP tree. A node has either two children or none.
type bspNode struct {
	rect        gamemap.Rect
	left, right *bspNode
	room        *gamemap.Rect // leaves only
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// split divides the node into two children, returning false when the node is
// too small along the chosen axis.
func (n *bspNode) split(rng *rand.Rand, minSize int) bool {
	if !n.isLeaf() {
		return false // already split
	}
	r := n.rect
	// Split horizontally (children stacked) when taller, vertically when wider.
	splitH := rng.IntN(2) == 0
	if float64(r.W)/float64(r.H) >= 1.25 {
		splitH = false
	} else if float64(r.H)/float64(r.W) >= 1.25 {
		splitH = true
	}

	size := r.W
	if splitH {
		size = r.H
	}
	span := size - 2*minSize
	if span <= 0 {
		return false // too small to split
	}
	at := minSize + rng.IntN(span+1)

	if splitH {
		n.left = &bspNode{rect: gamemap.Rect{X: r.X, Y: r.Y, W: r.W, H: at}}
		n.right = &bspNode{rect: gamemap.Rect{X: r.X, Y: r.Y + at, W: r.W, H: r.H - at}}
	} else {
		n.left = &bspNode{rect: gamemap.Rect{X: r.X, Y: r.Y, W: at, H: r.H}}
		n.right = &bspNode{rect: gamemap.Rect{X: r.X + at, Y: r.Y, W: r.W - at, H: r.H}}
	}
	return true
}

// splitRecursive keeps splitting while depth remains. A failed split ends
// recursion on that branch only.
func (n *bspNode) splitRecursive(rng *rand.Rand, minSize, depth int) {
	if depth <= 0 {
		return
	}
	if n.split(rng, minSize) {
		n.left.splitRecursive(rng, minSize, depth-1)
		n.right.splitRecursive(rng, minSize, depth-1)
	}
}

// buildTree partitions root into a BSP tree.
func buildTree(root gamemap.Rect, rng *rand.Rand, minSize, depth int) *bspNode {
	n := &bspNode{rect: root}
	n.splitRecursive(rng, minSize, depth)
	return n
}

// leaves iterates over the terminal nodes, left subtree first.
func (n *bspNode) leaves() iter.Seq[*bspNode] {
	return func(yield func(*bspNode) bool) {
		n.walkLeaves(yield)
	}
}

func (n *bspNode) walkLeaves(yield func(*bspNode) bool) bool {
	if n.isLeaf() {
		return yield(n)
	}
	return n.left.walkLeaves(yield) && n.right.walkLeaves(yield)
}

// height returns the number of edges on the longest root to leaf path.
func (n *bspNode) height() int {
	if n.isLeaf() {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// placeRooms assigns a room to every leaf large enough to hold one and
// returns the rooms in leaf order. Room sides are drawn from
// [2*roomMin, min(side-2, 2*roomMax)] and the room keeps a one tile margin
// inside its leaf.
func (n *bspNode) placeRooms(rng *rand.Rand, roomMin, roomMax int, log *slog.Logger) []gamemap.Rect {
	var rooms []gamemap.Rect
	for leaf := range n.leaves() {
		l := leaf.rect
		// Compared by halving so huge room sizes cannot overflow.
		if roomMin > (l.W-2)/2 || roomMin > (l.H-2)/2 {
			log.Debug("leaf too small for a room", "leaf", l, "room_min", roomMin)
			continue
		}
		lo := 2 * roomMin
		hiW := roomSideMax(l.W, roomMax)
		hiH := roomSideMax(l.H, roomMax)
		if hiW < lo || hiH < lo {
			log.Debug("leaf too small for a room", "leaf", l, "min_side", lo)
			continue
		}
		rw := lo + rng.IntN(hiW-lo+1)
		rh := lo + rng.IntN(hiH-lo+1)
		rx := l.X + 1 + rng.IntN(l.W-rw-1)
		ry := l.Y + 1 + rng.IntN(l.H-rh-1)

		room := gamemap.Rect{X: rx, Y: ry, W: rw, H: rh}
		leaf.room = &room
		rooms = append(rooms, room)
	}
	return rooms
}

// roomSideMax returns min(side-2, 2*roomMax) without computing 2*roomMax when
// it would exceed side-2.
func roomSideMax(side, roomMax int) int {
	if roomMax > (side-2)/2 {
		return side - 2
	}
	return 2 * roomMax
}

// witness returns the center of a representative room of the subtree: the
// first leaf with a room, left first. ok is false when the subtree has none.
func (n *bspNode) witness() (p gruid.Point, ok bool) {
	if n.room != nil {
		return n.room.Center(), true
	}
	if n.isLeaf() {
		return gruid.Point{}, false
	}
	if p, ok = n.left.witness(); ok {
		return p, true
	}
	return n.right.witness()
}

// router carves the corridors joining sibling subtrees.
type router struct {
	gmap  *gamemap.Grid
	rng   *rand.Rand
	style CorridorStyle
	log   *slog.Logger

	corridors []Corridor
	skipped   int
}

// connect joins the rooms of n's subtree, children first.
func (rt *router) connect(n *bspNode) {
	if n.isLeaf() {
		return
	}
	rt.connect(n.left)
	rt.connect(n.right)

	from, lok := n.left.witness()
	to, rok := n.right.witness()
	if !lok || !rok {
		rt.skipped++
		rt.log.Debug("no room to connect", "region", n.rect, "left", lok, "right", rok)
		return
	}
	rt.corridors = append(rt.corridors, carveCorridor(rt.gmap, from, to, rt.style, rt.rng))
}
