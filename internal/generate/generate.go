package generate

import (
	"fmt"
	"math/rand/v2"

	"bsp-dungeon/internal/gamemap"

	"codeberg.org/anaseto/gruid"
)

// Dungeon is the result of one generation run.
type Dungeon struct {
	Grid *gamemap.Grid
	// Rooms in leaf order, left subtree first.
	Rooms     []gamemap.Rect
	Corridors []Corridor
	// Skipped counts connection steps dropped because one side of a split
	// had no room at all.
	Skipped int
	// Start is the center of the first room, Exit the center of the last.
	Start, Exit gruid.Point
}

// Centers returns the center of every room, in room order.
func (d *Dungeon) Centers() []gruid.Point {
	ps := make([]gruid.Point, len(d.Rooms))
	for i, r := range d.Rooms {
		ps[i] = r.Center()
	}
	return ps
}

// Connected reports whether every room center is reachable from every other
// one through floor tiles.
func (d *Dungeon) Connected() bool {
	return d.Grid.Connected(d.Centers()...)
}

func newRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}

// rasterize carves every room into the grid.
func rasterize(gmap *gamemap.Grid, rooms []gamemap.Rect) {
	for _, r := range rooms {
		gmap.CarveRect(r)
	}
}

// Generate runs BSP generation. The same configuration always yields the same
// dungeon.
func Generate(cfg *Config) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	log := cfg.logger()
	rng := newRand(cfg.Seed)
	gmap := gamemap.New(cfg.Width, cfg.Height)

	root := buildTree(gamemap.Rect{X: 0, Y: 0, W: cfg.Width, H: cfg.Height}, rng, cfg.MinLeafSize, cfg.Depth)
	rooms := root.placeRooms(rng, cfg.RoomMin, cfg.RoomMax, log)

	// Rooms first so corridors may cross them freely.
	rasterize(gmap, rooms)
	rt := &router{gmap: gmap, rng: rng, style: cfg.CorridorStyle, log: log}
	rt.connect(root)

	d := &Dungeon{
		Grid:      gmap,
		Rooms:     rooms,
		Corridors: rt.corridors,
		Skipped:   rt.skipped,
	}
	if len(rooms) > 0 {
		d.Start = rooms[0].Center()
		d.Exit = rooms[len(rooms)-1].Center()
	}
	log.Debug("generated dungeon",
		"seed", cfg.Seed,
		"tree_height", root.height(),
		"rooms", len(d.Rooms),
		"corridors", len(d.Corridors),
		"skipped", d.Skipped,
		"floor", gmap.FloorCount())
	return d, nil
}
