package generate

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   []error
	}{
		{"default is valid", func(*Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, []error{ErrInvalidSize}},
		{"negative height", func(c *Config) { c.Height = -3 }, []error{ErrInvalidSize}},
		{"negative depth", func(c *Config) { c.Depth = -1 }, []error{ErrInvalidDepth}},
		{"zero depth is fine", func(c *Config) { c.Depth = 0 }, nil},
		{"zero leaf size", func(c *Config) { c.MinLeafSize = 0 }, []error{ErrInvalidLeafSize}},
		{"zero room min", func(c *Config) { c.RoomMin = 0 }, []error{ErrInvalidRoomSize}},
		{"max below min", func(c *Config) { c.RoomMin, c.RoomMax = 4, 3 }, []error{ErrInvalidRoomSize}},
		{"room wider than map", func(c *Config) { c.Width = 7 }, []error{ErrRoomDoesNotFit}},
		{"room taller than map", func(c *Config) { c.Height = 5 }, []error{ErrRoomDoesNotFit}},
		{"room just fits", func(c *Config) { c.Width, c.Height = 8, 8 }, nil},
		{"huge room min", func(c *Config) { c.RoomMin, c.RoomMax = 1<<62, 1<<62 }, []error{ErrRoomDoesNotFit}},
		{"huge room max is fine", func(c *Config) { c.RoomMax = 1 << 62 }, nil},
		{"bad corridor style", func(c *Config) { c.CorridorStyle = 9 }, []error{ErrInvalidCorridorStyle}},
		{"several problems", func(c *Config) { c.Width, c.Depth, c.MinLeafSize = -1, -1, -1 },
			[]error{ErrInvalidSize, ErrInvalidDepth, ErrInvalidLeafSize}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if len(tc.want) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v; want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil; want %v", tc.want)
			}
			for _, w := range tc.want {
				if !errors.Is(err, w) {
					t.Errorf("Validate() = %v; want it to wrap %v", err, w)
				}
			}
		})
	}
}

func TestGenerateWrapsValidationError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomMax = 1
	_, err := Generate(cfg)
	if !errors.Is(err, ErrInvalidRoomSize) {
		t.Errorf("Generate error = %v; want ErrInvalidRoomSize", err)
	}
}

func TestGenerateHugeRoomMax(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d, err := Generate(&Config{
			Width: 20, Height: 20, Depth: 2, MinLeafSize: 5,
			RoomMin: 2, RoomMax: 1 << 62, Seed: seed,
		})
		if err != nil {
			t.Fatalf("seed %d: Generate error = %v", seed, err)
		}
		for _, r := range d.Rooms {
			if r.X < 1 || r.Y < 1 || r.X+r.W > 19 || r.Y+r.H > 19 {
				t.Errorf("seed %d: room %v leaves the map margin", seed, r)
			}
		}
		if !d.Connected() {
			t.Errorf("seed %d: dungeon is not connected", seed)
		}
	}
}

func TestParseCorridorStyle(t *testing.T) {
	cases := []struct {
		in   string
		want CorridorStyle
		ok   bool
	}{
		{"l", CorridorLShaped, true},
		{"L", CorridorLShaped, true},
		{"z", CorridorZShaped, true},
		{"straight", CorridorStraight, true},
		{"diagonal", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCorridorStyle(tc.in)
			if tc.ok != (err == nil) {
				t.Fatalf("ParseCorridorStyle(%q) error = %v; want ok=%v", tc.in, err, tc.ok)
			}
			if !tc.ok {
				if !errors.Is(err, ErrInvalidCorridorStyle) {
					t.Errorf("error %v should wrap ErrInvalidCorridorStyle", err)
				}
				return
			}
			if got != tc.want {
				t.Errorf("ParseCorridorStyle(%q) = %v; want %v", tc.in, got, tc.want)
			}
			if back, _ := ParseCorridorStyle(got.String()); back != got {
				t.Errorf("String/Parse round trip of %v gave %v", got, back)
			}
		})
	}
}
