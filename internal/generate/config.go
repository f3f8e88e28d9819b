package generate

import (
	"errors"
	"fmt"
	"log/slog"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// String implements fmt.Stringer.
func (s CorridorStyle) String() string {
	switch s {
	case CorridorLShaped:
		return "l"
	case CorridorZShaped:
		return "z"
	case CorridorStraight:
		return "straight"
	default:
		return fmt.Sprintf("CorridorStyle(%d)", uint8(s))
	}
}

// ParseCorridorStyle converts a name as returned by CorridorStyle.String.
func ParseCorridorStyle(name string) (CorridorStyle, error) {
	switch name {
	case "l", "L", "lshaped":
		return CorridorLShaped, nil
	case "z", "Z", "zshaped":
		return CorridorZShaped, nil
	case "straight":
		return CorridorStraight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCorridorStyle, name)
}

// Configuration errors reported by Config.Validate.
var (
	ErrInvalidSize          = errors.New("map width and height must be positive")
	ErrInvalidDepth         = errors.New("depth must not be negative")
	ErrInvalidLeafSize      = errors.New("minimum leaf size must be positive")
	ErrInvalidRoomSize      = errors.New("room bounds must satisfy 0 < min <= max")
	ErrRoomDoesNotFit       = errors.New("smallest room does not fit in the map")
	ErrInvalidCorridorStyle = errors.New("unknown corridor style")
)

// Config drives BSP generation for one dungeon level.
type Config struct {
	Width, Height int
	// Depth is the maximum number of recursive splits along any branch.
	Depth int
	// MinLeafSize is the smallest side a partition region may be cut to.
	MinLeafSize int
	// RoomMin and RoomMax bound room sides before doubling: a room side is
	// drawn from [2*RoomMin, 2*RoomMax], capped by the leaf size.
	RoomMin, RoomMax int
	Seed             int64
	CorridorStyle    CorridorStyle
	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// DefaultConfig returns a large level configuration.
func DefaultConfig() *Config {
	return &Config{
		Width:       120,
		Height:      80,
		Depth:       6,
		MinLeafSize: 15,
		RoomMin:     3,
		RoomMax:     7,
	}
}

// Validate reports every configuration problem at once. Each one wraps one
// of the Err* sentinels.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height))
	}
	if cfg.Depth < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidDepth, cfg.Depth))
	}
	if cfg.MinLeafSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidLeafSize, cfg.MinLeafSize))
	}
	if cfg.RoomMin <= 0 || cfg.RoomMax < cfg.RoomMin {
		errs = append(errs, fmt.Errorf("%w: got min=%d max=%d", ErrInvalidRoomSize, cfg.RoomMin, cfg.RoomMax))
	} else if cfg.Width > 0 && cfg.Height > 0 {
		// A room of the minimum size plus its margin must fit in the root.
		// 2*RoomMin+2 <= side, written so that it cannot overflow.
		if cfg.RoomMin > (min(cfg.Width, cfg.Height)-2)/2 {
			errs = append(errs, fmt.Errorf("%w: room min %d, map is %dx%d",
				ErrRoomDoesNotFit, cfg.RoomMin, cfg.Width, cfg.Height))
		}
	}
	if cfg.CorridorStyle > CorridorStraight {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidCorridorStyle, cfg.CorridorStyle))
	}
	return errors.Join(errs...)
}

func (cfg *Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Logger
}
