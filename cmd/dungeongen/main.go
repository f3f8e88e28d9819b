// dungeongen generates BSP dungeons and checks that every room is reachable.
// Build:
//
//	go build -o dungeongen ./cmd/dungeongen
//
// Usage:
//
//	./dungeongen [--width 120] [--height 80] [--seed 1] [--runs 100] [--corridor l|z|straight] [--env .env] [-v]
//
// Flag defaults can be set with DUNGEON_* environment variables, which are
// also read from a .env file (the -env flag, else DUNGEON_ENV_FILE, else
// ".env").
//
// The exit status is 1 when any dungeon is disconnected or has no rooms.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"bsp-dungeon/internal/generate"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// options holds the parsed command line.
type options struct {
	cfg     generate.Config
	runs    int
	envFile string
	verbose bool
}

// run is main without the os.Exit, returning the exit status.
func run(args []string, stderr io.Writer) int {
	// The .env file supplies flag defaults, so it is loaded before parsing.
	if err := loadEnv(envFileArg(args)); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration", "env_file", opts.envFile, "runs", opts.runs)

	disconnected, empty := 0, 0
	for i := range opts.runs {
		cfg := opts.cfg
		cfg.Seed += int64(i)
		cfg.Logger = logger
		d, err := generate.Generate(&cfg)
		if err != nil {
			logger.Error("invalid configuration", "error", err)
			return 1
		}
		connected := d.Connected()
		if !connected {
			disconnected++
		}
		if len(d.Rooms) == 0 {
			empty++
			logger.Warn("dungeon has no rooms",
				"seed", cfg.Seed,
				"min_leaf", cfg.MinLeafSize,
				"room_min", cfg.RoomMin)
		}
		logger.Info("dungeon",
			"seed", cfg.Seed,
			"rooms", len(d.Rooms),
			"corridors", len(d.Corridors),
			"skipped", d.Skipped,
			"floor", d.Grid.FloorCount(),
			"connected", connected)
	}
	logger.Info("done", "runs", opts.runs, "disconnected", disconnected, "empty", empty)
	if disconnected > 0 || empty > 0 {
		return 1
	}
	return 0
}

// envFileArg returns the .env path named by an -env flag in args, falling back
// to DUNGEON_ENV_FILE and then ".env". Parsing stops at the first non-flag
// argument or "--", as the flag package does.
func envFileArg(args []string) string {
	path := os.Getenv("DUNGEON_ENV_FILE")
	if path == "" {
		path = ".env"
	}
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" || !strings.HasPrefix(a, "-") || a == "-" {
			break
		}
		name := strings.TrimPrefix(strings.TrimPrefix(a, "-"), "-")
		switch {
		case name == "env" && i+1 < len(args):
			path = args[i+1]
			i++
		case strings.HasPrefix(name, "env="):
			path = strings.TrimPrefix(name, "env=")
		case name == "v" || strings.Contains(name, "="):
		default:
			i++ // value of another flag
		}
	}
	return path
}

// loadEnv reads KEY=value pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func loadEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// envInt returns the integer value of the environment variable key, or def
// when it is unset or empty.
func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// parseOptions builds options from generate.DefaultConfig, then DUNGEON_*
// environment variables, then flags.
func parseOptions(args []string, stderr io.Writer) (*options, error) {
	def := generate.DefaultConfig()
	opts := &options{cfg: *def, runs: 1}

	ints := []struct {
		key string
		dst *int
	}{
		{"DUNGEON_WIDTH", &opts.cfg.Width},
		{"DUNGEON_HEIGHT", &opts.cfg.Height},
		{"DUNGEON_DEPTH", &opts.cfg.Depth},
		{"DUNGEON_MIN_LEAF", &opts.cfg.MinLeafSize},
		{"DUNGEON_ROOM_MIN", &opts.cfg.RoomMin},
		{"DUNGEON_ROOM_MAX", &opts.cfg.RoomMax},
		{"DUNGEON_RUNS", &opts.runs},
	}
	for _, e := range ints {
		v, err := envInt(e.key, *e.dst)
		if err != nil {
			return nil, err
		}
		*e.dst = v
	}
	seed, err := envInt("DUNGEON_SEED", 0)
	if err != nil {
		return nil, err
	}
	corridor := os.Getenv("DUNGEON_CORRIDOR")
	if corridor == "" {
		corridor = generate.CorridorLShaped.String()
	}

	fset := flag.NewFlagSet("dungeongen", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "map width in tiles")
	fset.IntVar(&opts.cfg.Height, "height", opts.cfg.Height, "map height in tiles")
	fset.IntVar(&opts.cfg.Depth, "depth", opts.cfg.Depth, "maximum partition depth")
	fset.IntVar(&opts.cfg.MinLeafSize, "min-leaf", opts.cfg.MinLeafSize, "minimum partition side")
	fset.IntVar(&opts.cfg.RoomMin, "room-min", opts.cfg.RoomMin, "half of the smallest room side")
	fset.IntVar(&opts.cfg.RoomMax, "room-max", opts.cfg.RoomMax, "half of the largest room side")
	fset.Int64Var(&opts.cfg.Seed, "seed", int64(seed), "random seed of the first dungeon")
	fset.IntVar(&opts.runs, "runs", opts.runs, "number of dungeons to generate with consecutive seeds")
	fset.StringVar(&corridor, "corridor", corridor, "corridor style: l, z or straight")
	fset.StringVar(&opts.envFile, "env", envFileArg(args), "file of DUNGEON_* defaults")
	fset.BoolVar(&opts.verbose, "v", false, "log generation details")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	style, err := generate.ParseCorridorStyle(corridor)
	if err != nil {
		return nil, err
	}
	opts.cfg.CorridorStyle = style
	if opts.runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", opts.runs)
	}
	return opts, nil
}
