package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samdwyer/dungeonsight/internal/entity"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Mode          world.Mode
	Width, Height int

	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int

	SightRange int // Player viewshed radius
	Monsters   int // Upper bound on spawned monsters
}

// DefaultConfig returns the standard 80x50 rooms-and-corridors setup.
func DefaultConfig() Config {
	return Config{
		Mode:        world.ModeRooms,
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		MaxRooms:    world.DefaultMaxRooms,
		MinRoomSize: world.DefaultMinRoomSize,
		MaxRoomSize: world.DefaultMaxRoomSize,
		SightRange:  entity.DefaultSightRange,
		Monsters:    10,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies DUNGEONSIGHT_* overrides.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv("DUNGEONSIGHT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: DUNGEONSIGHT_SEED: %w", ErrInvalidConfig, err)
		}
		cfg.Seed = seed
	}
	if v := getenv("DUNGEONSIGHT_MODE"); v != "" {
		mode, err := world.ParseMode(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: DUNGEONSIGHT_MODE: %w", ErrInvalidConfig, err)
		}
		cfg.Mode = mode
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"DUNGEONSIGHT_WIDTH", &cfg.Width},
		{"DUNGEONSIGHT_HEIGHT", &cfg.Height},
		{"DUNGEONSIGHT_MAX_ROOMS", &cfg.MaxRooms},
		{"DUNGEONSIGHT_SIGHT", &cfg.SightRange},
		{"DUNGEONSIGHT_MONSTERS", &cfg.Monsters},
	}
	for _, it := range ints {
		v := getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, it.key, err)
		}
		*it.dst = n
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values generation cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Height < 3:
		return fmt.Errorf("%w: map %dx%d is smaller than 3x3", ErrInvalidConfig, c.Width, c.Height)
	case c.MinRoomSize <= 0 || c.MaxRoomSize < c.MinRoomSize:
		return fmt.Errorf("%w: room size range [%d,%d]", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
	case c.MaxRooms < 0:
		return fmt.Errorf("%w: negative room budget %d", ErrInvalidConfig, c.MaxRooms)
	case c.SightRange <= 0:
		return fmt.Errorf("%w: sight range must be positive, got %d", ErrInvalidConfig, c.SightRange)
	case c.Monsters < 0:
		return fmt.Errorf("%w: negative monster count %d", ErrInvalidConfig, c.Monsters)
	}
	return nil
}

// GeneratorConfig derives the map generator parameters.
func (c Config) GeneratorConfig() world.GeneratorConfig {
	gc := world.DefaultGeneratorConfig()
	gc.Width, gc.Height = c.Width, c.Height
	gc.MaxRooms = c.MaxRooms
	gc.MinRoomSize, gc.MaxRoomSize = c.MinRoomSize, c.MaxRoomSize
	gc.Reserved = world.Point{X: c.Width / 2, Y: c.Height / 2}
	return gc
}
