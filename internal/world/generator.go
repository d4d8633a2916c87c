package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsight/internal/dice"
	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Rooms-and-corridors parameters
	DefaultMaxRooms    = 30
	DefaultMinRoomSize = 6
	DefaultMaxRoomSize = 10 // Inclusive

	// Scatter parameters
	DefaultScatterWalls = 400
)

// ErrUnknownMode is returned by Generate for an unsupported layout mode.
var ErrUnknownMode = errors.New("unknown generation mode")

// Mode selects the layout algorithm.
type Mode int

const (
	// ModeRooms builds rectangular rooms chained by L-shaped corridors.
	ModeRooms Mode = iota
	// ModeScatter builds an open walled box with random single-cell walls.
	// Connectivity is not guaranteed.
	ModeScatter
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRooms:
		return "rooms"
	case ModeScatter:
		return "scatter"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "rooms", "":
		return ModeRooms, nil
	case "scatter":
		return ModeScatter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// GeneratorConfig holds generation parameters.
type GeneratorConfig struct {
	Width, Height int

	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int

	ScatterWalls int
	// Reserved is never turned into a wall in scatter mode.
	Reserved Point
}

// DefaultGeneratorConfig returns the standard 80x50 layout parameters.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		MaxRooms:     DefaultMaxRooms,
		MinRoomSize:  DefaultMinRoomSize,
		MaxRoomSize:  DefaultMaxRoomSize,
		ScatterWalls: DefaultScatterWalls,
		Reserved:     Point{X: DefaultWidth / 2, Y: DefaultHeight / 2},
	}
}

// Generator builds tile maps from a random source.
type Generator struct {
	rng dice.Roller
	cfg GeneratorConfig
}

// NewGenerator creates a generator.
func NewGenerator(rng dice.Roller, cfg GeneratorConfig) *Generator {
	return &Generator{rng: rng, cfg: cfg}
}

// Generate builds a map using the given mode.
func (g *Generator) Generate(ctx context.Context, mode Mode) (*TileMap, error) {
	switch mode {
	case ModeRooms:
		return g.RoomsAndCorridors(ctx), nil
	case ModeScatter:
		return g.Scatter(ctx), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
}

// Scatter creates a floor map with solid boundaries and randomly placed
// walls. Nothing guarantees the result is connected.
func (g *Generator) Scatter(ctx context.Context) *TileMap {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	w, h := g.cfg.Width, g.cfg.Height
	m := NewTileMap(w, h, TileFloor)

	for x := 0; x < w; x++ {
		m.setTile(x, 0, TileWall)
		m.setTile(x, h-1, TileWall)
	}
	for y := 0; y < h; y++ {
		m.setTile(0, y, TileWall)
		m.setTile(w-1, y, TileWall)
	}

	placed := 0
	for i := 0; i < g.cfg.ScatterWalls; i++ {
		x := g.rng.RollDice(1, w-1)
		y := g.rng.RollDice(1, h-1)
		if x == g.cfg.Reserved.X && y == g.cfg.Reserved.Y {
			continue
		}
		m.setTile(x, y, TileWall)
		placed++
	}

	span.SetAttributes(
		attribute.String("dungeon.mode", ModeScatter.String()),
		attribute.Int("dungeon.width", w),
		attribute.Int("dungeon.height", h),
		attribute.Int("dungeon.walls_placed", placed),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logging.For("world").WithFields(logrus.Fields{
		"mode":   ModeScatter.String(),
		"width":  w,
		"height": h,
		"walls":  placed,
	}).Debug("dungeon generated")

	return m
}

// RoomsAndCorridors creates a map of non-overlapping rooms. Every accepted
// room after the first is joined to the previously accepted one, so the
// rooms form a single connected chain.
func (g *Generator) RoomsAndCorridors(ctx context.Context) *TileMap {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	w, h := g.cfg.Width, g.cfg.Height
	m := NewTileMap(w, h, TileWall)

	rejected := 0
	for i := 0; i < g.cfg.MaxRooms; i++ {
		roomW := g.rng.Range(g.cfg.MinRoomSize, g.cfg.MaxRoomSize+1)
		roomH := g.rng.Range(g.cfg.MinRoomSize, g.cfg.MaxRoomSize+1)

		// Keep X1 >= 1 and X2 <= w-2 (likewise for y).
		spanX, spanY := w-roomW-2, h-roomH-2
		if spanX < 1 || spanY < 1 {
			rejected++
			continue
		}
		x := g.rng.RollDice(1, spanX)
		y := g.rng.RollDice(1, spanY)
		room := NewRect(x, y, roomW, roomH)

		if overlapsAny(room, m.Rooms) {
			rejected++
			continue
		}

		m.carveRoom(room)
		if len(m.Rooms) > 0 {
			prevX, prevY := m.Rooms[len(m.Rooms)-1].Center()
			newX, newY := room.Center()
			if g.rng.Range(0, 2) == 1 {
				m.carveHorizontalTunnel(prevX, newX, prevY)
				m.carveVerticalTunnel(prevY, newY, newX)
			} else {
				m.carveVerticalTunnel(prevY, newY, prevX)
				m.carveHorizontalTunnel(prevX, newX, newY)
			}
		}
		m.Rooms = append(m.Rooms, room)
	}

	span.SetAttributes(
		attribute.String("dungeon.mode", ModeRooms.String()),
		attribute.Int("dungeon.width", w),
		attribute.Int("dungeon.height", h),
		attribute.Int("dungeon.room_count", len(m.Rooms)),
		attribute.Int("dungeon.rejected_rooms", rejected),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logging.For("world").WithFields(logrus.Fields{
		"mode":     ModeRooms.String(),
		"width":    w,
		"height":   h,
		"rooms":    len(m.Rooms),
		"rejected": rejected,
	}).Debug("dungeon generated")

	return m
}

func overlapsAny(room Rect, rooms []Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets the room interior (X1+1..X2, Y1+1..Y2) to floor.
func (m *TileMap) carveRoom(room Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.setTile(x, y, TileFloor)
		}
	}
}

// carveHorizontalTunnel carves the inclusive segment between x1 and x2 on row y.
func (m *TileMap) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.setTile(x, y, TileFloor)
	}
}

// carveVerticalTunnel carves the inclusive segment between y1 and y2 on column x.
func (m *TileMap) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.setTile(x, y, TileFloor)
	}
}
