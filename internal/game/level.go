package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsight/internal/dice"
	"github.com/samdwyer/dungeonsight/internal/ecs"
	"github.com/samdwyer/dungeonsight/internal/entity"
	"github.com/samdwyer/dungeonsight/internal/gamedata"
	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/systems"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// Level owns one generated map and the entities on it. The map is handed to
// systems explicitly; nothing else holds a reference to it.
type Level struct {
	ID     uuid.UUID
	Map    *world.TileMap
	World  *ecs.World
	Player ecs.Entity

	visibility *systems.VisibilitySystem
}

// BuildLevel generates a map, places the player in the first room (or the
// map centre when there are no rooms) and populates the remaining rooms.
// A nil registry spawns no monsters.
func BuildLevel(ctx context.Context, cfg Config, rng *dice.RNG, registry *gamedata.MonsterRegistry) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "level.build")
	defer span.End()

	gen := world.NewGenerator(rng, cfg.GeneratorConfig())
	m, err := gen.Generate(ctx, cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("generate level: %w", err)
	}

	lvl := &Level{
		ID:         uuid.New(),
		Map:        m,
		World:      ecs.NewWorld(),
		visibility: systems.NewVisibilitySystem(),
	}
	log := logging.For("game").WithField("level", lvl.ID.String())

	startX, startY := m.Width/2, m.Height/2
	if len(m.Rooms) > 0 {
		startX, startY = m.Rooms[0].Center()
	} else {
		log.Warn("no rooms generated, using map centre for the player")
	}
	lvl.Player = entity.SpawnPlayer(lvl.World, startX, startY, cfg.SightRange)

	monsters := 0
	if registry != nil && cfg.Monsters > 0 {
		monsters = len(entity.PopulateRooms(lvl.World, m, registry, rng, cfg.Monsters))
	}

	connected := m.RoomsConnected()
	if !connected {
		log.Warn("rooms are not all reachable from the first room")
	}

	span.SetAttributes(
		attribute.String("level.id", lvl.ID.String()),
		attribute.String("level.mode", cfg.Mode.String()),
		attribute.Int("dungeon.rooms", len(m.Rooms)),
		attribute.Int("level.monsters", monsters),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
		attribute.Bool("dungeon.connected", connected),
	)
	log.WithFields(logrus.Fields{
		"mode":     cfg.Mode.String(),
		"rooms":    len(m.Rooms),
		"monsters": monsters,
		"start_x":  startX,
		"start_y":  startY,
	}).Info("level built")

	return lvl, nil
}

// Tick runs one simulation step.
func (l *Level) Tick(ctx context.Context) {
	l.visibility.Run(ctx, l.World, l.Map)
}

// MovePlayer attempts to move the player by the given delta.
func (l *Level) MovePlayer(ctx context.Context, dx, dy int) systems.MoveResult {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.move")
	defer span.End()

	res := systems.TryMove(l.World, l.Map, l.Player, dx, dy)
	span.SetAttributes(
		attribute.Int("move.dx", dx),
		attribute.Int("move.dy", dy),
		attribute.Bool("move.moved", res.HasMoved),
	)
	return res
}

// PlayerPosition returns the player's current coordinates.
func (l *Level) PlayerPosition() (int, int) {
	pos, ok := l.World.Positions.Get(l.Player)
	if !ok {
		return -1, -1
	}
	return pos.X, pos.Y
}

// Status returns a one-line summary for the status bar.
func (l *Level) Status() string {
	x, y := l.PlayerPosition()
	id := l.ID.String()
	return fmt.Sprintf("level %s  pos %d,%d  rooms %d  seen %d/%d  [arrows/hjkl move, q quit]",
		id[:8], x, y, len(l.Map.Rooms), l.Map.RevealedCount(), len(l.Map.Tiles))
}
