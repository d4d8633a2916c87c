// Package systems contains the per-tick logic that runs over the ECS world.
package systems

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsight/internal/ecs"
	"github.com/samdwyer/dungeonsight/internal/fov"
	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// VisibilityFunc computes the raw set of points visible from origin.
type VisibilityFunc func(origin world.Point, radius int, occ fov.Occluder) mapset.Set[world.Point]

// VisibilitySystem recomputes viewsheds flagged dirty and, for the player,
// publishes the result into the map's Revealed and Visible arrays.
//
// It only ever clears Viewshed.Dirty; setting it is the job of whatever moves
// an entity or changes its range.
type VisibilitySystem struct {
	compute VisibilityFunc
}

// NewVisibilitySystem creates a system backed by shadow casting.
func NewVisibilitySystem() *VisibilitySystem {
	return &VisibilitySystem{compute: fov.VisiblePoints}
}

// NewVisibilitySystemWith creates a system with a custom geometry function.
func NewVisibilitySystemWith(compute VisibilityFunc) *VisibilitySystem {
	return &VisibilitySystem{compute: compute}
}

// Run processes every entity that has a Position and a Viewshed.
// If more than one entity carries the Player marker the last one processed
// determines the map's Visible array.
func (s *VisibilitySystem) Run(ctx context.Context, w *ecs.World, m *world.TileMap) {
	tracer := telemetry.Tracer("systems")
	_, span := tracer.Start(ctx, "visibility.run")
	defer span.End()

	log := logging.For("visibility")
	recomputed := 0
	playerVisible := -1

	for _, e := range ecs.Query(w.Positions, w.Viewsheds) {
		vs, _ := w.Viewsheds.Get(e)
		if !vs.Dirty {
			continue
		}
		pos, _ := w.Positions.Get(e)

		raw := s.compute(pos.Point(), vs.Range, m)
		kept := mapset.New[world.Point]()
		raw.Each(func(p world.Point) {
			if m.InBounds(p.X, p.Y) {
				kept.Put(p)
			}
		})

		vs.VisibleTiles = kept
		vs.Dirty = false
		recomputed++

		if w.Players.Has(e) {
			m.ResetVisible()
			kept.Each(func(p world.Point) {
				m.Reveal(p)
			})
			playerVisible = kept.Size()
		}

		log.WithFields(logrus.Fields{
			"entity":  uint64(e),
			"x":       pos.X,
			"y":       pos.Y,
			"range":   vs.Range,
			"visible": kept.Size(),
		}).Debug("viewshed recomputed")
	}

	span.SetAttributes(
		attribute.Int("visibility.recomputed", recomputed),
		attribute.Int("visibility.player_visible", playerVisible),
	)
}
