// Package component defines the per-entity data stored in the ECS world.
package component

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonsight/internal/world"
)

// Position is an entity's location on the map.
type Position struct {
	X, Y int
}

// Point returns the position as a world.Point.
func (p Position) Point() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Viewshed is an entity's sight: a radius plus the cells it last saw.
//
// Dirty is set whenever the position or range changes and cleared only by
// the visibility system after it recomputes VisibleTiles.
type Viewshed struct {
	Range        int
	VisibleTiles mapset.Set[world.Point]
	Dirty        bool
}

// NewViewshed creates a dirty viewshed with an empty visible set.
func NewViewshed(sightRange int) Viewshed {
	return Viewshed{
		Range:        sightRange,
		VisibleTiles: mapset.New[world.Point](),
		Dirty:        true,
	}
}

// CanSee reports whether p was visible at the last recomputation.
func (v *Viewshed) CanSee(p world.Point) bool {
	return v.VisibleTiles.Has(p)
}

// Player marks the entity whose sight drives the map's revealed and visible state.
type Player struct{}

// Renderable describes how an entity is drawn.
type Renderable struct {
	Glyph rune
	Color tcell.Color
}

// Name is a display name.
type Name struct {
	Value string
}

// Monster marks a non-player creature spawned from a monster definition.
type Monster struct {
	DefID string
}
