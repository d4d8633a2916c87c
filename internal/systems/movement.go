package systems

import (
	"github.com/samdwyer/dungeonsight/internal/ecs"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// MoveResult describes the outcome of a move attempt.
type MoveResult struct {
	NewX, NewY int
	HasMoved   bool
	IsWall     bool // Target was a wall or off the map
}

// TryMove moves e by (dx, dy) if the target cell is passable. A successful
// move marks the entity's viewshed dirty.
func TryMove(w *ecs.World, m *world.TileMap, e ecs.Entity, dx, dy int) MoveResult {
	pos, ok := w.Positions.Get(e)
	if !ok {
		return MoveResult{}
	}

	res := MoveResult{NewX: pos.X + dx, NewY: pos.Y + dy}
	if !m.IsPassable(res.NewX, res.NewY) {
		res.IsWall = true
		return res
	}

	pos.X, pos.Y = res.NewX, res.NewY
	res.HasMoved = true
	if vs, ok := w.Viewsheds.Get(e); ok {
		vs.Dirty = true
	}
	return res
}

// Teleport places e at (x, y) without a passability check and marks its
// viewshed dirty. The caller keeps (x, y) on the map.
func Teleport(w *ecs.World, e ecs.Entity, x, y int) {
	if pos, ok := w.Positions.Get(e); ok {
		pos.X, pos.Y = x, y
	}
	if vs, ok := w.Viewsheds.Get(e); ok {
		vs.Dirty = true
	}
}

// SetRange changes e's sight radius and marks its viewshed dirty.
func SetRange(w *ecs.World, e ecs.Entity, sightRange int) {
	if vs, ok := w.Viewsheds.Get(e); ok {
		vs.Range = sightRange
		vs.Dirty = true
	}
}
