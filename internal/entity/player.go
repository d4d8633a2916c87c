// Package entity spawns the player and monsters into the ECS world.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsight/internal/component"
	"github.com/samdwyer/dungeonsight/internal/ecs"
)

const (
	// PlayerGlyph is the player's display symbol.
	PlayerGlyph = '@'
	// DefaultSightRange is the player's viewshed radius.
	DefaultSightRange = 8
)

// SpawnPlayer creates the player at (x, y). Its viewshed starts dirty so the
// first visibility pass computes it.
func SpawnPlayer(w *ecs.World, x, y, sightRange int) ecs.Entity {
	e := w.CreateEntity()
	w.Positions.Add(e, component.Position{X: x, Y: y})
	w.Viewsheds.Add(e, component.NewViewshed(sightRange))
	w.Players.Add(e, component.Player{})
	w.Renderables.Add(e, component.Renderable{Glyph: PlayerGlyph, Color: tcell.ColorYellow})
	w.Names.Add(e, component.Name{Value: "Player"})
	return e
}
