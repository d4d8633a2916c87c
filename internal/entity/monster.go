package entity

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeonsight/internal/component"
	"github.com/samdwyer/dungeonsight/internal/ecs"
	"github.com/samdwyer/dungeonsight/internal/gamedata"
	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// SpawnMonster creates a monster from its definition at (x, y).
func SpawnMonster(w *ecs.World, def *gamedata.MonsterDef, x, y int) ecs.Entity {
	e := w.CreateEntity()
	w.Positions.Add(e, component.Position{X: x, Y: y})
	w.Viewsheds.Add(e, component.NewViewshed(def.SightRange))
	w.Monsters.Add(e, component.Monster{DefID: def.ID})
	w.Renderables.Add(e, component.Renderable{Glyph: def.GlyphRune(), Color: def.TCellColor()})
	w.Names.Add(e, component.Name{Value: def.Name})
	return e
}

// PopulateRooms places one monster at the centre of each room after the
// first, stopping after limit monsters. The first room is left for the
// player. Returns the spawned entities in room order.
func PopulateRooms(w *ecs.World, m *world.TileMap, registry *gamedata.MonsterRegistry, rng gamedata.Intner, limit int) []ecs.Entity {
	spawned := make([]ecs.Entity, 0, len(m.Rooms))
	log := logging.For("entity")

	for i := 1; i < len(m.Rooms) && len(spawned) < limit; i++ {
		def := registry.SpawnRandom(rng)
		if def == nil {
			break
		}
		x, y := m.Rooms[i].Center()
		e := SpawnMonster(w, def, x, y)
		spawned = append(spawned, e)

		log.WithFields(logrus.Fields{
			"monster": def.ID,
			"room":    i,
			"x":       x,
			"y":       y,
		}).Debug("monster spawned")
	}
	return spawned
}
