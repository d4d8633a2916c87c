package ecs

import "github.com/samdwyer/dungeonsight/internal/component"

// AnyStore is the type-erased view of a Store used for entity teardown and queries.
type AnyStore interface {
	has(e Entity) bool
	remove(e Entity)
	count() int
	entityList() []Entity
}

// World owns entities and their typed component stores.
type World struct {
	Positions   *Store[component.Position]
	Viewsheds   *Store[component.Viewshed]
	Players     *Store[component.Player]
	Renderables *Store[component.Renderable]
	Names       *Store[component.Name]
	Monsters    *Store[component.Monster]

	next   Entity
	alive  map[Entity]struct{}
	stores []AnyStore
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := &World{
		Positions:   NewStore[component.Position](),
		Viewsheds:   NewStore[component.Viewshed](),
		Players:     NewStore[component.Player](),
		Renderables: NewStore[component.Renderable](),
		Names:       NewStore[component.Name](),
		Monsters:    NewStore[component.Monster](),
		alive:       make(map[Entity]struct{}),
	}
	w.stores = []AnyStore{w.Positions, w.Viewsheds, w.Players, w.Renderables, w.Names, w.Monsters}
	return w
}

// CreateEntity allocates a new entity identifier.
func (w *World) CreateEntity() Entity {
	w.next++
	w.alive[w.next] = struct{}{}
	return w.next
}

// Alive reports whether e was created and not destroyed.
func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes e and all of its components.
func (w *World) DestroyEntity(e Entity) {
	if !w.Alive(e) {
		return
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	delete(w.alive, e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.alive)
}
