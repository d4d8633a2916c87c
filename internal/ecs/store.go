package ecs

// Store is a sparse set holding one component type.
// Components live in a dense slice; the sparse map points entities at their slot.
type Store[T any] struct {
	dense    []T
	entities []Entity
	sparse   map[Entity]int
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		dense:    make([]T, 0, 64),
		entities: make([]Entity, 0, 64),
		sparse:   make(map[Entity]int),
	}
}

// Add inserts or replaces the component for e.
func (s *Store[T]) Add(e Entity, val T) {
	if i, ok := s.sparse[e]; ok {
		s.dense[i] = val
		return
	}
	s.sparse[e] = len(s.dense)
	s.dense = append(s.dense, val)
	s.entities = append(s.entities, e)
}

// Get returns a pointer to e's component. The pointer is valid until the next
// Add or Remove on this store.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	i, ok := s.sparse[e]
	if !ok {
		return nil, false
	}
	return &s.dense[i], true
}

// Has reports whether e has a component in this store.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.sparse[e]
	return ok
}

// Remove deletes e's component by swapping the last slot into its place.
func (s *Store[T]) Remove(e Entity) {
	i, ok := s.sparse[e]
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.entities[i] = s.entities[last]
		s.sparse[s.entities[i]] = i
	}
	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	delete(s.sparse, e)
}

// Len returns the number of components stored.
func (s *Store[T]) Len() int {
	return len(s.dense)
}

// Entities returns a copy of the entity list in dense order.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each calls fn for every component in dense order. fn must not add to or
// remove from this store.
func (s *Store[T]) Each(fn func(e Entity, val *T)) {
	for i := range s.dense {
		fn(s.entities[i], &s.dense[i])
	}
}

// Clear removes every component.
func (s *Store[T]) Clear() {
	s.dense = s.dense[:0]
	s.entities = s.entities[:0]
	s.sparse = make(map[Entity]int)
}

func (s *Store[T]) has(e Entity) bool    { return s.Has(e) }
func (s *Store[T]) remove(e Entity)      { s.Remove(e) }
func (s *Store[T]) count() int           { return s.Len() }
func (s *Store[T]) entityList() []Entity { return s.entities }
