package ecs

import (
	"testing"

	"github.com/samdwyer/dungeonsight/internal/component"
)

func TestStoreAddGetRemove(t *testing.T) {
	s := NewStore[component.Position]()

	s.Add(1, component.Position{X: 1, Y: 1})
	s.Add(2, component.Position{X: 2, Y: 2})
	s.Add(3, component.Position{X: 3, Y: 3})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	p, ok := s.Get(2)
	if !ok || p.X != 2 {
		t.Fatalf("Get(2) = %+v, %v", p, ok)
	}
	p.X = 20
	if p2, _ := s.Get(2); p2.X != 20 {
		t.Errorf("Get should return a pointer into the store, got X=%d", p2.X)
	}

	s.Remove(1)
	if s.Has(1) {
		t.Error("entity 1 should be removed")
	}
	if p3, ok := s.Get(3); !ok || p3.X != 3 {
		t.Errorf("entity 3 should survive the swap-remove, got %+v, %v", p3, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Len() after remove = %d, want 2", s.Len())
	}

	// Replacing keeps a single slot.
	s.Add(3, component.Position{X: 30})
	if s.Len() != 2 {
		t.Errorf("Len() after replace = %d, want 2", s.Len())
	}

	s.Remove(99) // no-op
	s.Clear()
	if s.Len() != 0 || s.Has(2) {
		t.Error("Clear should empty the store")
	}
}

func TestStoreEachOrder(t *testing.T) {
	s := NewStore[component.Name]()
	for i, n := range []string{"a", "b", "c"} {
		s.Add(Entity(i+1), component.Name{Value: n})
	}

	var got []Entity
	s.Each(func(e Entity, v *component.Name) {
		got = append(got, e)
	})
	want := []Entity{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each order = %v, want %v", got, want)
		}
	}
}

func TestWorldLifecycle(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()

	if a == NoEntity || a == b {
		t.Fatalf("CreateEntity returned %d and %d", a, b)
	}

	w.Positions.Add(a, component.Position{X: 1, Y: 1})
	w.Viewsheds.Add(a, component.NewViewshed(5))
	w.Players.Add(a, component.Player{})
	w.Positions.Add(b, component.Position{X: 2, Y: 2})

	w.DestroyEntity(a)
	if w.Alive(a) || w.Positions.Has(a) || w.Viewsheds.Has(a) || w.Players.Has(a) {
		t.Error("DestroyEntity should remove the entity from every store")
	}
	if !w.Positions.Has(b) {
		t.Error("other entities should be untouched")
	}
	if w.EntityCount() != 1 {
		t.Errorf("EntityCount() = %d, want 1", w.EntityCount())
	}

	c := w.CreateEntity()
	if c == a {
		t.Error("identifiers must not be reused")
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	var ents []Entity
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		ents = append(ents, e)
		w.Positions.Add(e, component.Position{X: i})
	}
	w.Viewsheds.Add(ents[1], component.NewViewshed(3))
	w.Viewsheds.Add(ents[3], component.NewViewshed(3))
	w.Viewsheds.Add(ents[4], component.NewViewshed(3))
	w.Players.Add(ents[3], component.Player{})

	got := Query(w.Positions, w.Viewsheds)
	want := []Entity{ents[1], ents[3], ents[4]}
	if len(got) != len(want) {
		t.Fatalf("Query = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Query = %v, want %v", got, want)
		}
	}

	players := Query(w.Positions, w.Viewsheds, w.Players)
	if len(players) != 1 || players[0] != ents[3] {
		t.Errorf("player query = %v, want [%d]", players, ents[3])
	}

	if got := Query(); got != nil {
		t.Errorf("empty query = %v, want nil", got)
	}
}
