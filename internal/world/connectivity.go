package world

import "github.com/zyedidia/generic/mapset"

var neighbors4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// ReachableFrom returns every passable cell reachable from start by
// orthogonal steps. An impassable start yields an empty set.
func (m *TileMap) ReachableFrom(start Point) mapset.Set[Point] {
	reachable := mapset.New[Point]()
	if !m.IsPassable(start.X, start.Y) {
		return reachable
	}

	queue := []Point{start}
	reachable.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range neighbors4 {
			next := Point{X: current.X + d.X, Y: current.Y + d.Y}
			if m.IsPassable(next.X, next.Y) && !reachable.Has(next) {
				reachable.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return reachable
}

// RoomsConnected reports whether every room centre can be reached from the
// first room's centre. A map without rooms is trivially connected.
func (m *TileMap) RoomsConnected() bool {
	if len(m.Rooms) == 0 {
		return true
	}
	reachable := m.ReachableFrom(m.Rooms[0].CenterPoint())
	for _, room := range m.Rooms {
		if !reachable.Has(room.CenterPoint()) {
			return false
		}
	}
	return true
}
