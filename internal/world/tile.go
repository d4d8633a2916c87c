// Package world provides dungeon generation and map management.
package world

// Tile represents a single map tile.
type Tile uint8

const (
	// TileWall is opaque and impassable.
	TileWall Tile = iota
	// TileFloor is transparent and passable.
	TileFloor
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// IsOpaque returns true if the tile blocks line of sight.
func (t Tile) IsOpaque() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	default:
		return '#'
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}
