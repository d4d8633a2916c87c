package world

// TileMap is the level grid. Tiles, Revealed and Visible are row-major and
// always hold Width*Height entries.
//
// Tiles is written only during generation. Revealed and Visible are written
// only by the visibility system; Revealed never goes back to false.
type TileMap struct {
	Width    int
	Height   int
	Tiles    []Tile
	Revealed []bool
	Visible  []bool
	Rooms    []Rect // Acceptance order; consecutive rooms are joined by a corridor
}

// NewTileMap creates a map of the given size filled with a single tile kind.
func NewTileMap(width, height int, fill Tile) *TileMap {
	n := width * height
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i] = fill
	}
	return &TileMap{
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
		Rooms:    make([]Rect, 0),
	}
}

// Index returns the row-major index of (x, y). Coordinates must be in bounds.
func (m *TileMap) Index(x, y int) int {
	return y*m.Width + x
}

// Coords is the inverse of Index.
func (m *TileMap) Coords(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// InBounds returns true if (x, y) lies on the map.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Dimensions returns the map width and height.
func (m *TileMap) Dimensions() (int, int) {
	return m.Width, m.Height
}

// IsOpaque reports whether the tile at p blocks line of sight.
// Points off the map are opaque.
func (m *TileMap) IsOpaque(p Point) bool {
	if !m.InBounds(p.X, p.Y) {
		return true
	}
	return m.Tiles[m.Index(p.X, p.Y)].IsOpaque()
}

// IsPassable returns true if the given position can be walked on.
func (m *TileMap) IsPassable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[m.Index(x, y)].IsPassable()
}

// TileAt returns the tile at the given position, or TileWall off the map.
func (m *TileMap) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.Index(x, y)]
}

// IsRevealed returns true if the cell has ever been seen by the player.
func (m *TileMap) IsRevealed(x, y int) bool {
	return m.InBounds(x, y) && m.Revealed[m.Index(x, y)]
}

// IsVisible returns true if the cell is in the player's current view.
func (m *TileMap) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[m.Index(x, y)]
}

// ResetVisible clears the whole Visible array.
func (m *TileMap) ResetVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

// Reveal marks an in-bounds point as both revealed and visible.
func (m *TileMap) Reveal(p Point) {
	idx := m.Index(p.X, p.Y)
	m.Revealed[idx] = true
	m.Visible[idx] = true
}

// RevealedCount returns the number of cells ever seen.
func (m *TileMap) RevealedCount() int {
	return countTrue(m.Revealed)
}

// VisibleCount returns the number of cells currently in view.
func (m *TileMap) VisibleCount() int {
	return countTrue(m.Visible)
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (m *TileMap) RoomIndexAt(x, y int) int {
	for i, room := range m.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (m *TileMap) setTile(x, y int, t Tile) {
	if m.InBounds(x, y) {
		m.Tiles[m.Index(x, y)] = t
	}
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
