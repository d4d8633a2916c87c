package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsight/internal/ecs"
	"github.com/samdwyer/dungeonsight/internal/gamedata"
	"github.com/samdwyer/dungeonsight/internal/world"
)

const rememberedBrightness = 0.45

var (
	wallColor  = tcell.NewRGBColor(0, 255, 0)
	floorColor = tcell.NewRGBColor(128, 128, 128)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the revealed part of the map, the entities the player can
// currently see, and a status line below the map.
func (r *Renderer) Render(m *world.TileMap, w *ecs.World, status string) {
	r.screen.Clear()

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Index(x, y)
			if !m.Revealed[idx] {
				continue
			}
			tile := m.Tiles[idx]
			r.screen.SetContent(x, y, tile.Rune(), TileStyle(tile, m.Visible[idx]))
		}
	}

	// Monsters first so the player is drawn on top.
	for _, e := range ecs.Query(w.Positions, w.Renderables) {
		if w.Players.Has(e) {
			continue
		}
		pos, _ := w.Positions.Get(e)
		if !m.IsVisible(pos.X, pos.Y) {
			continue
		}
		rend, _ := w.Renderables.Get(e)
		r.screen.SetContent(pos.X, pos.Y, rend.Glyph, tcell.StyleDefault.Foreground(rend.Color))
	}
	for _, e := range ecs.Query(w.Players, w.Positions, w.Renderables) {
		pos, _ := w.Positions.Get(e)
		rend, _ := w.Renderables.Get(e)
		r.screen.SetContent(pos.X, pos.Y, rend.Glyph, tcell.StyleDefault.Foreground(rend.Color).Bold(true))
	}

	if status != "" {
		r.RenderMessage(status, m.Height)
	}

	r.screen.Show()
}

// TileStyle returns the style for a revealed tile. Tiles outside the current
// field of view are drawn in dim grey.
func TileStyle(tile world.Tile, visible bool) tcell.Style {
	var fg tcell.Color
	switch tile {
	case world.TileWall:
		fg = wallColor
	case world.TileFloor:
		fg = floorColor
	default:
		return tcell.StyleDefault
	}
	if !visible {
		fg = gamedata.Greyscale(fg, rememberedBrightness)
	}
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
