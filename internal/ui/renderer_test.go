package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsight/internal/component"
	"github.com/samdwyer/dungeonsight/internal/ecs"
	"github.com/samdwyer/dungeonsight/internal/world"
)

func newSimScreen(t *testing.T, width, height int) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	sim.SetSize(width, height)
	t.Cleanup(screen.Close)
	return sim, screen
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestRenderOnlyRevealed(t *testing.T) {
	sim, screen := newSimScreen(t, 20, 12)
	m := world.NewTileMap(10, 10, world.TileFloor)
	m.Tiles[m.Index(2, 2)] = world.TileWall
	m.Revealed[m.Index(2, 2)] = true
	m.Revealed[m.Index(3, 2)] = true
	m.Visible[m.Index(3, 2)] = true

	NewRenderer(screen).Render(m, ecs.NewWorld(), "status")

	if got := runeAt(sim, 2, 2); got != '#' {
		t.Errorf("revealed wall = %q, want '#'", got)
	}
	if got := runeAt(sim, 3, 2); got != '.' {
		t.Errorf("visible floor = %q, want '.'", got)
	}
	if got := runeAt(sim, 5, 5); got == '.' || got == '#' {
		t.Errorf("unrevealed cell drawn as %q", got)
	}
	if got := runeAt(sim, 0, 10); got != 's' {
		t.Errorf("status line starts with %q, want 's'", got)
	}
}

func TestRenderHidesMonstersOutOfView(t *testing.T) {
	sim, screen := newSimScreen(t, 20, 12)
	m := world.NewTileMap(10, 10, world.TileFloor)
	for i := range m.Revealed {
		m.Revealed[i] = true
	}
	m.Visible[m.Index(1, 1)] = true
	m.Visible[m.Index(2, 1)] = true

	w := ecs.NewWorld()
	player := w.CreateEntity()
	w.Positions.Add(player, component.Position{X: 1, Y: 1})
	w.Players.Add(player, component.Player{})
	w.Renderables.Add(player, component.Renderable{Glyph: '@', Color: tcell.ColorYellow})

	seen := w.CreateEntity()
	w.Positions.Add(seen, component.Position{X: 2, Y: 1})
	w.Renderables.Add(seen, component.Renderable{Glyph: 'g', Color: tcell.ColorRed})

	hidden := w.CreateEntity()
	w.Positions.Add(hidden, component.Position{X: 8, Y: 8})
	w.Renderables.Add(hidden, component.Renderable{Glyph: 'o', Color: tcell.ColorRed})

	NewRenderer(screen).Render(m, w, "")

	if got := runeAt(sim, 1, 1); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := runeAt(sim, 2, 1); got != 'g' {
		t.Errorf("visible monster cell = %q, want 'g'", got)
	}
	if got := runeAt(sim, 8, 8); got != '.' {
		t.Errorf("monster outside view drawn as %q, want remembered floor", got)
	}
}

func TestTileStyleDimsRemembered(t *testing.T) {
	for _, tile := range []world.Tile{world.TileWall, world.TileFloor} {
		litFg, _, _ := TileStyle(tile, true).Decompose()
		dimFg, _, _ := TileStyle(tile, false).Decompose()
		if litFg == dimFg {
			t.Errorf("%v: remembered style should differ from visible", tile)
		}
		r, g, b := dimFg.RGB()
		if r != g || g != b {
			t.Errorf("%v: remembered colour (%d,%d,%d) should be grey", tile, r, g, b)
		}
	}
	if TileStyle(world.TileWall, true) == TileStyle(world.TileFloor, true) {
		t.Error("walls and floors should be styled differently")
	}
}
