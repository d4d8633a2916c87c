// Package game provides the main game loop and level management.
package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsight/internal/dice"
	"github.com/samdwyer/dungeonsight/internal/gamedata"
	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
	"github.com/samdwyer/dungeonsight/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	level    *Level
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	registry, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		initSpan.End()
		return fmt.Errorf("load monsters: %w", err)
	}

	g.level, err = BuildLevel(ctx, g.cfg, dice.NewSeeded(g.cfg.Seed), registry)
	if err != nil {
		initSpan.End()
		return err
	}
	initSpan.SetAttributes(
		attribute.Int64("game.seed", g.cfg.Seed),
		attribute.String("level.id", g.level.ID.String()),
	)
	initSpan.End()

	logging.For("game").WithField("level", g.level.ID.String()).Info("game started")

	for g.running {
		g.level.Tick(ctx)
		g.renderer.Render(g.level.Map, g.level.World, g.level.Status())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	logging.For("game").Info("game finished")
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.level.MovePlayer(ctx, 0, -1)
	case tcell.KeyDown:
		g.level.MovePlayer(ctx, 0, 1)
	case tcell.KeyLeft:
		g.level.MovePlayer(ctx, -1, 0)
	case tcell.KeyRight:
		g.level.MovePlayer(ctx, 1, 0)

	case tcell.KeyRune:
		if dx, dy, ok := runeDelta(ev.Rune()); ok {
			g.level.MovePlayer(ctx, dx, dy)
			return
		}
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// runeDelta maps vi-style movement keys to a step.
func runeDelta(r rune) (dx, dy int, ok bool) {
	switch r {
	case 'h':
		return -1, 0, true
	case 'j':
		return 0, 1, true
	case 'k':
		return 0, -1, true
	case 'l':
		return 1, 0, true
	case 'y':
		return -1, -1, true
	case 'u':
		return 1, -1, true
	case 'b':
		return -1, 1, true
	case 'n':
		return 1, 1, true
	}
	return 0, 0, false
}
