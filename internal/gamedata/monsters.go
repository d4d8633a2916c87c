package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code
	SightRange  int    `json:"sightRange"`  // Viewshed radius
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *MonsterDef) GlyphRune() rune {
	for _, r := range d.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color, white if it does not parse.
func (d *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Validate checks the fields a spawner relies on.
func (d *MonsterDef) Validate() error {
	switch {
	case d.ID == "":
		return errors.New("monster without id")
	case d.SightRange <= 0:
		return fmt.Errorf("monster %s: sightRange must be positive, got %d", d.ID, d.SightRange)
	case d.SpawnWeight < 0:
		return fmt.Errorf("monster %s: spawnWeight must not be negative, got %d", d.ID, d.SpawnWeight)
	}
	return nil
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Monsters {
		if err := file.Monsters[i].Validate(); err != nil {
			return nil, fmt.Errorf("monsters.json: %w", err)
		}
	}
	return file.Monsters, nil
}
