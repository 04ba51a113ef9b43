// Package setup describes the initial placement of the player, NPCs, items,
// obstacles and quests, and validates it before a game is built from it.
package setup

import (
	"errors"
	"fmt"

	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/gamedata"
	"github.com/samdwyer/ultimaconsole/internal/world"
)

var (
	// ErrOutOfBounds is returned for a placement outside the grid.
	ErrOutOfBounds = errors.New("placement out of bounds")
	// ErrOverlap is returned when two blocking placements share a cell.
	ErrOverlap = errors.New("placements overlap")
	// ErrUnknownQuest is returned when an NPC offers an undefined quest.
	ErrUnknownQuest = errors.New("unknown quest")
	// ErrInvalidStats is returned for an NPC that starts without health.
	ErrInvalidStats = errors.New("invalid NPC stats")
)

// PlayerSpec places the player.
type PlayerSpec struct {
	Name  string
	Start entity.Position
}

// NPCSpec places one NPC.
type NPCSpec struct {
	Name     string
	Dialogue string
	Position entity.Position
	Health   int
	Strength int
	Glyph    rune   // Map symbol; zero draws the plain NPC glyph
	Color    string // Hex colour; empty uses the frontend default
	Quest    string // Quest ID offered on first interaction
}

// ItemSpec places one item on the floor.
type ItemSpec struct {
	Name     string
	Position entity.Position
	Value    int
	Glyph    rune
	Color    string
}

// QuestSpec defines a quest NPCs can offer.
type QuestSpec struct {
	ID          string
	Title       string
	Description string
}

// World is the complete initial state of a game.
type World struct {
	Width     int
	Height    int
	Player    PlayerSpec
	NPCs      []NPCSpec
	Items     []ItemSpec
	Obstacles []world.Rect
	Quests    []QuestSpec
}

// Validate checks dimensions, bounds and overlaps. The player, NPCs,
// obstacles and items each need their own cell, except that an item may lie
// under the player.
func (w World) Validate() error {
	if err := world.CheckDimensions(w.Width, w.Height); err != nil {
		return fmt.Errorf("world: %w", err)
	}

	bounds := entity.Bounds{Width: w.Width, Height: w.Height}
	blocked := make(map[entity.Position]string)

	for i, r := range w.Obstacles {
		if !r.Fits(w.Width, w.Height) {
			return fmt.Errorf("obstacle %d at (%d, %d) size %dx%d: %w", i, r.X, r.Y, r.Width, r.Height, ErrOutOfBounds)
		}
		for _, c := range r.Cells() {
			blocked[c] = "obstacle"
		}
	}

	claim := func(what string, pos entity.Position) error {
		if !bounds.Contains(pos) {
			return fmt.Errorf("%s at %v: %w", what, pos, ErrOutOfBounds)
		}
		if other, ok := blocked[pos]; ok {
			return fmt.Errorf("%s at %v with %s: %w", what, pos, other, ErrOverlap)
		}
		blocked[pos] = what
		return nil
	}

	if err := claim("player", w.Player.Start); err != nil {
		return err
	}

	quests := make(map[string]bool, len(w.Quests))
	for _, q := range w.Quests {
		quests[q.ID] = true
	}

	for _, n := range w.NPCs {
		if err := claim("NPC "+n.Name, n.Position); err != nil {
			return err
		}
		if n.Health <= 0 {
			return fmt.Errorf("NPC %s health %d: %w", n.Name, n.Health, ErrInvalidStats)
		}
		if n.Quest != "" && !quests[n.Quest] {
			return fmt.Errorf("NPC %s offers %q: %w", n.Name, n.Quest, ErrUnknownQuest)
		}
	}

	items := make(map[entity.Position]string, len(w.Items))
	for _, it := range w.Items {
		if !bounds.Contains(it.Position) {
			return fmt.Errorf("item %s at %v: %w", it.Name, it.Position, ErrOutOfBounds)
		}
		if other, ok := blocked[it.Position]; ok && other != "player" {
			return fmt.Errorf("item %s at %v with %s: %w", it.Name, it.Position, other, ErrOverlap)
		}
		if other, ok := items[it.Position]; ok {
			return fmt.Errorf("item %s at %v with item %s: %w", it.Name, it.Position, other, ErrOverlap)
		}
		items[it.Position] = it.Name
	}

	return nil
}

// ApplyCatalogue fills in the glyph and colour of NPCs and items that the
// world leaves unset, matching catalogue entries by name. Either registry
// may be nil.
func (w *World) ApplyCatalogue(npcs *gamedata.NPCRegistry, items *gamedata.ItemRegistry) {
	for i := range w.NPCs {
		n := &w.NPCs[i]
		def := npcs.GetByName(n.Name)
		if def == nil {
			continue
		}
		if n.Glyph == 0 {
			n.Glyph = def.GlyphRune()
		}
		if n.Color == "" {
			n.Color = def.Color
		}
	}
	for i := range w.Items {
		it := &w.Items[i]
		def := items.ByName(it.Name)
		if def == nil {
			continue
		}
		if it.Glyph == 0 {
			it.Glyph = def.GlyphRune()
		}
		if it.Color == "" {
			it.Color = def.Color
		}
	}
}
