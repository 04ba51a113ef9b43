package game

import (
	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/world"
)

// Stats is the player summary shown by frontends.
type Stats struct {
	Name       string
	Health     int
	Mana       int
	Level      int
	Experience int
	NextLevel  int
	Strength   int
	Agility    int
	Charisma   int
	Status     entity.Status
	Position   entity.Position
}

// Marker locates an NPC or floor item on the rendered grid, with the symbol
// and colour a frontend may draw in place of the plain grid glyph.
type Marker struct {
	Name     string
	Position entity.Position
	Glyph    rune
	Color    string
}

// Snapshot is a copy of everything a frontend renders. It shares no memory
// with the game.
type Snapshot struct {
	Grid      world.Surface
	Stats     Stats
	Inventory []entity.Item
	RecentLog []string
	Quests    []entity.Quest
	NPCs      []Marker
	Items     []Marker // Items still on the floor
	State     State
}

// InventoryNames returns the carried item names in order.
func (s Snapshot) InventoryNames() []string {
	names := make([]string, len(s.Inventory))
	for i, it := range s.Inventory {
		names[i] = it.Name
	}
	return names
}

// Overlay returns the markers to draw over the grid, keyed by position. An
// NPC marker is kept only where the grid shows an NPC and an item marker
// only where it shows an item, so the grid's precedence still holds.
func (s Snapshot) Overlay() map[entity.Position]Marker {
	out := make(map[entity.Position]Marker, len(s.NPCs)+len(s.Items))
	add := func(markers []Marker, glyph rune) {
		for _, m := range markers {
			if s.glyphAt(m.Position) == glyph {
				out[m.Position] = m
			}
		}
	}
	add(s.Items, world.GlyphItem)
	add(s.NPCs, world.GlyphNPC)
	return out
}

func (s Snapshot) glyphAt(pos entity.Position) rune {
	if pos.Y < 0 || pos.Y >= len(s.Grid) || pos.X < 0 || pos.X >= len(s.Grid[pos.Y]) {
		return 0
	}
	return s.Grid[pos.Y][pos.X]
}

// Snapshot renders the current state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Grid: g.grid.Draw(p.Position, g.npcs, g.items),
		Stats: Stats{
			Name:       p.Name,
			Health:     p.Health,
			Mana:       p.Mana,
			Level:      p.Level,
			Experience: p.Experience,
			NextLevel:  p.NextLevelAt(),
			Strength:   p.Strength,
			Agility:    p.Agility,
			Charisma:   p.Charisma,
			Status:     p.Status,
			Position:   p.Position,
		},
		Inventory: p.Inventory.Items(),
		RecentLog: append([]string(nil), g.log...),
		State:     g.state,
	}
	for _, q := range g.quests {
		if q.Started {
			snap.Quests = append(snap.Quests, *q)
		}
	}
	for _, n := range g.npcs {
		snap.NPCs = append(snap.NPCs, Marker{Name: n.Name, Position: n.Position, Glyph: n.Symbol, Color: n.Color})
	}
	for _, it := range g.items {
		if pos, ok := it.Position(); ok {
			snap.Items = append(snap.Items, Marker{Name: it.Name, Position: pos, Glyph: it.Symbol, Color: it.Color})
		}
	}
	return snap
}
