package setup

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/gamedata"
	"github.com/samdwyer/ultimaconsole/internal/world"
)

const (
	// DefaultPlayerName is used when no name is configured.
	DefaultPlayerName = "Hero"

	// placementAttempts bounds random searches for a free cell.
	placementAttempts = 100

	// cellsPerObstacle sets obstacle density for generated worlds.
	cellsPerObstacle = 150
)

// Options controls the generated default world.
type Options struct {
	Width      int
	Height     int
	PlayerName string
	NPCCount   int
	ItemCount  int
}

// Default builds a world with the player at (1,1), the Guard at (5,5) and a
// handful of obstacles, NPCs and items at random free cells. The same rng
// seed produces the same world.
func Default(opts Options, npcs *gamedata.NPCRegistry, items *gamedata.ItemRegistry, rng *rand.Rand) (World, error) {
	w := World{
		Width:  opts.Width,
		Height: opts.Height,
		Player: PlayerSpec{Name: opts.PlayerName, Start: entity.Position{X: 1, Y: 1}},
		Quests: []QuestSpec{{
			ID:          "gate",
			Title:       "The Guarded Gate",
			Description: "Find a way past the Guard.",
		}},
	}
	if w.Player.Name == "" {
		w.Player.Name = DefaultPlayerName
	}
	if err := world.CheckDimensions(w.Width, w.Height); err != nil {
		return w, fmt.Errorf("world: %w", err)
	}

	p := newPlacer(w.Width, w.Height, rng)
	if !p.bounds.Contains(w.Player.Start) {
		w.Player.Start = entity.Position{}
	}
	p.take(w.Player.Start)

	// Keep the cells around the start open so the player is never boxed in.
	for _, c := range (world.Rect{X: w.Player.Start.X - 1, Y: w.Player.Start.Y - 1, Width: 3, Height: 3}).Cells() {
		p.reserve(c)
	}

	guard := entity.Position{X: 5, Y: 5}
	if p.free(guard) {
		p.take(guard)
		spec := NPCSpec{
			Name:     "Guard",
			Dialogue: "You shall not pass!",
			Position: guard,
			Health:   50,
			Strength: 5,
			Quest:    "gate",
		}
		if def := npcs.GetByID("guard"); def != nil {
			spec.Glyph = def.GlyphRune()
			spec.Color = def.Color
		}
		w.NPCs = append(w.NPCs, spec)
	}

	for i := 0; i < (w.Width*w.Height)/cellsPerObstacle; i++ {
		rect := world.Rect{Width: 1 + rng.Intn(3), Height: 1 + rng.Intn(2)}
		if rect.Width >= w.Width || rect.Height >= w.Height {
			continue
		}
		rect.X = rng.Intn(w.Width - rect.Width + 1)
		rect.Y = rng.Intn(w.Height - rect.Height + 1)
		if p.takeRect(rect) {
			w.Obstacles = append(w.Obstacles, rect)
		}
	}

	for i := 0; i < opts.NPCCount && npcs != nil; i++ {
		def := npcs.SpawnRandom(rng)
		pos, ok := p.random()
		if def == nil || !ok {
			break
		}
		p.take(pos)
		w.NPCs = append(w.NPCs, NPCSpec{
			Name:     def.Name,
			Dialogue: def.Dialogue,
			Position: pos,
			Health:   def.Health,
			Strength: def.Strength,
			Glyph:    def.GlyphRune(),
			Color:    def.Color,
		})
	}

	for i := 0; i < opts.ItemCount && items != nil; i++ {
		def := items.SpawnRandom(rng)
		pos, ok := p.random()
		if def == nil || !ok {
			break
		}
		p.take(pos)
		w.Items = append(w.Items, ItemSpec{
			Name:     def.Name,
			Position: pos,
			Value:    def.Value,
			Glyph:    def.GlyphRune(),
			Color:    def.Color,
		})
	}

	return w, w.Validate()
}

// placer tracks occupied cells while a world is generated.
type placer struct {
	bounds   entity.Bounds
	taken    map[entity.Position]bool
	reserved map[entity.Position]bool
	rng      *rand.Rand
}

func newPlacer(width, height int, rng *rand.Rand) *placer {
	return &placer{
		bounds:   entity.Bounds{Width: width, Height: height},
		taken:    make(map[entity.Position]bool),
		reserved: make(map[entity.Position]bool),
		rng:      rng,
	}
}

func (p *placer) free(pos entity.Position) bool {
	return p.bounds.Contains(pos) && !p.taken[pos] && !p.reserved[pos]
}

func (p *placer) take(pos entity.Position) { p.taken[pos] = true }

func (p *placer) reserve(pos entity.Position) { p.reserved[pos] = true }

// takeRect claims every cell of r, or nothing if any cell is unavailable.
func (p *placer) takeRect(r world.Rect) bool {
	cells := r.Cells()
	for _, c := range cells {
		if !p.free(c) {
			return false
		}
	}
	for _, c := range cells {
		p.take(c)
	}
	return true
}

// random returns a free cell, trying random points first and then
// scanning row by row.
func (p *placer) random() (entity.Position, bool) {
	for i := 0; i < placementAttempts; i++ {
		pos := entity.Position{X: p.rng.Intn(p.bounds.Width), Y: p.rng.Intn(p.bounds.Height)}
		if p.free(pos) {
			return pos, true
		}
	}
	for y := 0; y < p.bounds.Height; y++ {
		for x := 0; x < p.bounds.Width; x++ {
			if pos := (entity.Position{X: x, Y: y}); p.free(pos) {
				return pos, true
			}
		}
	}
	return entity.Position{}, false
}
