// Package game owns the world state and applies player commands to it one
// at a time.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/inventory"
	"github.com/samdwyer/ultimaconsole/internal/setup"
	"github.com/samdwyer/ultimaconsole/internal/telemetry"
	"github.com/samdwyer/ultimaconsole/internal/world"
)

// WelcomeMessage is the first line of every game's log.
const WelcomeMessage = "Welcome to the world of Ultima Console!"

// ErrFrameTooSmall is returned by Resize when the world would not fit.
var ErrFrameTooSmall = errors.New("frame too small for the world")

// Outcome is what a single command did.
type Outcome struct {
	Lines []string
	Quit  bool
}

// Game holds the entire game state.
type Game struct {
	grid      *world.Grid
	player    *entity.Player
	npcs      []*entity.NPC
	items     []*entity.Item // Items lying on the grid
	obstacles []world.Rect
	quests    []*entity.Quest
	inventory *inventory.Manager
	cfg       Config
	state     State
	log       []string
	logger    *slog.Logger
}

// New creates a game from a validated world. Item effects come from effects;
// a nil source uses the built-in potions.
func New(w setup.World, cfg Config, effects inventory.EffectSource, logger *slog.Logger) (*Game, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}
	grid, err := world.NewGrid(w.Width, w.Height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Game{
		grid:      grid,
		player:    entity.NewPlayer(w.Player.Name, w.Player.Start, grid.Bounds()),
		obstacles: append([]world.Rect(nil), w.Obstacles...),
		inventory: inventory.NewManager(effects),
		cfg:       cfg.withDefaults(),
		state:     StatePlaying,
		logger:    logger,
	}

	for _, q := range w.Quests {
		g.quests = append(g.quests, &entity.Quest{ID: q.ID, Title: q.Title, Description: q.Description})
	}
	for _, n := range w.NPCs {
		npc := entity.NewNPC(n.Name, n.Dialogue, n.Position, n.Health, n.Strength)
		npc.Color = n.Color
		npc.QuestID = n.Quest
		if n.Glyph != 0 {
			npc.Symbol = n.Glyph
		}
		g.npcs = append(g.npcs, npc)
	}
	for _, it := range w.Items {
		item := entity.NewItem(it.Name, it.Value, it.Position)
		item.Color = it.Color
		if it.Glyph != 0 {
			item.Symbol = it.Glyph
		}
		g.items = append(g.items, item)
	}

	g.refresh()
	g.record([]string{WelcomeMessage})

	logger.Info("game created",
		"player", g.player.Name,
		"width", w.Width,
		"height", w.Height,
		"npcs", len(g.npcs),
		"items", len(g.items),
	)
	return g, nil
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Apply dispatches one command, refreshes the grid and appends the
// resulting lines to the recent log.
func (g *Game) Apply(ctx context.Context, cmd Command) Outcome {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.command")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", cmd.Kind.String()),
		attribute.String("state", g.state.String()),
	)

	var out Outcome
	switch {
	case g.state == StateQuit:
		out.Lines = []string{"The game is over."}
		out.Quit = true
	case !g.state.accepts(cmd.Kind):
		out.Lines = []string{"You have been defeated."}
	default:
		out = g.dispatch(ctx, cmd)
	}

	g.refresh()
	g.record(out.Lines)

	g.logger.Debug("command applied",
		"command", cmd.String(),
		"lines", len(out.Lines),
		"state", g.state.String(),
	)
	return out
}

func (g *Game) dispatch(ctx context.Context, cmd Command) Outcome {
	switch cmd.Kind {
	case MoveUp:
		return Outcome{Lines: g.move(world.Up)}
	case MoveDown:
		return Outcome{Lines: g.move(world.Down)}
	case MoveLeft:
		return Outcome{Lines: g.move(world.Left)}
	case MoveRight:
		return Outcome{Lines: g.move(world.Right)}
	case Interact:
		return Outcome{Lines: g.interact()}
	case Fight:
		return Outcome{Lines: g.fight(ctx)}
	case Train:
		return Outcome{Lines: g.train()}
	case PickUp:
		return Outcome{Lines: g.pickUp()}
	case UseItem:
		return Outcome{Lines: g.useItem(cmd.Arg)}
	case Status:
		return Outcome{Lines: g.status()}
	case Look:
		return Outcome{Lines: g.look()}
	case Quests:
		return Outcome{Lines: g.questLog()}
	case Quit:
		g.state = StateQuit
		return Outcome{Lines: []string{fmt.Sprintf("Farewell, %s.", g.player.Name)}, Quit: true}
	default:
		return Outcome{Lines: []string{"Nothing happens."}}
	}
}

// =============================================================================
// Command handlers
// =============================================================================

// move steps the player one cell. Blocked moves leave the player in place.
func (g *Game) move(dir world.Direction) []string {
	next, ok := g.grid.Step(g.player.Position, dir)
	if !ok {
		return []string{"You can't go that way."}
	}
	g.player.SetPosition(next)

	if g.player.Status == entity.StatusExhausted {
		return []string{"You feel rested.", g.player.SetStatus(entity.StatusNormal)}
	}
	return nil
}

func (g *Game) interact() []string {
	i, ok := g.grid.FindNearbyNPC(g.player.Position, g.npcs)
	if !ok {
		return []string{"There is no one nearby to talk to."}
	}

	npc := g.npcs[i]
	lines := []string{npc.Interact()}
	if q := g.quest(npc.QuestID); q != nil && !q.Started {
		lines = append(lines, q.Start())
		g.logger.Info("quest started", "quest", q.ID, "npc", npc.Name)
	}
	return lines
}

func (g *Game) train() []string {
	lines := g.player.Train()
	return append(lines, g.player.SetStatus(entity.StatusExhausted))
}

func (g *Game) pickUp() []string {
	i, ok := g.grid.FindNearbyItem(g.player.Position, g.items)
	if !ok {
		i = -1
	}
	var out inventory.Outcome
	g.items, out = g.inventory.PickUp(g.player, g.items, i)
	return []string{out.Message}
}

func (g *Game) useItem(name string) []string {
	if name == "" {
		return []string{"Use what?"}
	}
	return []string{g.inventory.Use(g.player, name).Message}
}

func (g *Game) status() []string {
	p := g.player
	return []string{
		p.Status.Describe(),
		fmt.Sprintf("Level %d, experience %d/%d.", p.Level, p.Experience, p.NextLevelAt()),
		fmt.Sprintf("Health %d, mana %d, strength %d, agility %d, charisma %d.",
			p.Health, p.Mana, p.Strength, p.Agility, p.Charisma),
	}
}

// look describes the player's surroundings.
func (g *Game) look() []string {
	pos := g.player.Position
	lines := []string{fmt.Sprintf("You stand at %s.", pos)}

	for _, dir := range []world.Direction{world.Up, world.Down, world.Left, world.Right} {
		dx, dy := dir.Delta()
		next := pos.Add(dx, dy)
		lines = append(lines, fmt.Sprintf("To the %s: %s", compass(dir), g.grid.Describe(next.X, next.Y)))
	}
	if i, ok := g.grid.FindNearbyNPC(pos, g.npcs); ok {
		lines = append(lines, fmt.Sprintf("%s is nearby.", g.npcs[i].Name))
	}
	if i, ok := g.grid.FindNearbyItem(pos, g.items); ok {
		lines = append(lines, fmt.Sprintf("You see a %s.", g.items[i].Name))
	}
	return lines
}

func compass(dir world.Direction) string {
	switch dir {
	case world.Up:
		return "north"
	case world.Down:
		return "south"
	case world.Left:
		return "west"
	default:
		return "east"
	}
}

func (g *Game) questLog() []string {
	var lines []string
	for _, q := range g.quests {
		if q.Started {
			lines = append(lines, fmt.Sprintf("%s: %s", q.Title, q.Description))
		}
	}
	if len(lines) == 0 {
		return []string{"You have no quests."}
	}
	return lines
}

func (g *Game) quest(id string) *entity.Quest {
	if id == "" {
		return nil
	}
	for _, q := range g.quests {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// =============================================================================
// Grid and log maintenance
// =============================================================================

// refresh rebuilds the grid from entity positions.
func (g *Game) refresh() {
	g.grid.Refresh(g.player.Position, g.npcs, g.obstacles)
}

// record appends lines to the recent log, dropping the oldest past capacity.
func (g *Game) record(lines []string) {
	g.log = append(g.log, lines...)
	if over := len(g.log) - g.cfg.LogCapacity; over > 0 {
		g.log = append(g.log[:0:0], g.log[over:]...)
	}
}

// Resize fits the grid to a bordered frame of the given outer size, capped
// at world.MaxDimension per side. The grid is left alone when anything in
// the world would fall outside the new size.
func (g *Game) Resize(frameWidth, frameHeight int) error {
	width, height := world.FrameSize(frameWidth, frameHeight)
	if width == g.grid.Width && height == g.grid.Height {
		return nil
	}
	if !g.fits(entity.Bounds{Width: width, Height: height}) {
		g.record([]string{"The window is too small to show the whole world."})
		return fmt.Errorf("%dx%d: %w", width, height, ErrFrameTooSmall)
	}
	if err := g.grid.ResizeToFrame(frameWidth, frameHeight); err != nil {
		return err
	}
	g.player.Bounds = g.grid.Bounds()
	g.refresh()
	return nil
}

func (g *Game) fits(b entity.Bounds) bool {
	if b.Width <= 0 || b.Height <= 0 || !b.Contains(g.player.Position) {
		return false
	}
	for _, n := range g.npcs {
		if !b.Contains(n.Position) {
			return false
		}
	}
	for _, it := range g.items {
		if pos, ok := it.Position(); ok && !b.Contains(pos) {
			return false
		}
	}
	for _, r := range g.obstacles {
		if !r.Fits(b.Width, b.Height) {
			return false
		}
	}
	return true
}
