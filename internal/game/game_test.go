package game

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/setup"
	"github.com/samdwyer/ultimaconsole/internal/world"
)

// testWorld is a 10x10 world with the player at (1,1), a Guard at (5,5),
// a wall at (3,1) and a Health Potion next to the start.
func testWorld() setup.World {
	return setup.World{
		Width:  10,
		Height: 10,
		Player: setup.PlayerSpec{Name: "Hero", Start: entity.Position{X: 1, Y: 1}},
		NPCs: []setup.NPCSpec{
			{Name: "Guard", Dialogue: "You shall not pass!", Position: entity.Position{X: 5, Y: 5}, Health: 50, Strength: 5, Quest: "gate"},
		},
		Items: []setup.ItemSpec{
			{Name: "Health Potion", Position: entity.Position{X: 1, Y: 2}},
		},
		Obstacles: []world.Rect{{X: 3, Y: 1, Width: 1, Height: 1}},
		Quests:    []setup.QuestSpec{{ID: "gate", Title: "The Guarded Gate", Description: "Find a way past the Guard."}},
	}
}

func newTestGame(t *testing.T, w setup.World) *Game {
	t.Helper()
	g, err := New(w, Config{}, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func apply(t *testing.T, g *Game, kind Kind) Outcome {
	t.Helper()
	return g.Apply(context.Background(), Command{Kind: kind})
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func TestNewRejectsInvalidWorld(t *testing.T) {
	w := testWorld()
	w.NPCs[0].Position = w.Player.Start

	if _, err := New(w, Config{}, nil, nil); !errors.Is(err, setup.ErrOverlap) {
		t.Errorf("New() error = %v, want ErrOverlap", err)
	}
}

func TestNewStartsWithWelcome(t *testing.T) {
	g := newTestGame(t, testWorld())
	snap := g.Snapshot()

	if len(snap.RecentLog) != 1 || snap.RecentLog[0] != WelcomeMessage {
		t.Errorf("RecentLog = %v, want [%q]", snap.RecentLog, WelcomeMessage)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %v, want playing", snap.State)
	}
	if got := snap.Grid.Row(1); got != ".P.#......" {
		t.Errorf("Grid.Row(1) = %q", got)
	}
	if got := snap.Grid.Row(2); got != ".*........" {
		t.Errorf("Grid.Row(2) = %q", got)
	}
	if got := snap.Grid.Row(5); got != ".....N...." {
		t.Errorf("Grid.Row(5) = %q", got)
	}
}

func TestMovement(t *testing.T) {
	g := newTestGame(t, testWorld())

	apply(t, g, MoveRight)
	if got := g.player.Position; got != (entity.Position{X: 2, Y: 1}) {
		t.Fatalf("after right: %v, want (2, 1)", got)
	}

	// Wall at (3,1)
	out := apply(t, g, MoveRight)
	if got := g.player.Position; got != (entity.Position{X: 2, Y: 1}) {
		t.Errorf("moved into wall: %v", got)
	}
	if !contains(out.Lines, "You can't go that way.") {
		t.Errorf("blocked move lines = %v", out.Lines)
	}

	apply(t, g, MoveUp)
	out = apply(t, g, MoveUp)
	if got := g.player.Position; got != (entity.Position{X: 2, Y: 0}) {
		t.Errorf("moved off the grid: %v", got)
	}
	if len(out.Lines) != 1 {
		t.Errorf("edge move lines = %v", out.Lines)
	}

	apply(t, g, MoveLeft)
	apply(t, g, MoveDown)
	if got := g.player.Position; got != (entity.Position{X: 1, Y: 1}) {
		t.Errorf("after left, down: %v, want (1, 1)", got)
	}
}

func TestMovementBlockedByNPC(t *testing.T) {
	w := testWorld()
	w.NPCs[0].Position = entity.Position{X: 1, Y: 0}
	g := newTestGame(t, w)

	apply(t, g, MoveUp)
	if got := g.player.Position; got != (entity.Position{X: 1, Y: 1}) {
		t.Errorf("moved onto NPC: %v", got)
	}
}

func TestGridTracksEntities(t *testing.T) {
	g := newTestGame(t, testWorld())

	for _, kind := range []Kind{MoveDown, MoveRight, MoveRight, MoveDown} {
		apply(t, g, kind)
	}

	pos := g.player.Position
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			tile := g.grid.At(x, y)
			isPlayer := x == pos.X && y == pos.Y
			if (tile.Kind == world.TilePlayer) != isPlayer {
				t.Errorf("tile (%d,%d) kind = %v, player at %v", x, y, tile.Kind, pos)
			}
		}
	}
	if g.grid.IsEmpty(5, 5) {
		t.Error("NPC tile reported empty")
	}
}

func TestInteractNothingNearby(t *testing.T) {
	g := newTestGame(t, testWorld())

	out := apply(t, g, Interact)
	if !contains(out.Lines, "There is no one nearby to talk to.") {
		t.Errorf("Interact lines = %v", out.Lines)
	}
	out = apply(t, g, Fight)
	if !contains(out.Lines, "There is no one nearby to fight.") {
		t.Errorf("Fight lines = %v", out.Lines)
	}
	if g.player.Health != entity.DefaultHealth {
		t.Errorf("Health = %d, want unchanged", g.player.Health)
	}
}

func TestInteractStartsQuestOnce(t *testing.T) {
	w := testWorld()
	w.NPCs[0].Position = entity.Position{X: 2, Y: 2}
	g := newTestGame(t, w)

	out := apply(t, g, Interact)
	want := []string{`Guard: "You shall not pass!"`, "Quest started: The Guarded Gate"}
	if strings.Join(out.Lines, "|") != strings.Join(want, "|") {
		t.Errorf("first Interact lines = %v, want %v", out.Lines, want)
	}

	out = apply(t, g, Interact)
	if len(out.Lines) != 1 {
		t.Errorf("second Interact lines = %v, want dialogue only", out.Lines)
	}

	out = apply(t, g, Quests)
	if !contains(out.Lines, "The Guarded Gate: Find a way past the Guard.") {
		t.Errorf("Quests lines = %v", out.Lines)
	}
	if got := len(g.Snapshot().Quests); got != 1 {
		t.Errorf("Snapshot().Quests = %d, want 1", got)
	}
}

func TestQuestsEmpty(t *testing.T) {
	g := newTestGame(t, testWorld())
	out := apply(t, g, Quests)
	if !contains(out.Lines, "You have no quests.") {
		t.Errorf("Quests lines = %v", out.Lines)
	}
}

func TestTrainExhaustsUntilMove(t *testing.T) {
	g := newTestGame(t, testWorld())

	out := apply(t, g, Train)
	if g.player.Strength != entity.DefaultStrength+1 || g.player.Agility != entity.DefaultAgility+1 {
		t.Errorf("after Train strength=%d agility=%d", g.player.Strength, g.player.Agility)
	}
	if !contains(out.Lines, "Your current status is: Exhausted") {
		t.Errorf("Train lines = %v", out.Lines)
	}

	out = apply(t, g, MoveRight)
	if g.player.Status != entity.StatusNormal {
		t.Errorf("Status after move = %v, want Normal", g.player.Status)
	}
	if !contains(out.Lines, "You feel rested.") {
		t.Errorf("move lines = %v", out.Lines)
	}
}

func TestPickUpAndUsePotion(t *testing.T) {
	g := newTestGame(t, testWorld())

	out := apply(t, g, PickUp)
	if !contains(out.Lines, "You picked up Health Potion.") {
		t.Fatalf("PickUp lines = %v", out.Lines)
	}
	if len(g.items) != 0 {
		t.Errorf("floor items = %d, want 0", len(g.items))
	}
	if got := g.Snapshot().InventoryNames(); len(got) != 1 || got[0] != "Health Potion" {
		t.Errorf("inventory = %v", got)
	}

	out = apply(t, g, PickUp)
	if !contains(out.Lines, "There is nothing here to pick up.") {
		t.Errorf("second PickUp lines = %v", out.Lines)
	}

	g.Apply(context.Background(), Command{Kind: UseItem, Arg: "Health Potion"})
	if g.player.Health != 120 {
		t.Errorf("Health = %d, want 120", g.player.Health)
	}
	if g.player.Inventory.Len() != 0 {
		t.Errorf("inventory length = %d, want 0", g.player.Inventory.Len())
	}

	out = g.Apply(context.Background(), Command{Kind: UseItem, Arg: "Health Potion"})
	if !contains(out.Lines, "You don't have a Health Potion.") {
		t.Errorf("missing item lines = %v", out.Lines)
	}
	if g.player.Health != 120 {
		t.Errorf("Health = %d, want unchanged 120", g.player.Health)
	}
}

func TestUseWithoutName(t *testing.T) {
	g := newTestGame(t, testWorld())
	out := apply(t, g, UseItem)
	if !contains(out.Lines, "Use what?") {
		t.Errorf("lines = %v", out.Lines)
	}
}

func TestStatusAndLook(t *testing.T) {
	g := newTestGame(t, testWorld())

	out := apply(t, g, Status)
	if !contains(out.Lines, "You are in good condition.") {
		t.Errorf("Status lines = %v", out.Lines)
	}
	if !contains(out.Lines, "Level 1, experience 0/100.") {
		t.Errorf("Status lines = %v", out.Lines)
	}

	apply(t, g, MoveRight)
	out = apply(t, g, Look)
	if !contains(out.Lines, "To the east: A solid wall.") {
		t.Errorf("Look lines = %v", out.Lines)
	}
	if !contains(out.Lines, "You see a Health Potion.") {
		t.Errorf("Look lines = %v", out.Lines)
	}
}

func TestRecentLogBounded(t *testing.T) {
	g, err := New(testWorld(), Config{LogCapacity: 3}, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		apply(t, g, Quests)
	}

	log := g.Snapshot().RecentLog
	if len(log) != 3 {
		t.Fatalf("RecentLog length = %d, want 3", len(log))
	}
	if log[0] == WelcomeMessage {
		t.Error("oldest line was not dropped")
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(t, testWorld())

	out := apply(t, g, Quit)
	if !out.Quit {
		t.Error("Quit outcome not flagged")
	}
	if g.State() != StateQuit {
		t.Errorf("State = %v, want quit", g.State())
	}

	out = apply(t, g, MoveRight)
	if !out.Quit || g.player.Position != (entity.Position{X: 1, Y: 1}) {
		t.Errorf("command after quit ran: %v", out)
	}
}

func TestResize(t *testing.T) {
	g := newTestGame(t, testWorld())

	if err := g.Resize(22, 14); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if g.grid.Width != 20 || g.grid.Height != 12 {
		t.Errorf("grid = %dx%d, want 20x12", g.grid.Width, g.grid.Height)
	}
	if g.player.Bounds != (entity.Bounds{Width: 20, Height: 12}) {
		t.Errorf("player bounds = %v", g.player.Bounds)
	}
	if g.grid.IsEmpty(5, 5) {
		t.Error("NPC lost after resize")
	}

	// The Guard at (5,5) does not fit in 4x4.
	if err := g.Resize(6, 6); !errors.Is(err, ErrFrameTooSmall) {
		t.Errorf("Resize() error = %v, want ErrFrameTooSmall", err)
	}
	if g.grid.Width != 20 {
		t.Errorf("grid width = %d after refused resize", g.grid.Width)
	}
}

func TestResizeKeepsObstaclesOnGrid(t *testing.T) {
	w := testWorld()
	w.NPCs, w.Quests = nil, nil
	w.Obstacles = []world.Rect{{X: 2, Y: 3, Width: 3, Height: 1}}
	g := newTestGame(t, w)

	// A 4x5 grid holds the player and potion but cuts the wall at x=4.
	if err := g.Resize(6, 7); !errors.Is(err, ErrFrameTooSmall) {
		t.Errorf("Resize() error = %v, want ErrFrameTooSmall", err)
	}
	if err := g.Resize(7, 7); err != nil {
		t.Errorf("Resize() error = %v", err)
	}
}

func TestResizeCapsHugeFrames(t *testing.T) {
	g := newTestGame(t, testWorld())

	if err := g.Resize(world.MaxDimension*4, 14); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if g.grid.Width != world.MaxDimension || g.grid.Height != 12 {
		t.Errorf("grid = %dx%d, want %dx12", g.grid.Width, g.grid.Height, world.MaxDimension)
	}
}

func TestSnapshotOverlay(t *testing.T) {
	w := testWorld()
	w.NPCs[0].Glyph = 'G'
	w.NPCs[0].Color = "#C0C0C0"
	w.Items[0].Glyph = '!'
	w.Items = append(w.Items, setup.ItemSpec{Name: "Old Coin", Position: w.Player.Start})
	g := newTestGame(t, w)

	overlay := g.Snapshot().Overlay()

	guard, ok := overlay[entity.Position{X: 5, Y: 5}]
	if !ok || guard.Glyph != 'G' || guard.Color != "#C0C0C0" {
		t.Errorf("guard marker = %+v, %v", guard, ok)
	}
	if potion := overlay[entity.Position{X: 1, Y: 2}]; potion.Glyph != '!' {
		t.Errorf("potion glyph = %q, want '!'", potion.Glyph)
	}
	if _, ok := overlay[w.Player.Start]; ok {
		t.Error("an item under the player must not be drawn over the player")
	}
	if len(overlay) != 2 {
		t.Errorf("overlay has %d markers, want 2", len(overlay))
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StatePlaying, "playing"},
		{StateDefeated, "defeated"},
		{StateQuit, "quit"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}
