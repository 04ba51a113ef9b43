package world

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/ultimaconsole/internal/entity"
)

func mustGrid(t *testing.T, width, height int) *Grid {
	t.Helper()
	g, err := NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error = %v", width, height, err)
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g := mustGrid(t, 10, 10)

	if g.Width != 10 || g.Height != 10 {
		t.Errorf("size = %dx%d, want 10x10", g.Width, g.Height)
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) != Empty {
				t.Fatalf("tile (%d,%d) = %+v, want empty", x, y, g.At(x, y))
			}
		}
	}
}

func TestNewGridRejectsDegenerateSizes(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {0, 0}} {
		_, err := NewGrid(size[0], size[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", size[0], size[1], err)
		}
	}
}

func TestNewGridRejectsHugeSizes(t *testing.T) {
	for _, size := range [][2]int{{MaxDimension + 1, 10}, {10, MaxDimension + 1}, {1e9, 1e9}} {
		_, err := NewGrid(size[0], size[1])
		if !errors.Is(err, ErrGridTooLarge) {
			t.Errorf("NewGrid(%d, %d) error = %v, want ErrGridTooLarge", size[0], size[1], err)
		}
	}
	if _, err := NewGrid(MaxDimension, MaxDimension); err != nil {
		t.Errorf("NewGrid(MaxDimension, MaxDimension) error = %v", err)
	}
}

func TestInBounds(t *testing.T) {
	g := mustGrid(t, 5, 3)

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 2, true},
		{5, 0, false},
		{0, 3, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		if got := g.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRefreshProjectsEntities(t *testing.T) {
	g := mustGrid(t, 8, 8)
	npcs := []*entity.NPC{
		entity.NewNPC("Guard", "", entity.Position{X: 5, Y: 5}, 50, 5),
		entity.NewNPC("Merchant", "", entity.Position{X: 2, Y: 6}, 20, 1),
	}
	walls := []Rect{{X: 0, Y: 0, Width: 3, Height: 1}}

	g.Refresh(entity.Position{X: 1, Y: 1}, npcs, walls)

	if g.At(1, 1).Kind != TilePlayer {
		t.Errorf("player tile = %+v", g.At(1, 1))
	}
	if got := g.At(2, 6); got.Kind != TileNPC || got.NPC != 1 {
		t.Errorf("merchant tile = %+v, want NPC index 1", got)
	}
	for x := 0; x < 3; x++ {
		if g.At(x, 0).Kind != TileObstacle {
			t.Errorf("wall tile (%d,0) = %+v", x, g.At(x, 0))
		}
		if g.IsEmpty(x, 0) {
			t.Errorf("IsEmpty(%d, 0) = true for obstacle", x)
		}
	}
	if g.IsEmpty(5, 5) || g.IsEmpty(1, 1) {
		t.Error("NPC and player tiles must not be empty")
	}
	if !g.IsEmpty(4, 4) {
		t.Error("IsEmpty(4, 4) = false, want true")
	}

	// Moving the authoritative position and refreshing clears the old tile.
	npcs[0].Position = entity.Position{X: 6, Y: 5}
	g.Refresh(entity.Position{X: 1, Y: 2}, npcs, walls)
	if !g.IsEmpty(5, 5) || !g.IsEmpty(1, 1) {
		t.Error("stale tiles remain after refresh")
	}
}

func TestStep(t *testing.T) {
	g := mustGrid(t, 5, 5)
	npcs := []*entity.NPC{entity.NewNPC("Guard", "", entity.Position{X: 2, Y: 1}, 10, 1)}
	walls := []Rect{{X: 3, Y: 2, Width: 1, Height: 1}}
	g.Refresh(entity.Position{X: 2, Y: 2}, npcs, walls)

	tests := []struct {
		name string
		from entity.Position
		dir  Direction
		want entity.Position
		ok   bool
	}{
		{"blocked by npc", entity.Position{X: 2, Y: 2}, Up, entity.Position{X: 2, Y: 2}, false},
		{"blocked by wall", entity.Position{X: 2, Y: 2}, Right, entity.Position{X: 2, Y: 2}, false},
		{"free down", entity.Position{X: 2, Y: 2}, Down, entity.Position{X: 2, Y: 3}, true},
		{"free left", entity.Position{X: 2, Y: 2}, Left, entity.Position{X: 1, Y: 2}, true},
		{"top edge", entity.Position{X: 0, Y: 0}, Up, entity.Position{X: 0, Y: 0}, false},
		{"left edge", entity.Position{X: 0, Y: 0}, Left, entity.Position{X: 0, Y: 0}, false},
		{"bottom edge", entity.Position{X: 4, Y: 4}, Down, entity.Position{X: 4, Y: 4}, false},
		{"right edge", entity.Position{X: 4, Y: 4}, Right, entity.Position{X: 4, Y: 4}, false},
	}

	for _, tt := range tests {
		got, ok := g.Step(tt.from, tt.dir)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: Step(%v, %v) = %v, %v; want %v, %v", tt.name, tt.from, tt.dir, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRandomWalkKeepsGridConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	g := mustGrid(t, 12, 9)
	npcs := []*entity.NPC{
		entity.NewNPC("A", "", entity.Position{X: 4, Y: 4}, 10, 1),
		entity.NewNPC("B", "", entity.Position{X: 8, Y: 2}, 10, 1),
	}
	walls := []Rect{{X: 6, Y: 5, Width: 3, Height: 2}}
	player := entity.Position{X: 1, Y: 1}
	g.Refresh(player, npcs, walls)

	for i := 0; i < 500; i++ {
		dir := Direction(rng.Intn(4))
		next, ok := g.Step(player, dir)
		if ok {
			if player.Distance(next) != 1 || (next.X != player.X && next.Y != player.Y) {
				t.Fatalf("step %d moved from %v to %v", i, player, next)
			}
			player = next
		} else if next != player {
			t.Fatalf("refused step %d changed position to %v", i, next)
		}
		g.Refresh(player, npcs, walls)

		if !g.InBounds(player.X, player.Y) {
			t.Fatalf("player left the grid at %v", player)
		}
		for _, w := range walls {
			if w.Contains(player.X, player.Y) {
				t.Fatalf("player walked into a wall at %v", player)
			}
		}
		players := 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.At(x, y).Kind == TilePlayer {
					players++
				}
			}
		}
		if players != 1 {
			t.Fatalf("found %d player markers after step %d", players, i)
		}
	}
}

func TestFindNearbyNPC(t *testing.T) {
	g := mustGrid(t, 10, 10)
	npcs := []*entity.NPC{
		entity.NewNPC("Far", "", entity.Position{X: 7, Y: 7}, 10, 1),
		entity.NewNPC("Diagonal", "", entity.Position{X: 4, Y: 4}, 10, 1),
		entity.NewNPC("Beside", "", entity.Position{X: 4, Y: 5}, 10, 1),
	}

	idx, ok := g.FindNearbyNPC(entity.Position{X: 5, Y: 5}, npcs)
	if !ok || idx != 1 {
		t.Errorf("FindNearbyNPC() = %d, %v; want 1, true", idx, ok)
	}

	idx, ok = g.FindNearbyNPC(entity.Position{X: 5, Y: 2}, npcs)
	if ok {
		t.Errorf("FindNearbyNPC() at distance 2 = %d, want none", idx)
	}
}

func TestFindNearbyItem(t *testing.T) {
	g := mustGrid(t, 10, 10)
	carried := entity.NewItem("Carried", 0, entity.Position{X: 1, Y: 1})
	carried.Carry()
	items := []*entity.Item{
		carried,
		entity.NewItem("Potion", 0, entity.Position{X: 2, Y: 2}),
	}

	idx, ok := g.FindNearbyItem(entity.Position{X: 1, Y: 1}, items)
	if !ok || idx != 1 {
		t.Errorf("FindNearbyItem() = %d, %v; want 1, true", idx, ok)
	}
}

func TestDraw(t *testing.T) {
	g := mustGrid(t, 5, 3)
	npcs := []*entity.NPC{entity.NewNPC("Guard", "", entity.Position{X: 3, Y: 1}, 10, 1)}
	items := []*entity.Item{
		entity.NewItem("Potion", 0, entity.Position{X: 4, Y: 2}),
		entity.NewItem("Hidden", 0, entity.Position{X: 0, Y: 0}),
	}
	walls := []Rect{{X: 0, Y: 0, Width: 1, Height: 3}}
	player := entity.Position{X: 1, Y: 1}
	g.Refresh(player, npcs, walls)

	got := g.Draw(player, npcs, items).String()
	want := "#....\n#P.N.\n#...*"
	if got != want {
		t.Errorf("Draw() =\n%s\nwant\n%s", got, want)
	}
}

func TestDrawPlayerTakesPrecedence(t *testing.T) {
	g := mustGrid(t, 3, 1)
	npcs := []*entity.NPC{entity.NewNPC("Ghost", "", entity.Position{X: 1, Y: 0}, 10, 1)}

	surface := g.Draw(entity.Position{X: 1, Y: 0}, npcs, nil)
	if surface.Row(0) != ".P." {
		t.Errorf("Draw() row = %q, want %q", surface.Row(0), ".P.")
	}
}

func TestResize(t *testing.T) {
	g := mustGrid(t, 4, 4)
	g.Refresh(entity.Position{X: 1, Y: 1}, nil, nil)

	if err := g.Resize(6, 3); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if g.Width != 6 || g.Height != 3 {
		t.Errorf("size = %dx%d, want 6x3", g.Width, g.Height)
	}
	if !g.IsEmpty(1, 1) {
		t.Error("Resize() should drop placed markers")
	}

	if err := g.ResizeToFrame(12, 7); err != nil {
		t.Fatalf("ResizeToFrame() error = %v", err)
	}
	if g.Width != 10 || g.Height != 5 {
		t.Errorf("size after ResizeToFrame = %dx%d, want 10x5", g.Width, g.Height)
	}

	if err := g.ResizeToFrame(MaxDimension+50, 7); err != nil || g.Width != MaxDimension {
		t.Errorf("ResizeToFrame() over the cap = %dx%d, %v; want width %d", g.Width, g.Height, err, MaxDimension)
	}

	if err := g.ResizeToFrame(2, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("ResizeToFrame(2, 2) error = %v, want ErrInvalidDimensions", err)
	}
	if g.Width != MaxDimension {
		t.Error("failed resize must keep the previous grid")
	}
}

func TestRectCells(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 2, Height: 2}
	cells := r.Cells()
	if len(cells) != 4 {
		t.Fatalf("Cells() = %d cells, want 4", len(cells))
	}
	if cells[0] != (entity.Position{X: 1, Y: 2}) || cells[3] != (entity.Position{X: 2, Y: 3}) {
		t.Errorf("Cells() = %v", cells)
	}
}

func TestRectFits(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"inside", Rect{X: 1, Y: 1, Width: 2, Height: 2}, true},
		{"touches far corner", Rect{X: 3, Y: 2, Width: 2, Height: 2}, true},
		{"past right edge", Rect{X: 4, Y: 0, Width: 2, Height: 1}, false},
		{"past bottom edge", Rect{X: 0, Y: 3, Width: 1, Height: 2}, false},
		{"negative origin", Rect{X: -1, Y: 0, Width: 2, Height: 1}, false},
		{"empty", Rect{X: 99, Y: 99}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Fits(5, 4); got != tt.want {
				t.Errorf("Fits(5, 4) = %v, want %v", got, tt.want)
			}
		})
	}
}
