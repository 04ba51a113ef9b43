package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/ultimaconsole/internal/entity"
)

const (
	// Default grid dimensions
	DefaultWidth  = 40
	DefaultHeight = 20

	// MaxDimension caps each side of a grid.
	MaxDimension = 1024

	// frameBorder is the cells a bordered frame spends on each side.
	frameBorder = 1
)

var (
	// ErrInvalidDimensions is returned for zero or negative grid sizes.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrGridTooLarge is returned when a side exceeds MaxDimension.
	ErrGridTooLarge = errors.New("grid dimensions too large")
)

// CheckDimensions returns an error unless both sides are in 1..MaxDimension.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%dx%d exceeds %d: %w", width, height, MaxDimension, ErrGridTooLarge)
	}
	return nil
}

// Grid is a width x height matrix of tile contents. It is a view computed
// from entity positions by Refresh; entities hold the authoritative state.
type Grid struct {
	Width  int
	Height int
	tiles  [][]TileContent
}

// NewGrid creates a grid with every tile empty.
func NewGrid(width, height int) (*Grid, error) {
	tiles, err := emptyTiles(width, height)
	if err != nil {
		return nil, err
	}
	return &Grid{Width: width, Height: height, tiles: tiles}, nil
}

func emptyTiles(width, height int) ([][]TileContent, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}
	tiles := make([][]TileContent, height)
	for y := range tiles {
		tiles[y] = make([]TileContent, width)
	}
	return tiles, nil
}

// Bounds returns the grid size as entity bounds.
func (g *Grid) Bounds() entity.Bounds {
	return entity.Bounds{Width: g.Width, Height: g.Height}
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsEmpty returns true if the tile holds no player, NPC or obstacle.
// Out-of-bounds tiles are never empty.
func (g *Grid) IsEmpty(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.tiles[y][x].IsEmpty()
}

// At returns the tile content at the given position.
func (g *Grid) At(x, y int) TileContent {
	if !g.InBounds(x, y) {
		return TileContent{Kind: TileObstacle}
	}
	return g.tiles[y][x]
}

// Describe returns the terrain description of a tile.
func (g *Grid) Describe(x, y int) string {
	if !g.InBounds(x, y) {
		return "The edge of the world."
	}
	return g.tiles[y][x].Describe()
}

// Resize replaces the grid with an all-empty grid of the given size.
// Placed markers are lost until the next Refresh.
func (g *Grid) Resize(width, height int) error {
	tiles, err := emptyTiles(width, height)
	if err != nil {
		return err
	}
	g.Width, g.Height, g.tiles = width, height, tiles
	return nil
}

// FrameSize returns the grid size that fits inside a bordered frame of the
// given outer size, capped at MaxDimension per side.
func FrameSize(frameWidth, frameHeight int) (width, height int) {
	return min(frameWidth-2*frameBorder, MaxDimension), min(frameHeight-2*frameBorder, MaxDimension)
}

// ResizeToFrame resizes the grid to FrameSize(frameWidth, frameHeight).
func (g *Grid) ResizeToFrame(frameWidth, frameHeight int) error {
	return g.Resize(FrameSize(frameWidth, frameHeight))
}

// Refresh clears the grid and projects obstacles, NPCs and the player onto it.
// Obstacle cells outside the grid are ignored.
func (g *Grid) Refresh(player entity.Position, npcs []*entity.NPC, obstacles []Rect) {
	for y := range g.tiles {
		for x := range g.tiles[y] {
			g.tiles[y][x] = Empty
		}
	}

	for _, r := range obstacles {
		for _, c := range r.Cells() {
			if g.InBounds(c.X, c.Y) {
				g.tiles[c.Y][c.X] = TileContent{Kind: TileObstacle}
			}
		}
	}

	for i, n := range npcs {
		if g.InBounds(n.Position.X, n.Position.Y) {
			g.tiles[n.Position.Y][n.Position.X] = TileContent{Kind: TileNPC, NPC: i}
		}
	}

	if g.InBounds(player.X, player.Y) {
		g.tiles[player.Y][player.X] = TileContent{Kind: TilePlayer}
	}
}

// FindNearbyNPC returns the index of the first NPC within one cell of pos,
// diagonals included.
func (g *Grid) FindNearbyNPC(pos entity.Position, npcs []*entity.NPC) (int, bool) {
	for i, n := range npcs {
		if pos.Adjacent(n.Position) {
			return i, true
		}
	}
	return -1, false
}

// FindNearbyItem returns the index of the first on-grid item within one cell of pos.
func (g *Grid) FindNearbyItem(pos entity.Position, items []*entity.Item) (int, bool) {
	for i, item := range items {
		if p, ok := item.Position(); ok && pos.Adjacent(p) {
			return i, true
		}
	}
	return -1, false
}

// Surface is a rendered character grid, one rune per tile.
type Surface [][]rune

// Row returns row y as a string.
func (s Surface) Row(y int) string {
	if y < 0 || y >= len(s) {
		return ""
	}
	return string(s[y])
}

// String joins all rows with newlines.
func (s Surface) String() string {
	var b strings.Builder
	for y, row := range s {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// Draw renders the grid's obstacles plus the given items, NPCs and player.
// Precedence from highest: player, NPC, obstacle, item, empty.
func (g *Grid) Draw(player entity.Position, npcs []*entity.NPC, items []*entity.Item) Surface {
	surface := make(Surface, g.Height)
	for y := range surface {
		surface[y] = make([]rune, g.Width)
		for x := range surface[y] {
			if g.tiles[y][x].Kind == TileObstacle {
				surface[y][x] = GlyphObstacle
			} else {
				surface[y][x] = GlyphEmpty
			}
		}
	}

	for _, item := range items {
		if p, ok := item.Position(); ok && g.InBounds(p.X, p.Y) && surface[p.Y][p.X] == GlyphEmpty {
			surface[p.Y][p.X] = GlyphItem
		}
	}
	for _, n := range npcs {
		if g.InBounds(n.Position.X, n.Position.Y) {
			surface[n.Position.Y][n.Position.X] = GlyphNPC
		}
	}
	if g.InBounds(player.X, player.Y) {
		surface[player.Y][player.X] = GlyphPlayer
	}

	return surface
}
