// Package world provides the tile grid and spatial queries.
package world

// TileKind is what occupies a single grid cell.
type TileKind int

const (
	TileEmpty TileKind = iota
	TilePlayer
	TileNPC
	TileObstacle
)

// Display glyphs, one per cell.
const (
	GlyphEmpty    = '.'
	GlyphPlayer   = 'P'
	GlyphNPC      = 'N'
	GlyphObstacle = '#'
	GlyphItem     = '*'
)

// TileContent is the projected content of a cell. For TileNPC, NPC holds the
// index of the NPC in the collection the grid was refreshed from; the grid
// never owns the NPC itself.
type TileContent struct {
	Kind TileKind
	NPC  int
}

// Empty is the content of an unoccupied tile.
var Empty = TileContent{Kind: TileEmpty}

// IsEmpty returns true if nothing blocks the tile.
func (t TileContent) IsEmpty() bool {
	return t.Kind == TileEmpty
}

// Describe returns the terrain text for the tile.
func (t TileContent) Describe() string {
	switch t.Kind {
	case TileObstacle:
		return "A solid wall."
	case TileNPC:
		return "Someone is standing here."
	default:
		return "An empty lot."
	}
}
