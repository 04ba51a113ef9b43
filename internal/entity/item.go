package entity

import "github.com/google/uuid"

// Item is something the player can pick up and use. An item lying on the
// grid has a position; once carried it has none.
type Item struct {
	ID     uuid.UUID
	Name   string
	Value  int
	Symbol rune   // Display symbol
	Color  string // Hex colour, empty for the default

	pos    Position
	onGrid bool
}

// NewItem creates an item lying on the grid at pos.
func NewItem(name string, value int, pos Position) *Item {
	return &Item{
		ID:     uuid.New(),
		Name:   name,
		Value:  value,
		Symbol: '*',
		pos:    pos,
		onGrid: true,
	}
}

// Position returns the item's grid position and whether it is on the grid.
func (i *Item) Position() (Position, bool) {
	return i.pos, i.onGrid
}

// Carry drops the item's spatial meaning.
func (i *Item) Carry() {
	i.pos = Position{}
	i.onGrid = false
}
