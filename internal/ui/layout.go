package ui

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Inner returns the region inside a one-cell border.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, Width: max(r.Width-2, 0), Height: max(r.Height-2, 0)}
}

// Layout splits the terminal into the map, stats, inventory and log panels.
// The map takes 70% of the width and 80% of the height; stats and inventory
// share the right column and the log spans the bottom.
type Layout struct {
	Map       Rect
	Stats     Rect
	Inventory Rect
	Log       Rect
}

// NewLayout computes panel positions for a terminal of the given size.
func NewLayout(width, height int) Layout {
	mapWidth := width * 7 / 10
	topHeight := height * 8 / 10
	statsHeight := topHeight / 2

	return Layout{
		Map:       Rect{X: 0, Y: 0, Width: mapWidth, Height: topHeight},
		Stats:     Rect{X: mapWidth, Y: 0, Width: width - mapWidth, Height: statsHeight},
		Inventory: Rect{X: mapWidth, Y: statsHeight, Width: width - mapWidth, Height: topHeight - statsHeight},
		Log:       Rect{X: 0, Y: topHeight, Width: width, Height: height - topHeight},
	}
}
