package world

import "github.com/samdwyer/ultimaconsole/internal/entity"

// Rect is a rectangular block of cells, used for obstacle walls.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Contains returns true if the given point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Fits returns true if the whole rect lies inside a width x height grid.
// An empty rect covers no cells and always fits.
func (r Rect) Fits(width, height int) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return true
	}
	area := Rect{Width: width, Height: height}
	return area.Contains(r.X, r.Y) && area.Contains(r.X+r.Width-1, r.Y+r.Height-1)
}

// Cells returns every position covered by the rect, row by row.
func (r Rect) Cells() []entity.Position {
	if r.Width <= 0 || r.Height <= 0 {
		return nil
	}
	cells := make([]entity.Position, 0, r.Width*r.Height)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			cells = append(cells, entity.Position{X: x, Y: y})
		}
	}
	return cells
}
