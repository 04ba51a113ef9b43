package world

import "github.com/samdwyer/ultimaconsole/internal/entity"

// Direction is one of the four orthogonal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "nowhere"
	}
}

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Step returns the cell one step from pos in dir, and whether that move is
// allowed: the destination must be on the grid and free of obstacles and NPCs.
// A refused move returns pos unchanged.
func (g *Grid) Step(pos entity.Position, dir Direction) (entity.Position, bool) {
	dx, dy := dir.Delta()
	if dx == 0 && dy == 0 {
		return pos, false
	}
	next := pos.Add(dx, dy)
	if !g.InBounds(next.X, next.Y) || !g.IsEmpty(next.X, next.Y) {
		return pos, false
	}
	return next, true
}
