// Package entity provides the player, NPCs and items that live on the grid.
package entity

import "fmt"

// Position is a zero-based grid coordinate. Entities own their own copy.
type Position struct {
	X, Y int
}

// Add returns the position offset by the given delta.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Chebyshev distance between two positions.
func (p Position) Distance(other Position) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// Adjacent reports whether other is within one cell, diagonals included.
func (p Position) Adjacent(other Position) bool {
	return p.Distance(other) <= 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
