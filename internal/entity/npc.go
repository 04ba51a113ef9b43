package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/ultimaconsole/internal/combat"
)

// NPC is a non-player character placed on the grid at world setup.
// It is removed from play once its health drops to zero or below.
type NPC struct {
	ID       uuid.UUID
	Name     string
	Dialogue string
	Position Position
	Health   int
	Strength int
	Symbol   rune   // Display symbol
	Color    string // Hex colour, e.g. "#FF0000"
	QuestID  string // Quest offered on first interaction, if any
}

// NewNPC creates an NPC at the given position.
func NewNPC(name, dialogue string, pos Position, health, strength int) *NPC {
	return &NPC{
		ID:       uuid.New(),
		Name:     name,
		Dialogue: dialogue,
		Position: pos,
		Health:   health,
		Strength: strength,
		Symbol:   'N',
	}
}

// Interact returns what the NPC says when spoken to.
func (n *NPC) Interact() string {
	if n.Dialogue == "" {
		return fmt.Sprintf("%s has nothing to say.", n.Name)
	}
	return fmt.Sprintf("%s: %q", n.Name, n.Dialogue)
}

// IsAlive returns true while health is positive.
func (n *NPC) IsAlive() bool { return n.Health > 0 }

// GetName returns the NPC's name.
func (n *NPC) GetName() string { return n.Name }

// GetHealth returns current health.
func (n *NPC) GetHealth() int { return n.Health }

// GetStrength returns the damage dealt per hit.
func (n *NPC) GetStrength() int { return n.Strength }

// TakeDamage subtracts amount from health without clamping.
func (n *NPC) TakeDamage(amount int) int {
	n.Health -= amount
	return amount
}

var _ combat.Combatant = (*NPC)(nil)
