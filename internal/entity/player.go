package entity

import (
	"fmt"

	"github.com/samdwyer/ultimaconsole/internal/combat"
)

// Starting stats for a new player.
const (
	DefaultHealth   = 100
	DefaultMana     = 50
	DefaultStrength = 10
	DefaultAgility  = 8
	DefaultCharisma = 5
)

// Status is the player's coarse condition flag. It is informational only.
type Status int

const (
	StatusNormal Status = iota
	StatusInCombat
	StatusExhausted
	StatusInjured
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusInCombat:
		return "InCombat"
	case StatusExhausted:
		return "Exhausted"
	case StatusInjured:
		return "Injured"
	default:
		return "Unknown"
	}
}

// Describe returns the condition line shown by the status command.
func (s Status) Describe() string {
	switch s {
	case StatusNormal:
		return "You are in good condition."
	case StatusInCombat:
		return "You are in a fight!"
	case StatusExhausted:
		return "You are exhausted and need rest."
	case StatusInjured:
		return "You are hurt and you need to heal."
	default:
		return "You feel strange."
	}
}

// Bounds is the size of the map the player may walk on.
type Bounds struct {
	Width, Height int
}

// Contains reports whether pos lies inside the bounds.
func (b Bounds) Contains(pos Position) bool {
	return pos.X >= 0 && pos.X < b.Width && pos.Y >= 0 && pos.Y < b.Height
}

// Player is the single entity controlled by input commands.
type Player struct {
	Name       string
	Health     int // May go non-positive to signal defeat
	Mana       int
	Level      int
	Experience int
	Strength   int
	Agility    int
	Charisma   int
	Position   Position
	Bounds     Bounds
	Inventory  Inventory
	Status     Status
}

// NewPlayer creates a level 1 player with the default stats.
func NewPlayer(name string, start Position, bounds Bounds) *Player {
	return &Player{
		Name:     name,
		Health:   DefaultHealth,
		Mana:     DefaultMana,
		Level:    1,
		Strength: DefaultStrength,
		Agility:  DefaultAgility,
		Charisma: DefaultCharisma,
		Position: start,
		Bounds:   bounds,
		Status:   StatusNormal,
	}
}

// SetPosition moves the player to pos. Callers validate the destination.
func (p *Player) SetPosition(pos Position) {
	p.Position = pos
}

// SetStatus changes the player's status and returns a log line.
func (p *Player) SetStatus(status Status) string {
	p.Status = status
	return fmt.Sprintf("Your current status is: %s", status)
}

// Train improves strength and agility by one point each.
func (p *Player) Train() []string {
	p.Strength++
	p.Agility++
	return []string{
		"You train to improve your strength and agility.",
		fmt.Sprintf("Your strength is now %d and your agility is now %d.", p.Strength, p.Agility),
	}
}

// IsDefeated returns true once health has dropped to zero or below.
func (p *Player) IsDefeated() bool { return p.Health <= 0 }

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// GetHealth returns current health.
func (p *Player) GetHealth() int { return p.Health }

// GetStrength returns the damage dealt per hit.
func (p *Player) GetStrength() int { return p.Strength }

// TakeDamage subtracts amount from health without clamping.
func (p *Player) TakeDamage(amount int) int {
	p.Health -= amount
	return amount
}

// Ensure Player implements combat.Combatant
var _ combat.Combatant = (*Player)(nil)
