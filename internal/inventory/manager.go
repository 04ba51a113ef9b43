// Package inventory moves items between the floor and the player's bag and
// applies item effects on use.
package inventory

import (
	"fmt"

	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/gamedata"
)

// EffectSource looks up the effect of using an item by name.
type EffectSource interface {
	Effect(name string) (gamedata.Effect, bool)
}

// Result classifies what an inventory operation did.
type Result int

const (
	// PickedUp - the item moved from the floor into the bag
	PickedUp Result = iota
	// Used - the item was consumed and its effect applied
	Used
	// NotUseful - the item was consumed without any effect
	NotUseful
	// NotFound - no matching item, nothing changed
	NotFound
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case PickedUp:
		return "picked_up"
	case Used:
		return "used"
	case NotUseful:
		return "not_useful"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Outcome is the result of an inventory operation plus a log line.
type Outcome struct {
	Result  Result
	Item    entity.Item
	Message string
}

// Manager applies inventory operations to a player.
type Manager struct {
	effects EffectSource
}

// NewManager creates a manager using effects for item use. A nil source
// falls back to the built-in potion effects.
func NewManager(effects EffectSource) *Manager {
	if effects == nil {
		effects = builtinSource{}
	}
	return &Manager{effects: effects}
}

// PickUp moves floor[index] into the player's inventory and returns the
// floor collection without it.
func (m *Manager) PickUp(p *entity.Player, floor []*entity.Item, index int) ([]*entity.Item, Outcome) {
	if index < 0 || index >= len(floor) {
		return floor, Outcome{Result: NotFound, Message: "There is nothing here to pick up."}
	}

	item := floor[index]
	p.Inventory.Add(*item)
	floor = append(floor[:index], floor[index+1:]...)

	return floor, Outcome{
		Result:  PickedUp,
		Item:    *item,
		Message: fmt.Sprintf("You picked up %s.", item.Name),
	}
}

// Use consumes the first carried item called name and applies its effect.
func (m *Manager) Use(p *entity.Player, name string) Outcome {
	item, ok := p.Inventory.Remove(name)
	if !ok {
		return Outcome{Result: NotFound, Message: fmt.Sprintf("You don't have a %s.", name)}
	}

	effect, ok := m.effects.Effect(name)
	if !ok || !apply(p, effect) {
		return Outcome{
			Result:  NotUseful,
			Item:    item,
			Message: fmt.Sprintf("The %s is not useful.", name),
		}
	}

	return Outcome{
		Result:  Used,
		Item:    item,
		Message: fmt.Sprintf("You used the %s: %s +%d.", name, effect.Stat, effect.Amount),
	}
}

// apply changes the stat named by the effect. Unknown stats change nothing.
func apply(p *entity.Player, e gamedata.Effect) bool {
	switch e.Stat {
	case gamedata.StatHealth:
		p.Health += e.Amount
	case gamedata.StatMana:
		p.Mana += e.Amount
	case gamedata.StatStrength:
		p.Strength += e.Amount
	case gamedata.StatAgility:
		p.Agility += e.Amount
	case gamedata.StatCharisma:
		p.Charisma += e.Amount
	default:
		return false
	}
	return true
}

type builtinSource struct{}

func (builtinSource) Effect(name string) (gamedata.Effect, bool) {
	return gamedata.BuiltinEffect(name)
}
