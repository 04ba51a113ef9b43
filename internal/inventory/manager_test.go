package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/gamedata"
)

func newPlayer() *entity.Player {
	return entity.NewPlayer("Hero", entity.Position{X: 1, Y: 1}, entity.Bounds{Width: 10, Height: 10})
}

func TestUseHealthPotion(t *testing.T) {
	m := NewManager(nil)
	p := newPlayer()
	p.Inventory.Add(*entity.NewItem("Health Potion", 10, entity.Position{}))

	out := m.Use(p, "Health Potion")

	assert.Equal(t, Used, out.Result)
	assert.Equal(t, 120, p.Health)
	assert.Equal(t, 0, p.Inventory.Len())

	out = m.Use(p, "Health Potion")
	assert.Equal(t, NotFound, out.Result)
	assert.Equal(t, "You don't have a Health Potion.", out.Message)
	assert.Equal(t, 120, p.Health)
}

func TestUseManaPotion(t *testing.T) {
	m := NewManager(nil)
	p := newPlayer()
	p.Inventory.Add(*entity.NewItem("Mana Potion", 12, entity.Position{}))

	out := m.Use(p, "Mana Potion")

	assert.Equal(t, Used, out.Result)
	assert.Equal(t, entity.DefaultMana+15, p.Mana)
}

func TestUseItemWithoutEffect(t *testing.T) {
	registry, err := gamedata.LoadItemRegistry()
	require.NoError(t, err)
	m := NewManager(registry)
	p := newPlayer()
	p.Inventory.Add(*entity.NewItem("Old Coin", 1, entity.Position{}))

	out := m.Use(p, "Old Coin")

	assert.Equal(t, NotUseful, out.Result)
	assert.Equal(t, "The Old Coin is not useful.", out.Message)
	assert.Equal(t, entity.DefaultHealth, p.Health)
	assert.Equal(t, entity.DefaultMana, p.Mana)
	assert.Equal(t, 0, p.Inventory.Len(), "used items are consumed even without effect")
}

func TestUseConsumesFirstMatch(t *testing.T) {
	m := NewManager(nil)
	p := newPlayer()
	first := entity.NewItem("Health Potion", 10, entity.Position{})
	second := entity.NewItem("Health Potion", 99, entity.Position{})
	p.Inventory.Add(*first)
	p.Inventory.Add(*entity.NewItem("Mana Potion", 1, entity.Position{}))
	p.Inventory.Add(*second)

	out := m.Use(p, "Health Potion")

	assert.Equal(t, first.ID, out.Item.ID)
	assert.Equal(t, []string{"Mana Potion", "Health Potion"}, carried(p))
}

func TestPickUp(t *testing.T) {
	m := NewManager(nil)
	p := newPlayer()
	floor := []*entity.Item{
		entity.NewItem("Old Coin", 1, entity.Position{X: 5, Y: 5}),
		entity.NewItem("Health Potion", 10, entity.Position{X: 1, Y: 2}),
	}

	floor, out := m.PickUp(p, floor, 1)

	assert.Equal(t, PickedUp, out.Result)
	assert.Equal(t, "You picked up Health Potion.", out.Message)
	require.Len(t, floor, 1)
	assert.Equal(t, "Old Coin", floor[0].Name)
	assert.Equal(t, []string{"Health Potion"}, carried(p))

	_, onGrid := p.Inventory.Items()[0].Position()
	assert.False(t, onGrid)
}

func TestPickUpOutOfRange(t *testing.T) {
	m := NewManager(nil)
	p := newPlayer()

	floor, out := m.PickUp(p, nil, 0)

	assert.Equal(t, NotFound, out.Result)
	assert.Empty(t, floor)
	assert.Equal(t, 0, p.Inventory.Len())
}

type fixedEffects map[string]gamedata.Effect

func (f fixedEffects) Effect(name string) (gamedata.Effect, bool) {
	e, ok := f[name]
	return e, ok
}

func TestUseCustomEffectSource(t *testing.T) {
	m := NewManager(fixedEffects{
		"Tonic": {Stat: gamedata.StatStrength, Amount: 3},
		"Charm": {Stat: "luck", Amount: 1},
	})
	p := newPlayer()
	p.Inventory.Add(*entity.NewItem("Tonic", 5, entity.Position{}))
	p.Inventory.Add(*entity.NewItem("Charm", 5, entity.Position{}))

	assert.Equal(t, Used, m.Use(p, "Tonic").Result)
	assert.Equal(t, entity.DefaultStrength+3, p.Strength)

	assert.Equal(t, NotUseful, m.Use(p, "Charm").Result)
}

func carried(p *entity.Player) []string {
	var names []string
	for _, it := range p.Inventory.Items() {
		names = append(names, it.Name)
	}
	return names
}
