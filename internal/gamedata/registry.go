package gamedata

import (
	"errors"
	"math/rand"
)

// NPCRegistry holds loaded NPC definitions and provides spawning utilities.
type NPCRegistry struct {
	npcs        []NPCDef
	totalWeight int
}

// NewNPCRegistry creates a registry from loaded NPC definitions.
func NewNPCRegistry(npcs []NPCDef) *NPCRegistry {
	totalWeight := 0
	for _, n := range npcs {
		totalWeight += n.SpawnWeight
	}
	return &NPCRegistry{
		npcs:        npcs,
		totalWeight: totalWeight,
	}
}

// LoadNPCRegistry loads and creates a registry from the embedded npcs.json.
func LoadNPCRegistry() (*NPCRegistry, error) {
	npcs, err := LoadNPCs()
	if err != nil {
		return nil, err
	}
	if len(npcs) == 0 {
		return nil, errors.New("no NPCs loaded from npcs.json")
	}
	return NewNPCRegistry(npcs), nil
}

// SpawnRandom selects a random NPC definition using weighted probability.
func (r *NPCRegistry) SpawnRandom(rng *rand.Rand) *NPCDef {
	i := weightedIndex(rng, r.totalWeight, len(r.npcs), func(i int) int { return r.npcs[i].SpawnWeight })
	if i < 0 {
		return nil
	}
	return &r.npcs[i]
}

// GetByID returns the NPC definition with the given ID, or nil if not found.
func (r *NPCRegistry) GetByID(id string) *NPCDef {
	if r == nil {
		return nil
	}
	for i := range r.npcs {
		if r.npcs[i].ID == id {
			return &r.npcs[i]
		}
	}
	return nil
}

// GetByName returns the NPC definition with the given display name, or nil.
func (r *NPCRegistry) GetByName(name string) *NPCDef {
	if r == nil {
		return nil
	}
	for i := range r.npcs {
		if r.npcs[i].Name == name {
			return &r.npcs[i]
		}
	}
	return nil
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item definitions keyed by display name.
type ItemRegistry struct {
	byName      map[string]*ItemDef
	all         []ItemDef
	totalWeight int
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		byName: make(map[string]*ItemDef),
		all:    items,
	}
	for i := range items {
		registry.byName[items[i].Name] = &items[i]
		registry.totalWeight += items[i].SpawnWeight
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// ByName returns the item definition with the given name, or nil if not found.
func (r *ItemRegistry) ByName(name string) *ItemDef {
	if r == nil {
		return nil
	}
	return r.byName[name]
}

// Effect returns the use effect for an item name. Catalogue entries win over
// the built-in potion effects.
func (r *ItemRegistry) Effect(name string) (Effect, bool) {
	if def := r.ByName(name); def != nil {
		return def.Effect, !def.Effect.IsZero()
	}
	return BuiltinEffect(name)
}

// SpawnRandom selects a random item definition using weighted probability.
func (r *ItemRegistry) SpawnRandom(rng *rand.Rand) *ItemDef {
	i := weightedIndex(rng, r.totalWeight, len(r.all), func(i int) int { return r.all[i].SpawnWeight })
	if i < 0 {
		return nil
	}
	return &r.all[i]
}

// weightedIndex picks an index in [0, n) with probability proportional to
// weight(i). Returns -1 when nothing can be picked.
func weightedIndex(rng *rand.Rand, total, n int, weight func(int) int) int {
	if total <= 0 || n == 0 {
		return -1
	}
	roll := rng.Intn(total)
	cumulative := 0
	for i := 0; i < n; i++ {
		cumulative += weight(i)
		if roll < cumulative {
			return i
		}
	}
	return 0
}
