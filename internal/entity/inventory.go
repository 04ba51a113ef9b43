package entity

// Inventory is the ordered bag of items a player carries. Duplicates are allowed.
type Inventory struct {
	items []Item
}

// Add appends an item to the end of the bag.
func (inv *Inventory) Add(item Item) {
	item.Carry()
	inv.items = append(inv.items, item)
}

// Remove takes out the first item with the given name.
func (inv *Inventory) Remove(name string) (Item, bool) {
	for i, item := range inv.items {
		if item.Name == name {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return item, true
		}
	}
	return Item{}, false
}

// Len returns the number of carried items.
func (inv *Inventory) Len() int { return len(inv.items) }

// Items returns a copy of the carried items in order.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}
