package gamedata

// Stats an item effect can change.
const (
	StatHealth   = "health"
	StatMana     = "mana"
	StatStrength = "strength"
	StatAgility  = "agility"
	StatCharisma = "charisma"
)

// Effect is the stat change applied when an item is used.
// A zero Effect does nothing.
type Effect struct {
	Stat   string `json:"stat"`
	Amount int    `json:"amount"`
}

// IsZero returns true for an effect that changes nothing.
func (e Effect) IsZero() bool {
	return e.Stat == "" || e.Amount == 0
}

// ItemDef defines an item template loaded from JSON.
type ItemDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph"`
	Color       string `json:"color"`
	Value       int    `json:"value"`
	Effect      Effect `json:"effect"`
	SpawnWeight int    `json:"spawnWeight"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	return glyphRune(i.Glyph)
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// builtinEffects are the potion effects that hold even without catalogue data.
var builtinEffects = map[string]Effect{
	"Health Potion": {Stat: StatHealth, Amount: 20},
	"Mana Potion":   {Stat: StatMana, Amount: 15},
}

// BuiltinEffect returns the fixed effect for a known potion name.
func BuiltinEffect(name string) (Effect, bool) {
	e, ok := builtinEffects[name]
	return e, ok
}
