package gamedata

// NPCDef defines an NPC template loaded from JSON.
type NPCDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "guard")
	Name        string `json:"name"`        // Display name (e.g., "Guard")
	Dialogue    string `json:"dialogue"`    // Line spoken on interaction
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code (e.g., "#00FF00")
	Health      int    `json:"health"`      // Starting health
	Strength    int    `json:"strength"`    // Damage per hit
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (n *NPCDef) GlyphRune() rune {
	return glyphRune(n.Glyph)
}

// NPCsFile represents the structure of npcs.json.
type NPCsFile struct {
	NPCs []NPCDef `json:"npcs"`
}

// LoadNPCs loads NPC definitions from the embedded npcs.json file.
func LoadNPCs() ([]NPCDef, error) {
	file, err := Load[NPCsFile]("npcs.json")
	if err != nil {
		return nil, err
	}
	return file.NPCs, nil
}

func glyphRune(glyph string) rune {
	for _, r := range glyph {
		return r
	}
	return '?'
}
