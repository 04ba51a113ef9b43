package config

import (
	"fmt"
	"os"

	"github.com/samdwyer/ultimaconsole/internal/gamedata"
)

// NPCRegistry loads the NPC catalogue override, or the embedded one.
func (c Config) NPCRegistry() (*gamedata.NPCRegistry, error) {
	if c.NPCCatalogue == "" {
		return gamedata.LoadNPCRegistry()
	}
	file, err := parseFile[gamedata.NPCsFile](c.NPCCatalogue)
	if err != nil {
		return nil, err
	}
	return gamedata.NewNPCRegistry(file.NPCs), nil
}

// ItemRegistry loads the item catalogue override, or the embedded one.
func (c Config) ItemRegistry() (*gamedata.ItemRegistry, error) {
	if c.ItemCatalogue == "" {
		return gamedata.LoadItemRegistry()
	}
	file, err := parseFile[gamedata.ItemsFile](c.ItemCatalogue)
	if err != nil {
		return nil, err
	}
	return gamedata.NewItemRegistry(file.Items), nil
}

func parseFile[T any](path string) (T, error) {
	var zero T
	content, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("reading catalogue %s: %w", path, err)
	}
	v, err := gamedata.Parse[T](content)
	if err != nil {
		return zero, fmt.Errorf("catalogue %s: %w", path, err)
	}
	return v, nil
}
