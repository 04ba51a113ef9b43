package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("reading embedded file %s: %w", filename, err)
	}

	return decode[T](filename, content)
}

// Parse unmarshals JSON content supplied by the caller, e.g. a catalogue
// override read from disk.
func Parse[T any](content []byte) (T, error) {
	return decode[T]("catalogue", content)
}

func decode[T any](name string, content []byte) (T, error) {
	var result T
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parsing JSON from %s: %w", name, err)
	}
	return result, nil
}
