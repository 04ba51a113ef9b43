package loader

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/setup"
	"github.com/samdwyer/ultimaconsole/internal/world"
)

// Used when an NPC definition leaves health or strength out.
const (
	defaultNPCHealth   = 50
	defaultNPCStrength = 5
)

var (
	// ErrNoWorld is returned when a script never calls World.
	ErrNoWorld = errors.New("world script does not define World")
	// ErrNoPlayer is returned when a script never calls Player.
	ErrNoPlayer = errors.New("world script does not define Player")
	// ErrBadField is returned for a field that is not an integer, or a glyph
	// that is not a single character.
	ErrBadField = errors.New("invalid field value")
)

func compile(coll *collector) (setup.World, error) {
	if coll.world == nil {
		return setup.World{}, ErrNoWorld
	}
	if coll.player == nil {
		return setup.World{}, ErrNoPlayer
	}

	var f fields
	w := setup.World{
		Width:  f.integer(coll.world, "World", "width", world.DefaultWidth),
		Height: f.integer(coll.world, "World", "height", world.DefaultHeight),
		Player: setup.PlayerSpec{
			Name:  f.text(coll.player, "name", setup.DefaultPlayerName),
			Start: f.position(coll.player, "Player"),
		},
	}

	for _, q := range coll.quests {
		w.Quests = append(w.Quests, setup.QuestSpec{
			ID:          q.name,
			Title:       f.text(q.table, "title", q.name),
			Description: f.text(q.table, "description", ""),
		})
	}

	for _, n := range coll.npcs {
		what := "NPC " + n.name
		w.NPCs = append(w.NPCs, setup.NPCSpec{
			Name:     n.name,
			Dialogue: f.text(n.table, "dialogue", ""),
			Position: f.position(n.table, what),
			Health:   f.integer(n.table, what, "health", defaultNPCHealth),
			Strength: f.integer(n.table, what, "strength", defaultNPCStrength),
			Glyph:    f.glyph(n.table, what),
			Color:    f.text(n.table, "color", ""),
			Quest:    f.text(n.table, "quest", ""),
		})
	}

	for _, it := range coll.items {
		what := "Item " + it.name
		w.Items = append(w.Items, setup.ItemSpec{
			Name:     it.name,
			Position: f.position(it.table, what),
			Value:    f.integer(it.table, what, "value", 0),
			Glyph:    f.glyph(it.table, what),
			Color:    f.text(it.table, "color", ""),
		})
	}

	for i, tbl := range coll.walls {
		what := fmt.Sprintf("Wall %d", i+1)
		w.Obstacles = append(w.Obstacles, world.Rect{
			X:      f.integer(tbl, what, "x", 0),
			Y:      f.integer(tbl, what, "y", 0),
			Width:  f.integer(tbl, what, "w", 1),
			Height: f.integer(tbl, what, "h", 1),
		})
	}

	if f.err != nil {
		return setup.World{}, f.err
	}
	return w, nil
}

// fields reads typed values from Lua tables and keeps the first error.
type fields struct {
	err error
}

func (f *fields) fail(what, key string, v lua.LValue) {
	if f.err == nil {
		f.err = fmt.Errorf("%s %s = %s: %w", what, key, v.String(), ErrBadField)
	}
}

func (f *fields) position(tbl *lua.LTable, what string) entity.Position {
	return entity.Position{X: f.integer(tbl, what, "x", 0), Y: f.integer(tbl, what, "y", 0)}
}

// text returns a string field, or def if missing.
func (f *fields) text(tbl *lua.LTable, key, def string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return def
}

// integer returns an integral number field, or def if missing. Fractions,
// NaN, infinities and values past the int32 range are rejected.
func (f *fields) integer(tbl *lua.LTable, what, key string, def int) int {
	v := tbl.RawGetString(key)
	if v == lua.LNil {
		return def
	}
	n, ok := v.(lua.LNumber)
	x := float64(n)
	if !ok || x != math.Trunc(x) || x < math.MinInt32 || x > math.MaxInt32 {
		f.fail(what, key, v)
		return def
	}
	return int(x)
}

// glyph returns the single-character glyph field, or 0 if missing.
func (f *fields) glyph(tbl *lua.LTable, what string) rune {
	v := tbl.RawGetString("glyph")
	if v == lua.LNil {
		return 0
	}
	s, ok := v.(lua.LString)
	if !ok || utf8.RuneCountInString(string(s)) != 1 {
		f.fail(what, "glyph", v)
		return 0
	}
	r, _ := utf8.DecodeRuneInString(string(s))
	return r
}
