// Package loader builds a setup.World from a Lua world script. The Lua VM is
// discarded once the script has run.
package loader

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/samdwyer/ultimaconsole/internal/setup"
)

// LoadFile runs the world script at path and returns the validated world.
func LoadFile(path string) (setup.World, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return setup.World{}, fmt.Errorf("reading world script %s: %w", path, err)
	}
	w, err := LoadString(string(src))
	if err != nil {
		return setup.World{}, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// LoadString runs a world script held in memory.
func LoadString(src string) (setup.World, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := L.DoString(src); err != nil {
		return setup.World{}, fmt.Errorf("executing world script: %w", err)
	}

	w, err := compile(coll)
	if err != nil {
		return setup.World{}, fmt.Errorf("compiling world: %w", err)
	}
	if err := w.Validate(); err != nil {
		return setup.World{}, err
	}
	return w, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the script or break determinism.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require", "module",
	} {
		L.SetGlobal(name, lua.LNil)
	}

	if tbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		tbl.RawSetString("randomseed", lua.LNil)
	}
}
