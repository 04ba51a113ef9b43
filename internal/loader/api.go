package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates definitions while the script runs.
type collector struct {
	world  *lua.LTable
	player *lua.LTable
	npcs   []named
	items  []named
	walls  []*lua.LTable
	quests []named
}

// named is a curried constructor call: Kind "name" { ... }.
type named struct {
	name  string
	table *lua.LTable
}

// registerAPI installs the world constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// World { width = 40, height = 20 }
	L.SetGlobal("World", L.NewFunction(func(L *lua.LState) int {
		coll.world = L.CheckTable(1)
		return 0
	}))

	// Player { name = "Hero", x = 1, y = 1 }
	L.SetGlobal("Player", L.NewFunction(func(L *lua.LState) int {
		coll.player = L.CheckTable(1)
		return 0
	}))

	// Wall { x = 10, y = 4, w = 3, h = 1 }
	L.SetGlobal("Wall", L.NewFunction(func(L *lua.LState) int {
		coll.walls = append(coll.walls, L.CheckTable(1))
		return 0
	}))

	L.SetGlobal("NPC", curried(L, &coll.npcs))
	L.SetGlobal("Item", curried(L, &coll.items))
	L.SetGlobal("Quest", curried(L, &coll.quests))
}

// curried returns a constructor where Kind("name") yields a function that
// takes the definition table.
func curried(L *lua.LState, into *[]named) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			*into = append(*into, named{name: name, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	})
}
