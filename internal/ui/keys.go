package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ultimaconsole/internal/game"
)

// keyCommand maps a key press to a game command. Digit keys use the nth
// carried item. The bool is false for keys with no binding.
func keyCommand(ev *tcell.EventKey, inventory []string) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Command{Kind: game.Quit}, true
	case tcell.KeyUp:
		return game.Command{Kind: game.MoveUp}, true
	case tcell.KeyDown:
		return game.Command{Kind: game.MoveDown}, true
	case tcell.KeyLeft:
		return game.Command{Kind: game.MoveLeft}, true
	case tcell.KeyRight:
		return game.Command{Kind: game.MoveRight}, true
	case tcell.KeyRune:
	default:
		return game.Command{}, false
	}

	switch r := ev.Rune(); r {
	case 'w', 'W':
		return game.Command{Kind: game.MoveUp}, true
	case 's', 'S':
		return game.Command{Kind: game.MoveDown}, true
	case 'a', 'A':
		return game.Command{Kind: game.MoveLeft}, true
	case 'd', 'D':
		return game.Command{Kind: game.MoveRight}, true
	case 'e', 'E':
		return game.Command{Kind: game.Interact}, true
	case 'f', 'F':
		return game.Command{Kind: game.Fight}, true
	case 't', 'T':
		return game.Command{Kind: game.Train}, true
	case 'g', 'G':
		return game.Command{Kind: game.PickUp}, true
	case 'i', 'I':
		return game.Command{Kind: game.Status}, true
	case 'l', 'L':
		return game.Command{Kind: game.Look}, true
	case 'j', 'J':
		return game.Command{Kind: game.Quests}, true
	case 'q', 'Q':
		return game.Command{Kind: game.Quit}, true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		i := int(r - '1')
		if i >= len(inventory) {
			return game.Command{Kind: game.UseItem}, true
		}
		return game.Command{Kind: game.UseItem, Arg: inventory[i]}, true
	}
	return game.Command{}, false
}
