// Package tui provides a Bubble Tea terminal UI for the game.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samdwyer/ultimaconsole/internal/game"
)

// keyMap binds keys to game commands.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Interact key.Binding
	Fight    key.Binding
	Train    key.Binding
	PickUp   key.Binding
	Use      key.Binding
	Status   key.Binding
	Look     key.Binding
	Quests   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "north")),
		Down:     key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "south")),
		Left:     key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "west")),
		Right:    key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "east")),
		Interact: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "talk")),
		Fight:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fight")),
		Train:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "train")),
		PickUp:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "get")),
		Use:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "use")),
		Status:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "status")),
		Look:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "look")),
		Quests:   key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "quests")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// help returns the short key summary for the status bar.
func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Interact, k.Fight, k.Train, k.PickUp, k.Use, k.Quit}
}

// command maps a key press to a game command. Digit keys use the nth
// carried item.
func (k keyMap) command(msg tea.KeyMsg, inventory []string) (game.Command, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return game.Command{Kind: game.MoveUp}, true
	case key.Matches(msg, k.Down):
		return game.Command{Kind: game.MoveDown}, true
	case key.Matches(msg, k.Left):
		return game.Command{Kind: game.MoveLeft}, true
	case key.Matches(msg, k.Right):
		return game.Command{Kind: game.MoveRight}, true
	case key.Matches(msg, k.Interact):
		return game.Command{Kind: game.Interact}, true
	case key.Matches(msg, k.Fight):
		return game.Command{Kind: game.Fight}, true
	case key.Matches(msg, k.Train):
		return game.Command{Kind: game.Train}, true
	case key.Matches(msg, k.PickUp):
		return game.Command{Kind: game.PickUp}, true
	case key.Matches(msg, k.Status):
		return game.Command{Kind: game.Status}, true
	case key.Matches(msg, k.Look):
		return game.Command{Kind: game.Look}, true
	case key.Matches(msg, k.Quests):
		return game.Command{Kind: game.Quests}, true
	case key.Matches(msg, k.Quit):
		return game.Command{Kind: game.Quit}, true
	case key.Matches(msg, k.Use):
		i := int(msg.Runes[0] - '1')
		if i >= len(inventory) {
			return game.Command{Kind: game.UseItem}, true
		}
		return game.Command{Kind: game.UseItem, Arg: inventory[i]}, true
	}
	return game.Command{}, false
}

// viewportKeyMap scrolls the log with page keys only; the arrows move
// the player.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
