package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for input it does not recognise.
var ErrUnknownCommand = errors.New("unknown command")

// Kind identifies a player command.
type Kind int

const (
	MoveUp Kind = iota
	MoveDown
	MoveLeft
	MoveRight
	Interact
	Fight
	Train
	PickUp
	UseItem // Arg holds the item name
	Status
	Look
	Quests
	Quit
)

var kindNames = [...]string{
	MoveUp:    "move_up",
	MoveDown:  "move_down",
	MoveLeft:  "move_left",
	MoveRight: "move_right",
	Interact:  "interact",
	Fight:     "fight",
	Train:     "train",
	PickUp:    "pick_up",
	UseItem:   "use_item",
	Status:    "status",
	Look:      "look",
	Quests:    "quests",
	Quit:      "quit",
}

// String returns a human-readable command name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Command is one discrete input event.
type Command struct {
	Kind Kind
	Arg  string
}

// String returns the command name, with its argument if any.
func (c Command) String() string {
	if c.Arg == "" {
		return c.Kind.String()
	}
	return c.Kind.String() + " " + c.Arg
}

// ParseCommand turns a line of text into a command.
func ParseCommand(text string) (Command, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "w", "up", "north", "n":
		return Command{Kind: MoveUp}, nil
	case "s", "down", "south":
		return Command{Kind: MoveDown}, nil
	case "a", "left", "west":
		return Command{Kind: MoveLeft}, nil
	case "d", "right", "east":
		return Command{Kind: MoveRight}, nil
	case "e", "talk", "interact":
		return Command{Kind: Interact}, nil
	case "f", "fight", "attack":
		return Command{Kind: Fight}, nil
	case "t", "train":
		return Command{Kind: Train}, nil
	case "g", "get", "pickup", "take":
		return Command{Kind: PickUp}, nil
	case "u", "use":
		return Command{Kind: UseItem, Arg: arg}, nil
	case "status", "i":
		return Command{Kind: Status}, nil
	case "l", "look":
		return Command{Kind: Look}, nil
	case "quests", "journal":
		return Command{Kind: Quests}, nil
	case "q", "quit", "exit":
		return Command{Kind: Quit}, nil
	}
	return Command{}, fmt.Errorf("%q: %w", text, ErrUnknownCommand)
}
