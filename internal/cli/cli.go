// Package cli provides the plain line-based frontend and script playback.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samdwyer/ultimaconsole/internal/game"
)

// Engine is the game as seen by a frontend.
type Engine interface {
	Do(ctx context.Context, cmd game.Command) (game.Outcome, error)
	Snapshot(ctx context.Context) (game.Snapshot, error)
}

// CLI handles line-based interaction with the player.
type CLI struct {
	Engine    Engine
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI on stdin and stdout.
func New(engine Engine) *CLI {
	return &CLI{Engine: engine, In: os.Stdin, Out: os.Stdout}
}

// Run prints the opening log, then loops: prompt, input, dispatch, output.
// It returns when the player quits, input ends or ctx is cancelled. If In is
// an io.Closer it is closed when Run returns.
func (c *CLI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snap, err := c.Engine.Snapshot(ctx)
	if err != nil {
		return ignoreStop(err)
	}
	c.printLines(snap.RecentLog)

	lines := scanLines(ctx, c.In)
	for {
		c.print("> ")

		var input string
		select {
		case <-ctx.Done():
			c.printLine("")
			return nil
		case line, ok := <-lines:
			if !ok {
				c.printLine("")
				return nil
			}
			input = strings.TrimSpace(line)
		}

		// Blank lines and comments, for script files.
		if input == "" || strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		quit, err := c.handle(ctx, input)
		if err != nil || quit {
			return ignoreStop(err)
		}
	}
}

// handle runs one input line. It reports true when the game has ended.
func (c *CLI) handle(ctx context.Context, input string) (bool, error) {
	switch strings.ToLower(input) {
	case "map":
		snap, err := c.Engine.Snapshot(ctx)
		if err != nil {
			return true, err
		}
		c.printLine(snap.Grid.String())
		return false, nil
	case "inventory", "inv":
		snap, err := c.Engine.Snapshot(ctx)
		if err != nil {
			return true, err
		}
		c.printInventory(snap)
		return false, nil
	case "help", "?":
		c.printLines(helpLines)
		return false, nil
	}

	cmd, err := game.ParseCommand(input)
	if errors.Is(err, game.ErrUnknownCommand) {
		c.printLine("I don't understand that. Type help for commands.")
		return false, nil
	}

	out, err := c.Engine.Do(ctx, cmd)
	if err != nil {
		return true, err
	}
	c.printLines(out.Lines)
	return out.Quit, nil
}

var helpLines = []string{
	"Commands:",
	"  w/a/s/d or up/down/left/right  Move",
	"  e, talk                        Talk to someone nearby",
	"  f, fight                       Fight someone nearby",
	"  t, train                       Train strength and agility",
	"  g, get                         Pick up a nearby item",
	"  use <item>                     Use a carried item",
	"  status, look, quests           Check yourself and your surroundings",
	"  inventory, map                 Show your bag or the map",
	"  q, quit                        Leave the game",
}

func (c *CLI) printInventory(snap game.Snapshot) {
	if len(snap.Inventory) == 0 {
		c.printLine("You are carrying nothing.")
		return
	}
	for i, it := range snap.Inventory {
		c.printLine(fmt.Sprintf("%d. %s (%d)", i+1, it.Name, it.Value))
	}
}

// scanLines feeds lines from r into a channel so the read loop can also
// watch ctx. The channel is closed at end of input. When ctx is done a
// closable r is closed to unblock the pending read; other readers keep the
// goroutine until their next line or EOF.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	stop := func() bool { return false }
	if closer, ok := r.(io.Closer); ok {
		stop = context.AfterFunc(ctx, func() { _ = closer.Close() })
	}
	go func() {
		defer close(lines)
		defer stop()
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

// ignoreStop treats shutdown errors as a clean exit.
func ignoreStop(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, game.ErrActorStopped) {
		return nil
	}
	return err
}
