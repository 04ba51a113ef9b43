package ui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ultimaconsole/internal/game"
)

// Engine is the game as seen by a frontend.
type Engine interface {
	Do(ctx context.Context, cmd game.Command) (game.Outcome, error)
	Snapshot(ctx context.Context) (game.Snapshot, error)
	Resize(ctx context.Context, frameWidth, frameHeight int) error
}

// App runs the tcell frontend.
type App struct {
	screen   *Screen
	renderer *Renderer
	engine   Engine
}

// NewApp creates an app drawing to screen.
func NewApp(screen *Screen, engine Engine) *App {
	return &App{screen: screen, renderer: NewRenderer(screen), engine: engine}
}

// Run opens the terminal and plays until quit or ctx is cancelled.
func Run(ctx context.Context, engine Engine) error {
	screen, err := NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()
	return NewApp(screen, engine).Run(ctx)
}

// Run executes the main loop on an initialized screen.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, a.screen.Interrupt)
	defer stop()

	if err := a.resize(ctx); err != nil {
		return err
	}
	for ctx.Err() == nil {
		if err := a.render(ctx); err != nil {
			return err
		}

		quit, err := a.handleEvent(ctx, a.screen.PollEvent())
		if err != nil || quit {
			return err
		}
	}
	return nil
}

// handleEvent processes a single event. It reports true when the loop should end.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
		return false, a.resize(ctx)
	case *tcell.EventInterrupt:
		return ctx.Err() != nil, nil
	case nil:
		// Screen finalized.
		return true, nil
	}
	return false, nil
}

func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) (bool, error) {
	snap, err := a.engine.Snapshot(ctx)
	if err != nil {
		return true, ignoreStop(err)
	}
	cmd, ok := keyCommand(ev, snap.InventoryNames())
	if !ok {
		return false, nil
	}
	out, err := a.engine.Do(ctx, cmd)
	if err != nil {
		return true, ignoreStop(err)
	}
	return out.Quit, nil
}

// resize fits the world grid to the map panel. A refusal is already in
// the game log.
func (a *App) resize(ctx context.Context) error {
	w, h := a.screen.Size()
	layout := NewLayout(w, h)
	err := a.engine.Resize(ctx, layout.Map.Width, layout.Map.Height)
	if errors.Is(err, game.ErrFrameTooSmall) {
		return nil
	}
	return ignoreStop(err)
}

func (a *App) render(ctx context.Context) error {
	snap, err := a.engine.Snapshot(ctx)
	if err != nil {
		return ignoreStop(err)
	}
	w, h := a.screen.Size()
	a.renderer.Render(snap, NewLayout(w, h))
	return nil
}

// ignoreStop treats shutdown errors as a clean exit.
func ignoreStop(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, game.ErrActorStopped) {
		return nil
	}
	return err
}
