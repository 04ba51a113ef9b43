package game

import (
	"context"
	"errors"
)

// ErrActorStopped is returned for requests made after the actor has stopped.
var ErrActorStopped = errors.New("game actor stopped")

// Actor owns a Game on a single goroutine so frontends running on other
// goroutines never touch game state concurrently.
type Actor struct {
	game    *Game
	reqs    chan request
	stopped chan struct{}
}

type request struct {
	fn   func(context.Context, *Game)
	ctx  context.Context
	done chan struct{}
}

// NewActor wraps g. Run must be started before any request is made.
func NewActor(g *Game) *Actor {
	return &Actor{
		game:    g,
		reqs:    make(chan request),
		stopped: make(chan struct{}),
	}
}

// Run serves requests until ctx is cancelled.
func (a *Actor) Run(ctx context.Context) error {
	defer close(a.stopped)
	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-a.reqs:
			r.fn(r.ctx, a.game)
			close(r.done)
		}
	}
}

// Exec runs fn on the actor goroutine and waits for it to finish.
func (a *Actor) Exec(ctx context.Context, fn func(context.Context, *Game)) error {
	r := request{fn: fn, ctx: ctx, done: make(chan struct{})}
	select {
	case a.reqs <- r:
	case <-a.stopped:
		return ErrActorStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	<-r.done
	return nil
}

// Do applies a command.
func (a *Actor) Do(ctx context.Context, cmd Command) (Outcome, error) {
	var out Outcome
	err := a.Exec(ctx, func(ctx context.Context, g *Game) {
		out = g.Apply(ctx, cmd)
	})
	return out, err
}

// Snapshot returns the current render snapshot.
func (a *Actor) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := a.Exec(ctx, func(_ context.Context, g *Game) {
		snap = g.Snapshot()
	})
	return snap, err
}

// Resize fits the grid to a frame of the given outer size.
func (a *Actor) Resize(ctx context.Context, frameWidth, frameHeight int) error {
	var resizeErr error
	err := a.Exec(ctx, func(_ context.Context, g *Game) {
		resizeErr = g.Resize(frameWidth, frameHeight)
	})
	if err != nil {
		return err
	}
	return resizeErr
}
