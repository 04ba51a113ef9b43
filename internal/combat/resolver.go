// Package combat provides the deterministic melee resolver.
package combat

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/ultimaconsole/internal/telemetry"
)

// Combatant is the interface for any entity that can fight in melee.
// Both the player and NPCs implement this interface.
type Combatant interface {
	GetName() string
	GetHealth() int
	GetStrength() int
	TakeDamage(amount int) int // Returns damage dealt
}

var (
	// ErrCombatantDown is returned when a side enters combat with no health left.
	ErrCombatantDown = errors.New("combatant has no health left")
	// ErrStalemate is returned when neither side can deal damage.
	ErrStalemate = errors.New("neither combatant can deal damage")
)

// Phase is the resolver state.
type Phase int

const (
	// PhaseExchanging - blows are still being traded
	PhaseExchanging Phase = iota
	// PhaseResolved - one side has been defeated
	PhaseResolved
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseExchanging:
		return "exchanging"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Side identifies one of the two combatants.
type Side int

const (
	SidePlayer Side = iota
	SideNPC
)

// String returns the side name.
func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "npc"
}

// Event is a single blow landed during combat.
type Event struct {
	Round          int
	Attacker       Side
	Damage         int
	DefenderHealth int // Defender health after the blow
}

// Result is the outcome of a finished combat.
type Result struct {
	Events []Event
	Rounds int
	Winner Side
	Loser  Side
	Log    []string
}

// Resolver trades blows between a player and an NPC until one falls.
// The player always strikes first in each round; there is no randomness.
type Resolver struct {
	player Combatant
	npc    Combatant
	phase  Phase
	round  int
	next   Side
	result Result
}

// NewResolver validates both combatants and returns a resolver ready to run.
func NewResolver(player, npc Combatant) (*Resolver, error) {
	if player.GetHealth() <= 0 {
		return nil, fmt.Errorf("%s: %w", player.GetName(), ErrCombatantDown)
	}
	if npc.GetHealth() <= 0 {
		return nil, fmt.Errorf("%s: %w", npc.GetName(), ErrCombatantDown)
	}
	if player.GetStrength() <= 0 && npc.GetStrength() <= 0 {
		return nil, ErrStalemate
	}
	return &Resolver{
		player: player,
		npc:    npc,
		phase:  PhaseExchanging,
		round:  1,
		next:   SidePlayer,
	}, nil
}

// Phase returns the current resolver state.
func (r *Resolver) Phase() Phase {
	return r.phase
}

// Step lands a single blow. It returns false once combat is resolved.
func (r *Resolver) Step() bool {
	if r.phase == PhaseResolved {
		return false
	}

	attacker, defender := r.player, r.npc
	if r.next == SideNPC {
		attacker, defender = r.npc, r.player
	}

	// Negative strength never heals the defender.
	damage := defender.TakeDamage(max(attacker.GetStrength(), 0))
	r.result.Events = append(r.result.Events, Event{
		Round:          r.round,
		Attacker:       r.next,
		Damage:         damage,
		DefenderHealth: defender.GetHealth(),
	})

	if r.next == SidePlayer {
		r.result.Log = append(r.result.Log, fmt.Sprintf("You dealt %d damage to the NPC!", damage))
	} else {
		r.result.Log = append(r.result.Log, fmt.Sprintf("The NPC dealt %d damage to you!", damage))
	}

	if defender.GetHealth() <= 0 {
		r.resolve(r.next)
		return false
	}

	if r.next == SidePlayer {
		r.next = SideNPC
	} else {
		r.next = SidePlayer
		r.round++
	}
	return true
}

// resolve records the winner and moves to PhaseResolved.
func (r *Resolver) resolve(winner Side) {
	r.phase = PhaseResolved
	r.result.Rounds = r.round
	r.result.Winner = winner
	if winner == SidePlayer {
		r.result.Loser = SideNPC
		r.result.Log = append(r.result.Log, "You defeated the NPC!")
	} else {
		r.result.Loser = SidePlayer
		r.result.Log = append(r.result.Log, "You were defeated by the NPC!")
	}
}

// Run steps until combat is resolved and returns the result.
func (r *Resolver) Run(ctx context.Context) Result {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.resolve")
	defer span.End()

	for r.Step() {
	}

	span.SetAttributes(
		attribute.String("npc", r.npc.GetName()),
		attribute.String("winner", r.result.Winner.String()),
		attribute.Int("rounds", r.result.Rounds),
		attribute.Int("player_health_remaining", r.player.GetHealth()),
	)
	return r.result
}

// Resolve runs a full combat between player and npc.
func Resolve(ctx context.Context, player, npc Combatant) (Result, error) {
	r, err := NewResolver(player, npc)
	if err != nil {
		return Result{}, err
	}
	return r.Run(ctx), nil
}
