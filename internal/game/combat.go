package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/ultimaconsole/internal/combat"
	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/telemetry"
)

// injuredFraction is the share of pre-fight health below which a victorious
// player comes out of combat injured.
const injuredFraction = 4

// fight resolves melee with the first NPC next to the player.
func (g *Game) fight(ctx context.Context) []string {
	i, ok := g.grid.FindNearbyNPC(g.player.Position, g.npcs)
	if !ok {
		return []string{"There is no one nearby to fight."}
	}
	npc := g.npcs[i]

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("npc", npc.Name),
		attribute.Int("npc_health", npc.Health),
		attribute.Int("player_health", g.player.Health),
	)
	span.End()

	before := g.player.Health
	lines := []string{fmt.Sprintf("You attack %s!", npc.Name)}
	g.player.SetStatus(entity.StatusInCombat)

	result, err := combat.Resolve(ctx, g.player, npc)
	if err != nil {
		g.player.SetStatus(entity.StatusNormal)
		if errors.Is(err, combat.ErrStalemate) {
			return append(lines, "Neither of you can hurt the other.")
		}
		g.logger.Warn("combat refused", "npc", npc.Name, "err", err)
		return append(lines, "The fight cannot begin.")
	}
	lines = append(lines, result.Log...)

	if g.player.IsDefeated() {
		g.state = StateDefeated
		g.endCombat(ctx, "defeat", result)
		return append(lines, g.player.SetStatus(entity.StatusInjured), "You have been defeated.")
	}

	g.endCombat(ctx, "victory", result)
	gained, err := g.player.GainExperience(g.cfg.KillExperience)
	if err != nil {
		g.logger.Error("experience grant failed", "err", err)
	}
	lines = append(lines, gained...)

	after := entity.StatusNormal
	if g.player.Health < before/injuredFraction {
		after = entity.StatusInjured
	}
	return append(lines, g.player.SetStatus(after))
}

// endCombat records the outcome and removes defeated NPCs from play.
func (g *Game) endCombat(ctx context.Context, outcome string, result combat.Result) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("rounds", result.Rounds),
		attribute.Int("player_health_remaining", g.player.Health),
	)
	span.End()

	g.removeDeadNPCs()
	g.logger.Info("combat finished", "outcome", outcome, "rounds", result.Rounds)
}

// removeDeadNPCs drops defeated NPCs from the game.
func (g *Game) removeDeadNPCs() {
	alive := make([]*entity.NPC, 0, len(g.npcs))
	for _, n := range g.npcs {
		if n.IsAlive() {
			alive = append(alive, n)
		}
	}
	g.npcs = alive
}
