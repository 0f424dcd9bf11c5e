// Package injury rolls for in-game injuries and enforces the per-game cap
// (spec §4.10, component C11). The per-play roll and position-weighted
// rate multiplier follow the shape of rollForInjury in the fantasy-draft
// synthetic-data generator, adapted from a per-season to a per-play roll
// and from age bands to the high-impact-play multiplier this spec calls
// for instead.
package injury

import (
	"fmt"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
	"github.com/proofplay/gridiron/internal/simerr"
	"github.com/proofplay/gridiron/internal/tables"
)

// positionMultiplier scales the baseline per-play injury rate the same
// way rollForInjury scales its per-season rate by position: linemen and
// running backs take the most reps of contact, kickers/punters the
// least.
func positionMultiplier(pos model.Position) float64 {
	switch pos {
	case model.PositionQB:
		return 0.6
	case model.PositionRB:
		return 1.3
	case model.PositionOL, model.PositionDL:
		return 1.2
	case model.PositionWR, model.PositionTE, model.PositionCB, model.PositionS, model.PositionLB:
		return 1.0
	case model.PositionK, model.PositionP:
		return 0.2
	default:
		return 1.0
	}
}

// Roll decides whether an injury occurs on this play, and to whom, given
// the pool of players involved in the play (typically the ball carrier,
// tackler(s), and any blockers flagged by the caller). highImpact marks a
// play the spec treats as elevated risk: a big play, a sack, a violent
// collision, or a return. injuriesSoFar enforces tables.MaxInjuriesPerGame.
func Roll(r *rng.RNG, involvedHome, involvedAway []model.Player, highImpact bool, injuriesSoFar int) (*model.InjuryResult, error) {
	if injuriesSoFar >= tables.MaxInjuriesPerGame() {
		return nil, nil
	}

	base := tables.InjuryRatePerPlay()
	if highImpact {
		base *= tables.InjuryHighImpactMultiplier()
	}
	if !r.Probability(base) {
		return nil, nil
	}

	type candidate struct {
		player model.Player
		side   model.Side
	}
	var pool []candidate
	for _, p := range involvedHome {
		pool = append(pool, candidate{p, model.Home})
	}
	for _, p := range involvedAway {
		pool = append(pool, candidate{p, model.Away})
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("injury: %w", simerr.ErrEmptyRoster)
	}

	weighted := make([]rng.WeightedOption[candidate], len(pool))
	for i, c := range pool {
		w := positionMultiplier(c.player.Position)
		if c.player.InjuryProne {
			w *= 1.5
		}
		weighted[i] = rng.WeightedOption[candidate]{Value: c, Weight: w}
	}
	chosen, err := rng.WeightedChoice(r, weighted)
	if err != nil {
		return nil, fmt.Errorf("injury: select candidate: %w", err)
	}

	severity := model.InjuryQuestionable
	if r.Probability(0.3) {
		severity = model.InjuryOut
	}

	return &model.InjuryResult{
		Player:      chosen.player,
		Side:        chosen.side,
		Severity:    severity,
		Description: describeInjury(chosen.player, severity),
	}, nil
}

func describeInjury(p model.Player, sev model.InjurySeverity) string {
	if sev == model.InjuryOut {
		return fmt.Sprintf("%s is down and will not return", p.ID)
	}
	return fmt.Sprintf("%s is shaken up but questionable to return", p.ID)
}

// RemoveFromRoster returns roster with the player at the given index
// filtered out, for callers enforcing an "out" severity against future
// position lookups (spec §4.12 emergency-player fallback).
func RemoveFromRoster(roster model.Roster, index int) model.Roster {
	out := make(model.Roster, 0, len(roster))
	for _, p := range roster {
		if p.Index == index {
			continue
		}
		out = append(out, p)
	}
	return out
}
