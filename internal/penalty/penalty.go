// Package penalty rolls and enforces penalties (spec §4.5, component C5):
// table filtering by play context, weighted selection by frequency,
// offense/defense/coinflip side classification, offending-player
// selection, and accept/decline enforcement against the play result.
package penalty

import (
	"fmt"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
	"github.com/proofplay/gridiron/internal/simerr"
	"github.com/proofplay/gridiron/internal/tables"
)

// eligible filters the committed penalty table down to the entries that
// can occur given the play's context.
func eligible(isPass, isSpecialTeams, isPreSnap bool) []tables.PenaltyMeta {
	var out []tables.PenaltyMeta
	for _, p := range tables.Penalties() {
		if p.PreSnap != isPreSnap {
			continue
		}
		if p.PassOnly && !isPass {
			continue
		}
		if p.SpecialTeamsOnly && !isSpecialTeams {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Roll decides whether a penalty occurs on this play and, if so, which
// one and on which side. possessing is the actual offense for this play;
// offenseRoster/defenseRoster are its roster and the defense's roster,
// respectively. It returns (nil, nil) when no penalty is drawn.
func Roll(r *rng.RNG, isPass, isSpecialTeams, isPreSnap bool, possessing model.Side, offenseRoster, defenseRoster model.Roster) (*model.PenaltyResult, error) {
	if !r.Probability(tables.PenaltyRate()) {
		return nil, nil
	}

	candidates := eligible(isPass, isSpecialTeams, isPreSnap)
	if len(candidates) == 0 {
		return nil, nil
	}

	opts := make([]rng.WeightedOption[tables.PenaltyMeta], len(candidates))
	for i, c := range candidates {
		opts[i] = rng.WeightedOption[tables.PenaltyMeta]{Value: c, Weight: c.FrequencyWeight}
	}
	meta, err := rng.WeightedChoice(r, opts)
	if err != nil {
		return nil, fmt.Errorf("penalty: select kind: %w", err)
	}

	side := classifySide(r, meta.SideBias, possessing)

	offender, err := pickOffender(r, meta, possessing, side, offenseRoster, defenseRoster)
	if err != nil {
		return nil, fmt.Errorf("penalty: select offender: %w", err)
	}

	return &model.PenaltyResult{
		Kind:            meta.Kind,
		CommittingSide:  side,
		OffendingPlayer: offender,
		AssessedYards:   meta.Yards,
		AutoFirstDown:   meta.AutoFirstDown,
		SpotFoul:        meta.SpotFoul,
		LossOfDown:      meta.LossOfDown,
		Description:     fmt.Sprintf("%s on %s", describeKind(meta.Kind), side),
	}, nil
}

// classifySide resolves a penalty's "offense"|"defense"|"coinflip"
// side_bias, relative to possessing, into the actual Side that committed
// the foul.
func classifySide(r *rng.RNG, bias string, possessing model.Side) model.Side {
	switch bias {
	case "offense":
		return possessing
	case "defense":
		return possessing.Opponent()
	default:
		if r.Probability(0.5) {
			return possessing
		}
		return possessing.Opponent()
	}
}

// pickOffender chooses the offending player, weighting toward the
// positions most plausibly responsible for the penalty kind (linemen for
// holding/false start/offsides, secondary for pass interference, etc.),
// falling back to a uniform pick across the committing unit.
func pickOffender(r *rng.RNG, meta tables.PenaltyMeta, possessing, committingSide model.Side, offenseRoster, defenseRoster model.Roster) (model.Player, error) {
	roster := offenseRoster
	if committingSide != possessing {
		roster = defenseRoster
	}
	if len(roster) == 0 {
		return model.Player{}, fmt.Errorf("penalty: %w", simerr.ErrEmptyRoster)
	}

	weighted := make([]rng.WeightedOption[model.Player], 0, len(roster))
	for _, p := range roster {
		weighted = append(weighted, rng.WeightedOption[model.Player]{Value: p, Weight: positionWeight(meta.Kind, p.Position)})
	}
	return rng.WeightedChoice(r, weighted)
}

func positionWeight(kind model.PenaltyKind, pos model.Position) float64 {
	heavy := map[model.PenaltyKind][]model.Position{
		model.PenaltyHolding:                {model.PositionOL},
		model.PenaltyFalseStart:             {model.PositionOL},
		model.PenaltyOffsides:               {model.PositionDL},
		model.PenaltyEncroachment:           {model.PositionDL},
		model.PenaltyDefensivePI:            {model.PositionCB, model.PositionS},
		model.PenaltyIllegalContact:         {model.PositionCB, model.PositionS},
		model.PenaltyHoldingDefense:         {model.PositionCB, model.PositionS, model.PositionLB},
		model.PenaltyOffensivePI:            {model.PositionWR, model.PositionTE},
		model.PenaltyIneligibleDownfield:    {model.PositionOL},
		model.PenaltyRoughingPasser:         {model.PositionDL, model.PositionLB},
		model.PenaltyRoughingKicker:         {model.PositionDL, model.PositionLB},
		model.PenaltyFacemask:               {model.PositionDL, model.PositionLB, model.PositionCB},
		model.PenaltyUnnecessaryRoughness:   {model.PositionDL, model.PositionLB},
		model.PenaltyChopBlock:              {model.PositionOL},
		model.PenaltyIllegalBlock:           {model.PositionWR, model.PositionRB},
	}
	for _, p := range heavy[kind] {
		if p == pos {
			return 5
		}
	}
	return 1
}

func describeKind(k model.PenaltyKind) string {
	return string(k)
}

// DecideAcceptance applies the spec's accept/decline heuristic: the
// benefiting side takes whichever of enforcement or the play's own
// result leaves the offense with more net yards, except that an
// auto-first-down penalty is always accepted outright (spec §9's
// simplification: turnovers are resolved first, then penalty accept/
// decline is layered on top of the already-resolved play, so a
// turnover on the same play does not change this comparison).
// netYardsIfAccepted is the net yardage the offense nets under
// enforcement; netYardsIfDeclined is the play's actual net yards.
func DecideAcceptance(pr *model.PenaltyResult, netYardsIfAccepted, netYardsIfDeclined int) bool {
	if pr.AutoFirstDown {
		return true
	}
	return netYardsIfAccepted > netYardsIfDeclined
}

// Enforce applies an accepted penalty to the down/distance/ball-position
// state. offenseCommitted tells Enforce which direction flat-yardage
// penalties move; spot fouls (DPI, intentional grounding) instead place
// the ball at an estimated foul spot downfield of the line of scrimmage,
// and any flat-yardage enforcement that would otherwise cross a goal
// line is capped at half the remaining distance to that goal (spec
// §4.5 step 6).
func Enforce(pr model.PenaltyResult, down, yardsToGo, ballPosition int, offenseCommitted bool) (newDown, newYardsToGo, newBallPosition int, firstDown bool) {
	sign := 1
	if offenseCommitted {
		sign = -1
	}

	switch {
	case pr.SpotFoul:
		gain := (100 - ballPosition) - 1
		if gain > 15 {
			gain = 15
		}
		if gain < 0 {
			gain = 0
		}
		newBallPosition = ballPosition + gain
	case offenseCommitted && ballPosition-pr.AssessedYards < 1:
		newBallPosition = ballPosition / 2
	case !offenseCommitted && ballPosition+pr.AssessedYards > 99:
		newBallPosition = ballPosition + (100-ballPosition)/2
	default:
		newBallPosition = ballPosition + sign*pr.AssessedYards
	}
	if newBallPosition < 1 {
		newBallPosition = 1
	}
	if newBallPosition > 99 {
		newBallPosition = 99
	}

	newYardsToGo = yardsToGo - (newBallPosition - ballPosition)
	if newYardsToGo < 1 {
		newYardsToGo = 1
	}

	newDown = down
	if pr.LossOfDown && offenseCommitted {
		newDown = down + 1
	}
	if pr.AutoFirstDown && !offenseCommitted {
		newDown = 1
		newYardsToGo = 10
		firstDown = true
	}
	if newDown > 4 {
		newDown = 4
	}
	return
}
