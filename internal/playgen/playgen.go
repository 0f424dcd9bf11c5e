// Package playgen resolves a PlayCall into a PlayResult: run and pass
// plays, their yardage, scoring, turnover, and fumble/interception side
// effects (spec §4.4, component C8). internal/rng is the only source of
// randomness; every draw here happens in the fixed order the spec's
// determinism contract requires.
package playgen

import (
	"fmt"

	"github.com/proofplay/gridiron/internal/clock"
	"github.com/proofplay/gridiron/internal/defense"
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
	"github.com/proofplay/gridiron/internal/tables"
	"github.com/proofplay/gridiron/internal/turnover"
)

// Context bundles everything a play needs beyond the call and state.
type Context struct {
	Offense         model.Roster
	Defense         model.Roster
	Momentum        float64 // [-100,100], positive favours home
	FormationBonus  int     // additive yards
	RunYardModifier float64 // multiplicative, from offensive formation
	DefenseCall     defense.Call
	TwoMinuteDrill  bool
}

// getPlayerByPosition returns the highest-overall-rated player at pos, or
// a synthetic emergency player if the roster has none (spec §4.12).
func getPlayerByPosition(roster model.Roster, pos model.Position) model.Player {
	best := model.EmergencyPlayer(pos)
	found := false
	for _, p := range roster {
		if p.Position != pos {
			continue
		}
		if !found || p.Overall > best.Overall {
			best = p
			found = true
		}
	}
	return best
}

// selectReceiver performs a weighted choice over WR+TE by rating.
func selectReceiver(r *rng.RNG, roster model.Roster) model.Player {
	var candidates []model.Player
	for _, p := range roster {
		if p.Position == model.PositionWR || p.Position == model.PositionTE {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return model.EmergencyPlayer(model.PositionWR)
	}
	opts := make([]rng.WeightedOption[model.Player], len(candidates))
	for i, c := range candidates {
		opts[i] = rng.WeightedOption[model.Player]{Value: c, Weight: float64(c.Overall)}
	}
	p, err := rng.WeightedChoice(r, opts)
	if err != nil {
		return model.EmergencyPlayer(model.PositionWR)
	}
	return p
}

// selectDefender performs a weighted choice over DL+LB+CB+S by rating.
func selectDefender(r *rng.RNG, roster model.Roster) model.Player {
	var candidates []model.Player
	for _, p := range roster {
		switch p.Position {
		case model.PositionDL, model.PositionLB, model.PositionCB, model.PositionS:
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return model.EmergencyPlayer(model.PositionLB)
	}
	opts := make([]rng.WeightedOption[model.Player], len(candidates))
	for i, c := range candidates {
		opts[i] = rng.WeightedOption[model.Player]{Value: c, Weight: float64(c.Overall)}
	}
	p, err := rng.WeightedChoice(r, opts)
	if err != nil {
		return model.EmergencyPlayer(model.PositionLB)
	}
	return p
}

func normalizedMomentum(m float64, possessing model.Side) float64 {
	n := m / 100
	if possessing == model.Away {
		n = -n
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ResolveRun implements the run-resolution pipeline (spec §4.4 steps 1-10).
func ResolveRun(r *rng.RNG, call model.PlayCall, gs model.GameState, offRating, defRating int, ctx Context) model.PlayResult {
	rusher := getPlayerByPosition(ctx.Offense, model.PositionRB)
	if rusher.Index == -1 {
		rusher = getPlayerByPosition(ctx.Offense, model.PositionQB)
	}

	p := tables.RunYards(call.Kind)
	base := r.Gaussian(p.Mean, p.StdDev, false, 0, false, 0)

	m := normalizedMomentum(ctx.Momentum, gs.Possession)
	yards := base * (1 + m*0.03)
	yards *= 1 + float64(offRating-defRating)/100*0.15
	yards *= 1 + float64(rusher.Overall-75)/100*0.25

	ol := averageRating(ctx.Offense, model.PositionOL)
	frontSeven := averageRating(ctx.Defense, model.PositionDL, model.PositionLB)
	yards *= 1 + (ol-frontSeven)/100*0.20

	yards += float64(ctx.FormationBonus)
	if ctx.RunYardModifier != 0 {
		yards *= 1 + ctx.RunYardModifier
	}
	if gs.YardsToGo <= 3 {
		yards += 0.6
	}

	if r.Probability(tables.BigPlayRate()) {
		minB, maxB := tables.BigPlayBonusRange()
		yards += float64(r.RandomInt(minB, maxB))
	}

	gained := clampInt(int(yards), -5, 100-gs.BallPosition)
	newPos := gs.BallPosition + gained

	result := model.PlayResult{
		Type:     model.ResultRun,
		Call:     call,
		Rusher:   &rusher,
		NetYards: gained,
	}

	if newPos >= 100 {
		result.IsTouchdown = true
		result.Scoring = &model.ScoringResult{Kind: model.ScoreTouchdown, Team: gs.Possession, Points: 6, Scorer: &rusher}
	} else if newPos <= 0 {
		result.IsSafety = true
		result.Scoring = &model.ScoringResult{Kind: model.ScoreSafety, Team: gs.Possession.Opponent(), Points: 2}
	}

	if !result.IsTouchdown {
		defender := selectDefender(r, ctx.Defense)
		result.Defender = &defender
	}

	if r.Probability(tables.FumbleRate() * 1.1) {
		fres := turnover.Fumble(r, gs.Possession, newPos, tables.FumbleRecoveryDefenseRate(), tables.FumbleTDRate())
		result.Turnover = &fres
		if fres.ReturnedForTD {
			result.Scoring = &model.ScoringResult{Kind: model.ScoreFumbleRecoveryTD, Team: fres.RecoveredBy, Points: 6}
		}
	}

	result.IsFirstDown = gained >= gs.YardsToGo && !result.IsTouchdown

	if r.Probability(tables.OutOfBoundsRate()) {
		result.IsClockStopped = true
	}

	row := "run_normal"
	result.ClockElapsed = clock.ElapsedSeconds(r, row, ctx.TwoMinuteDrill)
	result.Description = fmt.Sprintf("%s runs for %d yards", rusher.ID, gained)

	return result
}

func averageRating(roster model.Roster, positions ...model.Position) float64 {
	sum, n := 0, 0
	for _, p := range roster {
		for _, pos := range positions {
			if p.Position == pos {
				sum += p.Overall
				n++
			}
		}
	}
	if n == 0 {
		return 75
	}
	return float64(sum) / float64(n)
}

// ResolvePass implements the pass-resolution pipeline (spec §4.4 steps 1-7).
func ResolvePass(r *rng.RNG, call model.PlayCall, gs model.GameState, offRating, defRating int, ctx Context) model.PlayResult {
	qb := getPlayerByPosition(ctx.Offense, model.PositionQB)

	sackRate := tables.SackRateBase() + float64(defRating-offRating)/100*0.03
	sackRate += ctx.DefenseCall.SackRateAdjustment()
	sackRate -= float64(qb.Awareness-75) / 100 * 0.02
	if sackRate < 0.01 {
		sackRate = 0.01
	}
	if sackRate > 0.25 {
		sackRate = 0.25
	}

	if r.Probability(sackRate) {
		return resolveSack(r, call, gs, qb, ctx)
	}

	receivers := sortedReceivers(ctx.Offense)
	receiver, throwaway := progression(r, receivers, qb)

	if throwaway {
		result := model.PlayResult{
			Type:        model.ResultPassIncomplete,
			Call:        call,
			Passer:      &qb,
			Description: fmt.Sprintf("%s throws it away", qb.ID),
		}
		result.ClockElapsed = clock.ElapsedSeconds(r, "pass_incomplete", ctx.TwoMinuteDrill)
		result.IsClockStopped = true
		return result
	}

	depth := call.Kind.Depth()
	completionRate := tables.CompletionRate(depth)
	completionRate += float64(qb.Overall-75) / 100 * 0.10
	completionRate += float64(receiver.Overall-75) / 100 * 0.08
	db := averageRating(ctx.Defense, model.PositionCB, model.PositionS)
	completionRate -= (db - 75) / 100 * 0.10
	completionRate += normalizedMomentum(ctx.Momentum, gs.Possession) * 0.05
	completionRate += ctx.DefenseCall.BigPlayAdjustment() * -1
	if depth == model.DepthScreen {
		completionRate += 0.10
	}
	if completionRate < 0.15 {
		completionRate = 0.15
	}
	if completionRate > 0.95 {
		completionRate = 0.95
	}

	if r.Probability(completionRate) {
		return resolveCompletion(r, call, gs, qb, receiver, ctx)
	}
	return resolveIncompletion(r, call, gs, qb, ctx)
}

func sortedReceivers(roster model.Roster) []model.Player {
	var out []model.Player
	for _, p := range roster {
		if p.Position == model.PositionWR || p.Position == model.PositionTE {
			out = append(out, p)
		}
	}
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && out[j-1].Overall < out[j].Overall {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}

// progression walks the QB's read progression (spec §4.4 step 4): primary
// at 0.45+awareness*0.3, secondary at 0.50+awareness*0.2, checkdown at
// 0.70, else a throwaway.
func progression(r *rng.RNG, receivers []model.Player, qb model.Player) (model.Player, bool) {
	awareness := float64(qb.Awareness) / 100
	if len(receivers) > 0 && r.Probability(0.45+awareness*0.3) {
		return receivers[0], false
	}
	if len(receivers) > 1 && r.Probability(0.50+awareness*0.2) {
		return receivers[1], false
	}
	if len(receivers) > 2 && r.Probability(0.70) {
		return receivers[2], false
	}
	return model.Player{}, true
}

func resolveSack(r *rng.RNG, call model.PlayCall, gs model.GameState, qb model.Player, ctx Context) model.PlayResult {
	defender := selectDefender(r, ctx.Defense)
	sp := tables.SackYards()
	loss := r.Gaussian(sp.Mean, sp.StdDev, true, 0, false, 0)
	netYards := -int(loss)
	newPos := gs.BallPosition + netYards

	result := model.PlayResult{
		Type:        model.ResultSack,
		Call:        call,
		Passer:      &qb,
		Defender:    &defender,
		NetYards:    netYards,
		Description: fmt.Sprintf("%s sacked by %s", qb.ID, defender.ID),
	}

	if newPos <= 0 {
		result.IsSafety = true
		result.Scoring = &model.ScoringResult{Kind: model.ScoreSafety, Team: gs.Possession.Opponent(), Points: 2}
	}

	if r.Probability(tables.SackFumbleRate()) {
		fres := turnover.Fumble(r, gs.Possession, newPos, tables.FumbleRecoveryDefenseRate(), tables.FumbleTDRate())
		result.Turnover = &fres
		if fres.ReturnedForTD {
			result.Scoring = &model.ScoringResult{Kind: model.ScoreFumbleRecoveryTD, Team: fres.RecoveredBy, Points: 6}
		}
	}

	result.ClockElapsed = clock.ElapsedSeconds(r, "sack", ctx.TwoMinuteDrill)
	return result
}

func resolveCompletion(r *rng.RNG, call model.PlayCall, gs model.GameState, qb, receiver model.Player, ctx Context) model.PlayResult {
	p := tables.PassYards(call.Kind)
	base := r.Gaussian(p.Mean, p.StdDev, false, 0, false, 0)

	m := normalizedMomentum(ctx.Momentum, gs.Possession)
	yards := base * (1 + m*0.03)
	yards *= 1 + float64(gs.PossessionTeam().OffenseRating-gs.DefenseTeam().DefenseRating)/100*0.15

	if r.Probability(tables.BigPlayRate()) {
		minB, maxB := tables.BigPlayBonusRange()
		yards += float64(r.RandomInt(minB, maxB))
	}

	gained := clampInt(int(yards), 0, 100-gs.BallPosition)
	newPos := gs.BallPosition + gained

	result := model.PlayResult{
		Type:        model.ResultPassComplete,
		Call:        call,
		Passer:      &qb,
		Receiver:    &receiver,
		NetYards:    gained,
		Description: fmt.Sprintf("%s completes to %s for %d yards", qb.ID, receiver.ID, gained),
	}

	if newPos >= 100 {
		result.IsTouchdown = true
		result.Scoring = &model.ScoringResult{Kind: model.ScoreTouchdown, Team: gs.Possession, Points: 6, Scorer: &receiver}
	}

	if !result.IsTouchdown {
		defender := selectDefender(r, ctx.Defense)
		result.Defender = &defender
	}

	if r.Probability(tables.FumbleRate() * 0.8) {
		fres := turnover.Fumble(r, gs.Possession, newPos, tables.FumbleRecoveryDefenseRate(), tables.FumbleTDRate())
		result.Turnover = &fres
		if fres.ReturnedForTD {
			result.Scoring = &model.ScoringResult{Kind: model.ScoreFumbleRecoveryTD, Team: fres.RecoveredBy, Points: 6}
		}
	}

	result.IsFirstDown = gained >= gs.YardsToGo && !result.IsTouchdown

	if r.Probability(tables.OutOfBoundsRate()) {
		result.IsClockStopped = true
	}

	result.ClockElapsed = clock.ElapsedSeconds(r, string(call.Kind.Depth()), ctx.TwoMinuteDrill)
	return result
}

func resolveIncompletion(r *rng.RNG, call model.PlayCall, gs model.GameState, qb model.Player, ctx Context) model.PlayResult {
	result := model.PlayResult{
		Type:           model.ResultPassIncomplete,
		Call:           call,
		Passer:         &qb,
		IsClockStopped: true,
		Description:    fmt.Sprintf("%s's pass falls incomplete", qb.ID),
	}

	if r.Probability(tables.InterceptionRate()) {
		tres := turnover.Interception(r, gs.Possession, tables.PickSixRate())
		defender := selectDefender(r, ctx.Defense)
		result.Type = model.ResultInterception
		result.Turnover = &tres
		result.Defender = &defender
		if tres.ReturnedForTD {
			result.Scoring = &model.ScoringResult{Kind: model.ScorePickSix, Team: tres.RecoveredBy, Points: 6}
		}
	}

	result.ClockElapsed = clock.ElapsedSeconds(r, "pass_incomplete", ctx.TwoMinuteDrill)
	return result
}
