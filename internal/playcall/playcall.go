// Package playcall implements the play caller's strict priority cascade
// (spec §4.2, component C7): at each level the first matching branch
// returns a PlayCall, falling through to the default distribution table.
package playcall

import (
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
)

// Select runs the full cascade and returns the chosen call.
func Select(r *rng.RNG, gs model.GameState, opponentTimeouts int) model.PlayCall {
	if gs.Kickoff {
		return kickoffState(r, gs)
	}
	if gs.PATAttempt {
		return patState(r, gs)
	}
	if call, ok := kneelState(gs, opponentTimeouts); ok {
		return call
	}
	if call, ok := spikeState(gs); ok {
		return call
	}
	if call, ok := fourthDownState(r, gs); ok {
		return call
	}
	if call, ok := twoMinuteDrillState(r, gs); ok {
		return call
	}
	if call, ok := protectLeadState(r, gs); ok {
		return call
	}
	if call, ok := redZoneState(r, gs); ok {
		return call
	}
	return defaultDistribution(r, gs)
}

func kickoffState(r *rng.RNG, gs model.GameState) model.PlayCall {
	trailingByTwoScores := gs.PossessionLead() <= -10
	if gs.Quarter == model.Q4 && trailingByTwoScores && gs.Clock < 300 {
		if r.Probability(0.30) {
			return model.PlayCall{Kind: model.CallOnsideKick}
		}
		return model.PlayCall{Kind: model.CallKickoffNormal}
	}
	if gs.Quarter == model.Q4 && gs.PossessionLead() < 0 && gs.Clock < 120 {
		if r.Probability(0.50) {
			return model.PlayCall{Kind: model.CallOnsideKick}
		}
	}
	return model.PlayCall{Kind: model.CallKickoffNormal}
}

func patState(r *rng.RNG, gs model.GameState) model.PlayCall {
	if gs.Quarter == model.Q4 {
		switch gs.PossessionLead() {
		case -2:
			return twoPointCall(r, 0.60)
		case -5:
			return twoPointCall(r, 0.55)
		}
	}
	if r.Probability(0.08) {
		return twoPointCall(r, 0.50)
	}
	return model.PlayCall{Kind: model.CallExtraPoint}
}

func twoPointCall(r *rng.RNG, passShare float64) model.PlayCall {
	if r.Probability(passShare) {
		return model.PlayCall{Kind: model.CallTwoPointPass}
	}
	return model.PlayCall{Kind: model.CallTwoPointRun}
}

// kneelState estimates whether enough clock-running kneels remain to run
// out the game: each kneel burns ~40s, and the trailing opponent's
// timeouts subtract from that margin (a timeout stops the clock, costing
// the leading team one of its kneel-downs' worth of elapsed time).
func kneelState(gs model.GameState, opponentTimeouts int) (model.PlayCall, bool) {
	lead := gs.PossessionLead()
	if gs.Quarter != model.Q4 || lead < 1 || lead > 8 || gs.Clock >= 120 {
		return model.PlayCall{}, false
	}
	effectiveClock := gs.Clock + float64(opponentTimeouts)*40
	kneelsNeeded := float64(4 - gs.Down + 1)
	if effectiveClock <= kneelsNeeded*40 {
		return model.PlayCall{Kind: model.CallKneel}, true
	}
	return model.PlayCall{}, false
}

func spikeState(gs model.GameState) (model.PlayCall, bool) {
	if (gs.Quarter == model.Q2 || gs.Quarter == model.Q4) &&
		gs.Clock <= 40 && gs.PossessionLead() <= 0 && gs.IsClockRunning {
		return model.PlayCall{Kind: model.CallSpike}, true
	}
	return model.PlayCall{}, false
}

func fourthDownState(r *rng.RNG, gs model.GameState) (model.PlayCall, bool) {
	if gs.Down != 4 {
		return model.PlayCall{}, false
	}

	pastMidfield := gs.BallPosition >= 50
	inFieldGoalRange := gs.BallPosition >= 63
	desperateClock := gs.Quarter == model.Q4 && gs.Clock < 300 && gs.PossessionLead() < 0
	noMansLand := gs.BallPosition >= 40 && gs.BallPosition <= 62

	if gs.YardsToGo <= 2 && pastMidfield {
		return goForIt(r, gs), true
	}
	if inFieldGoalRange {
		if desperateClock && gs.PossessionLead() <= -4 && gs.YardsToGo <= 5 {
			return goForIt(r, gs), true
		}
		return model.PlayCall{Kind: model.CallFieldGoal}, true
	}
	if desperateClock && (gs.YardsToGo <= 5 || noMansLand) {
		return goForIt(r, gs), true
	}
	return model.PlayCall{Kind: model.CallPunt}, true
}

func goForIt(r *rng.RNG, gs model.GameState) model.PlayCall {
	if gs.YardsToGo <= 1 {
		return weightedPick(r,
			[]model.PlayCallKind{model.CallRunInside, model.CallPassShort},
			[]float64{70, 30},
		)
	}
	if gs.YardsToGo <= 3 {
		return weightedPick(r,
			[]model.PlayCallKind{model.CallRunInside, model.CallRunOutside, model.CallPassShort, model.CallPassMedium},
			[]float64{35, 15, 30, 20},
		)
	}
	return weightedPick(r,
		[]model.PlayCallKind{model.CallPassShort, model.CallPassMedium, model.CallPassDeep, model.CallRunOutside},
		[]float64{35, 35, 20, 10},
	)
}

func twoMinuteDrillState(r *rng.RNG, gs model.GameState) (model.PlayCall, bool) {
	if (gs.Quarter != model.Q2 && gs.Quarter != model.Q4) || gs.Clock > 120 {
		return model.PlayCall{}, false
	}
	if gs.PossessionLead() >= 9 {
		return model.PlayCall{}, false
	}
	return weightedPick(r,
		[]model.PlayCallKind{model.CallPassShort, model.CallPassMedium, model.CallPassDeep, model.CallScreenPass, model.CallRunInside},
		[]float64{30, 30, 20, 15, 5},
	), true
}

func protectLeadState(r *rng.RNG, gs model.GameState) (model.PlayCall, bool) {
	if gs.Quarter != model.Q4 || gs.PossessionLead() < 10 || gs.Clock >= 300 {
		return model.PlayCall{}, false
	}
	return weightedPick(r,
		[]model.PlayCallKind{model.CallRunInside, model.CallRunOutside, model.CallPassShort},
		[]float64{45, 35, 20},
	), true
}

func redZoneState(r *rng.RNG, gs model.GameState) (model.PlayCall, bool) {
	if gs.BallPosition >= 95 {
		return weightedPick(r,
			[]model.PlayCallKind{model.CallRunInside, model.CallPassShort, model.CallRunOutside},
			[]float64{45, 35, 20},
		), true
	}
	if gs.BallPosition >= 80 {
		return weightedPick(r,
			[]model.PlayCallKind{model.CallRunInside, model.CallRunOutside, model.CallPassShort, model.CallPassMedium},
			[]float64{30, 20, 30, 20},
		), true
	}
	return model.PlayCall{}, false
}

// defaultDistribution looks up the down/distance table, applies the
// team's PlayStyle modifier to the run/pass split, renormalizes, then
// carves the run share into inside/outside and a slice of the short-pass
// share into screens (spec §4.2 step 9).
func defaultDistribution(r *rng.RNG, gs model.GameState) model.PlayCall {
	distanceBucket := distanceCategory(gs.YardsToGo)
	runShare, passShare := baseSplit(distanceBucket)

	style := gs.PossessionTeam().PlayStyle
	switch style {
	case model.StyleRunHeavy, model.StyleConservative:
		runShare += 0.10
		passShare -= 0.10
	case model.StylePassHeavy, model.StyleAggressive:
		runShare -= 0.10
		passShare += 0.10
	}
	if runShare < 0.05 {
		runShare = 0.05
	}
	if passShare < 0.05 {
		passShare = 0.05
	}
	total := runShare + passShare
	runShare /= total
	passShare /= total

	runInside := runShare * 0.55
	runOutside := runShare * 0.45

	screenShare := passShare * 0.12
	shortShare := passShare*0.45 - screenShare
	if shortShare < 0 {
		shortShare = 0
	}
	mediumShare := passShare * 0.35
	deepShare := passShare * 0.20

	return weightedPick(r,
		[]model.PlayCallKind{
			model.CallRunInside, model.CallRunOutside,
			model.CallPassShort, model.CallScreenPass, model.CallPassMedium, model.CallPassDeep,
		},
		[]float64{runInside, runOutside, shortShare, screenShare, mediumShare, deepShare},
	)
}

type distanceBucket string

const (
	distanceShort  distanceBucket = "short"  // 1-3
	distanceMedium distanceBucket = "medium" // 4-7
	distanceLong   distanceBucket = "long"   // 8+
)

func distanceCategory(yardsToGo int) distanceBucket {
	switch {
	case yardsToGo <= 3:
		return distanceShort
	case yardsToGo <= 7:
		return distanceMedium
	default:
		return distanceLong
	}
}

func baseSplit(bucket distanceBucket) (runShare, passShare float64) {
	switch bucket {
	case distanceShort:
		return 0.60, 0.40
	case distanceMedium:
		return 0.45, 0.55
	default:
		return 0.25, 0.75
	}
}

func weightedPick(r *rng.RNG, kinds []model.PlayCallKind, weights []float64) model.PlayCall {
	opts := make([]rng.WeightedOption[model.PlayCallKind], len(kinds))
	for i, k := range kinds {
		opts[i] = rng.WeightedOption[model.PlayCallKind]{Value: k, Weight: weights[i]}
	}
	kind, err := rng.WeightedChoice(r, opts)
	if err != nil {
		return model.PlayCall{Kind: model.CallRunInside}
	}
	return model.PlayCall{Kind: kind}
}
