// Package specialteams resolves kickoffs, punts, field goals, extra
// points, two-point conversions, and onside kicks (spec §4.4 special
// teams paragraph, component C4).
package specialteams

import (
	"fmt"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
	"github.com/proofplay/gridiron/internal/tables"
)

// Kickoff resolves a normal kickoff. kickingRating is accepted but does
// not affect the outcome; the touchback rate comes from the table alone.
// The receiving team's spot is returned in its own frame (so 25 is the
// standard touchback spot).
func Kickoff(r *rng.RNG, kickingRating int) (spot int, touchback bool, outOfBounds bool, returnYards int) {
	if r.Probability(tables.KickoffOOBRate()) {
		return 40, false, true, 0
	}
	if r.Probability(tables.TouchbackRate()) {
		return 25, true, false, 0
	}
	ret := r.Gaussian(22, 8, true, 0, true, 60)
	return clamp(3+int(ret), 1, 99), false, false, int(ret)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Onside resolves an onside kick attempt: whether the kicking team
// recovers it, and the resulting spot (in the recovering team's frame).
func Onside(r *rng.RNG) (kickingTeamRecovers bool, spot int) {
	if r.Probability(tables.OnsideRecoveryRate()) {
		return true, 45
	}
	return false, 45
}

// Punt resolves a punt attempt from ballPosition (punting team's frame).
// A muffed punt is reported via muffed=true; receivingSpot still carries
// the spot of the muff in the receiving team's frame, which the caller
// flips through internal/turnover for the punting team's recovery.
func Punt(r *rng.RNG, puntingRating int, ballPosition int) (muffed bool, fairCatch bool, touchback bool, receivingSpot int, returnYards int) {
	distance := int(r.Gaussian(45, 8, true, 20, true, 65))
	netSpot := 100 - ballPosition - distance

	if netSpot <= 0 {
		return false, false, true, 20, 0
	}
	if r.Probability(tables.PuntMuffedRate()) {
		return true, false, false, netSpot, 0
	}
	if r.Probability(tables.PuntFairCatchRate()) {
		return false, true, false, netSpot, 0
	}
	ret := r.Gaussian(8, 6, true, 0, true, 40)
	spot := netSpot + int(ret)
	if spot >= 100 {
		spot = 99
	}
	return false, false, false, spot, int(ret)
}

// FieldGoalDistance converts a ball position (offense's frame) into the
// attempt distance: yards to the goal line plus the 17-yard allowance for
// the snap and the end zone (spec §4.4: "distance = 100 - ballPosition + 17").
func FieldGoalDistance(ballPosition int) int {
	return 100 - ballPosition + 17
}

// FieldGoal resolves a field goal attempt. kickerRating nudges the
// table-driven base rate by up to +/-5 percentage points.
func FieldGoal(r *rng.RNG, distance, kickerRating int) (good bool) {
	base := tables.FieldGoalBaseRate(distance)
	adj := float64(kickerRating-85) * 0.002
	p := base + adj
	if p < 0.01 {
		p = 0.01
	}
	if p > 0.99 {
		p = 0.99
	}
	return r.Probability(p)
}

// ExtraPoint resolves a PAT attempt using the flat baseline rate.
func ExtraPoint(r *rng.RNG) bool {
	return r.Probability(tables.PATBaseRate())
}

// TwoPointCall picks run vs. pass for a two-point conversion attempt.
func TwoPointCall(r *rng.RNG) model.PlayCallKind {
	if r.Probability(tables.TwoPointRunShare()) {
		return model.CallTwoPointRun
	}
	return model.CallTwoPointPass
}

// TwoPointResult resolves a two-point conversion attempt's success. Run
// attempts succeed at a flat rate derived from short-yardage rushing;
// pass attempts use the short completion rate, each nudged toward the
// goal-line reality that defenses sell out against two-point tries.
func TwoPointResult(r *rng.RNG, call model.PlayCallKind) bool {
	switch call {
	case model.CallTwoPointRun:
		return r.Probability(0.55)
	case model.CallTwoPointPass:
		return r.Probability(tables.CompletionRate(model.DepthShort) - 0.05)
	default:
		panic(fmt.Sprintf("specialteams: TwoPointResult called with non-two-point call %s", call))
	}
}
