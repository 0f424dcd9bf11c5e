// Package turnover resolves the field-position consequences of a change
// of possession outside the normal down cycle (spec §4.6, component C6).
package turnover

import (
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
)

// FlipPosition converts a ball spot measured from the original possessor's
// own goal line into the new possessor's frame: 100 - spot, clamped to
// [1,99]. A spot of 100 (the goal line itself) becomes a touchback-depth
// recovery at the 1, never 0 or negative.
func FlipPosition(spot int) int {
	flipped := 100 - spot
	if flipped < 1 {
		flipped = 1
	}
	if flipped > 99 {
		flipped = 99
	}
	return flipped
}

// Fumble resolves a fumble at ballPosition (the offense's frame). The
// defense recovers at tables.FumbleRecoveryDefenseRate; otherwise the
// offense retains it at the spot of the fumble with zero return yards.
// A defensive recovery may be returned for a touchdown at
// tables.FumbleTDRate.
func Fumble(r *rng.RNG, possessing model.Side, ballPosition int, defenseRecoveryRate, tdRate float64) model.TurnoverResult {
	if !r.Probability(defenseRecoveryRate) {
		return model.TurnoverResult{
			Kind:        model.TurnoverFumbleRecovery,
			RecoveredBy: possessing,
			ReturnYards: 0,
		}
	}

	recoveredBy := possessing.Opponent()
	if r.Probability(tdRate) {
		return model.TurnoverResult{
			Kind:          model.TurnoverFumble,
			RecoveredBy:   recoveredBy,
			ReturnedForTD: true,
		}
	}
	ret := r.Gaussian(4, 6, true, 0, true, 30)
	return model.TurnoverResult{
		Kind:        model.TurnoverFumble,
		RecoveredBy: recoveredBy,
		ReturnYards: int(ret),
	}
}

// Interception resolves a pass intercepted at ballPosition (the passing
// offense's frame). Return yards are Gaussian(12,10) clamped to [0,80];
// pickSixRate governs the chance the interception is instead returned
// all the way for a touchdown with no intermediate return-yards figure.
func Interception(r *rng.RNG, possessing model.Side, pickSixRate float64) model.TurnoverResult {
	recoveredBy := possessing.Opponent()
	if r.Probability(pickSixRate) {
		return model.TurnoverResult{
			Kind:          model.TurnoverInterception,
			RecoveredBy:   recoveredBy,
			ReturnedForTD: true,
		}
	}
	ret := r.Gaussian(12, 10, true, 0, true, 80)
	return model.TurnoverResult{
		Kind:        model.TurnoverInterception,
		RecoveredBy: recoveredBy,
		ReturnYards: int(ret),
	}
}

// OnDowns resolves a failed 4th-down conversion: possession flips at the
// current spot with no return yardage.
func OnDowns(possessing model.Side) model.TurnoverResult {
	return model.TurnoverResult{
		Kind:        model.TurnoverOnDowns,
		RecoveredBy: possessing.Opponent(),
		ReturnYards: 0,
	}
}

// MuffedPunt resolves a muffed punt recovered by the receiving team's
// opponent (the original punting team) at the spot of the muff, with no
// additional return.
func MuffedPunt(puntingSide model.Side) model.TurnoverResult {
	return model.TurnoverResult{
		Kind:        model.TurnoverMuffedPunt,
		RecoveredBy: puntingSide,
		ReturnYards: 0,
	}
}

// NewBallPosition applies a TurnoverResult to the pre-turnover ball
// position (in the original possessor's frame) and returns the new
// position in the new possessor's frame, along with whether the return
// itself reached the end zone. priorPossessionSpot is where the ball was
// before any return yardage is added (e.g. the spot of a fumble, or the
// line of scrimmage for an interception return that starts upfield of
// the passer — callers pass the return's own starting spot).
func NewBallPosition(priorPossessionSpot, returnYards int, returnedForTD bool) (int, bool) {
	if returnedForTD {
		return 100, true
	}
	spot := FlipPosition(priorPossessionSpot) + returnYards
	if spot >= 100 {
		return 99, false // a return that reaches the goal line without ReturnedForTD set is clamped short; callers should set ReturnedForTD instead when the return yards alone cross the goal
	}
	if spot < 1 {
		spot = 1
	}
	return spot, false
}
