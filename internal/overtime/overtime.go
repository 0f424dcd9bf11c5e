// Package overtime implements the sudden-death rule (spec §4.3, §4.11,
// component C15): any unequal score in OT ends the game, and there is no
// guaranteed possession for the second team.
package overtime

import "github.com/proofplay/gridiron/internal/model"

// ShouldEnterOvertime reports whether Q4 ending tied should start OT.
func ShouldEnterOvertime(q model.Quarter, clock float64, homeScore, awayScore int) bool {
	return q == model.Q4 && clock <= 0 && homeScore == awayScore
}

// ShouldEndGame reports whether the OT period's end condition is met.
// Regular-season OT may end in a tie when the clock runs out; playoff OT
// (gt.IsPlayoff()) continues — the engine starts a fresh OT period
// instead of calling ShouldEndGame true.
func ShouldEndGame(gt model.GameType, q model.Quarter, clock float64, homeScore, awayScore int) bool {
	if q != model.OT {
		return false
	}
	if homeScore != awayScore {
		return true // sudden death: any score in OT not immediately tied ends it
	}
	if clock > 0 {
		return false
	}
	// Clock expired, scores level: regular season can end tied; playoffs continue.
	return !gt.IsPlayoff()
}

// InitialState returns the possession and ball position for the opening
// of an OT period. The simulator has no coin toss: the away side always
// starts with the ball at its own 25, and no OT kickoff is played.
func InitialState() (receiver model.Side, ballPosition int) {
	return model.Away, 25
}
