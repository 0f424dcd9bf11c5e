// Package clock manages the game clock, quarter transitions, the
// two-minute warning, halftime, and the play-clock reset policy
// (spec §4.3, component C3).
package clock

import (
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
	"github.com/proofplay/gridiron/internal/tables"
)

// ClockStopConditions bundles the inputs the union test in spec §4.3
// needs to decide whether the clock stops after a play.
type ClockStopConditions struct {
	IncompletePass       bool
	Spike                bool
	Punt                 bool
	FieldGoal            bool
	Kickoff              bool
	PAT                  bool
	TwoPoint             bool
	Scoring              bool
	Turnover             bool
	AcceptedNonOffsettingPenalty bool
	ExplicitClockStopped bool
	FirstDownInsideTwoMinutes bool // in-bounds first down inside last 2:00 of Q2/Q4
}

// ShouldStopClock implements the union in spec §4.3.
func ShouldStopClock(c ClockStopConditions) bool {
	return c.IncompletePass || c.Spike || c.Punt || c.FieldGoal || c.Kickoff ||
		c.PAT || c.TwoPoint || c.Scoring || c.Turnover ||
		c.AcceptedNonOffsettingPenalty || c.ExplicitClockStopped ||
		c.FirstDownInsideTwoMinutes
}

// ElapsedSeconds draws a play's elapsed clock time from the table row
// keyed by play kind, using the two-minute-drill row instead when
// twoMinuteDrill is true. Pre-snap penalties, PATs, and two-point
// attempts elapse 0s and never call this (the caller short-circuits).
func ElapsedSeconds(r *rng.RNG, row string, twoMinuteDrill bool) int {
	if twoMinuteDrill {
		row = "two_minute_drill"
	}
	p := tables.ClockElapsed(row)
	v := r.Gaussian(p.Mean, p.StdDev, true, 0, false, 0)
	sec := int(v)
	if sec < 0 {
		sec = 0
	}
	return sec
}

// PlayClockReset returns the play-clock value after a play (spec §4.3):
// 25 after a penalty, turnover, or score; 40 otherwise.
func PlayClockReset(penalty, turnover, scoring bool) int {
	if penalty || turnover || scoring {
		return 25
	}
	return 40
}

// AdvanceResult is what Advance computes for the engine to apply.
type AdvanceResult struct {
	NewClock          float64
	CrossedTwoMinute  bool // this play crossed >120 -> <=120 in Q2/Q4
	QuarterEnded      bool
}

// Advance reduces the clock by elapsedSeconds (only when running),
// clamping at 0, and reports whether this play crossed the two-minute
// threshold for the first time in the half (the crossing play's
// remaining time is clamped to 120, per spec §4.3).
func Advance(q model.Quarter, clock float64, elapsedSeconds int, clockWasRunning bool, alreadyWarned bool) AdvanceResult {
	if !clockWasRunning {
		return AdvanceResult{NewClock: clock}
	}

	newClock := clock - float64(elapsedSeconds)
	crossed := false

	if (q == model.Q2 || q == model.Q4) && !alreadyWarned && clock > 120 && newClock <= 120 {
		crossed = true
		newClock = 120
	}

	if newClock < 0 {
		newClock = 0
	}

	return AdvanceResult{
		NewClock:         newClock,
		CrossedTwoMinute: crossed,
		QuarterEnded:     newClock <= 0,
	}
}

// NextQuarter returns the quarter after q, and whether that transition is
// halftime (Q2 -> Q3).
func NextQuarter(q model.Quarter) (next model.Quarter, isHalftime bool) {
	switch q {
	case model.Q1:
		return model.Q2, false
	case model.Q2:
		return model.Q3, true
	case model.Q3:
		return model.Q4, false
	default:
		return model.Q4, false
	}
}
