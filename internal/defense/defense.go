// Package defense selects the defensive personnel, coverage shell, and
// blitz call for a play, and derives the rate nudges those choices apply
// to the play generator (spec §4.4 defensive response, component C9).
package defense

import (
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
)

// Coverage names a pass-defense shell.
type Coverage string

const (
	CoverTwo    Coverage = "cover_2"
	CoverThree  Coverage = "cover_3"
	CoverOneMan Coverage = "cover_1_man"
	CoverZeroBlitz Coverage = "cover_0_blitz"
	Nickel      Coverage = "nickel"
	Dime        Coverage = "dime"
)

// Call bundles a defensive coverage and whether it includes a blitz.
type Call struct {
	Coverage Coverage
	Blitz    bool
}

// Select runs the defense's weighted response to the offense's call,
// leaning toward extra DBs on likely passes and toward a blitz on
// advantageous down-and-distance for the defense.
func Select(r *rng.RNG, offenseCall model.PlayCallKind, down, yardsToGo int, defenseRating int) Call {
	options := []rng.WeightedOption[Coverage]{
		{Value: CoverTwo, Weight: 25},
		{Value: CoverThree, Weight: 30},
		{Value: CoverOneMan, Weight: 15},
		{Value: Nickel, Weight: 20},
		{Value: Dime, Weight: 5},
		{Value: CoverZeroBlitz, Weight: 5},
	}
	if offenseCall.IsPass() {
		options[3].Weight += 15
		options[4].Weight += 10
	}
	if down >= 3 && yardsToGo >= 7 {
		options[4].Weight += 10
		options[5].Weight += 10
	}

	coverage, err := rng.WeightedChoice(r, options)
	if err != nil {
		coverage = CoverThree
	}

	blitz := coverage == CoverZeroBlitz
	if !blitz && down >= 3 && yardsToGo >= 7 {
		blitz = r.Probability(0.2 + float64(defenseRating-80)*0.002)
	}

	return Call{Coverage: coverage, Blitz: blitz}
}

// SackRateAdjustment returns the additive nudge a Call applies to the
// base sack rate: a blitz raises sack chance. The coverage's own effect
// on passing comes from BigPlayAdjustment.
func (c Call) SackRateAdjustment() float64 {
	if c.Blitz {
		return 0.06
	}
	return 0
}

// BigPlayAdjustment returns the nudge for blitzing and man-heavy shells
// without safety help. internal/playgen subtracts it from the pass
// completion rate; it does not change the big-play roll.
func (c Call) BigPlayAdjustment() float64 {
	switch c.Coverage {
	case CoverZeroBlitz:
		return 0.05
	case CoverOneMan:
		return 0.02
	default:
		return 0
	}
}
