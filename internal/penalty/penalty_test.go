package penalty

import (
	"testing"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
	"github.com/proofplay/gridiron/internal/tables"
)

func newRNG(nonce uint64) *rng.RNG {
	return rng.New([]byte("server"), []byte("client"), nonce)
}

func sampleRoster(positions ...model.Position) model.Roster {
	out := make(model.Roster, len(positions))
	for i, p := range positions {
		out[i] = model.Player{Index: i, ID: string(p), Position: p, Overall: 80}
	}
	return out
}

func TestEligibleFiltersByContext(t *testing.T) {
	preSnap := eligible(false, false, true)
	for _, p := range preSnap {
		if !p.PreSnap {
			t.Fatalf("expected only pre-snap penalties, got %+v", p)
		}
	}

	passOnly := eligible(true, false, false)
	for _, p := range passOnly {
		if p.SpecialTeamsOnly {
			t.Fatalf("special-teams-only penalty leaked into a non-special-teams pass play: %+v", p)
		}
	}
}

func TestRollResultsCarryValidCommittingSide(t *testing.T) {
	r := newRNG(0)
	offense := sampleRoster(model.PositionOL, model.PositionQB)
	defense := sampleRoster(model.PositionDL, model.PositionCB)
	// Exercise many draws; this only checks the function never panics and
	// every non-nil result carries a valid committing side.
	for i := 0; i < 100; i++ {
		res, err := Roll(r, false, false, false, model.Home, offense, defense)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res != nil && res.CommittingSide != model.Home && res.CommittingSide != model.Away {
			t.Fatalf("invalid committing side: %v", res.CommittingSide)
		}
	}
}

func TestClassifySideOffenseBias(t *testing.T) {
	r := newRNG(0)
	if got := classifySide(r, "offense", model.Away); got != model.Away {
		t.Fatalf("offense bias should follow possessing side, got %v", got)
	}
}

func TestClassifySideDefenseBias(t *testing.T) {
	r := newRNG(0)
	if got := classifySide(r, "defense", model.Away); got != model.Home {
		t.Fatalf("defense bias should be possessing's opponent, got %v", got)
	}
}

func TestPickOffenderErrorsOnEmptyRoster(t *testing.T) {
	r := newRNG(0)
	meta := tables.PenaltyMeta{Kind: model.PenaltyHolding}
	_, err := pickOffender(r, meta, model.Home, model.Home, nil, sampleRoster(model.PositionCB))
	if err == nil {
		t.Fatal("expected an error selecting an offender from an empty roster")
	}
}

func TestDecideAcceptanceAutoFirstDownAlwaysAccepted(t *testing.T) {
	pr := &model.PenaltyResult{AutoFirstDown: true}
	if !DecideAcceptance(pr, -5, 20) {
		t.Fatal("auto-first-down penalties must always be accepted")
	}
}

func TestDecideAcceptancePrefersBetterNetYards(t *testing.T) {
	pr := &model.PenaltyResult{}
	if DecideAcceptance(pr, 2, 10) {
		t.Fatal("should decline when the play's own result beats enforcement")
	}
	if !DecideAcceptance(pr, 15, 3) {
		t.Fatal("should accept when enforcement beats the play's own result")
	}
}

func TestEnforceHalfDistanceRuleOnDefensivePenalty(t *testing.T) {
	// Defense committed; flat enforcement (97+50=147) would cross the
	// goal line, so the spot should be half the remaining distance to it.
	pr := model.PenaltyResult{AssessedYards: 50}
	_, _, newSpot, _ := Enforce(pr, 1, 10, 97, false)
	if newSpot != 98 {
		t.Fatalf("expected half-the-distance spot of 98, got %d", newSpot)
	}
}

func TestEnforceHalfDistanceRuleOnOffensivePenalty(t *testing.T) {
	// Offense committed; flat enforcement (10-15=-5) would cross the
	// offense's own goal line, so the spot should be half the distance to it.
	pr := model.PenaltyResult{AssessedYards: 15}
	_, _, newSpot, _ := Enforce(pr, 1, 10, 10, true)
	if newSpot != 5 {
		t.Fatalf("expected half-the-distance spot of 5, got %d", newSpot)
	}
}

func TestEnforceSpotFoulPlacesBallDownfieldOfLineOfScrimmage(t *testing.T) {
	pr := model.PenaltyResult{SpotFoul: true, AutoFirstDown: true}
	_, _, newSpot, _ := Enforce(pr, 1, 10, 60, false)
	if newSpot != 75 {
		t.Fatalf("expected foul spot of LOS(60)+min(15,39)=75, got %d", newSpot)
	}
}

func TestEnforceSpotFoulClampsNearGoalLine(t *testing.T) {
	pr := model.PenaltyResult{SpotFoul: true}
	_, _, newSpot, _ := Enforce(pr, 1, 10, 90, false)
	if newSpot != 99 {
		t.Fatalf("expected foul spot of LOS(90)+min(15,9)=99, got %d", newSpot)
	}
}

func TestEnforceAutoFirstDownResetsDownAndDistance(t *testing.T) {
	pr := model.PenaltyResult{AssessedYards: 15, AutoFirstDown: true}
	newDown, newYardsToGo, _, firstDown := Enforce(pr, 3, 8, 40, false)
	if newDown != 1 || newYardsToGo != 10 || !firstDown {
		t.Fatalf("expected reset to 1st and 10, got down=%d togo=%d firstDown=%v", newDown, newYardsToGo, firstDown)
	}
}

func TestEnforceLossOfDownOnOffense(t *testing.T) {
	pr := model.PenaltyResult{AssessedYards: 5, LossOfDown: true}
	newDown, _, _, _ := Enforce(pr, 2, 7, 40, true)
	if newDown != 3 {
		t.Fatalf("expected down to advance on offense loss-of-down penalty, got %d", newDown)
	}
}

