package overtime

import (
	"testing"

	"github.com/proofplay/gridiron/internal/model"
)

func TestShouldEnterOvertimeOnTieAtQ4End(t *testing.T) {
	if !ShouldEnterOvertime(model.Q4, 0, 21, 21) {
		t.Fatal("tied Q4 at clock 0 should enter OT")
	}
	if ShouldEnterOvertime(model.Q4, 0, 21, 14) {
		t.Fatal("non-tied score should not enter OT")
	}
	if ShouldEnterOvertime(model.Q3, 0, 21, 21) {
		t.Fatal("Q3 should never enter OT")
	}
}

func TestSuddenDeathEndsOnAnyScore(t *testing.T) {
	if !ShouldEndGame(model.GameRegular, model.OT, 550, 10, 7) {
		t.Fatal("any score during OT should end sudden death regardless of clock")
	}
}

func TestRegularSeasonOTCanEndTied(t *testing.T) {
	if !ShouldEndGame(model.GameRegular, model.OT, 0, 14, 14) {
		t.Fatal("regular season OT at clock 0 tied should end the game")
	}
}

func TestPlayoffOTContinuesWhenTied(t *testing.T) {
	if ShouldEndGame(model.GameSuperBowl, model.OT, 0, 14, 14) {
		t.Fatal("playoff OT tied at clock 0 must continue, not end")
	}
}
