package turnover

import (
	"testing"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
)

func newRNG() *rng.RNG {
	return rng.New([]byte("server"), []byte("client"), 0)
}

func TestFlipPositionClampsToValidRange(t *testing.T) {
	if got := FlipPosition(0); got != 99 {
		t.Fatalf("flip of 0 should clamp to 99, got %d", got)
	}
	if got := FlipPosition(100); got != 1 {
		t.Fatalf("flip of 100 should clamp to 1, got %d", got)
	}
	if got := FlipPosition(40); got != 60 {
		t.Fatalf("flip of 40 should be 60, got %d", got)
	}
}

func TestFumbleOffenseRetainsWhenDefenseDoesNotRecover(t *testing.T) {
	r := newRNG()
	res := Fumble(r, model.Home, 45, 0, 0)
	if res.RecoveredBy != model.Home {
		t.Fatalf("expected offense to retain the ball, got %v", res.RecoveredBy)
	}
}

func TestFumbleDefenseRecoversAndReturnsForTD(t *testing.T) {
	r := newRNG()
	res := Fumble(r, model.Home, 45, 1, 1)
	if res.RecoveredBy != model.Away {
		t.Fatalf("expected defense to recover, got %v", res.RecoveredBy)
	}
	if !res.ReturnedForTD {
		t.Fatal("expected fumble-TD rate of 1 to force a return touchdown")
	}
}

func TestInterceptionPickSix(t *testing.T) {
	r := newRNG()
	res := Interception(r, model.Away, 1)
	if res.RecoveredBy != model.Home {
		t.Fatalf("expected interception recovered by defense, got %v", res.RecoveredBy)
	}
	if !res.ReturnedForTD {
		t.Fatal("expected pick-six rate of 1 to force a return touchdown")
	}
}

func TestInterceptionReturnYardsWithinClamp(t *testing.T) {
	r := newRNG()
	for i := 0; i < 50; i++ {
		res := Interception(r, model.Home, 0)
		if res.ReturnYards < 0 || res.ReturnYards > 80 {
			t.Fatalf("interception return yards out of clamp: %d", res.ReturnYards)
		}
	}
}

func TestOnDownsFlipsPossessionOnly(t *testing.T) {
	res := OnDowns(model.Home)
	if res.RecoveredBy != model.Away || res.ReturnYards != 0 {
		t.Fatalf("unexpected turnover-on-downs result: %+v", res)
	}
}

func TestMuffedPuntReturnsToPuntingSide(t *testing.T) {
	res := MuffedPunt(model.Away)
	if res.RecoveredBy != model.Away {
		t.Fatalf("expected punting side to recover the muff, got %v", res.RecoveredBy)
	}
}

func TestNewBallPositionReturnedForTD(t *testing.T) {
	spot, isTD := NewBallPosition(50, 0, true)
	if !isTD || spot != 100 {
		t.Fatalf("expected TD spot of 100, got %d, isTD=%v", spot, isTD)
	}
}

func TestNewBallPositionClampsAtGoalLine(t *testing.T) {
	spot, isTD := NewBallPosition(5, 90, false)
	if isTD {
		t.Fatal("non-TD return should not set isTD")
	}
	if spot != 99 {
		t.Fatalf("expected clamp to 99, got %d", spot)
	}
}
