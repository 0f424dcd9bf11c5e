package playcall

import (
	"testing"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
)

func newRNG() *rng.RNG {
	return rng.New([]byte("server"), []byte("client"), 0)
}

func baseState() model.GameState {
	return model.GameState{
		Home:       model.Team{PlayStyle: model.StyleBalanced},
		Away:       model.Team{PlayStyle: model.StyleBalanced},
		Possession: model.Home,
		Quarter:    model.Q2,
		Clock:      600,
		Down:       1,
		YardsToGo:  10,
		BallPosition: 50,
	}
}

func TestSelectKickoffStateReturnsKickoffOrOnside(t *testing.T) {
	r := newRNG()
	gs := baseState()
	gs.Kickoff = true
	call := Select(r, gs, 0)
	if call.Kind != model.CallKickoffNormal && call.Kind != model.CallOnsideKick {
		t.Fatalf("unexpected kickoff-state call: %v", call.Kind)
	}
}

func TestSelectPATStateTrailingByTwoConsidersTwoPoint(t *testing.T) {
	r := newRNG()
	gs := baseState()
	gs.PATAttempt = true
	gs.Quarter = model.Q4
	gs.HomeScore = 10
	gs.AwayScore = 12
	call := Select(r, gs, 0)
	valid := map[model.PlayCallKind]bool{
		model.CallTwoPointPass: true, model.CallTwoPointRun: true, model.CallExtraPoint: true,
	}
	if !valid[call.Kind] {
		t.Fatalf("unexpected PAT-state call: %v", call.Kind)
	}
}

func TestSelectKneelWhenProtectingLateLead(t *testing.T) {
	gs := baseState()
	gs.Quarter = model.Q4
	gs.Clock = 50
	gs.HomeScore = 20
	gs.AwayScore = 17
	gs.Down = 1
	r := newRNG()
	call := Select(r, gs, 0)
	if call.Kind != model.CallKneel {
		t.Fatalf("expected a kneel with a small late lead and no timeouts, got %v", call.Kind)
	}
}

func TestSelectSpikeWhenClockCriticalAndTrailing(t *testing.T) {
	gs := baseState()
	gs.Quarter = model.Q4
	gs.Clock = 35
	gs.HomeScore = 14
	gs.AwayScore = 17
	gs.IsClockRunning = true
	r := newRNG()
	call := Select(r, gs, 0)
	if call.Kind != model.CallSpike {
		t.Fatalf("expected a spike, got %v", call.Kind)
	}
}

func TestSelectFourthDownInFieldGoalRangeKicks(t *testing.T) {
	gs := baseState()
	gs.Down = 4
	gs.YardsToGo = 8
	gs.BallPosition = 70
	r := newRNG()
	call := Select(r, gs, 0)
	if call.Kind != model.CallFieldGoal {
		t.Fatalf("expected a field goal attempt, got %v", call.Kind)
	}
}

func TestSelectFourthDownLongYardagePunts(t *testing.T) {
	gs := baseState()
	gs.Down = 4
	gs.YardsToGo = 12
	gs.BallPosition = 30
	r := newRNG()
	call := Select(r, gs, 0)
	if call.Kind != model.CallPunt {
		t.Fatalf("expected a punt on long 4th down outside FG range, got %v", call.Kind)
	}
}

func TestSelectDefaultDistributionProducesValidCall(t *testing.T) {
	gs := baseState()
	r := newRNG()
	call := Select(r, gs, 0)
	valid := map[model.PlayCallKind]bool{
		model.CallRunInside: true, model.CallRunOutside: true, model.CallPassShort: true,
		model.CallScreenPass: true, model.CallPassMedium: true, model.CallPassDeep: true,
	}
	if !valid[call.Kind] {
		t.Fatalf("unexpected default-distribution call: %v", call.Kind)
	}
}

func TestDistanceCategoryBuckets(t *testing.T) {
	if distanceCategory(2) != distanceShort {
		t.Fatal("2 yards to go should be short")
	}
	if distanceCategory(6) != distanceMedium {
		t.Fatal("6 yards to go should be medium")
	}
	if distanceCategory(15) != distanceLong {
		t.Fatal("15 yards to go should be long")
	}
}
