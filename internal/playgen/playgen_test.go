package playgen

import (
	"testing"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
)

func newRNG(nonce uint64) *rng.RNG {
	return rng.New([]byte("server"), []byte("client"), nonce)
}

func sampleRoster() model.Roster {
	return model.Roster{
		{Index: 0, ID: "qb1", Position: model.PositionQB, Overall: 85, Awareness: 80},
		{Index: 1, ID: "rb1", Position: model.PositionRB, Overall: 82},
		{Index: 2, ID: "wr1", Position: model.PositionWR, Overall: 88},
		{Index: 3, ID: "wr2", Position: model.PositionWR, Overall: 80},
		{Index: 4, ID: "te1", Position: model.PositionTE, Overall: 75},
		{Index: 5, ID: "ol1", Position: model.PositionOL, Overall: 78},
		{Index: 6, ID: "ol2", Position: model.PositionOL, Overall: 76},
	}
}

func sampleDefense() model.Roster {
	return model.Roster{
		{Index: 0, ID: "dl1", Position: model.PositionDL, Overall: 80},
		{Index: 1, ID: "lb1", Position: model.PositionLB, Overall: 78},
		{Index: 2, ID: "cb1", Position: model.PositionCB, Overall: 82},
		{Index: 3, ID: "s1", Position: model.PositionS, Overall: 79},
	}
}

func baseGameState() model.GameState {
	return model.GameState{
		Possession:   model.Home,
		Quarter:      model.Q2,
		Clock:        600,
		Down:         1,
		YardsToGo:    10,
		BallPosition: 50,
		Home:         model.Team{OffenseRating: 85, DefenseRating: 80},
		Away:         model.Team{OffenseRating: 80, DefenseRating: 85},
	}
}

func baseContext() Context {
	return Context{
		Offense: sampleRoster(),
		Defense: sampleDefense(),
	}
}

func TestResolveRunPickesRunningBackAsRusher(t *testing.T) {
	r := newRNG(1)
	gs := baseGameState()
	res := ResolveRun(r, model.PlayCall{Kind: model.CallRunInside}, gs, 85, 80, baseContext())
	if res.Rusher == nil || res.Rusher.Position != model.PositionRB {
		t.Fatalf("expected the RB to carry the ball, got %+v", res.Rusher)
	}
	if res.Type != model.ResultRun {
		t.Fatalf("expected a run result, got %v", res.Type)
	}
}

func TestResolveRunClampsGainAtGoalLine(t *testing.T) {
	r := newRNG(7)
	gs := baseGameState()
	gs.BallPosition = 99
	res := ResolveRun(r, model.PlayCall{Kind: model.CallRunInside}, gs, 85, 80, baseContext())
	if res.NetYards > 100-gs.BallPosition {
		t.Fatalf("net yards %d should never exceed the distance to the goal line (%d)", res.NetYards, 100-gs.BallPosition)
	}
}

func TestResolveRunFirstDownRequiresMeetingYardsToGo(t *testing.T) {
	r := newRNG(3)
	gs := baseGameState()
	gs.YardsToGo = 1000 // unreachable, so IsFirstDown must be false
	res := ResolveRun(r, model.PlayCall{Kind: model.CallRunInside}, gs, 85, 80, baseContext())
	if res.IsFirstDown {
		t.Fatal("a run that can't possibly gain 1000 yards must not be marked a first down")
	}
}

func TestResolvePassSackReturnsSackType(t *testing.T) {
	// Drive the sack rate to its maximum (0.25) via lopsided ratings, then
	// scan nonces until one lands inside that probability so the branch is
	// exercised deterministically without relying on a single fixed seed.
	gs := baseGameState()
	ctx := baseContext()
	for nonce := uint64(0); nonce < 200; nonce++ {
		r := newRNG(nonce)
		res := ResolvePass(r, model.PlayCall{Kind: model.CallPassMedium}, gs, 60, 99, ctx)
		if res.Type == model.ResultSack {
			return
		}
	}
	t.Fatal("expected at least one sack across 200 scans of a heavily defense-favored matchup")
}

func TestResolvePassProducesCompleteOrIncomplete(t *testing.T) {
	gs := baseGameState()
	ctx := baseContext()
	sawComplete, sawIncomplete := false, false
	for nonce := uint64(0); nonce < 300; nonce++ {
		r := newRNG(nonce)
		res := ResolvePass(r, model.PlayCall{Kind: model.CallPassShort}, gs, 90, 70, ctx)
		switch res.Type {
		case model.ResultPassComplete:
			sawComplete = true
		case model.ResultPassIncomplete, model.ResultInterception:
			sawIncomplete = true
		}
		if sawComplete && sawIncomplete {
			return
		}
	}
	if !sawComplete || !sawIncomplete {
		t.Fatalf("expected to see both completions and incompletions over 300 draws, got complete=%v incomplete=%v", sawComplete, sawIncomplete)
	}
}

func TestResolvePassCompletionCreditsReceiver(t *testing.T) {
	gs := baseGameState()
	ctx := baseContext()
	for nonce := uint64(0); nonce < 200; nonce++ {
		r := newRNG(nonce)
		res := ResolvePass(r, model.PlayCall{Kind: model.CallScreenPass}, gs, 95, 60, ctx)
		if res.Type == model.ResultPassComplete {
			if res.Receiver == nil {
				t.Fatal("a completed pass must credit a receiver")
			}
			return
		}
	}
	t.Fatal("expected at least one completion across 200 draws with a heavily offense-favored matchup")
}

func TestGetPlayerByPositionFallsBackToEmergencyPlayer(t *testing.T) {
	roster := model.Roster{{Index: 0, ID: "qb1", Position: model.PositionQB, Overall: 80}}
	p := getPlayerByPosition(roster, model.PositionRB)
	if p.Index != -1 {
		t.Fatalf("expected the emergency-player sentinel index -1 for a missing position, got %d", p.Index)
	}
}

func TestSelectReceiverPrefersHigherOverallOnAverage(t *testing.T) {
	roster := model.Roster{
		{Index: 0, ID: "star", Position: model.PositionWR, Overall: 99},
		{Index: 1, ID: "scrub", Position: model.PositionWR, Overall: 60},
	}
	starPicks := 0
	for nonce := uint64(0); nonce < 200; nonce++ {
		r := newRNG(nonce)
		if selectReceiver(r, roster).ID == "star" {
			starPicks++
		}
	}
	if starPicks < 100 {
		t.Fatalf("expected the much higher-rated receiver to be picked more than half the time, got %d/200", starPicks)
	}
}
