package stats

import (
	"testing"

	"github.com/proofplay/gridiron/internal/model"
)

func TestRecordRunAccumulatesRusherAndTeam(t *testing.T) {
	a := NewAccumulator()
	rusher := model.Player{Index: 3, ID: "rb", Position: model.PositionRB}
	a.Record(model.PlayResult{
		Type:        model.ResultRun,
		NetYards:    7,
		Rusher:      &rusher,
		IsTouchdown: true,
	}, model.Home, 1, false, 30)

	box := a.Finalize(model.Roster{rusher}, nil, nil)
	if box.Home.RushingYards != 7 || box.Home.TotalYards != 7 {
		t.Fatalf("expected team rushing yards accumulated, got %+v", box.Home)
	}
	if len(box.HomePlayers) != 1 || box.HomePlayers[0].RushYards != 7 || box.HomePlayers[0].RushTDs != 1 {
		t.Fatalf("expected rusher stats recorded, got %+v", box.HomePlayers)
	}
}

func TestRecordThirdDownConversionTracking(t *testing.T) {
	a := NewAccumulator()
	a.Record(model.PlayResult{Type: model.ResultRun, NetYards: 5, IsFirstDown: true}, model.Away, 3, false, 10)
	box := a.Finalize(nil, nil, nil)
	if box.Away.ThirdDownAttempts != 1 || box.Away.ThirdDownConversions != 1 {
		t.Fatalf("expected 3rd down conversion tracked, got %+v", box.Away)
	}
}

func TestRecordPenaltyAccumulatesOnCommittingSide(t *testing.T) {
	a := NewAccumulator()
	a.Record(model.PlayResult{
		Type: model.ResultRun,
		Penalty: &model.PenaltyResult{
			CommittingSide: model.Away,
			AssessedYards:  10,
		},
	}, model.Home, 1, false, 5)
	box := a.Finalize(nil, nil, nil)
	if box.Away.Penalties != 1 || box.Away.PenaltyYards != 10 {
		t.Fatalf("expected penalty tracked against the committing side, got %+v", box.Away)
	}
	if box.Home.Penalties != 0 {
		t.Fatal("penalty should not accrue to the non-committing side")
	}
}

func TestDeclinedPenaltyNotCounted(t *testing.T) {
	a := NewAccumulator()
	a.Record(model.PlayResult{
		Type:    model.ResultRun,
		Penalty: &model.PenaltyResult{CommittingSide: model.Away, AssessedYards: 10, Declined: true},
	}, model.Home, 1, false, 5)
	box := a.Finalize(nil, nil, nil)
	if box.Away.Penalties != 0 {
		t.Fatal("a declined penalty must not be counted")
	}
}

func TestMVPScoreRewardsTouchdownsOverRawYards(t *testing.T) {
	volume := model.PlayerGameStats{Player: model.Player{Position: model.PositionRB}, RushYards: 200}
	efficient := model.PlayerGameStats{Player: model.Player{Position: model.PositionRB}, RushYards: 50, RushTDs: 4}
	if MVPScore(efficient) <= MVPScore(volume) {
		t.Fatal("four rushing touchdowns should outscore 200 yards with none")
	}
}

func TestComputeMVPPicksHighestScore(t *testing.T) {
	box := model.BoxScore{
		HomePlayers: []model.PlayerGameStats{{Player: model.Player{ID: "home-wr", Position: model.PositionWR}, RecYards: 30}},
		AwayPlayers: []model.PlayerGameStats{{Player: model.Player{ID: "away-qb", Position: model.PositionQB}, PassYards: 300, PassTDs: 3}},
	}
	mvp := ComputeMVP(box, model.Team{}, model.Team{})
	if mvp.Player.ID != "away-qb" || mvp.Side != model.Away {
		t.Fatalf("expected the higher-scoring player to win MVP, got %+v", mvp)
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatYards(1234) != "1,234" {
		t.Fatalf("unexpected comma formatting: %s", FormatYards(1234))
	}
	if FormatOrdinal(23) != "23rd" {
		t.Fatalf("unexpected ordinal formatting: %s", FormatOrdinal(23))
	}
}
