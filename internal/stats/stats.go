// Package stats accumulates per-play statistics into per-player and
// per-team totals, finalizes the box score, and computes the MVP (spec
// §4.8, component C12).
package stats

import (
	"github.com/dustin/go-humanize"

	"github.com/proofplay/gridiron/internal/model"
)

// Accumulator is the engine-owned, mutable per-game stat ledger. Like
// model.StoryState, it is owned exclusively by the engine and updated
// once per play from the frozen PlayResult.
type Accumulator struct {
	players map[int]*model.PlayerGameStats // keyed by Player.Index
	home    model.TeamGameStats
	away    model.TeamGameStats
	scoring []model.ScoringResult
}

// NewAccumulator constructs an empty ledger.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		players: make(map[int]*model.PlayerGameStats),
		home:    model.TeamGameStats{Side: model.Home},
		away:    model.TeamGameStats{Side: model.Away},
	}
}

func (a *Accumulator) player(p model.Player) *model.PlayerGameStats {
	if p.Index < 0 {
		// Emergency players (index -1) all share one entry under that index.
		if _, ok := a.players[p.Index]; !ok {
			a.players[p.Index] = &model.PlayerGameStats{Player: p}
		}
		return a.players[p.Index]
	}
	if _, ok := a.players[p.Index]; !ok {
		a.players[p.Index] = &model.PlayerGameStats{Player: p}
	}
	return a.players[p.Index]
}

func (a *Accumulator) team(side model.Side) *model.TeamGameStats {
	if side == model.Home {
		return &a.home
	}
	return &a.away
}

// Record applies one resolved play to the ledger. possessing is the
// offense for this play; down/redZone describe the situation before the
// snap, used for third/fourth-down and red-zone conversion tracking.
func (a *Accumulator) Record(result model.PlayResult, possessing model.Side, down int, redZone bool, elapsedSeconds int) {
	offTeam := a.team(possessing)
	offTeam.TimeOfPossessionSeconds += elapsedSeconds

	switch result.Type {
	case model.ResultRun:
		offTeam.RushingYards += result.NetYards
		offTeam.TotalYards += result.NetYards
		if result.Rusher != nil {
			ps := a.player(*result.Rusher)
			ps.RushAttempts++
			ps.RushYards += result.NetYards
			if result.IsTouchdown {
				ps.RushTDs++
			}
		}
		if result.Defender != nil {
			a.player(*result.Defender).Tackles++
		}
	case model.ResultPassComplete:
		offTeam.PassingYards += result.NetYards
		offTeam.TotalYards += result.NetYards
		if result.Passer != nil {
			ps := a.player(*result.Passer)
			ps.PassAttempts++
			ps.PassCompletions++
			ps.PassYards += result.NetYards
			if result.IsTouchdown {
				ps.PassTDs++
			}
		}
		if result.Receiver != nil {
			ps := a.player(*result.Receiver)
			ps.Receptions++
			ps.RecYards += result.NetYards
			if result.IsTouchdown {
				ps.RecTDs++
			}
		}
		if result.Defender != nil {
			a.player(*result.Defender).Tackles++
		}
	case model.ResultPassIncomplete:
		if result.Passer != nil {
			a.player(*result.Passer).PassAttempts++
		}
	case model.ResultSack:
		offTeam.TotalYards += result.NetYards
		if result.Defender != nil {
			a.player(*result.Defender).Sacks++
		}
	case model.ResultInterception:
		offTeam.Turnovers++
		if result.Passer != nil {
			a.player(*result.Passer).Interceptions++
		}
		if result.Defender != nil {
			a.player(*result.Defender).DefInterceptions++
		}
	case model.ResultFieldGoal:
		if result.Kicker != nil {
			ps := a.player(*result.Kicker)
			ps.FieldGoalsAttempted++
			if result.Scoring != nil {
				ps.FieldGoalsMade++
			}
		}
	case model.ResultPunt:
		if result.Punter != nil {
			ps := a.player(*result.Punter)
			ps.Punts++
			ps.PuntYards += result.NetYards
		}
	}

	if result.Turnover != nil && result.Turnover.Kind == model.TurnoverFumble {
		offTeam.Turnovers++
		if result.Defender != nil {
			a.player(*result.Defender).ForcedFumbles++
		}
	}

	if result.Penalty != nil && !result.Penalty.Declined {
		penTeam := a.team(result.Penalty.CommittingSide)
		penTeam.Penalties++
		penTeam.PenaltyYards += result.Penalty.AssessedYards
	}

	if result.IsFirstDown {
		offTeam.FirstDowns++
	}

	if down == 3 {
		offTeam.ThirdDownAttempts++
		if result.IsFirstDown {
			offTeam.ThirdDownConversions++
		}
	}
	if down == 4 {
		offTeam.FourthDownAttempts++
		if result.IsFirstDown || result.IsTouchdown {
			offTeam.FourthDownConversions++
		}
	}
	if redZone {
		offTeam.RedZoneAttempts++
		if result.IsTouchdown {
			offTeam.RedZoneTDs++
		}
	}

	if result.Scoring != nil {
		a.scoring = append(a.scoring, *result.Scoring)
	}
}

// Finalize produces the immutable BoxScore, splitting accumulated player
// stats by side using the indices present on homeRoster/awayRoster.
func (a *Accumulator) Finalize(homeRoster, awayRoster model.Roster, drives []model.Drive) model.BoxScore {
	homeIdx := make(map[int]bool, len(homeRoster))
	for _, p := range homeRoster {
		homeIdx[p.Index] = true
	}

	var homePlayers, awayPlayers []model.PlayerGameStats
	for idx, ps := range a.players {
		if idx >= 0 && homeIdx[idx] {
			homePlayers = append(homePlayers, *ps)
		} else {
			awayPlayers = append(awayPlayers, *ps)
		}
	}

	return model.BoxScore{
		Home:        a.home,
		Away:        a.away,
		HomePlayers: homePlayers,
		AwayPlayers: awayPlayers,
		Drives:      drives,
		ScoringPlays: a.scoring,
	}
}

// MVPScore computes the game-score formula for one player's stat line,
// branched by position per spec §4.8: QB rewards passing yardage and
// touchdowns net of interceptions plus any rush production; RB rewards
// rushing and any receiving work; WR/TE rewards receiving; defenders
// score on sacks/tackles/takeaways; kickers on made field goals. A
// player with defensive stats but no offensive position (DL/LB/CB/S)
// always uses the defensive formula regardless of the position branch
// below, since box-score positions are frozen at the roster's slot.
func MVPScore(ps model.PlayerGameStats) float64 {
	switch ps.Player.Position {
	case model.PositionQB:
		return float64(ps.PassTDs)*4 + float64(ps.PassYards)/25 - float64(ps.Interceptions)*3 +
			float64(ps.RushYards)/10 + float64(ps.RushTDs)*6
	case model.PositionRB:
		return float64(ps.RushTDs)*6 + float64(ps.RushYards)/10 + float64(ps.RecYards)/10 + float64(ps.RecTDs)*6
	case model.PositionWR, model.PositionTE:
		return float64(ps.RecTDs)*6 + float64(ps.RecYards)/10 + float64(ps.Receptions)*0.5
	case model.PositionK:
		return float64(ps.FieldGoalsMade) * 3
	default:
		return ps.Sacks*3 + float64(ps.Tackles)*0.5 + float64(ps.ForcedFumbles)*3 + float64(ps.DefInterceptions)*5
	}
}

// ComputeMVP scans every player in box and returns the highest MVPScore,
// with a small epsilon tie-break favouring the winning team's players
// (spec §4.8 "small ε tie-break favouring the winning team").
func ComputeMVP(box model.BoxScore, homeTeam, awayTeam model.Team) model.MVP {
	const winnerEpsilon = 0.01
	best := model.MVP{Score: -1}
	scan := func(players []model.PlayerGameStats, side model.Side, winningSide model.Side) {
		for _, ps := range players {
			sc := MVPScore(ps)
			if side == winningSide {
				sc += winnerEpsilon
			}
			if sc > best.Score {
				best = model.MVP{Player: ps.Player, Side: side, Score: sc}
			}
		}
	}
	winningSide := determineWinner(box)
	scan(box.HomePlayers, model.Home, winningSide)
	scan(box.AwayPlayers, model.Away, winningSide)
	return best
}

// determineWinner infers which side scored more points from the box
// score's scoring-play log, used only for the MVP tie-break epsilon.
func determineWinner(box model.BoxScore) model.Side {
	homePoints, awayPoints := 0, 0
	for _, sp := range box.ScoringPlays {
		if sp.Team == model.Home {
			homePoints += sp.Points
		} else {
			awayPoints += sp.Points
		}
	}
	if awayPoints > homePoints {
		return model.Away
	}
	return model.Home
}

// FormatYards renders a yardage total with thousands separators for
// commentary and box-score text output (e.g. "1,024 total yards").
func FormatYards(yards int) string {
	return humanize.Comma(int64(yards))
}

// FormatOrdinal renders n as an ordinal string ("1st", "22nd", "23rd").
func FormatOrdinal(n int) string {
	return humanize.Ordinal(n)
}
