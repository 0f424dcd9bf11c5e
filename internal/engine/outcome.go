package engine

import (
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/turnover"
)

// applyOutcome mutates s.gs according to the resolved (and possibly
// penalty-overlaid) result for the call that produced it (spec §4.11
// step 6). Drive bracketing (step 8) happens inline with each branch,
// since only this method knows which branches close a possession.
func (s *sim) applyOutcome(call model.PlayCall, result model.PlayResult) {
	switch call.Kind {
	case model.CallKickoffNormal:
		s.endDrive(model.DriveEndOfHalf)
		s.gs.Possession = s.gs.Possession.Opponent()
		s.gs.BallPosition = s.pendingKickoffSpot
		s.gs.Down, s.gs.YardsToGo, s.gs.Kickoff = 1, 10, false
		s.gs.IsHalftime = false
		s.startDrive()

	case model.CallOnsideKick:
		s.endDrive(model.DriveEndOfHalf)
		if !s.pendingOnsideRecovered {
			s.gs.Possession = s.gs.Possession.Opponent()
		}
		s.gs.BallPosition = s.pendingKickoffSpot
		s.gs.Down, s.gs.YardsToGo, s.gs.Kickoff = 1, 10, false
		s.startDrive()

	case model.CallExtraPoint, model.CallTwoPointRun, model.CallTwoPointPass:
		if result.Scoring != nil {
			s.addScore(result.Scoring.Team, result.Scoring.Points)
		}
		s.gs.PATAttempt = false
		s.gs.Kickoff = true
		s.gs.BallPosition = 35
		s.gs.Down, s.gs.YardsToGo = 1, 10

	case model.CallPunt:
		s.endDrive(model.DrivePunt)
		if result.Turnover != nil && result.Turnover.Kind == model.TurnoverMuffedPunt {
			s.gs.BallPosition = turnover.FlipPosition(s.pendingPuntSpot)
		} else {
			s.gs.Possession = s.gs.Possession.Opponent()
			s.gs.BallPosition = s.pendingPuntSpot
		}
		s.gs.Down, s.gs.YardsToGo = 1, 10
		s.startDrive()

	case model.CallFieldGoal:
		if result.Scoring != nil {
			s.addScore(result.Scoring.Team, result.Scoring.Points)
			s.endDrive(model.DriveFieldGoal)
			s.gs.Kickoff = true
			s.gs.BallPosition = 35
			s.gs.Down, s.gs.YardsToGo = 1, 10
		} else {
			s.endDrive(model.DriveTurnover)
			flipped := 100 - s.gs.BallPosition
			if flipped < 20 {
				flipped = 20
			}
			s.gs.Possession = s.gs.Possession.Opponent()
			s.gs.BallPosition = flipped
			s.gs.Down, s.gs.YardsToGo = 1, 10
			s.startDrive()
		}

	case model.CallKneel:
		s.gs.BallPosition = clampPos(s.gs.BallPosition + result.NetYards)
		s.gs.Down++
		if s.gs.Down > 4 {
			s.turnoverOnDowns()
		} else {
			s.gs.YardsToGo = clampYardsToGo(s.gs.YardsToGo - result.NetYards)
		}

	case model.CallSpike:
		s.gs.Down++
		if s.gs.Down > 4 {
			s.turnoverOnDowns()
		}

	default:
		s.applyScrimmage(result)
	}
	s.pendingKickoffSpot, s.pendingPuntSpot, s.pendingOnsideRecovered = 0, 0, false
	s.penaltyApplied = false
}

func (s *sim) addScore(side model.Side, points int) {
	if side == model.Home {
		s.gs.HomeScore += points
	} else {
		s.gs.AwayScore += points
	}
}

func (s *sim) turnoverOnDowns() {
	s.endDrive(model.DriveTurnoverOnDowns)
	s.gs.Possession = s.gs.Possession.Opponent()
	s.gs.BallPosition = turnover.FlipPosition(s.gs.BallPosition)
	s.gs.Down, s.gs.YardsToGo = 1, 10
	s.startDrive()
}

// applyScrimmage handles run/pass results: scoring, live turnovers, and
// ordinary down progression, including an accepted-penalty override
// threaded in from overlayPenalty.
func (s *sim) applyScrimmage(result model.PlayResult) {
	if s.penaltyApplied {
		s.penaltyApplied = false
		s.gs.BallPosition = clampPos(s.gs.BallPosition + result.NetYards)
		if result.IsFirstDown {
			s.gs.Down, s.gs.YardsToGo = 1, 10
		} else {
			s.gs.Down, s.gs.YardsToGo = s.penaltyDown, s.penaltyYardsToGo
			if s.gs.Down > 4 {
				s.turnoverOnDowns()
			}
		}
		return
	}

	if result.Scoring != nil {
		switch result.Scoring.Kind {
		case model.ScoreSafety:
			s.addScore(result.Scoring.Team, 2)
			s.endDrive(model.DriveSafety)
			s.gs.Kickoff = true
			s.gs.BallPosition = 20
			s.gs.Down, s.gs.YardsToGo = 1, 10
			return
		case model.ScoreTouchdown, model.ScoreFumbleRecoveryTD, model.ScorePickSix:
			s.addScore(result.Scoring.Team, 6)
			s.endDrive(model.DriveTouchdown)
			s.gs.Possession = result.Scoring.Team
			s.gs.PATAttempt = true
			s.gs.Down, s.gs.YardsToGo = 0, 0
			return
		}
	}

	if result.Turnover != nil && result.Turnover.Kind == model.TurnoverFumble {
		s.endDrive(model.DriveTurnover)
		spotBeforeReturn := clampPos(s.gs.BallPosition + result.NetYards)
		newPos, _ := turnover.NewBallPosition(spotBeforeReturn, result.Turnover.ReturnYards, result.Turnover.ReturnedForTD)
		s.gs.Possession = result.Turnover.RecoveredBy
		s.gs.BallPosition = newPos
		s.gs.Down, s.gs.YardsToGo = 1, 10
		s.startDrive()
		return
	}
	if result.Turnover != nil && result.Turnover.Kind == model.TurnoverInterception {
		s.endDrive(model.DriveTurnover)
		newPos, _ := turnover.NewBallPosition(s.gs.BallPosition, result.Turnover.ReturnYards, result.Turnover.ReturnedForTD)
		s.gs.Possession = result.Turnover.RecoveredBy
		s.gs.BallPosition = newPos
		s.gs.Down, s.gs.YardsToGo = 1, 10
		s.startDrive()
		return
	}

	s.gs.BallPosition = clampPos(s.gs.BallPosition + result.NetYards)
	if result.IsFirstDown {
		s.gs.Down, s.gs.YardsToGo = 1, 10
		return
	}
	s.gs.YardsToGo = clampYardsToGo(s.gs.YardsToGo - result.NetYards)
	s.gs.Down++
	if s.gs.Down > 4 {
		s.turnoverOnDowns()
	}
}
