package engine

import (
	"github.com/proofplay/gridiron/internal/clock"
	"github.com/proofplay/gridiron/internal/defense"
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/narrative"
	"github.com/proofplay/gridiron/internal/overtime"
	"github.com/proofplay/gridiron/internal/penalty"
	"github.com/proofplay/gridiron/internal/personnel"
	"github.com/proofplay/gridiron/internal/playcall"
	"github.com/proofplay/gridiron/internal/playgen"
	"github.com/proofplay/gridiron/internal/specialteams"
	"github.com/proofplay/gridiron/internal/turnover"
)

// playOnePlay runs one full loop iteration (spec §4.11 steps 1-13): call
// selection, resolution, penalty overlay, state application, clock and
// overtime advance, drive/stat/narrative bookkeeping, and event archival.
func (s *sim) playOnePlay() {
	down := s.gs.Down
	redZone := s.gs.BallPosition >= 80

	offenseRoster, defenseRoster := s.rostersForPossession()
	call := playcall.Select(s.r, s.gs, s.gs.OpponentTimeouts())

	result := s.resolveCall(call, offenseRoster, defenseRoster)
	s.overlayPenalty(call, &result, offenseRoster, defenseRoster)
	s.recordPlayInDrive(result)
	s.applyOutcome(call, result)

	elapsed := result.ClockElapsed
	clockRunning := s.gs.IsClockRunning
	adv := clock.Advance(s.gs.Quarter, s.gs.Clock, elapsed, clockRunning, s.warnedThisHalf())
	s.gs.Clock = adv.NewClock
	if adv.CrossedTwoMinute {
		s.markTwoMinuteWarning()
		s.gs.IsClockRunning = false
	} else {
		s.gs.IsClockRunning = !clock.ShouldStopClock(s.stopConditions(call, result))
	}
	s.gs.PlayClock = clock.PlayClockReset(result.Penalty != nil && !result.Penalty.Declined, result.Turnover != nil, result.Scoring != nil)

	if adv.QuarterEnded {
		s.advanceQuarter()
	}

	s.accum.Record(result, s.priorPossession(call), down, redZone, elapsed)

	s.momentum = narrative.UpdateMomentum(s.momentum, result, s.priorPossession(call))
	drama := narrative.DramaLevel(s.gs.Lead(), s.gs.Clock, s.gs.Quarter)
	narrative.ApplyPlay(s.story, result, s.priorPossession(call), s.gs.HomeScore, s.gs.AwayScore, s.gs.Quarter, s.nextEventNum)
	excitement := narrative.Excitement(result, drama)

	s.timestampMS += int64(elapsed) * 1000
	event := model.GameEvent{
		EventNumber: s.nextEventNum,
		Result:      result,
		Commentary:  buildCommentary(result, drama, excitement),
		State:       s.gs,
		Narrative:   narrative.Snapshot(s.story, s.momentum, drama),
		TimestampMS: s.timestampMS,
		DriveNumber: s.currentDriveNumber(),
	}
	s.events = append(s.events, event)
	s.nextEventNum++

	s.rollInjury(result, offenseRoster, defenseRoster)
}

// priorPossession returns the side that was on offense for the play just
// resolved. applyOutcome may already have flipped s.gs.Possession, so it
// returns s.lastOffense, which resolveCall captures before applyOutcome
// runs; the call argument is not used.
func (s *sim) priorPossession(call model.PlayCall) model.Side {
	return s.lastOffense
}

func (s *sim) resolveCall(call model.PlayCall, offenseRoster, defenseRoster model.Roster) model.PlayResult {
	s.lastOffense = s.gs.Possession

	switch call.Kind {
	case model.CallKickoffNormal:
		return s.resolveKickoff(offenseRoster)
	case model.CallOnsideKick:
		return s.resolveOnside()
	case model.CallExtraPoint:
		return s.resolveExtraPoint()
	case model.CallTwoPointRun, model.CallTwoPointPass:
		return s.resolveTwoPoint(call)
	case model.CallPunt:
		return s.resolvePunt(offenseRoster)
	case model.CallFieldGoal:
		return s.resolveFieldGoal(offenseRoster)
	case model.CallKneel:
		return s.resolveKneel(offenseRoster)
	case model.CallSpike:
		return s.resolveSpike(offenseRoster)
	default:
		return s.resolveScrimmage(call, offenseRoster, defenseRoster)
	}
}

func (s *sim) resolveScrimmage(call model.PlayCall, offenseRoster, defenseRoster model.Roster) model.PlayResult {
	defCall := defense.Select(s.r, call.Kind, s.gs.Down, s.gs.YardsToGo, s.gs.DefenseTeam().DefenseRating)
	sel := personnel.Select(s.r, s.gs.PossessionTeam().PlayStyle, s.gs.Down, s.gs.YardsToGo, s.gs.BallPosition, s.gs.BallPosition >= 80)
	bonus, runMod := formationModifiers(sel)

	twoMinute := s.gs.Clock <= 120 && (s.gs.Quarter == model.Q2 || s.gs.Quarter == model.Q4)
	ctx := playgen.Context{
		Offense:         offenseRoster,
		Defense:         defenseRoster,
		Momentum:        s.momentum,
		FormationBonus:  bonus,
		RunYardModifier: runMod,
		DefenseCall:     defCall,
		TwoMinuteDrill:  twoMinute,
	}

	offRating := s.gs.PossessionTeam().OffenseRating
	defRating := s.gs.DefenseTeam().DefenseRating
	if call.Kind.IsRun() {
		return playgen.ResolveRun(s.r, call, s.gs, offRating, defRating, ctx)
	}
	return playgen.ResolvePass(s.r, call, s.gs, offRating, defRating, ctx)
}

// formationModifiers derives the small run-yardage nudges a personnel
// selection contributes: goal-line grouping opens an extra push at the
// line, and a run-blocking-friendly backfield formation adds a modest
// multiplicative bonus (spec §4.4 "pre-snap answers feed the play
// generator").
func formationModifiers(sel personnel.Selection) (bonus int, runMod float64) {
	if sel.Grouping == personnel.GroupingGoalLine {
		bonus = 1
	}
	switch sel.Formation {
	case personnel.FormationIForm, personnel.FormationSingleback:
		runMod = 0.05
	case personnel.FormationWildcat:
		runMod = 0.08
	}
	return
}

func (s *sim) resolveKickoff(offenseRoster model.Roster) model.PlayResult {
	spot, touchback, oob, returnYards := specialteams.Kickoff(s.r, s.gs.PossessionTeam().SpecialRating)
	result := model.PlayResult{
		Type:           model.ResultKickoff,
		Call:           model.PlayCall{Kind: model.CallKickoffNormal},
		NetYards:       returnYards,
		IsClockStopped: true,
		Description:    "kickoff",
	}
	if touchback {
		result.Description = "kickoff sails into the end zone for a touchback"
	} else if oob {
		result.Description = "kickoff goes out of bounds"
	}
	result.ClockElapsed = clock.ElapsedSeconds(s.r, "kickoff", false)
	s.pendingKickoffSpot = spot
	return result
}

func (s *sim) resolveOnside() model.PlayResult {
	recovered, spot := specialteams.Onside(s.r)
	result := model.PlayResult{
		Type:           model.ResultOnsideKick,
		Call:           model.PlayCall{Kind: model.CallOnsideKick},
		IsClockStopped: true,
		Description:    "onside kick attempt",
	}
	result.ClockElapsed = clock.ElapsedSeconds(s.r, "kickoff", false)
	s.pendingKickoffSpot = spot
	s.pendingOnsideRecovered = recovered
	return result
}

func (s *sim) resolveExtraPoint() model.PlayResult {
	good := specialteams.ExtraPoint(s.r)
	result := model.PlayResult{
		Type:           model.ResultExtraPoint,
		Call:           model.PlayCall{Kind: model.CallExtraPoint},
		IsClockStopped: true,
		Description:    "extra point is no good",
	}
	if good {
		result.Description = "extra point is good"
		result.Scoring = &model.ScoringResult{Kind: model.ScoreExtraPoint, Team: s.gs.Possession, Points: 1}
	}
	return result
}

func (s *sim) resolveTwoPoint(call model.PlayCall) model.PlayResult {
	good := specialteams.TwoPointResult(s.r, call.Kind)
	result := model.PlayResult{
		Type:           model.ResultTwoPoint,
		Call:           call,
		IsClockStopped: true,
		Description:    "two-point conversion fails",
	}
	if good {
		result.Description = "two-point conversion is good"
		result.Scoring = &model.ScoringResult{Kind: model.ScoreTwoPointConversion, Team: s.gs.Possession, Points: 2}
	}
	return result
}

func (s *sim) resolvePunt(offenseRoster model.Roster) model.PlayResult {
	punter := punterOf(offenseRoster)
	muffed, fairCatch, touchback, receivingSpot, returnYards := specialteams.Punt(s.r, s.gs.PossessionTeam().SpecialRating, s.gs.BallPosition)
	result := model.PlayResult{
		Type:           model.ResultPunt,
		Call:           model.PlayCall{Kind: model.CallPunt},
		Punter:         &punter,
		NetYards:       returnYards,
		IsClockStopped: true,
		Description:    "punt",
	}
	switch {
	case muffed:
		tres := turnover.MuffedPunt(s.gs.Possession)
		result.Turnover = &tres
		result.Description = "punt is muffed"
	case fairCatch:
		result.Description = "fair catch on the punt"
	case touchback:
		result.Description = "punt into the end zone for a touchback"
	}
	s.pendingPuntSpot = receivingSpot
	result.ClockElapsed = clock.ElapsedSeconds(s.r, "punt", false)
	return result
}

func (s *sim) resolveFieldGoal(offenseRoster model.Roster) model.PlayResult {
	kicker := kickerOf(offenseRoster)
	distance := specialteams.FieldGoalDistance(s.gs.BallPosition)
	good := specialteams.FieldGoal(s.r, distance, kicker.Overall)
	result := model.PlayResult{
		Type:           model.ResultFieldGoal,
		Call:           model.PlayCall{Kind: model.CallFieldGoal},
		Kicker:         &kicker,
		IsClockStopped: true,
		Description:    "field goal attempt is no good",
	}
	if good {
		result.Description = "field goal is good"
		result.Scoring = &model.ScoringResult{Kind: model.ScoreFieldGoal, Team: s.gs.Possession, Points: 3, Scorer: &kicker}
	}
	result.ClockElapsed = clock.ElapsedSeconds(s.r, "field_goal", false)
	return result
}

func (s *sim) resolveKneel(offenseRoster model.Roster) model.PlayResult {
	qb := getQB(offenseRoster)
	result := model.PlayResult{
		Type:        model.ResultKneel,
		Call:        model.PlayCall{Kind: model.CallKneel},
		Rusher:      &qb,
		NetYards:    -1,
		Description: qb.ID + " takes a knee",
	}
	result.ClockElapsed = clock.ElapsedSeconds(s.r, "kneel", false)
	return result
}

func (s *sim) resolveSpike(offenseRoster model.Roster) model.PlayResult {
	qb := getQB(offenseRoster)
	result := model.PlayResult{
		Type:           model.ResultSpike,
		Call:           model.PlayCall{Kind: model.CallSpike},
		Passer:         &qb,
		IsClockStopped: true,
		Description:    qb.ID + " spikes it to stop the clock",
	}
	return result
}

func getQB(roster model.Roster) model.Player {
	for _, p := range roster {
		if p.Position == model.PositionQB {
			return p
		}
	}
	return model.EmergencyPlayer(model.PositionQB)
}

// overlayPenalty rolls a penalty for calls subject to it (not kickoff,
// PAT, two-point, kneel, or spike per spec §4.11 step 5) and, if drawn
// and accepted, folds its enforcement into the play's down/distance/
// field-position outcome. A penalty on a play that already scored or
// turned the ball over is treated as automatically declined: no offense
// takes 5 yards over six points.
func (s *sim) overlayPenalty(call model.PlayCall, result *model.PlayResult, offenseRoster, defenseRoster model.Roster) {
	if !penaltyEligible(call.Kind) {
		return
	}
	pr, err := penalty.Roll(s.r, call.Kind.IsPass(), call.Kind.IsSpecialTeams(), false, s.gs.Possession, offenseRoster, defenseRoster)
	if err != nil || pr == nil {
		return
	}

	if result.Scoring != nil || (result.Turnover != nil && result.Turnover.Kind != model.TurnoverFumbleRecovery) {
		pr.Declined = true
		result.Penalty = pr
		return
	}

	offenseCommitted := pr.CommittingSide == s.gs.Possession
	newDown, newYTG, newPos, firstDown := penalty.Enforce(*pr, s.gs.Down, s.gs.YardsToGo, s.gs.BallPosition, offenseCommitted)
	netIfAccepted := newPos - s.gs.BallPosition
	accepted := penalty.DecideAcceptance(pr, netIfAccepted, result.NetYards)
	pr.Declined = !accepted
	result.Penalty = pr
	if !accepted {
		return
	}

	result.NetYards = newPos - s.gs.BallPosition
	result.IsFirstDown = firstDown
	result.IsTouchdown = false
	result.IsSafety = false
	result.Scoring = nil
	result.Turnover = nil
	s.penaltyDown = newDown
	s.penaltyYardsToGo = newYTG
	s.penaltyApplied = true
}

func penaltyEligible(kind model.PlayCallKind) bool {
	switch kind {
	case model.CallKickoffNormal, model.CallOnsideKick, model.CallExtraPoint,
		model.CallTwoPointRun, model.CallTwoPointPass, model.CallKneel, model.CallSpike:
		return false
	default:
		return true
	}
}

func (s *sim) warnedThisHalf() bool {
	if s.gs.Quarter == model.Q2 {
		return s.gs.TwoMinuteWarningQ2
	}
	return s.gs.TwoMinuteWarningQ4
}

func (s *sim) markTwoMinuteWarning() {
	if s.gs.Quarter == model.Q2 {
		s.gs.TwoMinuteWarningQ2 = true
	} else {
		s.gs.TwoMinuteWarningQ4 = true
	}
}

func (s *sim) stopConditions(call model.PlayCall, result model.PlayResult) clock.ClockStopConditions {
	return clock.ClockStopConditions{
		IncompletePass:               result.Type == model.ResultPassIncomplete || result.Type == model.ResultInterception,
		Spike:                        call.Kind == model.CallSpike,
		Punt:                         call.Kind == model.CallPunt,
		FieldGoal:                    call.Kind == model.CallFieldGoal,
		Kickoff:                      call.Kind == model.CallKickoffNormal || call.Kind == model.CallOnsideKick,
		PAT:                          call.Kind == model.CallExtraPoint,
		TwoPoint:                     call.Kind == model.CallTwoPointRun || call.Kind == model.CallTwoPointPass,
		Scoring:                      result.Scoring != nil,
		Turnover:                     result.Turnover != nil && result.Turnover.Kind != model.TurnoverFumbleRecovery,
		AcceptedNonOffsettingPenalty: result.Penalty != nil && !result.Penalty.Declined,
		ExplicitClockStopped:         result.IsClockStopped,
		FirstDownInsideTwoMinutes:    result.IsFirstDown && s.gs.Clock <= 120 && (s.gs.Quarter == model.Q2 || s.gs.Quarter == model.Q4),
	}
}

func (s *sim) advanceQuarter() {
	if s.gs.Quarter == model.Q4 {
		if s.gs.HomeScore == s.gs.AwayScore {
			receiver, spot := overtime.InitialState()
			s.gs.Quarter = model.OT
			s.gs.Clock = model.QuarterLength(model.OT)
			s.gs.Possession = receiver
			s.gs.BallPosition = spot
			s.gs.Down = 1
			s.gs.YardsToGo = 10
			s.gs.Kickoff = false
			s.gs.IsClockRunning = false
		}
		return
	}
	if s.gs.Quarter == model.OT {
		if !overtime.ShouldEndGame(s.gs.GameType, s.gs.Quarter, s.gs.Clock, s.gs.HomeScore, s.gs.AwayScore) {
			receiver, spot := overtime.InitialState()
			s.gs.Clock = model.QuarterLength(model.OT)
			s.gs.Possession = receiver
			s.gs.BallPosition = spot
			s.gs.Down = 1
			s.gs.YardsToGo = 10
			s.gs.IsClockRunning = false
		}
		return
	}

	next, halftime := clock.NextQuarter(s.gs.Quarter)
	s.gs.Quarter = next
	s.gs.Clock = model.QuarterLength(next)
	s.gs.IsClockRunning = false
	if halftime {
		s.gs.IsHalftime = true
		s.gs.TwoMinuteWarningQ2 = false
		s.gs.Possession = s.gs.Possession.Opponent()
		s.gs.Kickoff = true
		s.gs.BallPosition = 35
		s.gs.Down = 1
		s.gs.YardsToGo = 10
	}
}

func (s *sim) currentDriveNumber() int {
	if s.drive == nil {
		return s.nextDriveNum - 1
	}
	return s.drive.DriveNumber
}
