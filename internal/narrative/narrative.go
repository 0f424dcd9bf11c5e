// Package narrative tracks momentum, drama, and active storylines across
// a game, and renders per-play commentary and crowd reactions (spec
// §4.9, component C13).
package narrative

import (
	"fmt"

	"github.com/proofplay/gridiron/internal/model"
)

const maxActiveThreads = 5 // I9

// UpdateMomentum nudges momentum toward the scoring/big-play side and
// decays it slightly toward zero every play, clamped to [-100,100].
// Positive values favor home.
func UpdateMomentum(current float64, result model.PlayResult, possessing model.Side) float64 {
	delta := 0.0
	switch {
	case result.IsTouchdown:
		delta = 18
	case result.Scoring != nil:
		delta = 8
	case result.Turnover != nil:
		delta = -14
	case result.NetYards >= 20:
		delta = 10
	case result.NetYards <= -5:
		delta = -4
	}
	if possessing == model.Away {
		delta = -delta
	}

	decayed := current * 0.95
	next := decayed + delta
	if next > 100 {
		next = 100
	}
	if next < -100 {
		next = -100
	}
	return next
}

// DramaLevel scores how tense the current moment is, from the score
// differential and time remaining: a one-score game late is maximal
// drama; a blowout at any point is minimal.
func DramaLevel(lead int, clock float64, quarter model.Quarter) int {
	absLead := lead
	if absLead < 0 {
		absLead = -absLead
	}
	if absLead >= 21 {
		return 0
	}

	closeness := 100 - absLead*8
	if closeness < 0 {
		closeness = 0
	}

	urgency := 0
	if quarter == model.Q4 || quarter == model.OT {
		urgency = 40
		if clock < 300 {
			urgency = 70
		}
		if clock < 120 {
			urgency = 100
		}
	}

	level := (closeness + urgency) / 2
	if level > 100 {
		level = 100
	}
	return level
}

// Excitement scores one play's commentary-facing excitement level
// (0-100), used to drive crowd reaction text.
func Excitement(result model.PlayResult, drama int) int {
	base := 10
	switch {
	case result.IsTouchdown:
		base = 90
	case result.Turnover != nil && result.Turnover.ReturnedForTD:
		base = 95
	case result.Turnover != nil:
		base = 60
	case result.NetYards >= 25:
		base = 70
	case result.NetYards >= 12:
		base = 40
	case result.Penalty != nil && !result.Penalty.Declined:
		base = 20
	}
	score := (base*3 + drama) / 4
	if score > 100 {
		score = 100
	}
	return score
}

// CrowdReaction renders a short reaction string from an excitement score.
func CrowdReaction(excitement int) string {
	switch {
	case excitement >= 85:
		return "the crowd erupts"
	case excitement >= 60:
		return "a loud roar from the stands"
	case excitement >= 35:
		return "scattered cheers"
	case excitement >= 15:
		return "a murmur runs through the crowd"
	default:
		return "a quiet, businesslike pause"
	}
}

// ApplyPlay updates StoryState from one resolved play, creating or
// reinforcing narrative threads and evicting the weakest once more than
// maxActiveThreads are live (I9). eventNumber is the play's 1-based
// index in the game, used to timestamp new threads.
func ApplyPlay(story *model.StoryState, result model.PlayResult, possessing model.Side, homeScore, awayScore int, quarter model.Quarter, eventNumber int) {
	lead := homeScore - awayScore
	if lead != 0 {
		side := model.Home
		if lead < 0 {
			side = model.Away
		}
		if !story.HasLeadSide(side) {
			story.LeadChanges++
		}
		story.SetLead(side)
		absLead := lead
		if absLead < 0 {
			absLead = -absLead
		}
		if absLead > story.LargestLead {
			story.LargestLead = absLead
		}
	}

	if result.IsTouchdown || (result.Scoring != nil && result.Scoring.Kind == model.ScoreFieldGoal) {
		story.ScoringDroughtPlays[model.Home] = 0
		story.ScoringDroughtPlays[model.Away] = 0
	} else {
		story.ScoringDroughtPlays[model.Home]++
		story.ScoringDroughtPlays[model.Away]++
	}

	trackStreak(story, result)

	upsertThreads(story, result, possessing, homeScore, awayScore, quarter, eventNumber)

	if len(story.ActiveThreads) > maxActiveThreads {
		evictWeakest(story)
	}
}

func trackStreak(story *model.StoryState, result model.PlayResult) {
	if result.Receiver == nil && result.Passer == nil {
		return
	}
	var idx int
	switch {
	case result.Receiver != nil:
		idx = result.Receiver.Index
	default:
		idx = result.Passer.Index
	}
	streak, ok := story.PlayerStreaks[idx]
	if !ok {
		streak = &model.PlayerStreak{}
		story.PlayerStreaks[idx] = streak
	}
	switch result.Type {
	case model.ResultPassComplete:
		streak.ConsecutiveCompletions++
		streak.ConsecutiveIncompletions = 0
	case model.ResultPassIncomplete, model.ResultInterception:
		streak.ConsecutiveIncompletions++
		streak.ConsecutiveCompletions = 0
	}
	if result.NetYards >= 20 {
		streak.ConsecutiveBigPlays++
	} else {
		streak.ConsecutiveBigPlays = 0
	}
}

func upsertThreads(story *model.StoryState, result model.PlayResult, possessing model.Side, homeScore, awayScore int, quarter model.Quarter, eventNumber int) {
	for idx, streak := range story.PlayerStreaks {
		if streak.ConsecutiveCompletions >= 4 {
			upsertThread(story, model.ThreadHotStreak, fmt.Sprintf("player %d is red hot", idx), 60+streak.ConsecutiveCompletions*5, eventNumber)
		}
		if streak.ConsecutiveIncompletions >= 3 {
			upsertThread(story, model.ThreadColdStreak, fmt.Sprintf("player %d has gone cold", idx), 50+streak.ConsecutiveIncompletions*5, eventNumber)
		}
	}

	if homeScore+awayScore >= 50 {
		thread := findThread(story, model.ThreadShootout)
		if thread == nil {
			upsertThread(story, model.ThreadShootout, "both offenses are clicking", 70, eventNumber)
		} else if quarter == model.Q1 || quarter == model.Q2 {
			// Only boost the shootout thread in the first half; once Q3
			// starts it is left to persist at its last intensity rather
			// than escalating further.
			upsertThread(story, model.ThreadShootout, "both offenses are clicking", 70, eventNumber)
		}
	}

	absLead := homeScore - awayScore
	if absLead < 0 {
		absLead = -absLead
	}
	if absLead == 0 && (quarter == model.Q3 || quarter == model.Q4) && story.LeadChanges >= 2 {
		upsertThread(story, model.ThreadComeback, "the deficit has been erased", 65, eventNumber)
	}
}

func findThread(story *model.StoryState, kind model.ThreadKind) *model.NarrativeThread {
	for i := range story.ActiveThreads {
		if story.ActiveThreads[i].Kind == kind {
			return &story.ActiveThreads[i]
		}
	}
	return nil
}

func upsertThread(story *model.StoryState, kind model.ThreadKind, desc string, intensity, eventNumber int) {
	if intensity > 100 {
		intensity = 100
	}
	if existing := findThread(story, kind); existing != nil {
		existing.Intensity = intensity
		existing.Description = desc
		return
	}
	story.ActiveThreads = append(story.ActiveThreads, model.NarrativeThread{
		Kind:           kind,
		Description:    desc,
		Intensity:      intensity,
		StartedAtEvent: eventNumber,
	})
}

func evictWeakest(story *model.StoryState) {
	weakest := 0
	for i := 1; i < len(story.ActiveThreads); i++ {
		if story.ActiveThreads[i].Intensity < story.ActiveThreads[weakest].Intensity {
			weakest = i
		}
	}
	story.ActiveThreads = append(story.ActiveThreads[:weakest], story.ActiveThreads[weakest+1:]...)
}

// Snapshot produces the public NarrativeSnapshot for a GameEvent, with
// intensity floored at 10 for any thread surfaced to the caller (spec
// §4.9 "intensity-10 floor").
func Snapshot(story *model.StoryState, momentum float64, drama int) model.NarrativeSnapshot {
	var threads []model.NarrativeThread
	for _, th := range story.ActiveThreads {
		if th.Intensity < 10 {
			continue
		}
		threads = append(threads, th)
	}
	return model.NarrativeSnapshot{
		Momentum:      momentum,
		DramaLevel:    drama,
		ActiveThreads: threads,
	}
}
