package engine

import (
	"fmt"

	"github.com/proofplay/gridiron/internal/injury"
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/narrative"
)

// buildCommentary renders the play-by-play/color/crowd-reaction bundle
// for one archived event (spec §4.11 step 11). PlayByPlay reuses the
// resolver's own Description verbatim, matching its player names through
// narrative.SanitizeName; Color adds a short situational line driven by
// drama/excitement rather than restating the play.
func buildCommentary(result model.PlayResult, drama, excitement int) model.Commentary {
	return model.Commentary{
		PlayByPlay:    narrative.SanitizeName(result.Description),
		Color:         colorLine(result, drama, excitement),
		CrowdReaction: narrative.CrowdReaction(excitement),
		Excitement:    excitement,
	}
}

func colorLine(result model.PlayResult, drama, excitement int) string {
	switch {
	case result.IsTouchdown:
		return "touchdown"
	case result.IsSafety:
		return "safety"
	case result.Turnover != nil && result.Turnover.ReturnedForTD:
		return "pick six, house call"
	case result.Turnover != nil:
		return "turnover"
	case result.Penalty != nil && !result.Penalty.Declined:
		return fmt.Sprintf("flag on the play: %s", result.Penalty.Description)
	case drama >= 80:
		return "tension building with every snap"
	case excitement >= 60:
		return "the crowd is into this one"
	default:
		return ""
	}
}

// rollInjury rolls for a per-play injury using the players directly
// involved (spec §4.10). A severity of InjuryOut records that player in
// their side's homeOut/awayOut set, which availableRosters() filters out
// for the remainder of the game.
func (s *sim) rollInjury(result model.PlayResult, offenseRoster, defenseRoster model.Roster) {
	highImpact := result.IsTouchdown || result.Type == model.ResultSack ||
		(result.Turnover != nil && result.Turnover.ReturnedForTD) || result.NetYards >= 20

	var involved []model.Player
	for _, p := range []*model.Player{result.Rusher, result.Passer, result.Receiver, result.Defender, result.Kicker, result.Punter} {
		if p != nil {
			involved = append(involved, *p)
		}
	}
	if len(involved) == 0 {
		return
	}

	homeInvolved, awayInvolved := splitBySide(involved, offenseRoster, defenseRoster, s.lastOffense)
	inj, err := injury.Roll(s.r, homeInvolved, awayInvolved, highImpact, s.injuriesSoFar)
	if err != nil || inj == nil {
		return
	}

	s.injuriesSoFar++
	if inj.Severity == model.InjuryOut {
		if inj.Side == model.Home {
			s.homeOut[inj.Player.Index] = true
		} else {
			s.awayOut[inj.Player.Index] = true
		}
	}
	if len(s.events) > 0 {
		s.events[len(s.events)-1].Result.Injury = inj
	}
}

func splitBySide(players []model.Player, offenseRoster, defenseRoster model.Roster, offenseSide model.Side) (home, away []model.Player) {
	offenseIdx := make(map[int]bool, len(offenseRoster))
	for _, p := range offenseRoster {
		offenseIdx[p.Index] = true
	}
	for _, p := range players {
		onOffense := offenseIdx[p.Index]
		side := offenseSide
		if !onOffense {
			side = offenseSide.Opponent()
		}
		if side == model.Home {
			home = append(home, p)
		} else {
			away = append(away, p)
		}
	}
	return
}
