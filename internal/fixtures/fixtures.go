// Package fixtures builds demo teams and rosters for the cmd/ entrypoints.
// Team/roster construction is out of the simulation core's scope (spec §1
// Non-goals: "season and schedule management" is an external collaborator
// concern) — the engine takes them as plain input. This package exists
// only so the CLIs have something concrete to simulate without a database
// or season framework behind them.
package fixtures

import (
	"strconv"

	"github.com/proofplay/gridiron/internal/model"
)

// rosterSlots is the fixed 19-player template every sample roster uses,
// one of every position the play generator and special teams look up
// (spec §4.12 requires at least 11 to avoid the emergency-player path).
var rosterSlots = []model.Position{
	model.PositionQB,
	model.PositionRB, model.PositionRB,
	model.PositionWR, model.PositionWR, model.PositionWR,
	model.PositionTE,
	model.PositionOL, model.PositionOL, model.PositionOL,
	model.PositionDL, model.PositionDL,
	model.PositionLB, model.PositionLB,
	model.PositionCB, model.PositionCB,
	model.PositionS,
	model.PositionK,
	model.PositionP,
}

// Team builds a sample team descriptor with all three ratings pinned to
// rating (clamped to the spec's 70-99 band).
func Team(id, name string, rating int, style model.PlayStyle) model.Team {
	if rating < 70 {
		rating = 70
	}
	if rating > 99 {
		rating = 99
	}
	return model.Team{
		ID:            id,
		Name:          name,
		Abbreviation:  id,
		Conference:    model.ConferenceAFC,
		Division:      model.DivisionNorth,
		OffenseRating: rating,
		DefenseRating: rating,
		SpecialRating: rating,
		PlayStyle:     style,
	}
}

// Roster builds a 19-player sample roster covering every position, with
// every attribute pinned to overall (clamped to the spec's 60-99 band).
func Roster(prefix string, overall int) model.Roster {
	if overall < 60 {
		overall = 60
	}
	if overall > 99 {
		overall = 99
	}
	roster := make(model.Roster, 0, len(rosterSlots))
	for i, pos := range rosterSlots {
		roster = append(roster, model.Player{
			Index:     i,
			ID:        prefix + "-" + string(pos) + strconv.Itoa(i),
			Position:  pos,
			Jersey:    i + 1,
			Overall:   overall,
			Speed:     overall,
			Strength:  overall,
			Awareness: overall,
			Clutch:    overall,
		})
	}
	return roster
}
