package model

// Position is a roster slot. The spec requires at least 11 players per
// side so every position lookup in internal/playgen has a real candidate
// before the emergency-player fallback kicks in (spec §4.12).
type Position string

const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
	PositionOL Position = "OL"
	PositionDL Position = "DL"
	PositionLB Position = "LB"
	PositionCB Position = "CB"
	PositionS  Position = "S"
	PositionK  Position = "K"
	PositionP  Position = "P"
)

// Player is a read-only roster entry for the duration of a game.
// PlayResult/Drive/stats reference players by Index into the roster
// slice they came from (home or away), never by pointer — this keeps the
// data model free of cyclic references and trivially serialisable
// (spec §9 "Cyclic references").
type Player struct {
	Index       int      `json:"index"`
	ID          string   `json:"id"`
	Position    Position `json:"position"`
	Jersey      int      `json:"jersey"`
	Overall     int      `json:"overall"` // 60-99
	Speed       int      `json:"speed"`
	Strength    int      `json:"strength"`
	Awareness   int      `json:"awareness"`
	Clutch      int      `json:"clutch"`
	InjuryProne bool     `json:"injuryProne"`
}

// Roster is an ordered list of players for one team in one game.
type Roster []Player

// ByPosition returns every player at pos, in roster order.
func (r Roster) ByPosition(pos Position) []Player {
	var out []Player
	for _, p := range r {
		if p.Position == pos {
			out = append(out, p)
		}
	}
	return out
}

// EmergencyPlayer synthesizes a replacement-level player for a position
// that has no healthy roster entry left (spec §4.12 "a synthetic
// emergency player"). Index -1 marks it as not a real roster reference.
func EmergencyPlayer(pos Position) Player {
	return Player{
		Index:     -1,
		ID:        "emergency-" + string(pos),
		Position:  pos,
		Jersey:    0,
		Overall:   60,
		Speed:     60,
		Strength:  60,
		Awareness: 60,
		Clutch:    60,
	}
}
