package model

// Quarter identifies the current period of play.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
	OT Quarter = "OT"
)

// Side is which team currently holds the ball, or committed an event.
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Home {
		return Away
	}
	return Home
}

// GameType governs overtime rules (spec §6, §4.3).
type GameType string

const (
	GameRegular                 GameType = "regular"
	GameWildCard                GameType = "wild_card"
	GameDivisional               GameType = "divisional"
	GameConferenceChampionship  GameType = "conference_championship"
	GameSuperBowl               GameType = "super_bowl"
)

// IsPlayoff reports whether gt is a playoff game type (OT continues to a
// winner rather than potentially ending tied).
func (gt GameType) IsPlayoff() bool {
	return gt != GameRegular
}

// GameState is the engine's single, exclusively-owned mutable record of
// one simulated game (spec §3). Every other component receives an
// immutable copy (GameState is a value type of scalars, so a copy is
// free per spec §9) and returns a derived value or diff; only the engine
// mutates the authoritative copy.
type GameState struct {
	GameID string
	Home   Team
	Away   Team

	HomeScore int
	AwayScore int

	Quarter Quarter
	Clock   float64 // seconds remaining in the period
	PlayClock int    // seconds

	Possession Side

	Down        int // 1-4
	YardsToGo   int // >=1
	BallPosition int // 0-100, yards from possessing team's own goal line

	HomeTimeouts int // 0-3
	AwayTimeouts int // 0-3

	IsClockRunning   bool
	TwoMinuteWarningQ2 bool
	TwoMinuteWarningQ4 bool
	IsHalftime bool

	Kickoff     bool
	PATAttempt  bool

	GameType GameType
}

// QuarterLength returns the regulation/overtime period length in seconds.
func QuarterLength(q Quarter) float64 {
	if q == OT {
		return 600
	}
	return 900
}

// Lead returns home score minus away score.
func (gs GameState) Lead() int { return gs.HomeScore - gs.AwayScore }

// PossessionTeam returns the Team currently on offense.
func (gs GameState) PossessionTeam() Team {
	if gs.Possession == Home {
		return gs.Home
	}
	return gs.Away
}

// DefenseTeam returns the Team currently on defense.
func (gs GameState) DefenseTeam() Team {
	if gs.Possession == Home {
		return gs.Away
	}
	return gs.Home
}

// PossessionTimeouts returns the timeout count for the possessing side.
func (gs GameState) PossessionTimeouts() int {
	if gs.Possession == Home {
		return gs.HomeTimeouts
	}
	return gs.AwayTimeouts
}

// OpponentTimeouts returns the timeout count for the non-possessing side.
func (gs GameState) OpponentTimeouts() int {
	if gs.Possession == Home {
		return gs.AwayTimeouts
	}
	return gs.HomeTimeouts
}

// PossessionScore returns the current score for the possessing side.
func (gs GameState) PossessionScore() int {
	if gs.Possession == Home {
		return gs.HomeScore
	}
	return gs.AwayScore
}

// OpponentScore returns the current score for the non-possessing side.
func (gs GameState) OpponentScore() int {
	if gs.Possession == Home {
		return gs.AwayScore
	}
	return gs.HomeScore
}

// PossessionLead returns PossessionScore - OpponentScore.
func (gs GameState) PossessionLead() int {
	return gs.PossessionScore() - gs.OpponentScore()
}
