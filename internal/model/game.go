package model

// PlayerGameStats is one player's accumulated stat line for a game.
type PlayerGameStats struct {
	Player Player `json:"player"`

	PassAttempts   int `json:"passAttempts"`
	PassCompletions int `json:"passCompletions"`
	PassYards      int `json:"passYards"`
	PassTDs        int `json:"passTDs"`
	Interceptions  int `json:"interceptions"`

	RushAttempts int `json:"rushAttempts"`
	RushYards    int `json:"rushYards"`
	RushTDs      int `json:"rushTDs"`

	Receptions int `json:"receptions"`
	RecYards   int `json:"recYards"`
	RecTDs     int `json:"recTDs"`

	Sacks         float64 `json:"sacks"`
	Tackles       int     `json:"tackles"`
	ForcedFumbles int     `json:"forcedFumbles"`
	DefInterceptions int  `json:"defInterceptions"`

	FieldGoalsMade    int `json:"fieldGoalsMade"`
	FieldGoalsAttempted int `json:"fieldGoalsAttempted"`

	Punts      int `json:"punts"`
	PuntYards  int `json:"puntYards"`
}

// TeamGameStats is one team's aggregate stat line for a game.
type TeamGameStats struct {
	Side Side `json:"side"`

	TotalYards   int `json:"totalYards"`
	PassingYards int `json:"passingYards"`
	RushingYards int `json:"rushingYards"`

	FirstDowns int `json:"firstDowns"`

	ThirdDownAttempts    int `json:"thirdDownAttempts"`
	ThirdDownConversions int `json:"thirdDownConversions"`
	FourthDownAttempts   int `json:"fourthDownAttempts"`
	FourthDownConversions int `json:"fourthDownConversions"`

	Turnovers int `json:"turnovers"`
	Penalties int `json:"penalties"`
	PenaltyYards int `json:"penaltyYards"`

	TimeOfPossessionSeconds int `json:"timeOfPossessionSeconds"`

	RedZoneAttempts int `json:"redZoneAttempts"`
	RedZoneTDs      int `json:"redZoneTDs"`
}

// BoxScore is the finalized, immutable stat summary for a completed game.
type BoxScore struct {
	Home TeamGameStats `json:"home"`
	Away TeamGameStats `json:"away"`

	HomePlayers []PlayerGameStats `json:"homePlayers"`
	AwayPlayers []PlayerGameStats `json:"awayPlayers"`

	Drives []Drive `json:"drives"`

	ScoringPlays []ScoringResult `json:"scoringPlays"`
}

// MVP names the top game-score player and which side they played for.
type MVP struct {
	Player Player  `json:"player"`
	Side   Side    `json:"side"`
	Score  float64 `json:"score"`
}

// FinalScore is the terminal score of a completed game.
type FinalScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// SimulatedGame is the immutable, completed-game record produced by the
// engine (spec §6 Outputs).
type SimulatedGame struct {
	ID       string   `json:"id"`
	Home     Team     `json:"home"`
	Away     Team     `json:"away"`
	GameType GameType `json:"gameType"`

	Events     []GameEvent `json:"events"`
	FinalScore FinalScore  `json:"finalScore"`

	ServerSeed     string `json:"serverSeed"`
	ServerSeedHash string `json:"serverSeedHash"`
	ClientSeed     string `json:"clientSeed"`
	Nonce          uint64 `json:"nonce"`

	TotalPlays int      `json:"totalPlays"`
	MVP        MVP      `json:"mvp"`
	BoxScore   BoxScore `json:"boxScore"`
	Drives     []Drive  `json:"drives"`
}
