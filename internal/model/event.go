package model

// Commentary is a rendered template bundle for one play.
type Commentary struct {
	PlayByPlay     string `json:"playByPlay"`
	Color          string `json:"color"`
	CrowdReaction  string `json:"crowdReaction"`
	Excitement     int    `json:"excitement"` // 0-100
}

// NarrativeSnapshot is the public, filtered view of story state attached
// to a GameEvent (intensity-10 floor applied, spec §4.9).
type NarrativeSnapshot struct {
	Momentum     float64            `json:"momentum"` // [-100,100], positive favours home
	DramaLevel   int                `json:"dramaLevel"`
	ActiveThreads []NarrativeThread `json:"activeThreads"`
}

// GameEvent is one immutable, archived play with its post-play state.
type GameEvent struct {
	EventNumber int               `json:"eventNumber"` // monotonic from 1
	Result      PlayResult        `json:"result"`
	Commentary  Commentary        `json:"commentary"`
	State       GameState         `json:"state"` // deep copy is free: GameState is scalars
	Narrative   NarrativeSnapshot `json:"narrative"`
	TimestampMS int64             `json:"timestampMs"` // synthetic playback cursor, non-decreasing
	DriveNumber int               `json:"driveNumber"`
}
