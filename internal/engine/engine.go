// Package engine implements the main game loop (spec §4.11, component
// C14): it owns GameState exclusively, and on every iteration composes
// the play caller, defensive coordinator, personnel, play generator,
// penalty engine, turnover engine, clock manager, overtime driver, stats
// accumulator, and narrative tracker into one archived GameEvent.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/overtime"
	"github.com/proofplay/gridiron/internal/rng"
	"github.com/proofplay/gridiron/internal/simerr"
	"github.com/proofplay/gridiron/internal/stats"
)

// safetyCapEvents forces a game over once the event log reaches this
// length, regardless of clock state (spec §4.11 step 13).
const safetyCapEvents = 300

// Input bundles everything the engine needs for one game (spec §6).
type Input struct {
	HomeTeam   model.Team
	AwayTeam   model.Team
	HomeRoster model.Roster
	AwayRoster model.Roster
	GameType   model.GameType

	ServerSeed string // 64 hex chars; generated if empty
	ClientSeed string // 32 hex chars; generated if empty
}

// sim holds every mutable structure the engine owns across the loop.
// GameState itself stays a local value (not a pointer) so each archived
// event's State field is a free copy (spec §9).
type sim struct {
	r      *rng.RNG
	input  Input
	gs     model.GameState
	story  *model.StoryState
	accum  *stats.Accumulator
	momentum float64

	events []model.GameEvent
	drives []model.Drive
	drive  *model.Drive

	homeOut map[int]bool
	awayOut map[int]bool

	injuriesSoFar int
	timestampMS   int64
	nextEventNum  int
	nextDriveNum  int

	// lastOffense is the side that snapped/kicked on the play just
	// resolved, captured before applyOutcome may flip s.gs.Possession.
	lastOffense model.Side

	// Scratch fields threaded from resolveCall to applyOutcome for the
	// handful of call kinds whose field-position outcome depends on more
	// than NetYards/Turnover/Scoring (kickoffs, punts, onside kicks,
	// accepted penalties). Each is cleared by applyOutcome once consumed.
	pendingKickoffSpot     int
	pendingPuntSpot        int
	pendingOnsideRecovered bool

	penaltyApplied   bool
	penaltyDown      int
	penaltyYardsToGo int
}

// Simulate runs one complete game to completion and returns the
// immutable archived record (spec §4.11, §6).
func Simulate(in Input) (model.SimulatedGame, error) {
	if err := validateInput(in); err != nil {
		return model.SimulatedGame{}, err
	}

	serverSeedHex := in.ServerSeed
	if serverSeedHex == "" {
		var err error
		serverSeedHex, err = rng.GenerateServerSeed()
		if err != nil {
			return model.SimulatedGame{}, fmt.Errorf("engine: generate server seed: %w", err)
		}
	}
	clientSeedHex := in.ClientSeed
	if clientSeedHex == "" {
		var err error
		clientSeedHex, err = rng.GenerateClientSeed()
		if err != nil {
			return model.SimulatedGame{}, fmt.Errorf("engine: generate client seed: %w", err)
		}
	}
	serverSeed, err := rng.DecodeHex(serverSeedHex)
	if err != nil {
		return model.SimulatedGame{}, fmt.Errorf("engine: %w", err)
	}
	clientSeed, err := rng.DecodeHex(clientSeedHex)
	if err != nil {
		return model.SimulatedGame{}, fmt.Errorf("engine: %w", err)
	}

	s := &sim{
		r:     rng.New(serverSeed, clientSeed, 0),
		input: in,
		story: model.NewStoryState(),
		accum: stats.NewAccumulator(),

		homeOut: make(map[int]bool),
		awayOut: make(map[int]bool),

		nextEventNum: 1,
		nextDriveNum: 1,
	}
	s.gs = model.GameState{
		GameID:       uuid.NewString(),
		Home:         in.HomeTeam,
		Away:         in.AwayTeam,
		Quarter:      model.Q1,
		Clock:        model.QuarterLength(model.Q1),
		PlayClock:    40,
		Possession:   model.Home,
		Down:         1,
		YardsToGo:    10,
		BallPosition: 35,
		HomeTimeouts: 3,
		AwayTimeouts: 3,
		Kickoff:      true,
		GameType:     in.GameType,
	}

	for !s.isGameOver() {
		if len(s.events) >= safetyCapEvents {
			break
		}
		s.playOnePlay()
	}

	s.endDrive(s.finalDriveResult())

	homeRoster, awayRoster := in.HomeRoster, in.AwayRoster
	box := s.accum.Finalize(homeRoster, awayRoster, s.drives)
	mvp := stats.ComputeMVP(box, in.HomeTeam, in.AwayTeam)

	return model.SimulatedGame{
		ID:       s.gs.GameID,
		Home:     in.HomeTeam,
		Away:     in.AwayTeam,
		GameType: in.GameType,

		Events: s.events,
		FinalScore: model.FinalScore{
			Home: s.gs.HomeScore,
			Away: s.gs.AwayScore,
		},

		ServerSeed:     serverSeedHex,
		ServerSeedHash: rng.HashServerSeed(serverSeedHex),
		ClientSeed:     clientSeedHex,
		Nonce:          s.r.Nonce(),

		TotalPlays: len(s.events),
		MVP:        mvp,
		BoxScore:   box,
		Drives:     s.drives,
	}, nil
}

func (s *sim) isGameOver() bool {
	if s.gs.Quarter == model.Q4 && s.gs.Clock <= 0 {
		if s.gs.HomeScore != s.gs.AwayScore {
			return true
		}
	}
	if s.gs.Quarter == model.OT {
		return overtime.ShouldEndGame(s.gs.GameType, s.gs.Quarter, s.gs.Clock, s.gs.HomeScore, s.gs.AwayScore)
	}
	return false
}

func (s *sim) finalDriveResult() model.DriveResult {
	if s.drive == nil {
		return model.DriveEndOfHalf
	}
	return model.DriveEndOfHalf
}

// availableRosters returns the engine's two rosters filtered of any
// player an InjuryResult has marked "out" so far this game.
func (s *sim) availableRosters() (home, away model.Roster) {
	home = filterOut(s.input.HomeRoster, s.homeOut)
	away = filterOut(s.input.AwayRoster, s.awayOut)
	return
}

func filterOut(roster model.Roster, out map[int]bool) model.Roster {
	if len(out) == 0 {
		return roster
	}
	filtered := make(model.Roster, 0, len(roster))
	for _, p := range roster {
		if !out[p.Index] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *sim) rostersForPossession() (offense, defense model.Roster) {
	home, away := s.availableRosters()
	if s.gs.Possession == model.Home {
		return home, away
	}
	return away, home
}

func clampPos(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampYardsToGo(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// startDrive opens a new Drive at the engine's current possession/spot.
func (s *sim) startDrive() {
	s.drive = &model.Drive{
		DriveNumber:   s.nextDriveNum,
		Team:          s.gs.Possession,
		StartPosition: s.gs.BallPosition,
		StartQuarter:  s.gs.Quarter,
		StartClock:    s.gs.Clock,
		Result:        model.DriveInProgress,
	}
	s.nextDriveNum++
}

// endDrive closes the open drive with result and appends it to the log.
func (s *sim) endDrive(result model.DriveResult) {
	if s.drive == nil {
		return
	}
	s.drive.Result = result
	s.drives = append(s.drives, *s.drive)
	s.drive = nil
}

func (s *sim) recordPlayInDrive(result model.PlayResult) {
	if s.drive == nil {
		return
	}
	s.drive.PlayCount++
	s.drive.NetYards += result.NetYards
	s.drive.ElapsedSeconds += result.ClockElapsed
}

func kickerOf(roster model.Roster) model.Player {
	for _, p := range roster {
		if p.Position == model.PositionK {
			return p
		}
	}
	return model.EmergencyPlayer(model.PositionK)
}

func punterOf(roster model.Roster) model.Player {
	for _, p := range roster {
		if p.Position == model.PositionP {
			return p
		}
	}
	return model.EmergencyPlayer(model.PositionP)
}

// errInvariant wraps an invariant violation in ErrInvariantViolation.
// Simulate performs no invariant checks of its own, so nothing in the
// game loop calls it.
func errInvariant(msg string) error {
	return fmt.Errorf("engine: %s: %w", msg, simerr.ErrInvariantViolation)
}
