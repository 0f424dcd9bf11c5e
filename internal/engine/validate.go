package engine

import (
	"fmt"

	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/simerr"
)

const minRosterSize = 11

func validateInput(in Input) error {
	if len(in.HomeRoster) < minRosterSize {
		return fmt.Errorf("engine: home roster has %d players, need >=%d: %w", len(in.HomeRoster), minRosterSize, simerr.ErrEmptyRoster)
	}
	if len(in.AwayRoster) < minRosterSize {
		return fmt.Errorf("engine: away roster has %d players, need >=%d: %w", len(in.AwayRoster), minRosterSize, simerr.ErrEmptyRoster)
	}
	switch in.GameType {
	case model.GameRegular, model.GameWildCard, model.GameDivisional, model.GameConferenceChampionship, model.GameSuperBowl:
	default:
		return fmt.Errorf("engine: gameType %q: %w", in.GameType, simerr.ErrUnsupportedGameType)
	}
	return nil
}
