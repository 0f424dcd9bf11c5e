// Package tables holds every tuning knob, probability table, and yardage
// distribution component C2 names (spec §4, §2). The baseline is
// committed as YAML and embedded into the binary; LoadOverrides
// unmarshals an on-disk override file over the embedded baseline — the
// same embed-then-override idiom as the teacher's edge_config.go. No
// entrypoint calls LoadOverrides, so internal/config's
// TablesOverridePath is not applied.
//
// Tables themselves carry no randomness; internal/rng.RNG and the
// components that call into it are the only places that draw entropy.
package tables

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/proofplay/gridiron/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var baselineYAML []byte

// GaussianParams is a mean/stdDev pair for internal/rng.RNG.Gaussian.
type GaussianParams struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// FieldGoalBand is one entry of the distance-banded FG success table
// (spec §4.4 "lookup table by distance bands").
type FieldGoalBand struct {
	MaxDistance int     `yaml:"max_distance"`
	BaseRate    float64 `yaml:"base_rate"`
}

// PenaltyMeta is the committed metadata for one penalty kind (spec §4.5).
type PenaltyMeta struct {
	Kind              model.PenaltyKind `yaml:"kind"`
	Yards             int               `yaml:"yards"`
	AutoFirstDown     bool              `yaml:"auto_first_down"`
	PreSnap           bool              `yaml:"pre_snap"`
	SpotFoul          bool              `yaml:"spot_foul"`
	FrequencyWeight   float64           `yaml:"frequency_weight"`
	SideBias          string            `yaml:"side_bias"` // "offense" | "defense" | "coinflip"
	PassOnly          bool              `yaml:"pass_only"`
	SpecialTeamsOnly  bool              `yaml:"special_teams_only"`
	LossOfDown        bool              `yaml:"loss_of_down"`
}

type rates struct {
	BigPlayRate               float64 `yaml:"big_play_rate"`
	BigPlayMinBonus            int     `yaml:"big_play_min_bonus"`
	BigPlayMaxBonus            int     `yaml:"big_play_max_bonus"`
	FumbleRate                 float64 `yaml:"fumble_rate"`
	FumbleRateSackMultiplier    float64 `yaml:"fumble_rate_sack_multiplier"`
	FumbleRecoveryDefenseRate   float64 `yaml:"fumble_recovery_defense_rate"`
	FumbleTDRate                float64 `yaml:"fumble_td_rate"`
	SackRateBase                float64 `yaml:"sack_rate_base"`
	SackFumbleRate              float64 `yaml:"sack_fumble_rate"`
	InterceptionRate            float64 `yaml:"interception_rate"`
	PickSixRate                 float64 `yaml:"pick_six_rate"`
	OutOfBoundsRate             float64 `yaml:"out_of_bounds_rate"`
	PenaltyRate                 float64 `yaml:"penalty_rate"`
	InjuryRatePerPlay           float64 `yaml:"injury_rate_per_play"`
	InjuryHighImpactMultiplier  float64 `yaml:"injury_high_impact_multiplier"`
	MaxInjuriesPerGame          int     `yaml:"max_injuries_per_game"`
	OnsideRecoveryRate          float64 `yaml:"onside_recovery_rate"`
	TouchbackRate               float64 `yaml:"touchback_rate"`
	KickoffOOBRate              float64 `yaml:"kickoff_oob_rate"`
	KickoffFairCatchRate        float64 `yaml:"kickoff_fair_catch_rate"`
	PuntMuffedRate              float64 `yaml:"punt_muffed_rate"`
	PuntFairCatchRate           float64 `yaml:"punt_fair_catch_rate"`
	PATBaseRate                 float64 `yaml:"pat_base_rate"`
	TwoPointRunShare            float64 `yaml:"two_point_run_share"`
}

type doc struct {
	Rates            rates                     `yaml:"rates"`
	RunYards         map[string]GaussianParams `yaml:"run_yards"`
	PassYards        map[string]GaussianParams `yaml:"pass_yards"`
	SackYards        GaussianParams            `yaml:"sack_yards"`
	CompletionRates  map[string]float64        `yaml:"completion_rates"`
	ClockElapsed     map[string]GaussianParams `yaml:"clock_elapsed"`
	FieldGoalBands   []FieldGoalBand           `yaml:"field_goal_bands"`
	Penalties        []PenaltyMeta             `yaml:"penalties"`
}

// T is the active tuning set: the embedded baseline, optionally
// overridden by LoadOverrides. It is read-only after process start; the
// engine never mutates it mid-game, so concurrent games may share one T.
var T doc

func init() {
	if err := yaml.Unmarshal(baselineYAML, &T); err != nil {
		panic(fmt.Sprintf("tables: invalid embedded baseline: %v", err))
	}
}

// LoadOverrides unmarshals the YAML file at path over the current T,
// leaving any field the override omits at its baseline value (yaml.v3
// only overwrites fields present in the document).
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tables: read override %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &T); err != nil {
		return fmt.Errorf("tables: parse override %s: %w", path, err)
	}
	return nil
}

// RunYards returns the Gaussian params for a run PlayCallKind.
func RunYards(kind model.PlayCallKind) GaussianParams {
	if p, ok := T.RunYards[string(kind)]; ok {
		return p
	}
	return GaussianParams{Mean: 4.0, StdDev: 3.5}
}

// PassYards returns the Gaussian params for a pass PlayCallKind.
func PassYards(kind model.PlayCallKind) GaussianParams {
	if p, ok := T.PassYards[string(kind)]; ok {
		return p
	}
	return GaussianParams{Mean: 7.0, StdDev: 4.0}
}

// CompletionRate returns the baseline completion rate for a depth.
func CompletionRate(depth model.DepthCategory) float64 {
	if v, ok := T.CompletionRates[string(depth)]; ok {
		return v
	}
	return 0.6
}

// ClockElapsed returns the Gaussian params for one elapsed-time row.
func ClockElapsed(row string) GaussianParams {
	if p, ok := T.ClockElapsed[row]; ok {
		return p
	}
	return GaussianParams{Mean: 30, StdDev: 5}
}

// FieldGoalBaseRate returns the interpolated base success rate for a
// field-goal attempt distance (spec §4.4: "linear interpolation inside
// each band").
func FieldGoalBaseRate(distance int) float64 {
	bands := T.FieldGoalBands
	if len(bands) == 0 {
		return 0.6
	}
	prevMax, prevRate := 0, bands[0].BaseRate
	for _, b := range bands {
		if distance <= b.MaxDistance {
			span := float64(b.MaxDistance - prevMax)
			if span <= 0 {
				return b.BaseRate
			}
			frac := float64(distance-prevMax) / span
			return prevRate + frac*(b.BaseRate-prevRate)
		}
		prevMax, prevRate = b.MaxDistance, b.BaseRate
	}
	return bands[len(bands)-1].BaseRate
}

// Penalties returns the full committed penalty table.
func Penalties() []PenaltyMeta { return T.Penalties }

// Rate accessors — thin named wrappers so call sites read like the spec
// prose (e.g. tables.BigPlayRate()) instead of reaching into T.Rates.
func BigPlayRate() float64              { return T.Rates.BigPlayRate }
func BigPlayBonusRange() (int, int)     { return T.Rates.BigPlayMinBonus, T.Rates.BigPlayMaxBonus }
func FumbleRate() float64               { return T.Rates.FumbleRate }
func FumbleRecoveryDefenseRate() float64 { return T.Rates.FumbleRecoveryDefenseRate }
func FumbleTDRate() float64             { return T.Rates.FumbleTDRate }
func SackRateBase() float64             { return T.Rates.SackRateBase }
func SackFumbleRate() float64           { return T.Rates.SackFumbleRate }
func InterceptionRate() float64         { return T.Rates.InterceptionRate }
func PickSixRate() float64              { return T.Rates.PickSixRate }
func OutOfBoundsRate() float64          { return T.Rates.OutOfBoundsRate }
func PenaltyRate() float64              { return T.Rates.PenaltyRate }
func InjuryRatePerPlay() float64        { return T.Rates.InjuryRatePerPlay }
func InjuryHighImpactMultiplier() float64 { return T.Rates.InjuryHighImpactMultiplier }
func MaxInjuriesPerGame() int           { return T.Rates.MaxInjuriesPerGame }
func OnsideRecoveryRate() float64       { return T.Rates.OnsideRecoveryRate }
func TouchbackRate() float64            { return T.Rates.TouchbackRate }
func KickoffOOBRate() float64           { return T.Rates.KickoffOOBRate }
func KickoffFairCatchRate() float64     { return T.Rates.KickoffFairCatchRate }
func PuntMuffedRate() float64           { return T.Rates.PuntMuffedRate }
func PuntFairCatchRate() float64        { return T.Rates.PuntFairCatchRate }
func PATBaseRate() float64              { return T.Rates.PATBaseRate }
func TwoPointRunShare() float64         { return T.Rates.TwoPointRunShare }
func SackYards() GaussianParams         { return T.SackYards }
