// Package personnel selects the offensive personnel grouping and
// formation for a play (spec §4.4 "pre-snap answers", component C10).
// Selection is a weighted cascade keyed off down, distance, red-zone
// state, and the team's PlayStyle, in the same table-driven-cascade
// shape the teacher's strategy registry uses to pick a trading strategy.
package personnel

import (
	"github.com/proofplay/gridiron/internal/model"
	"github.com/proofplay/gridiron/internal/rng"
)

// Grouping names a personnel package, e.g. "11" = 1 RB, 1 TE, 3 WR.
type Grouping string

const (
	Grouping11 Grouping = "11"
	Grouping12 Grouping = "12"
	Grouping21 Grouping = "21"
	Grouping10 Grouping = "10"
	GroupingGoalLine Grouping = "goal_line"
)

// Formation names the backfield/receiver alignment.
type Formation string

const (
	FormationShotgun    Formation = "shotgun"
	FormationPistol     Formation = "pistol"
	FormationSingleback Formation = "singleback"
	FormationIForm      Formation = "i_form"
	FormationGoalLine   Formation = "goal_line"
	FormationWildcat    Formation = "wildcat"
)

// Selection bundles the personnel and formation chosen for a play.
type Selection struct {
	Grouping  Grouping
	Formation Formation
}

// Select runs the weighted cascade. Goal-line situations (inside the
// 5, or 4th-and-1-or-less anywhere) always use heavy personnel;
// otherwise the grouping and formation are drawn independently,
// weighted by the team's PlayStyle and the current down/distance.
func Select(r *rng.RNG, style model.PlayStyle, down, yardsToGo, ballPosition int, redZone bool) Selection {
	if ballPosition >= 95 || (down == 4 && yardsToGo <= 1) {
		return Selection{Grouping: GroupingGoalLine, Formation: FormationGoalLine}
	}

	grouping, err := rng.WeightedChoice(r, groupingWeights(style, down, yardsToGo, redZone))
	if err != nil {
		grouping = Grouping11
	}
	formation, err := rng.WeightedChoice(r, formationWeights(style, down, yardsToGo))
	if err != nil {
		formation = FormationSingleback
	}
	return Selection{Grouping: grouping, Formation: formation}
}

func groupingWeights(style model.PlayStyle, down, yardsToGo int, redZone bool) []rng.WeightedOption[Grouping] {
	base := []rng.WeightedOption[Grouping]{
		{Value: Grouping11, Weight: 55},
		{Value: Grouping12, Weight: 20},
		{Value: Grouping21, Weight: 15},
		{Value: Grouping10, Weight: 10},
	}
	switch style {
	case model.StylePassHeavy:
		base[0].Weight += 15
		base[3].Weight += 10
	case model.StyleRunHeavy:
		base[1].Weight += 15
		base[2].Weight += 15
	}
	if redZone {
		base[1].Weight += 10
		base[2].Weight += 10
	}
	if down >= 3 && yardsToGo >= 7 {
		base[3].Weight += 15
	}
	return base
}

func formationWeights(style model.PlayStyle, down, yardsToGo int) []rng.WeightedOption[Formation] {
	base := []rng.WeightedOption[Formation]{
		{Value: FormationShotgun, Weight: 40},
		{Value: FormationSingleback, Weight: 30},
		{Value: FormationIForm, Weight: 15},
		{Value: FormationPistol, Weight: 12},
		{Value: FormationWildcat, Weight: 3},
	}
	if style == model.StylePassHeavy || (down >= 3 && yardsToGo >= 5) {
		base[0].Weight += 20
	}
	if style == model.StyleRunHeavy {
		base[2].Weight += 20
	}
	return base
}
