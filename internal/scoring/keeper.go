package scoring

import (
	"math"

	"github.com/hfwleague/fantasy-soccer-backends/internal/fbref"
)

// Keeper scores a goalkeeper record. Goals conceded comes from the team
// aggregate, not the table's GA column, so keepers and outfield players
// are judged against the same match state. The result never drops below
// the configured floor.
func Keeper(rec fbref.StatRecord, agg fbref.TeamAggregate, w KeeperWeights) int {
	minutes := rec.Get(fbref.StatMinutes)

	score := w.Minutes * minutes
	if minutes >= w.CleanSheetMinutes && agg.GoalsConceded == 0 {
		score += w.CleanSheetBonus
	}
	score += w.ConcededBase + w.Conceded*agg.GoalsConceded
	score += w.Saves * rec.Get(fbref.StatSaves)
	score += w.PensSaved * rec.Get(fbref.StatPensSaved)
	score += w.PensConceded * rec.Get(fbref.StatPensConceded)
	score += w.CrossesStopped * rec.Get(fbref.StatCrossesStopped)
	score += w.SweeperActions * rec.Get(fbref.StatSweeperActions)
	score += w.ErrorsLeadingGoal * rec.Get(fbref.StatErrors)
	score += w.YellowCards * rec.Get(fbref.StatCardsYellow)
	score += w.RedCards * rec.Get(fbref.StatCardsRed)
	score += w.OwnGoals * rec.Get(fbref.StatOwnGoals)

	if score < w.Floor {
		score = w.Floor
	}
	return int(math.Round(score))
}
