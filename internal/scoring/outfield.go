package scoring

import (
	"math"

	"github.com/hfwleague/fantasy-soccer-backends/internal/fbref"
)

const earlySubPenalty = 5

// Outfield scores one outfield player's record under the bucket's
// coefficient set. Missing stats read as 0 through the record's safe
// getter; the result is rounded half away from zero.
func Outfield(rec fbref.StatRecord, bucket fbref.Bucket, agg fbref.TeamAggregate, rules Rules) int {
	w := WeightsFor(bucket)

	minutes := rec.Get(fbref.StatMinutes)
	completed := rec.Get(fbref.StatPassesCompleted)
	attempted := rec.Get(fbref.StatPassesAttempted)
	shots := rec.Get(fbref.StatShots)
	onTarget := rec.Get(fbref.StatShotsOnTarget)
	takeOnsWon := rec.Get(fbref.StatTakeOnsWon)
	takeOnsAtt := rec.Get(fbref.StatTakeOnsAttempted)
	pensMade := rec.Get(fbref.StatPensMade)

	score := w.AerialsWon*rec.Get(fbref.StatAerialsWon) +
		w.AerialsLost*rec.Get(fbref.StatAerialsLost) +
		w.Tackles*rec.Get(fbref.StatTackles) +
		w.ChallengesLost*rec.Get(fbref.StatChallengesLost) +
		w.Interceptions*rec.Get(fbref.StatInterceptions) +
		w.Clearances*rec.Get(fbref.StatClearances)

	score += w.TeamBase + w.TeamConceded*agg.GoalsConceded + w.TeamScored*agg.GoalsScored

	score += w.DisciplineBase +
		w.Dispossessed*rec.Get(fbref.StatDispossessed) +
		w.FoulsOffsides*(rec.Get(fbref.StatFouls)+rec.Get(fbref.StatOffsides)) +
		w.OwnGoals*rec.Get(fbref.StatOwnGoals) +
		w.Errors*rec.Get(fbref.StatErrors)

	score += completed/w.PassCompletedDiv - (attempted-completed)/w.PassIncompleteDiv
	score += w.KeyPasses * rec.Get(fbref.StatKeyPasses)

	score += w.TakeOnsWon*takeOnsWon + w.TakeOnsLost*(takeOnsAtt-takeOnsWon)

	score += w.BlockedShots*rec.Get(fbref.StatBlockedShots) +
		w.Crosses*rec.Get(fbref.StatCrosses) +
		w.ShotsOnTarget*onTarget +
		(shots-onTarget)/w.OffTargetDiv

	score += minutes / w.MinutesDiv
	score += w.Goals*rec.Get(fbref.StatGoals) + w.Assists*rec.Get(fbref.StatAssists)
	score += w.RedCards * rec.Get(fbref.StatCardsRed)

	score += w.PensConceded * rec.Get(fbref.StatPensConceded)
	score += w.PensMissed * (rec.Get(fbref.StatPensAtt) - pensMade)
	if rec.Get(fbref.StatPensWon) == 1 && pensMade != 1 {
		score += w.PenWonUnconverted
	}

	if rules.EarlySubCleanSheetPenalty &&
		bucket == fbref.BucketDEF && minutes <= 45 && agg.GoalsConceded == 0 {
		score -= earlySubPenalty
	}

	return int(math.Round(score))
}
