package fbref

// Aggregates derives team-level goal totals from the merged outfield
// records: a team's goals scored is the sum of its players' goal counts,
// and its goals conceded is the opposing team's sum. The first discovered
// team is labeled Home. A single-team document is a degraded but valid
// case: conceded defaults to 0 and no Away side exists.
//
// Own goals credited to no player row are invisible here; the formulas
// compensate with an own-goal penalty term, not a scored correction.
func Aggregates(order []string, teams map[string][]StatRecord) map[string]TeamAggregate {
	if len(order) == 0 {
		return nil
	}

	goals := make(map[string]float64, len(order))
	for _, team := range order {
		var sum float64
		for _, rec := range teams[team] {
			sum += rec.Get(StatGoals)
		}
		goals[team] = sum
	}

	out := make(map[string]TeamAggregate, len(order))
	home := order[0]
	agg := TeamAggregate{Team: TeamHome, GoalsScored: goals[home]}
	if len(order) > 1 {
		away := order[1]
		agg.GoalsConceded = goals[away]
		out[away] = TeamAggregate{
			Team:          TeamAway,
			GoalsScored:   goals[away],
			GoalsConceded: goals[home],
		}
	}
	out[home] = agg
	return out
}
