package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hfwleague/fantasy-soccer-backends/internal/fbref"
)

func TestKeeper_PinnedCleanSheet(t *testing.T) {
	rec := statRec(map[string]float64{
		fbref.StatMinutes: 90,
		fbref.StatSaves:   3,
	})
	agg := fbref.TeamAggregate{Team: fbref.TeamHome, GoalsConceded: 0}

	// 9 minutes + 12 clean sheet + 5 conceded base + 9 saves.
	require.Equal(t, 35, Keeper(rec, agg, DefaultKeeperWeights()))
}

func TestKeeper_ConcededFromAggregateNotColumn(t *testing.T) {
	// The table's GA column says 0, the match aggregate says 1: the
	// aggregate wins, so no clean sheet and one goal docked.
	rec := statRec(map[string]float64{
		fbref.StatMinutes:      90,
		fbref.StatSaves:        3,
		fbref.StatGoalsAgainst: 0,
	})
	agg := fbref.TeamAggregate{Team: fbref.TeamHome, GoalsConceded: 1}
	require.Equal(t, 18, Keeper(rec, agg, DefaultKeeperWeights()))
}

func TestKeeper_NoSaves(t *testing.T) {
	rec := statRec(map[string]float64{fbref.StatMinutes: 90})
	agg := fbref.TeamAggregate{Team: fbref.TeamAway, GoalsConceded: 0}
	require.Equal(t, 26, Keeper(rec, agg, DefaultKeeperWeights()))
}

func TestKeeper_CleanSheetNeedsSixtyMinutes(t *testing.T) {
	rec := statRec(map[string]float64{fbref.StatMinutes: 59})
	agg := fbref.TeamAggregate{Team: fbref.TeamHome, GoalsConceded: 0}
	// 5.9 minutes + 5 conceded base, no clean-sheet bonus.
	require.Equal(t, 11, Keeper(rec, agg, DefaultKeeperWeights()))

	rec = statRec(map[string]float64{fbref.StatMinutes: 60})
	// Exactly 60 qualifies: 6 + 12 + 5.
	require.Equal(t, 23, Keeper(rec, agg, DefaultKeeperWeights()))
}

func TestKeeper_Floor(t *testing.T) {
	rec := statRec(map[string]float64{fbref.StatMinutes: 90})
	agg := fbref.TeamAggregate{Team: fbref.TeamHome, GoalsConceded: 5}
	// 9 + 5 - 25 = -11, clamped to the floor.
	require.Equal(t, 5, Keeper(rec, agg, DefaultKeeperWeights()))
}

func TestKeeper_AllTerms(t *testing.T) {
	rec := statRec(map[string]float64{
		fbref.StatMinutes:        90,
		fbref.StatSaves:          3,
		fbref.StatPensSaved:      1,
		fbref.StatCrossesStopped: 2,
		fbref.StatSweeperActions: 2,
		fbref.StatErrors:         1,
		fbref.StatCardsYellow:    1,
	})
	agg := fbref.TeamAggregate{Team: fbref.TeamHome, GoalsConceded: 1}
	// 18 base case + 15 pen save + 2 crosses + 3 sweeper - 7.5 error - 3 yellow = 27.5.
	require.Equal(t, 28, Keeper(rec, agg, DefaultKeeperWeights()))
}

func TestKeeper_Deterministic(t *testing.T) {
	rec := statRec(map[string]float64{fbref.StatMinutes: 90, fbref.StatSaves: 4})
	agg := fbref.TeamAggregate{Team: fbref.TeamAway, GoalsConceded: 2}
	first := Keeper(rec, agg, DefaultKeeperWeights())
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Keeper(rec, agg, DefaultKeeperWeights()))
	}
}
