// Package pipeline turns one saved match-report document into the final
// per-player score table. The whole computation is pure and in-memory:
// acquiring the document and presenting the table are the callers' jobs.
package pipeline

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/hfwleague/fantasy-soccer-backends/internal/fbref"
	"github.com/hfwleague/fantasy-soccer-backends/internal/scoring"
)

// ScoreRow is the final output unit. Rows are never mutated after scoring;
// callers may re-sort freely.
type ScoreRow struct {
	Player string       `json:"Player"`
	Team   string       `json:"Team"`
	Pos    fbref.Bucket `json:"pos"`
	Score  int          `json:"score"`
}

// Scorer runs the extraction and scoring pipeline. Zero shared state
// between calls; one Scorer may score documents concurrently.
type Scorer struct {
	Rules         scoring.Rules
	KeeperWeights scoring.KeeperWeights
}

// New returns a Scorer with the canonical rule set.
func New() *Scorer {
	return &Scorer{
		Rules:         scoring.DefaultRules(),
		KeeperWeights: scoring.DefaultKeeperWeights(),
	}
}

// ScoreMatch classifies, merges, aggregates and scores one document.
// Outfield players listed at GK are scored from the goalkeeper tables
// only, so no player appears twice.
func (s *Scorer) ScoreMatch(html string) ([]ScoreRow, error) {
	cls, err := fbref.Classify(html)
	if err != nil {
		return nil, err
	}
	if len(cls.Order) == 0 {
		return nil, errors.WithHint(fbref.ErrNoTablesFound,
			"the document has goalkeeper tables but no outfield player stats tables")
	}

	merged := make(map[string][]fbref.StatRecord, len(cls.Order))
	for _, team := range cls.Order {
		recs, err := fbref.MergeOutfield(cls.Outfield[team])
		if err != nil {
			return nil, errors.Wrapf(err, "team %q", team)
		}
		if len(recs) == 0 {
			return nil, errors.Wrapf(fbref.ErrEmptyTeamData, "team %q", team)
		}
		merged[team] = recs
	}

	aggs := fbref.Aggregates(cls.Order, merged)

	var rows []ScoreRow
	for _, team := range cls.Order {
		agg := aggs[team]
		for _, rec := range merged[team] {
			bucket := fbref.PositionOf(rec.Pos)
			if bucket == fbref.BucketGK {
				continue
			}
			rows = append(rows, ScoreRow{
				Player: rec.Player,
				Team:   agg.Team,
				Pos:    bucket,
				Score:  scoring.Outfield(rec, bucket, agg, s.Rules),
			})
		}
	}

	for _, team := range keeperTeams(cls) {
		recs, err := fbref.MergeKeepers(cls.Keepers[team])
		if err != nil || len(recs) == 0 {
			// A goalkeeper table without a player column loses only the
			// keepers; the outfield rows stand.
			continue
		}
		agg, ok := aggs[team]
		if !ok {
			// Caption drift between the outfield and keeper tables of the
			// same team; degrade to a home clean-slate context.
			agg = fbref.TeamAggregate{Team: fbref.TeamHome}
		}
		for _, rec := range recs {
			rows = append(rows, ScoreRow{
				Player: rec.Player,
				Team:   agg.Team,
				Pos:    fbref.BucketGK,
				Score:  scoring.Keeper(rec, agg, s.KeeperWeights),
			})
		}
	}

	return rows, nil
}

// keeperTeams orders goalkeeper table teams deterministically: discovery
// order first, then any keeper-only team names sorted.
func keeperTeams(cls *fbref.Classified) []string {
	var out []string
	seen := map[string]bool{}
	for _, team := range cls.Order {
		if _, ok := cls.Keepers[team]; ok {
			out = append(out, team)
			seen[team] = true
		}
	}
	var extra []string
	for team := range cls.Keepers {
		if !seen[team] {
			extra = append(extra, team)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// SortRows orders a combined table for presentation: score descending,
// then team and player for a stable tie-break.
func SortRows(rows []ScoreRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		if rows[i].Team != rows[j].Team {
			return rows[i].Team < rows[j].Team
		}
		return rows[i].Player < rows[j].Player
	})
}
