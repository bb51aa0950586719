package fbref

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// The source appends a totals/footer row named like "16 Players"; any row
// whose player cell contains this marker is excluded before merging.
const aggregateRowMarker = "Players"

// playerColumn finds the player-identifying column by case-insensitive
// substring match.
func playerColumn(cols []string) string {
	for _, c := range cols {
		if strings.Contains(strings.ToLower(c), "player") {
			return c
		}
	}
	return ""
}

// posColumn finds a position column, avoiding false hits like expected-goal
// or possession headers. Must be given raw source columns: canonical keys
// such as "dispossessed" would match after renaming.
func posColumn(cols []string) string {
	for _, c := range cols {
		lc := strings.ToLower(c)
		if strings.Contains(lc, "pos") && !strings.Contains(lc, "xg") && !strings.Contains(lc, "pass") {
			return c
		}
	}
	return ""
}

// MergeOutfield joins one team's outfield stat-category tables into one
// record per player.
func MergeOutfield(tables []Table) ([]StatRecord, error) {
	return mergeTables(tables, outfieldRenames)
}

// MergeKeepers builds the per-goalkeeper records from a team's goalkeeper
// tables (normally exactly one).
func MergeKeepers(tables []Table) ([]StatRecord, error) {
	return mergeTables(tables, keeperRenames)
}

// mergeTables performs a left join on player name across the tables, in
// document order. The first usable table defines the roster: later tables
// only fill stats its rows do not already have, and players absent from
// the roster are dropped. Duplicate columns resolve first-table-wins, so
// every canonical stat has a single unambiguous value.
func mergeTables(tables []Table, renames map[string]string) ([]StatRecord, error) {
	var recs []StatRecord
	index := map[string]int{}
	usable := 0

	for _, t := range tables {
		pcol := playerColumn(t.Columns)
		if pcol == "" {
			continue
		}
		usable++
		scol := posColumn(t.Columns)
		nt := Normalize(t, renames)
		roster := len(recs) > 0

		for _, row := range nt.Rows {
			name := cleanPlayer(row[pcol])
			if name == "" || strings.Contains(name, aggregateRowMarker) {
				continue
			}

			var rec *StatRecord
			if i, ok := index[name]; ok {
				rec = &recs[i]
			} else if roster {
				// Roster is defined by the first table; drift rows in
				// later tables are dropped.
				continue
			} else {
				index[name] = len(recs)
				recs = append(recs, StatRecord{Player: name, Stats: map[string]float64{}})
				rec = &recs[len(recs)-1]
			}

			if rec.Pos == "" && scol != "" {
				rec.Pos = strings.TrimSpace(row[scol])
			}
			for _, col := range nt.Columns {
				if col == pcol || col == scol {
					continue
				}
				v, ok := row[col]
				if !ok {
					continue
				}
				if _, exists := rec.Stats[col]; !exists {
					rec.Stats[col] = parseStat(v)
				}
			}
		}
	}

	if usable == 0 && len(tables) > 0 {
		return nil, errors.WithDetailf(ErrMissingPlayerColumn,
			"%d table(s) scanned", len(tables))
	}
	return recs, nil
}
