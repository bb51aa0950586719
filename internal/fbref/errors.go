package fbref

import "github.com/cockroachdb/errors"

// Structural failures surfaced to callers. Stat-level absence is never an
// error; the safe getter defaults it to 0.
var (
	// ErrNoTablesFound: the document has no recognizable player or
	// goalkeeper stat tables, so it is not a match report.
	ErrNoTablesFound = errors.New("no player stats tables found in document")

	// ErrMissingPlayerColumn: a classified table carries no column whose
	// name contains "player". The table is skipped; fatal only when it
	// leaves a team with no data at all.
	ErrMissingPlayerColumn = errors.New("no player column in any stat table")

	// ErrEmptyTeamData: merging a team's tables produced zero player rows.
	ErrEmptyTeamData = errors.New("team merged to zero player rows")
)
