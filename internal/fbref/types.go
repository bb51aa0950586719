package fbref

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind labels the stat category a table reports. FBref splits each team's
// outfield stats across six tabbed tables plus a separate goalkeeper table.
type Kind string

const (
	KindSummary    Kind = "summary"
	KindPassing    Kind = "passing"
	KindPassTypes  Kind = "pass_types"
	KindDefense    Kind = "defense"
	KindPossession Kind = "possession"
	KindMisc       Kind = "misc"
	KindKeeper     Kind = "keeper"
	KindUnknown    Kind = "unknown"
)

// Team labels assigned by discovery order: the first team found in the
// document is the home side.
const (
	TeamHome = "Home"
	TeamAway = "Away"
)

// Table is one classified stat table: flattened column names in document
// order plus the raw cell text per row, keyed by column name.
type Table struct {
	Team    string
	Kind    Kind
	Columns []string
	Rows    []map[string]string
}

// StatRecord is one player's merged stat line. Stats maps canonical stat
// keys (and any unmapped source columns) to numeric values.
type StatRecord struct {
	Player string
	Pos    string
	Stats  map[string]float64
}

// Get returns the stat value, or 0 when the key is absent or the source
// cell was unparseable. Formulas never see a missing stat.
func (r StatRecord) Get(key string) float64 {
	v, ok := r.Stats[key]
	if !ok || math.IsNaN(v) {
		return 0
	}
	return v
}

// TeamAggregate carries the team-level context a formula needs alongside a
// player's own line.
type TeamAggregate struct {
	Team          string // TeamHome or TeamAway
	GoalsScored   float64
	GoalsConceded float64
}

// parseStat is the forgiving numeric read used for every cell: blank or
// non-numeric text becomes 0.
func parseStat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	return f
}

var spaceRe = regexp.MustCompile(`\s+`)

// cleanPlayer scrubs a player-name cell: non-breaking spaces, footnote
// marks, collapsed whitespace.
func cleanPlayer(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*+")
	return spaceRe.ReplaceAllString(s, " ")
}
