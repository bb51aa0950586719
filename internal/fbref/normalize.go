package fbref

// Canonical stat keys. This vocabulary is the single source of truth: the
// scoring formulas read only these names, and the rename tables below map
// every known source spelling onto them. Names follow the source site's
// data-stat identifiers.
const (
	StatMinutes          = "minutes"
	StatGoals            = "goals"
	StatAssists          = "assists"
	StatPensMade         = "pens_made"
	StatPensAtt          = "pens_att"
	StatPensWon          = "pens_won"
	StatPensConceded     = "pens_conceded"
	StatPensSaved        = "pens_saved"
	StatShots            = "shots"
	StatShotsOnTarget    = "shots_on_target"
	StatCardsYellow      = "cards_yellow"
	StatCardsRed         = "cards_red"
	StatTackles          = "tackles"
	StatInterceptions    = "interceptions"
	StatBlockedShots     = "blocked_shots"
	StatClearances       = "clearances"
	StatErrors           = "errors"
	StatChallengesLost   = "challenges_lost"
	StatPassesCompleted  = "passes_completed"
	StatPassesAttempted  = "passes_attempted"
	StatKeyPasses        = "key_passes"
	StatCrosses          = "crosses"
	StatTakeOnsAttempted = "take_ons_attempted"
	StatTakeOnsWon       = "take_ons_won"
	StatDispossessed     = "dispossessed"
	StatAerialsWon       = "aerials_won"
	StatAerialsLost      = "aerials_lost"
	StatFouls            = "fouls"
	StatOffsides         = "offsides"
	StatOwnGoals         = "own_goals"
	StatGoalsAgainst     = "goals_against"
	StatSaves            = "saves"
	StatCrossesStopped   = "crosses_stopped"
	StatSweeperActions   = "def_actions_outside_pen_area"
)

// outfieldRenames maps source header spellings to canonical keys. Both the
// flattened two-level form ("Performance_Gls") and the bare form ("Gls",
// when the over-header cell is blank) appear across document revisions.
var outfieldRenames = map[string]string{
	"Min": StatMinutes,

	"Performance_Gls":   StatGoals, // summary table
	"Gls":               StatGoals,
	"Performance_Ast":   StatAssists,
	"Ast":               StatAssists,
	"Performance_PK":    StatPensMade,
	"PK":                StatPensMade,
	"Performance_PKatt": StatPensAtt,
	"PKatt":             StatPensAtt,
	"Performance_PKwon": StatPensWon,
	"PKwon":             StatPensWon,
	"Performance_PKcon": StatPensConceded,
	"PKcon":             StatPensConceded,
	"Performance_Sh":    StatShots,
	"Sh":                StatShots,
	"Performance_SoT":   StatShotsOnTarget,
	"SoT":               StatShotsOnTarget,
	"Performance_CrdY":  StatCardsYellow,
	"CrdY":              StatCardsYellow,
	"Performance_CrdR":  StatCardsRed,
	"CrdR":              StatCardsRed,
	"Performance_Tkl":   StatTackles,
	"Tackles_Tkl":       StatTackles, // defense table spelling
	"Tkl":               StatTackles,
	"Performance_Int":   StatInterceptions,
	"Int":               StatInterceptions,
	"Performance_Crs":   StatCrosses,
	"Crs":               StatCrosses,
	"Performance_Fls":   StatFouls,
	"Fls":               StatFouls,
	"Performance_Off":   StatOffsides,
	"Off":               StatOffsides,
	"Performance_OG":    StatOwnGoals,
	"OG":                StatOwnGoals,

	"Passes_Cmp": StatPassesCompleted,
	"Total_Cmp":  StatPassesCompleted, // passing table groups totals under "Total"
	"Cmp":        StatPassesCompleted,
	"Passes_Att": StatPassesAttempted,
	"Total_Att":  StatPassesAttempted,
	"Att":        StatPassesAttempted,
	"KP":         StatKeyPasses,

	"Clr":             StatClearances,
	"Err":             StatErrors,
	"Blocks_Sh":       StatBlockedShots,
	"Blocks":          StatBlockedShots,
	"Challenges_Lost": StatChallengesLost,

	"Carries_Dis":   StatDispossessed,
	"Dis":           StatDispossessed,
	"Take-Ons_Att":  StatTakeOnsAttempted,
	"Take-Ons_Succ": StatTakeOnsWon,
	"Succ":          StatTakeOnsWon,

	"Aerial Duels_Won":  StatAerialsWon,
	"Won":               StatAerialsWon,
	"Aerial Duels_Lost": StatAerialsLost,
	"Lost":              StatAerialsLost,
}

// keeperRenames covers the separately-reported goalkeeper table.
var keeperRenames = map[string]string{
	"Min": StatMinutes,

	"Shot Stopping_GA":    StatGoalsAgainst,
	"GA":                  StatGoalsAgainst,
	"Shot Stopping_Saves": StatSaves,
	"Saves":               StatSaves,

	"Penalty Kicks_PKsv": StatPensSaved,
	"PKsv":               StatPensSaved,
	"Performance_PKcon":  StatPensConceded,
	"PKcon":              StatPensConceded,

	"Crosses_Stp": StatCrossesStopped,
	"Stp":         StatCrossesStopped,

	"Sweeper_#OPA": StatSweeperActions,
	"#OPA":         StatSweeperActions,

	"Performance_CrdY": StatCardsYellow,
	"CrdY":             StatCardsYellow,
	"Performance_CrdR": StatCardsRed,
	"CrdR":             StatCardsRed,
	"Performance_OG":   StatOwnGoals,
	"OG":               StatOwnGoals,
	"Err":              StatErrors,
}

// Normalize returns a copy of t with known columns renamed to canonical
// keys. Unmapped columns pass through unchanged for later disambiguation.
// When two source columns collapse onto one canonical key the earlier
// column wins. Pure and idempotent: canonical keys are never map keys.
func Normalize(t Table, renames map[string]string) Table {
	out := Table{Team: t.Team, Kind: t.Kind}
	mapping := make(map[string]string, len(t.Columns))
	seen := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		name := col
		if canon, ok := renames[col]; ok {
			name = canon
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		mapping[col] = name
		out.Columns = append(out.Columns, name)
	}
	for _, row := range t.Rows {
		nr := make(map[string]string, len(row))
		for col, v := range row {
			if name, ok := mapping[col]; ok {
				nr[name] = v
			}
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// NormalizeOutfield applies the outfield rename table.
func NormalizeOutfield(t Table) Table { return Normalize(t, outfieldRenames) }

// NormalizeKeeper applies the goalkeeper rename table.
func NormalizeKeeper(t Table) Table { return Normalize(t, keeperRenames) }
