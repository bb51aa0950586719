// Package scoring computes fantasy point values from a player's merged
// stat record plus the team-level goal aggregates. One weighted-sum
// formula per outfield bucket and a separate goalkeeper formula; all
// coefficients live here as replaceable policy, not hidden in code paths.
package scoring

import "github.com/hfwleague/fantasy-soccer-backends/internal/fbref"

// OutfieldWeights holds every coefficient of the outfield formula.
// Penalty terms carry negative signs in the values; the completed-pass,
// off-target-shot and minutes terms are divisors.
type OutfieldWeights struct {
	AerialsWon     float64
	AerialsLost    float64
	Tackles        float64
	ChallengesLost float64
	Interceptions  float64
	Clearances     float64

	// Team-defense component: TeamBase + TeamConceded*conceded + TeamScored*scored.
	TeamBase     float64
	TeamConceded float64
	TeamScored   float64

	// Discipline-and-execution component.
	DisciplineBase float64
	Dispossessed   float64
	FoulsOffsides  float64
	OwnGoals       float64
	Errors         float64

	PassCompletedDiv  float64
	PassIncompleteDiv float64
	KeyPasses         float64

	TakeOnsWon  float64
	TakeOnsLost float64

	BlockedShots  float64
	Crosses       float64
	ShotsOnTarget float64
	OffTargetDiv  float64

	MinutesDiv float64
	Goals      float64
	Assists    float64
	RedCards   float64

	PensConceded float64
	PensMissed   float64
	// Flat bonus when the player won a penalty but did not convert it.
	PenWonUnconverted float64
}

var defWeights = OutfieldWeights{
	AerialsWon: 1.9, AerialsLost: -1.5,
	Tackles: 2.7, ChallengesLost: -1.6, Interceptions: 2.7, Clearances: 1.1,
	TeamBase: 10, TeamConceded: -5, TeamScored: 0,
	DisciplineBase: 3, Dispossessed: -1.2, FoulsOffsides: -0.6, OwnGoals: -3.5, Errors: -5,
	PassCompletedDiv: 9, PassIncompleteDiv: 4.5, KeyPasses: 2.5,
	TakeOnsWon: 2.5, TakeOnsLost: -0.8,
	BlockedShots: 1.1, Crosses: 1.2, ShotsOnTarget: 2.5, OffTargetDiv: 2,
	MinutesDiv: 30, Goals: 10, Assists: 8, RedCards: -5,
	PensConceded: -5, PensMissed: -5, PenWonUnconverted: 6.4,
}

var midWeights = OutfieldWeights{
	AerialsWon: 1.7, AerialsLost: -1.5,
	Tackles: 2.6, ChallengesLost: -1.2, Interceptions: 2.5, Clearances: 1.1,
	TeamBase: 4, TeamConceded: -2, TeamScored: 2,
	DisciplineBase: 3, Dispossessed: -1.1, FoulsOffsides: -0.6, OwnGoals: -3.3, Errors: -5,
	PassCompletedDiv: 6.6, PassIncompleteDiv: 3.2, KeyPasses: 2.5,
	TakeOnsWon: 2.9, TakeOnsLost: -0.8,
	BlockedShots: 1.1, Crosses: 1.2, ShotsOnTarget: 2.2, OffTargetDiv: 4,
	MinutesDiv: 30, Goals: 10, Assists: 8, RedCards: -5,
	PensConceded: -5, PensMissed: -5, PenWonUnconverted: 6.4,
}

var fwdWeights = OutfieldWeights{
	AerialsWon: 1.4, AerialsLost: -0.4,
	Tackles: 2.6, ChallengesLost: -1.0, Interceptions: 2.7, Clearances: 0.8,
	TeamBase: 0, TeamConceded: 0, TeamScored: 3,
	DisciplineBase: 5, Dispossessed: -0.9, FoulsOffsides: -0.5, OwnGoals: -3.0, Errors: -5,
	PassCompletedDiv: 6, PassIncompleteDiv: 8, KeyPasses: 2.5,
	TakeOnsWon: 3.0, TakeOnsLost: -1.0,
	BlockedShots: 0.8, Crosses: 1.2, ShotsOnTarget: 3.0, OffTargetDiv: 3,
	MinutesDiv: 30, Goals: 10, Assists: 8, RedCards: -5,
	PensConceded: -5, PensMissed: -5, PenWonUnconverted: 6.4,
}

// WeightsFor returns the coefficient set for an outfield bucket. GK and
// anything unexpected score as MID, mirroring the position fallback.
func WeightsFor(b fbref.Bucket) OutfieldWeights {
	switch b {
	case fbref.BucketDEF:
		return defWeights
	case fbref.BucketFWD:
		return fwdWeights
	default:
		return midWeights
	}
}

// KeeperWeights holds the goalkeeper formula coefficients. Past revisions
// of the house sheet disagreed on the small terms; this is the canonical
// set, and alternates are a config change here rather than a code fork.
type KeeperWeights struct {
	Minutes           float64
	CleanSheetBonus   float64
	CleanSheetMinutes float64
	ConcededBase      float64
	Conceded          float64
	Saves             float64
	PensSaved         float64
	PensConceded      float64
	CrossesStopped    float64
	SweeperActions    float64
	ErrorsLeadingGoal float64
	YellowCards       float64
	RedCards          float64
	OwnGoals          float64
	Floor             float64
}

// DefaultKeeperWeights returns the canonical goalkeeper coefficients.
func DefaultKeeperWeights() KeeperWeights {
	return KeeperWeights{
		Minutes:           0.1,
		CleanSheetBonus:   12,
		CleanSheetMinutes: 60,
		ConcededBase:      5,
		Conceded:          -5,
		Saves:             3,
		PensSaved:         15,
		PensConceded:      -5,
		CrossesStopped:    1,
		SweeperActions:    1.5,
		ErrorsLeadingGoal: -7.5,
		YellowCards:       -3,
		RedCards:          -10,
		OwnGoals:          -5,
		Floor:             5,
	}
}

// Rules are the named, toggleable scoring rules whose intent the house
// sheet left ambiguous.
type Rules struct {
	// EarlySubCleanSheetPenalty docks a defender 5 points when the team
	// kept a clean sheet but the player logged 45 minutes or fewer.
	EarlySubCleanSheetPenalty bool
}

// DefaultRules enables every rule as the source sheet applied them.
func DefaultRules() Rules {
	return Rules{EarlySubCleanSheetPenalty: true}
}
