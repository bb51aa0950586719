package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hfwleague/fantasy-soccer-backends/internal/fbref"
)

const matchReport = `<html><body>
<table id="stats_alpha_summary">
<caption>Alpha FC Player Stats Table</caption>
<thead>
<tr><th colspan="3"></th><th colspan="3">Performance</th><th colspan="2">Passes</th></tr>
<tr><th>Player</th><th>Pos</th><th>Min</th><th>Gls</th><th>Tkl</th><th>Int</th><th>Cmp</th><th>Att</th></tr>
</thead>
<tbody>
<tr><th>Andre Silva</th><td>CB</td><td>90</td><td>0</td><td>3</td><td>2</td><td>40</td><td>50</td></tr>
<tr><th>Gian Keeper</th><td>GK</td><td>90</td><td>0</td><td>0</td><td>0</td><td>10</td><td>12</td></tr>
<tr><th>2 Players</th><td></td><td>180</td><td>0</td><td>3</td><td>2</td><td>50</td><td>62</td></tr>
</tbody>
</table>
<table id="stats_beta_summary">
<caption>Beta United Player Stats Table</caption>
<thead>
<tr><th colspan="3"></th><th colspan="2">Performance</th></tr>
<tr><th>Player</th><th>Pos</th><th>Min</th><th>Gls</th><th>SoT</th></tr>
</thead>
<tbody>
<tr><th>Bruno Wing</th><td>LW</td><td>90</td><td>1</td><td>2</td></tr>
</tbody>
</table>
<table id="keeper_stats_alpha">
<caption>Alpha FC Goalkeeper Stats Table</caption>
<thead>
<tr><th colspan="2"></th><th colspan="2">Shot Stopping</th></tr>
<tr><th>Player</th><th>Min</th><th>GA</th><th>Saves</th></tr>
</thead>
<tbody>
<tr><th>Gian Keeper</th><td>90</td><td>1</td><td>3</td></tr>
</tbody>
</table>
<table id="keeper_stats_beta">
<caption>Beta United Goalkeeper Stats Table</caption>
<thead>
<tr><th colspan="2"></th><th colspan="2">Shot Stopping</th></tr>
<tr><th>Player</th><th>Min</th><th>GA</th><th>Saves</th></tr>
</thead>
<tbody>
<tr><th>Kurt Glove</th><td>90</td><td>0</td><td>0</td></tr>
</tbody>
</table>
</body></html>`

func TestScoreMatch(t *testing.T) {
	rows, err := New().ScoreMatch(matchReport)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	SortRows(rows)
	require.Equal(t, []ScoreRow{
		{Player: "Andre Silva", Team: fbref.TeamHome, Pos: fbref.BucketDEF, Score: 27},
		{Player: "Bruno Wing", Team: fbref.TeamAway, Pos: fbref.BucketFWD, Score: 26},
		{Player: "Kurt Glove", Team: fbref.TeamAway, Pos: fbref.BucketGK, Score: 26},
		{Player: "Gian Keeper", Team: fbref.TeamHome, Pos: fbref.BucketGK, Score: 18},
	}, rows)
}

func TestScoreMatch_KeeperRowNotScoredAsOutfield(t *testing.T) {
	rows, err := New().ScoreMatch(matchReport)
	require.NoError(t, err)

	seen := 0
	for _, r := range rows {
		if r.Player == "Gian Keeper" {
			seen++
			require.Equal(t, fbref.BucketGK, r.Pos)
		}
	}
	require.Equal(t, 1, seen, "keeper must appear exactly once")
}

func TestScoreMatch_SingleTeamDocument(t *testing.T) {
	doc := `<table id="stats_alpha_summary">
<caption>Alpha FC Player Stats Table</caption>
<thead>
<tr><th colspan="3"></th><th colspan="3">Performance</th><th colspan="2">Passes</th></tr>
<tr><th>Player</th><th>Pos</th><th>Min</th><th>Gls</th><th>Tkl</th><th>Int</th><th>Cmp</th><th>Att</th></tr>
</thead>
<tbody>
<tr><th>Andre Silva</th><td>CB</td><td>90</td><td>0</td><td>3</td><td>2</td><td>40</td><td>50</td></tr>
<tr><th>Gian Keeper</th><td>GK</td><td>90</td><td>0</td><td>0</td><td>0</td><td>10</td><td>12</td></tr>
</tbody>
</table>`

	rows, err := New().ScoreMatch(doc)
	require.NoError(t, err)
	// Conceded defaults to 0, so the defender keeps the full team base.
	require.Equal(t, []ScoreRow{
		{Player: "Andre Silva", Team: fbref.TeamHome, Pos: fbref.BucketDEF, Score: 32},
	}, rows)
}

func TestScoreMatch_NoTables(t *testing.T) {
	_, err := New().ScoreMatch(`<html><body><p>postponed</p></body></html>`)
	require.ErrorIs(t, err, fbref.ErrNoTablesFound)
}

func TestScoreMatch_KeeperOnlyDocument(t *testing.T) {
	doc := `<table id="keeper_stats_alpha">
<caption>Alpha FC Goalkeeper Stats Table</caption>
<thead><tr><th>Player</th><th>Min</th></tr></thead>
<tbody><tr><th>Gian Keeper</th><td>90</td></tr></tbody>
</table>`
	_, err := New().ScoreMatch(doc)
	require.ErrorIs(t, err, fbref.ErrNoTablesFound)
}

func TestScoreMatch_EmptyTeam(t *testing.T) {
	doc := `<table id="stats_alpha_summary">
<caption>Alpha FC Player Stats Table</caption>
<thead><tr><th>Player</th><th>Min</th></tr></thead>
<tbody><tr><th>16 Players</th><td>990</td></tr></tbody>
</table>`
	_, err := New().ScoreMatch(doc)
	require.ErrorIs(t, err, fbref.ErrEmptyTeamData)
}

func TestSortRows(t *testing.T) {
	rows := []ScoreRow{
		{Player: "C", Team: "Home", Score: 10},
		{Player: "A", Team: "Away", Score: 20},
		{Player: "B", Team: "Away", Score: 20},
		{Player: "D", Team: "Away", Score: 10},
	}
	SortRows(rows)
	require.Equal(t, []ScoreRow{
		{Player: "A", Team: "Away", Score: 20},
		{Player: "B", Team: "Away", Score: 20},
		{Player: "D", Team: "Away", Score: 10},
		{Player: "C", Team: "Home", Score: 10},
	}, rows)
}
