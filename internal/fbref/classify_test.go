package fbref

import (
	"testing"

	"github.com/cockroachdb/errors"
)

const twoTeamDoc = `<html><body>
<table id="stats_aaa_summary">
<caption>Alpha FC Player Stats Table</caption>
<thead>
<tr><th colspan="3"></th><th colspan="2">Performance</th></tr>
<tr><th>Player</th><th>Pos</th><th>Min</th><th>Gls</th><th>Tkl</th></tr>
</thead>
<tbody>
<tr><th>Andre Silva</th><td>CB</td><td>90</td><td>0</td><td>3</td></tr>
</tbody>
</table>
<table><tr><td>navigation junk, no caption</td></tr></table>
<!--
<table id="stats_aaa_misc">
<caption>Alpha FC Player Stats Table</caption>
<thead>
<tr><th colspan="2"></th><th colspan="2">Aerial Duels</th></tr>
<tr><th>Player</th><th>Pos</th><th>Won</th><th>Lost</th></tr>
</thead>
<tbody>
<tr><th>Andre Silva</th><td>CB</td><td>2</td><td>1</td></tr>
</tbody>
</table>
-->
<table id="stats_bbb_summary">
<caption>Beta United Player Stats Table</caption>
<thead>
<tr><th colspan="3"></th><th colspan="2">Performance</th></tr>
<tr><th>Player</th><th>Pos</th><th>Min</th><th>Gls</th><th>Tkl</th></tr>
</thead>
<tbody>
<tr><th>Bruno Wing</th><td>LW</td><td>90</td><td>1</td><td>0</td></tr>
</tbody>
</table>
<table id="keeper_stats_aaa">
<caption>Alpha FC Goalkeeper Stats Table</caption>
<thead>
<tr><th colspan="2"></th><th colspan="2">Shot Stopping</th></tr>
<tr><th>Player</th><th>Min</th><th>GA</th><th>Saves</th></tr>
</thead>
<tbody>
<tr><th>Gian Keeper</th><td>90</td><td>1</td><td>3</td></tr>
</tbody>
</table>
</body></html>`

func TestClassify_TwoTeams(t *testing.T) {
	c, err := Classify(twoTeamDoc)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	if len(c.Order) != 2 || c.Order[0] != "Alpha FC" || c.Order[1] != "Beta United" {
		t.Fatalf("discovery order = %v, want [Alpha FC, Beta United]", c.Order)
	}
	// The comment-wrapped misc table must be visible too.
	if n := len(c.Outfield["Alpha FC"]); n != 2 {
		t.Fatalf("Alpha FC outfield tables = %d, want 2", n)
	}
	if n := len(c.Outfield["Beta United"]); n != 1 {
		t.Fatalf("Beta United outfield tables = %d, want 1", n)
	}
	if n := len(c.Keepers["Alpha FC"]); n != 1 {
		t.Fatalf("Alpha FC keeper tables = %d, want 1", n)
	}

	if k := c.Outfield["Alpha FC"][0].Kind; k != KindSummary {
		t.Errorf("first Alpha table kind = %s, want %s", k, KindSummary)
	}
	if k := c.Outfield["Alpha FC"][1].Kind; k != KindMisc {
		t.Errorf("second Alpha table kind = %s, want %s", k, KindMisc)
	}
	if k := c.Keepers["Alpha FC"][0].Kind; k != KindKeeper {
		t.Errorf("keeper table kind = %s, want %s", k, KindKeeper)
	}
}

func TestClassify_FlattenedHeaders(t *testing.T) {
	c, err := Classify(twoTeamDoc)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	got := c.Outfield["Alpha FC"][0].Columns
	want := []string{"Player", "Pos", "Min", "Performance_Gls", "Performance_Tkl"}
	if len(got) != len(want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClassify_NoTables(t *testing.T) {
	_, err := Classify(`<html><body><p>match postponed</p></body></html>`)
	if !errors.Is(err, ErrNoTablesFound) {
		t.Fatalf("err = %v, want ErrNoTablesFound", err)
	}

	// Tables without recognizable captions count as nothing found.
	_, err = Classify(`<html><body><table><caption>League Standings</caption><tr><td>x</td></tr></table></body></html>`)
	if !errors.Is(err, ErrNoTablesFound) {
		t.Fatalf("err = %v, want ErrNoTablesFound", err)
	}
}

func TestClassify_CaptionDrift(t *testing.T) {
	// Suffixed captions still classify, team name still extracted.
	doc := `<table id="stats_x_summary">
<caption>Gamma Town Player Stats Table - Summary</caption>
<thead><tr><th>Player</th><th>Min</th></tr></thead>
<tbody><tr><th>Some One</th><td>45</td></tr></tbody>
</table>`
	c, err := Classify(doc)
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if _, ok := c.Outfield["Gamma Town"]; !ok {
		t.Fatalf("teams = %v, want Gamma Town", c.Order)
	}
}
