package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hfwleague/fantasy-soccer-backends/internal/fbref"
)

func TestWriteCSV(t *testing.T) {
	rows := []ScoreRow{
		{Player: "Andre Silva", Team: fbref.TeamHome, Pos: fbref.BucketDEF, Score: 27},
		{Player: "Bruno Wing", Team: fbref.TeamAway, Pos: fbref.BucketFWD, Score: -2},
	}
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, rows))

	want := "Player,Team,pos,score\n" +
		"Andre Silva,Home,DEF,27\n" +
		"Bruno Wing,Away,FWD,-2\n"
	require.Equal(t, want, sb.String())
}

func TestWriteCSV_EmptyTable(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))
	require.Equal(t, "Player,Team,pos,score\n", sb.String())
}
