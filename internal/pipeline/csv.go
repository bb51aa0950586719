package pipeline

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
)

// csvHeader is the export schema; column order is part of the contract.
var csvHeader = []string{"Player", "Team", "pos", "score"}

// WriteCSV writes the score table as delimited text.
func WriteCSV(w io.Writer, rows []ScoreRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, r := range rows {
		rec := []string{r.Player, r.Team, string(r.Pos), strconv.Itoa(r.Score)}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
