package fbref

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
)

// Sports-reference sites ship some tables inside HTML comments for lazy
// rendering; strip the wrappers so a single walk sees every table.
func stripCommentWrappers(html string) string {
	html = strings.ReplaceAll(html, "<!--", "")
	return strings.ReplaceAll(html, "-->", "")
}

func newDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(stripCommentWrappers(html)))
	if err != nil {
		return nil, errors.Wrap(err, "parse report document")
	}
	return doc, nil
}

// headerGrid expands a table's thead into aligned rows of cell text.
// Over-header cells span several stat columns via colspan; each spanned
// column gets the over-header's text so the per-column path lines up.
func headerGrid(table *goquery.Selection) [][]string {
	var grid [][]string
	table.Find("thead tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			span := 1
			if v, err := strconv.Atoi(cell.AttrOr("colspan", "1")); err == nil && v > 1 {
				span = v
			}
			txt := strings.TrimSpace(cell.Text())
			for k := 0; k < span; k++ {
				row = append(row, txt)
			}
		})
		grid = append(grid, row)
	})
	return grid
}

// flattenHeader joins one column's header path with underscores, skipping
// blank levels, and trims stray separators.
func flattenHeader(levels []string) string {
	parts := make([]string, 0, len(levels))
	for _, lv := range levels {
		lv = strings.TrimSpace(lv)
		if lv == "" || strings.EqualFold(lv, "nan") {
			continue
		}
		parts = append(parts, lv)
	}
	return strings.Trim(strings.Join(parts, "_"), "_")
}

// flattenColumns builds one flat key per column. The deepest header row
// defines the column count; shallower rows contribute their prefix.
func flattenColumns(grid [][]string) []string {
	if len(grid) == 0 {
		return nil
	}
	width := len(grid[len(grid)-1])
	cols := make([]string, width)
	for i := 0; i < width; i++ {
		levels := make([]string, 0, len(grid))
		for _, row := range grid {
			if i < len(row) {
				levels = append(levels, row[i])
			}
		}
		cols[i] = flattenHeader(levels)
	}
	return cols
}

// parseTable reads one table element into a Table. Caption and cells come
// from the same selection, so classification and data always describe the
// same table. Repeated in-body header rows (class "thead") are skipped.
func parseTable(sel *goquery.Selection) Table {
	cols := flattenColumns(headerGrid(sel))
	var rows []map[string]string
	trs := sel.Find("tbody tr")
	if trs.Length() == 0 {
		trs = sel.Find("tr")
	}
	trs.Each(func(_ int, tr *goquery.Selection) {
		if strings.Contains(tr.AttrOr("class", ""), "thead") {
			return
		}
		cells := tr.Find("th,td")
		if cells.Length() == 0 {
			return
		}
		row := make(map[string]string, len(cols))
		cells.Each(func(i int, cell *goquery.Selection) {
			if i < len(cols) && cols[i] != "" {
				row[cols[i]] = strings.TrimSpace(cell.Text())
			}
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})
	return Table{Columns: cols, Rows: rows}
}
