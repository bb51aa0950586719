package fbref

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cockroachdb/errors"
)

// Caption marker phrases used by the source. The team's display name is
// whatever precedes the marker, e.g. "Arsenal Player Stats Table".
const (
	outfieldCaptionMark = "Player Stats Table"
	keeperCaptionMark   = "Goalkeeper Stats"
	outfieldSplitMark   = " Player Stats"
	keeperSplitMark     = " Goalkeeper Stats"
)

// Classified buckets every recognizable stat table in one document by team.
type Classified struct {
	// Order holds distinct team names with outfield tables, in the order
	// they first appear. Order[0] is the home side.
	Order    []string
	Outfield map[string][]Table
	Keepers  map[string][]Table
}

// Classify walks every table in document order and buckets it by the team
// name and kind read from its caption. Tables without a recognizable
// caption are ignored. A document yielding neither outfield nor goalkeeper
// tables is not a match report.
func Classify(html string) (*Classified, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	c := &Classified{
		Outfield: map[string][]Table{},
		Keepers:  map[string][]Table{},
	}
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		caption := strings.TrimSpace(sel.Find("caption").First().Text())
		if caption == "" {
			return
		}
		switch {
		case strings.Contains(caption, outfieldCaptionMark):
			team := teamFromCaption(caption, outfieldSplitMark)
			t := parseTable(sel)
			t.Team = team
			t.Kind = kindFromID(sel.AttrOr("id", ""))
			if _, seen := c.Outfield[team]; !seen {
				c.Order = append(c.Order, team)
			}
			c.Outfield[team] = append(c.Outfield[team], t)
		case strings.Contains(caption, keeperCaptionMark):
			team := teamFromCaption(caption, keeperSplitMark)
			t := parseTable(sel)
			t.Team = team
			t.Kind = KindKeeper
			c.Keepers[team] = append(c.Keepers[team], t)
		}
	})

	if len(c.Outfield) == 0 && len(c.Keepers) == 0 {
		return nil, errors.WithDetail(ErrNoTablesFound,
			"no table caption matched the player-stats or goalkeeper-stats markers")
	}
	return c, nil
}

func teamFromCaption(caption, marker string) string {
	if i := strings.Index(caption, marker); i >= 0 {
		return strings.TrimSpace(caption[:i])
	}
	return strings.TrimSpace(caption)
}

// kindFromID classifies by the table id suffix ("stats_<team>_summary" and
// friends). Best effort only; merging keys off document order, not kind.
func kindFromID(id string) Kind {
	switch {
	case strings.HasPrefix(id, "keeper_stats"):
		return KindKeeper
	case strings.HasSuffix(id, "_passing_types"):
		return KindPassTypes
	case strings.HasSuffix(id, "_passing"):
		return KindPassing
	case strings.HasSuffix(id, "_summary"):
		return KindSummary
	case strings.HasSuffix(id, "_defense"):
		return KindDefense
	case strings.HasSuffix(id, "_possession"):
		return KindPossession
	case strings.HasSuffix(id, "_misc"):
		return KindMisc
	}
	return KindUnknown
}
