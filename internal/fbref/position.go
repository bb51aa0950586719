package fbref

import "strings"

// Bucket is the position class a player is scored under.
type Bucket string

const (
	BucketFWD Bucket = "FWD"
	BucketMID Bucket = "MID"
	BucketDEF Bucket = "DEF"
	BucketGK  Bucket = "GK"
)

// PositionOf maps a raw position label to its scoring bucket. A player
// listed with several eligible positions ("LW,RW") is scored by the first.
// Anything unrecognized, including a missing label, falls back to MID so
// every row reaches a formula.
func PositionOf(pos string) Bucket {
	pos = strings.TrimSpace(pos)
	if pos == "" {
		return BucketMID
	}
	if len(pos) > 2 {
		if i := strings.IndexByte(pos, ','); i >= 0 {
			pos = strings.TrimSpace(pos[:i])
		}
	}
	switch {
	case strings.HasPrefix(strings.ToUpper(pos), "GK"):
		return BucketGK
	case strings.HasSuffix(pos, "W"):
		return BucketFWD
	case strings.HasSuffix(pos, "M"):
		return BucketMID
	case strings.HasSuffix(pos, "B"):
		return BucketDEF
	}
	return BucketMID
}
