package view

import "time"

// timestampLayouts are tried in order when parsing document timestamps.
// Ingestion emits RFC 3339; older data occasionally lacks the zone.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// chronoLess orders two raw timestamps. Values that parse are compared as
// instants; anything else falls back to lexicographic order, which is only
// correct when all values share one textual format and zone. Mixed-format
// data therefore degrades to best-effort ordering instead of failing.
func chronoLess(a, b string) bool {
	ta, okA := parseTimestamp(a)
	tb, okB := parseTimestamp(b)
	if okA && okB {
		return ta.Before(tb)
	}
	return a < b
}

// displayTime formats a raw timestamp for the sidebar. An unparseable value
// is shown as-is rather than blanked.
func displayTime(s string) string {
	if s == "" {
		return ""
	}
	t, ok := parseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006 15:04")
}

// displayDate formats a raw timestamp as a date only.
func displayDate(s string) string {
	if s == "" {
		return ""
	}
	t, ok := parseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006")
}
