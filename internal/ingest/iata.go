package ingest

import (
	"regexp"
	"strings"

	"github.com/jengzang/travelmap-backend-go/internal/models"
)

// Some older booking emails contain deprecated IATA codes (Berlin TXL/SXF).
// Dataset coverage for closed airports varies, so they are aliased to their
// successors. City aggregation codes get a reasonable default airport.
var iataAliases = map[string]string{
	"TXL": "BER", // Berlin Tegel -> Berlin Brandenburg
	"SXF": "BER", // Berlin Schoenefeld -> Berlin Brandenburg
	"NYC": "JFK", // New York City code
}

// Manual patches for airports missing from both upstream datasets.
var manualAirports = []models.Airport{
	{IATA: "LGP", Lat: 13.1575, Lon: 123.7350, Name: "Legazpi Airport", Country: nullString("PH")},
}

// Only treat raw address tokens as IATA when they actually look like
// airport codes, to avoid free-text like "Berlin Hbf".
var (
	iataStrictRe = regexp.MustCompile(`^([A-Z]{3})(?:\s*\(([A-Z]{3})\))?$`)
	iataParenRe  = regexp.MustCompile(`\(([A-Z]{3})\)`)
)

// IATAFromRaw extracts an airport code from a raw address string. Accepted
// forms are "LHR", "LHR (LHR)" and free text containing a parenthesized
// code, in which case the last one wins. Returns "" when nothing matches.
func IATAFromRaw(raw string) string {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}

	if m := iataStrictRe.FindStringSubmatch(raw); m != nil {
		code := m[2]
		if code == "" {
			code = m[1]
		}
		return resolveAlias(code)
	}

	if par := iataParenRe.FindAllStringSubmatch(raw, -1); len(par) > 0 {
		return resolveAlias(par[len(par)-1][1])
	}

	return ""
}

func resolveAlias(code string) string {
	if alias, ok := iataAliases[code]; ok {
		return alias
	}
	return code
}
