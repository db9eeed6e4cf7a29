package ingest

import "testing"

func TestIATAFromRaw(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare code", raw: "LHR", want: "LHR"},
		{name: "lowercase", raw: "lhr", want: "LHR"},
		{name: "code with paren repeat", raw: "LHR (LHR)", want: "LHR"},
		{name: "paren overrides prefix", raw: "BER (TXL)", want: "BER"},
		{name: "free text with code", raw: "Heathrow Airport (LHR), London", want: "LHR"},
		{name: "last paren wins", raw: "(FRA) via (MUC)", want: "MUC"},
		{name: "tegel alias", raw: "TXL", want: "BER"},
		{name: "schoenefeld alias", raw: "SXF", want: "BER"},
		{name: "city code alias", raw: "NYC", want: "JFK"},
		{name: "aliased paren code", raw: "Berlin Tegel (TXL)", want: "BER"},
		{name: "station name", raw: "Berlin Hbf", want: ""},
		{name: "four letters", raw: "EDDB", want: ""},
		{name: "two letters", raw: "DE", want: ""},
		{name: "empty", raw: "", want: ""},
		{name: "whitespace", raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IATAFromRaw(tt.raw); got != tt.want {
				t.Errorf("IATAFromRaw(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
