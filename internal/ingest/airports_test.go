package ingest

import (
	"strings"
	"testing"
)

func TestParseOurAirports(t *testing.T) {
	csv := strings.Join([]string{
		`"id","ident","type","name","latitude_deg","longitude_deg","iso_country","iata_code"`,
		`1,"EDDB","large_airport","Berlin Brandenburg",52.3667,13.5033,"DE","BER"`,
		`2,"EDDT","closed","Berlin Tegel",52.5597,13.2877,"DE",""`,
		`3,"XXXX","small_airport","No Position",,,"DE","AAA"`,
		`4,"LPPT","large_airport","Lisbon",38.7813,-9.1359,"pt","lis"`,
	}, "\n")

	airports, err := parseOurAirports(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseOurAirports: %v", err)
	}
	if len(airports) != 2 {
		t.Fatalf("got %d airports, want 2 (no code and no position are skipped)", len(airports))
	}
	if airports[0].IATA != "BER" || airports[0].Lat != 52.3667 {
		t.Errorf("first entry: %+v", airports[0])
	}
	if airports[1].IATA != "LIS" {
		t.Errorf("codes should be uppercased: %+v", airports[1])
	}
	if airports[1].Country.String != "PT" || !airports[1].Country.Valid {
		t.Errorf("country: %+v", airports[1].Country)
	}
}

func TestParseOpenFlights(t *testing.T) {
	dat := strings.Join([]string{
		`507,"Heathrow","London","United Kingdom","LHR","EGLL",51.4706,-0.461941,83,0,"E","Europe/London","airport","OurAirports"`,
		`2,"No Code","Nowhere","Nowhere",\N,"XXXX",1.0,2.0,0,0,"U",\N,"airport","OurAirports"`,
		`3,"Bad Coords","X","X","AAA","XXXX",not,a-number,0,0,"U",\N,"airport","OurAirports"`,
	}, "\n")

	airports, err := parseOpenFlights(strings.NewReader(dat))
	if err != nil {
		t.Fatalf("parseOpenFlights: %v", err)
	}
	if len(airports) != 1 {
		t.Fatalf("got %d airports, want 1", len(airports))
	}
	if airports[0].IATA != "LHR" || airports[0].Name != "Heathrow" {
		t.Errorf("entry: %+v", airports[0])
	}
}
