package ingest

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/travelmap-backend-go/internal/logger"
	"github.com/jengzang/travelmap-backend-go/internal/models"
	"github.com/jengzang/travelmap-backend-go/internal/repository"
)

// Upstream airport datasets.
const (
	OurAirportsURL = "https://ourairports.com/data/airports.csv"
	OpenFlightsURL = "https://raw.githubusercontent.com/jpatokal/openflights/master/data/airports.dat"

	// Anything smaller than these is a truncated download.
	ourAirportsMinSize = 100_000
	openFlightsMinSize = 200_000
)

var downloadClient = &http.Client{Timeout: 60 * time.Second}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// EnsureOurAirports downloads the OurAirports CSV to path unless a
// plausible copy is already cached there.
func EnsureOurAirports(path string) error {
	return ensureDataset(path, OurAirportsURL, ourAirportsMinSize)
}

// EnsureOpenFlights downloads the OpenFlights dat file to path unless a
// plausible copy is already cached there.
func EnsureOpenFlights(path string) error {
	return ensureDataset(path, OpenFlightsURL, openFlightsMinSize)
}

func ensureDataset(path, url string, minSize int64) error {
	if fi, err := os.Stat(path); err == nil && fi.Size() > minSize {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	resp, err := downloadClient.Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", url, resp.StatusCode)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Infof("downloaded %s to %s", url, path)
	return nil
}

// ImportAirportIndex fills the sqlite airport cache from the OurAirports
// CSV and the OpenFlights dat file, applying manual patches last. Codes
// already present are kept, so precedence follows import order.
func ImportAirportIndex(repo *repository.AirportRepository, ourAirportsCSV, openFlightsDat string) error {
	f, err := os.Open(ourAirportsCSV)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", ourAirportsCSV, err)
	}
	airports, err := parseOurAirports(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", ourAirportsCSV, err)
	}

	n, err := repo.Import(airports, "ourairports")
	if err != nil {
		return err
	}
	logger.Infof("imported %d airports from OurAirports", n)

	// OpenFlights fills the gaps
	if g, err := os.Open(openFlightsDat); err == nil {
		extra, perr := parseOpenFlights(g)
		g.Close()
		if perr != nil {
			return fmt.Errorf("failed to parse %s: %w", openFlightsDat, perr)
		}
		n, err = repo.Import(extra, "openflights")
		if err != nil {
			return err
		}
		logger.Infof("imported %d airports from OpenFlights", n)
	}

	n, err = repo.Import(manualAirports, "manual")
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Infof("applied %d manual airport patches", n)
	}

	return nil
}

// parseOurAirports reads the OurAirports CSV (header-keyed columns).
func parseOurAirports(r io.Reader) ([]models.Airport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var airports []models.Airport
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		iata := strings.ToUpper(field(row, "iata_code"))
		if len(iata) != 3 {
			continue
		}

		lat, errLat := strconv.ParseFloat(field(row, "latitude_deg"), 64)
		lon, errLon := strconv.ParseFloat(field(row, "longitude_deg"), 64)
		if errLat != nil || errLon != nil {
			continue
		}

		airports = append(airports, models.Airport{
			IATA:    iata,
			Lat:     lat,
			Lon:     lon,
			Name:    field(row, "name"),
			Country: nullString(strings.ToUpper(field(row, "iso_country"))),
		})
	}

	return airports, nil
}

// parseOpenFlights reads the OpenFlights airports.dat file. Fields:
// Airport ID, Name, City, Country, IATA, ICAO, Lat, Lon, ...
func parseOpenFlights(r io.Reader) ([]models.Airport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var airports []models.Airport
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 8 {
			continue
		}

		iata := strings.ToUpper(strings.TrimSpace(row[4]))
		if iata == `\N` || len(iata) != 3 {
			continue
		}

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(row[6]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(row[7]), 64)
		if errLat != nil || errLon != nil {
			continue
		}

		// country code is a free-text name here; leave it unset
		airports = append(airports, models.Airport{
			IATA: iata,
			Lat:  lat,
			Lon:  lon,
			Name: strings.TrimSpace(row[1]),
		})
	}

	return airports, nil
}
