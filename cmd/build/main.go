package main

import (
	"flag"

	"github.com/jengzang/travelmap-backend-go/internal/config"
	"github.com/jengzang/travelmap-backend-go/internal/database"
	"github.com/jengzang/travelmap-backend-go/internal/ingest"
	"github.com/jengzang/travelmap-backend-go/internal/logger"
	"github.com/jengzang/travelmap-backend-go/internal/repository"
)

// build turns a directory of raw trip exports into the two static
// documents the server renders: trips.geojson and summary.json.
func main() {
	inDir := flag.String("in", "./data/raw", "directory containing raw trip export *.txt files")
	outDir := flag.String("out", "./site", "output directory for the generated documents")
	airportsCSV := flag.String("airports-cache", "./data/airports.csv", "cache path for the OurAirports dataset")
	openflightsDat := flag.String("openflights-cache", "./data/openflights_airports.dat", "cache path for the OpenFlights dataset")
	flag.Parse()

	cfg := config.Load()

	if err := logger.Init(cfg.Debug); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := database.Init(database.Config{Path: cfg.AirportsDB}); err != nil {
		logger.Fatalf("failed to initialize airport cache: %v", err)
	}
	defer database.Close()

	airports, err := repository.NewAirportRepository(database.GetDB())
	if err != nil {
		logger.Fatalf("failed to set up airport repository: %v", err)
	}

	if err := ingest.EnsureOurAirports(*airportsCSV); err != nil {
		logger.Fatalf("failed to fetch OurAirports dataset: %v", err)
	}
	if err := ingest.EnsureOpenFlights(*openflightsDat); err != nil {
		// OpenFlights only fills gaps; keep going without it
		logger.Warnf("OpenFlights dataset unavailable: %v", err)
	}

	if err := ingest.ImportAirportIndex(airports, *airportsCSV, *openflightsDat); err != nil {
		logger.Fatalf("failed to import airport index: %v", err)
	}

	segments, events, sourceFiles, err := ingest.CollectSegments(*inDir, airports)
	if err != nil {
		logger.Fatalf("failed to collect segments: %v", err)
	}
	logger.Infow("collected exports",
		"sourceFiles", sourceFiles,
		"segments", len(segments),
		"events", len(events),
	)

	if err := ingest.WriteOutputs(*outDir, segments, events, sourceFiles); err != nil {
		logger.Fatalf("failed to write outputs: %v", err)
	}
	logger.Infof("wrote %s/trips.geojson and %s/summary.json", *outDir, *outDir)
}
