package main

import (
	"github.com/jengzang/travelmap-backend-go/internal/api"
	"github.com/jengzang/travelmap-backend-go/internal/config"
	"github.com/jengzang/travelmap-backend-go/internal/geodata"
	"github.com/jengzang/travelmap-backend-go/internal/logger"
	"github.com/jengzang/travelmap-backend-go/internal/metrics"
	"github.com/jengzang/travelmap-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Debug); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Both documents must load before the first render; a failed load is
	// terminal, nothing is served in a partial state.
	docs, err := geodata.Load(cfg.FeaturesSrc, cfg.SummarySrc)
	if err != nil {
		logger.Fatalf("startup load failed: %v", err)
	}
	logger.Infow("documents loaded",
		"features", len(docs.Features),
		"tripGroups", len(docs.Summary.TripGroups),
		"sourceFiles", docs.Summary.SourceFiles,
	)

	collector := metrics.NewCollector()
	views := service.NewViewService(docs, cfg.FeaturesSrc, cfg.SummarySrc, collector)

	router := api.SetupRouter(cfg, views, collector)

	logger.Infof("server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
