package main

import (
	"log"

	"github.com/BerylCAtieno/map-analyzer/internal/analyzer"
	"github.com/BerylCAtieno/map-analyzer/internal/api"
	"github.com/BerylCAtieno/map-analyzer/internal/config"
	"github.com/BerylCAtieno/map-analyzer/internal/geoapify"
	"github.com/BerylCAtieno/map-analyzer/internal/models"
	"github.com/BerylCAtieno/map-analyzer/internal/overpass"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.GeoapifyKey == config.PlaceholderAPIKey {
		log.Printf("WARN: GEOAPIFY_KEY is not set, provider calls will be rejected")
	}

	client := geoapify.NewClient(cfg.GeoapifyBaseURL, cfg.GeoapifyKey, cfg.HTTPTimeout)

	var finder models.PlaceFinder
	switch cfg.PlacesProvider {
	case config.ProviderOverpass:
		finder = overpass.NewPlaceFinder(cfg.OverpassURL, cfg.HTTPTimeout)
	default:
		finder = geoapify.NewPlaceFinder(client)
	}

	a := analyzer.NewAnalyzer(geoapify.NewGeocoder(client), finder, analyzer.ResidentialPolicy())
	router := api.NewRouter(api.NewHandler(a))

	log.Printf("Map Analyzer starting on %s (places provider: %s)", cfg.Addr(), cfg.PlacesProvider)
	log.Printf("Analyze endpoint available at: http://%s/analyze", cfg.Addr())

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
