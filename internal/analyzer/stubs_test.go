package analyzer_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/BerylCAtieno/map-analyzer/internal/models"
)

type stubGeocoder struct {
	results map[string]models.GeocodeResult
}

func (s *stubGeocoder) Resolve(_ context.Context, address string) models.GeocodeResult {
	if res, ok := s.results[address]; ok {
		return res
	}
	return models.NotFound(models.ErrNoMatch)
}

// stubFinder answers by the comma-joined category list of the query.
type stubFinder struct {
	mu      sync.Mutex
	places  map[string][]models.Place
	failing map[string]bool
	queries []models.PlaceQuery
}

func (s *stubFinder) Find(_ context.Context, q models.PlaceQuery) models.PlacesResult {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()

	key := strings.Join(q.Categories, ",")
	if s.failing[key] {
		return models.FailedPlaces(errors.New("connection reset"))
	}
	return models.FoundPlaces(s.places[key])
}
