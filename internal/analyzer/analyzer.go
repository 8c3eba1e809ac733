package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/BerylCAtieno/map-analyzer/internal/models"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMissingAddress  = errors.New("no address provided")
	ErrAddressNotFound = errors.New("address not found")
)

type Analyzer struct {
	geocoder models.Geocoder
	finder   models.PlaceFinder
	policy   Policy
}

func NewAnalyzer(geocoder models.Geocoder, finder models.PlaceFinder, policy Policy) *Analyzer {
	return &Analyzer{
		geocoder: geocoder,
		finder:   finder,
		policy:   policy,
	}
}

// Analyze geocodes address and runs one nearby search per policy row. A
// failed search leaves an empty list for its group; only a missing address
// or a failed geocode is returned as an error.
func (a *Analyzer) Analyze(ctx context.Context, address string) (*models.AnalysisResponse, error) {
	if address == "" {
		return nil, ErrMissingAddress
	}

	geo := a.geocoder.Resolve(ctx, address)
	if !geo.Found {
		cause := geo.Err
		if cause == nil {
			cause = models.ErrNoMatch
		}
		return nil, fmt.Errorf("%w: %q: %w", ErrAddressNotFound, address, cause)
	}

	log.Printf("STATE: Resolved %q to (%f, %f)", address, geo.Coordinates.Lat, geo.Coordinates.Lon)

	surroundings := a.surroundings(ctx, geo.Coordinates)

	return &models.AnalysisResponse{
		Address:                address,
		Coordinates:            geo.Coordinates,
		Surroundings:           surroundings,
		MarketDataPlaceholders: models.DefaultMarketDataPlaceholders,
	}, nil
}

func (a *Analyzer) surroundings(ctx context.Context, center models.Coordinates) map[string][]models.Place {
	categories := a.policy.Categories()
	results := make([][]models.Place, len(categories))

	var g errgroup.Group
	for i, cat := range categories {
		i, cat := i, cat
		g.Go(func() error {
			res := a.finder.Find(ctx, models.PlaceQuery{
				Center:       center,
				Categories:   cat.Categories,
				RadiusMeters: cat.RadiusMeters,
				Limit:        cat.Limit,
			})
			if res.Err != nil {
				log.Printf("WARN: %s lookup failed (%s within %dm): %v",
					cat.Group, strings.Join(cat.Categories, ","), cat.RadiusMeters, res.Err)
				return nil
			}
			results[i] = res.Places
			return nil
		})
	}
	// Lookups never fail the group; errors are absorbed above.
	_ = g.Wait()

	surroundings := make(map[string][]models.Place, len(categories))
	for i, cat := range categories {
		places := results[i]
		if places == nil {
			places = []models.Place{}
		}
		surroundings[cat.Group] = places
	}
	return surroundings
}
