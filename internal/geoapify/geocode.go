package geoapify

import (
	"context"
	"fmt"
	"net/url"

	"github.com/BerylCAtieno/map-analyzer/internal/models"
)

type Geocoder struct {
	client *Client
}

func NewGeocoder(client *Client) *Geocoder {
	return &Geocoder{client: client}
}

// Resolve looks up the single best candidate for address. Geoapify reports
// positions as [lon, lat]; the result is always lat/lon.
func (g *Geocoder) Resolve(ctx context.Context, address string) models.GeocodeResult {
	params := url.Values{}
	params.Set("text", address)
	params.Set("limit", "1")

	fc, err := g.client.get(ctx, "/v1/geocode/search", params)
	if err != nil {
		return models.NotFound(err)
	}

	if len(fc.Features) == 0 {
		return models.NotFound(models.ErrNoMatch)
	}

	coords := fc.Features[0].Geometry.Coordinates
	if len(coords) < 2 {
		return models.NotFound(fmt.Errorf("%w: expected [lon, lat], got %v", models.ErrMalformedResponse, coords))
	}

	return models.Resolved(models.Coordinates{Lat: coords[1], Lon: coords[0]})
}
