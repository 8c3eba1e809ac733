package geoapify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/BerylCAtieno/map-analyzer/internal/models"
)

type PlaceFinder struct {
	client *Client
}

func NewPlaceFinder(client *Client) *PlaceFinder {
	return &PlaceFinder{client: client}
}

// Find runs a nearby search around q.Center. Results keep the provider's
// order. Failures come back as an empty list with Err set.
func (f *PlaceFinder) Find(ctx context.Context, q models.PlaceQuery) models.PlacesResult {
	lon := formatCoord(q.Center.Lon)
	lat := formatCoord(q.Center.Lat)

	params := url.Values{}
	params.Set("categories", strings.Join(q.Categories, ","))
	params.Set("filter", fmt.Sprintf("circle:%s,%s,%d", lon, lat, q.RadiusMeters))
	params.Set("bias", fmt.Sprintf("proximity:%s,%s", lon, lat))
	params.Set("limit", strconv.Itoa(q.Limit))

	fc, err := f.client.get(ctx, "/v2/places", params)
	if err != nil {
		return models.FailedPlaces(err)
	}

	places := make([]models.Place, 0, len(fc.Features))
	for _, feat := range fc.Features {
		props := feat.Properties
		place := models.Place{
			Name: models.PlaceName(props.Name, props.AddressLine1),
		}
		if props.Distance != nil {
			place.DistanceMeters = *props.Distance
		}
		places = append(places, place)
	}

	return models.FoundPlaces(places)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
