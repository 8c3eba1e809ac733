// Package overpass finds nearby places in OpenStreetMap through an Overpass
// API endpoint. It accepts the same category tags as the Geoapify finder.
package overpass

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/BerylCAtieno/map-analyzer/internal/models"
	geo "github.com/kellydunn/golang-geo"
	goverpass "github.com/serjvanilla/go-overpass"
)

var ErrUnsupportedCategory = errors.New("no OSM mapping for categories")

// selectors maps a provider category tag to Overpass tag filters.
var selectors = map[string][]string{
	"education.school":            {`["amenity"="school"]`},
	"commercial.supermarket":      {`["shop"="supermarket"]`},
	"commercial.convenience":      {`["shop"="convenience"]`},
	"healthcare.hospital":         {`["amenity"="hospital"]`},
	"healthcare.clinic":           {`["amenity"="clinic"]`, `["healthcare"="clinic"]`},
	"public_transport.subway":     {`["railway"="station"]["station"="subway"]`},
	"public_transport.train":      {`["railway"="station"]["station"!~"subway|light_rail|monorail"]`, `["railway"="halt"]`},
	"public_transport.light_rail": {`["railway"="station"]["station"="light_rail"]`, `["railway"="tram_stop"]`},
	"public_transport.monorail":   {`["railway"="station"]["station"="monorail"]`},
	"public_transport.bus":        {`["highway"="bus_stop"]`, `["amenity"="bus_station"]`},
}

type querier interface {
	Query(query string) (goverpass.Result, error)
}

type PlaceFinder struct {
	client  querier
	timeout time.Duration
}

func NewPlaceFinder(endpoint string, timeout time.Duration) *PlaceFinder {
	httpClient := &http.Client{
		Timeout: timeout,
	}
	client := goverpass.NewWithSettings(endpoint, 5, httpClient)
	return &PlaceFinder{
		client:  &client,
		timeout: timeout,
	}
}

// Find queries OSM elements around q.Center and returns them nearest first,
// cut to q.Limit.
func (f *PlaceFinder) Find(ctx context.Context, q models.PlaceQuery) models.PlacesResult {
	query, err := BuildQuery(q, f.timeout)
	if err != nil {
		return models.FailedPlaces(err)
	}

	type answer struct {
		result goverpass.Result
		err    error
	}
	done := make(chan answer, 1)
	go func() {
		res, err := f.client.Query(query)
		done <- answer{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return models.FailedPlaces(fmt.Errorf("overpass query cancelled: %w", ctx.Err()))
	case ans := <-done:
		if ans.err != nil {
			return models.FailedPlaces(fmt.Errorf("overpass query failed: %w", ans.err))
		}
		return models.FoundPlaces(ToPlaces(&ans.result, q.Center, q.Limit))
	}
}

// BuildQuery renders an Overpass QL union of node and way selectors for every
// mapped category, restricted to the search circle.
func BuildQuery(q models.PlaceQuery, timeout time.Duration) (string, error) {
	around := fmt.Sprintf("(around:%d,%s,%s)", q.RadiusMeters, formatCoord(q.Center.Lat), formatCoord(q.Center.Lon))

	var b strings.Builder
	for _, cat := range q.Categories {
		for _, sel := range selectors[cat] {
			fmt.Fprintf(&b, "\tnode%s%s;\n", sel, around)
			fmt.Fprintf(&b, "\tway%s%s;\n", sel, around)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCategory, strings.Join(q.Categories, ","))
	}

	seconds := int(timeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	return fmt.Sprintf("[out:json][timeout:%d];\n(\n%s);\nout body;\n>;\nout skel qt;\n", seconds, b.String()), nil
}

// ToPlaces converts tagged nodes and ways into places sorted by distance from
// center. Untagged nodes are way members pulled in by the recursion and are
// skipped. limit <= 0 keeps everything.
func ToPlaces(result *goverpass.Result, center models.Coordinates, limit int) []models.Place {
	origin := geo.NewPoint(center.Lat, center.Lon)
	places := make([]models.Place, 0, len(result.Nodes)+len(result.Ways))

	for _, node := range result.Nodes {
		if len(node.Tags) == 0 {
			continue
		}
		places = append(places, models.Place{
			Name:           placeName(node.Tags),
			DistanceMeters: distanceMeters(origin, node.Lat, node.Lon),
		})
	}

	for _, way := range result.Ways {
		if len(way.Tags) == 0 || len(way.Nodes) == 0 {
			continue
		}
		var lat, lon float64
		count := 0
		for _, node := range way.Nodes {
			if node == nil {
				continue
			}
			lat += node.Lat
			lon += node.Lon
			count++
		}
		if count == 0 {
			continue
		}
		places = append(places, models.Place{
			Name:           placeName(way.Tags),
			DistanceMeters: distanceMeters(origin, lat/float64(count), lon/float64(count)),
		})
	}

	// Map iteration order is random; name breaks ties so output is stable.
	sort.Slice(places, func(i, j int) bool {
		if places[i].DistanceMeters != places[j].DistanceMeters {
			return places[i].DistanceMeters < places[j].DistanceMeters
		}
		return places[i].Name < places[j].Name
	})

	if limit > 0 && len(places) > limit {
		places = places[:limit]
	}
	return places
}

func placeName(tags map[string]string) string {
	var line1 string
	if street := tags["addr:street"]; street != "" {
		line1 = strings.TrimSpace(tags["addr:housenumber"] + " " + street)
	}
	return models.PlaceName(tags["name"], line1)
}

// distanceMeters rounds to whole meters, as Geoapify reports them.
func distanceMeters(origin *geo.Point, lat, lon float64) float64 {
	km := origin.GreatCircleDistance(geo.NewPoint(lat, lon))
	return float64(int64(km*1000 + 0.5))
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
