package models

import (
	"context"
	"errors"
)

var (
	// ErrNoMatch means the provider answered but returned no candidates.
	ErrNoMatch = errors.New("no matching location")
	// ErrUpstreamStatus means the provider answered with a non-200 status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	// ErrMalformedResponse means the provider body could not be used.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// GeocodeResult is the outcome of resolving an address. Err carries the
// diagnostic cause when Found is false.
type GeocodeResult struct {
	Found       bool
	Coordinates Coordinates
	Err         error
}

func Resolved(c Coordinates) GeocodeResult {
	return GeocodeResult{Found: true, Coordinates: c}
}

func NotFound(err error) GeocodeResult {
	return GeocodeResult{Err: err}
}

type PlaceQuery struct {
	Center       Coordinates
	Categories   []string
	RadiusMeters int
	Limit        int
}

// PlacesResult is the outcome of a nearby search. Places is never nil and is
// empty whenever Err is set.
type PlacesResult struct {
	Places []Place
	Err    error
}

func FoundPlaces(places []Place) PlacesResult {
	if places == nil {
		places = []Place{}
	}
	return PlacesResult{Places: places}
}

func FailedPlaces(err error) PlacesResult {
	return PlacesResult{Places: []Place{}, Err: err}
}

type Geocoder interface {
	Resolve(ctx context.Context, address string) GeocodeResult
}

type PlaceFinder interface {
	Find(ctx context.Context, q PlaceQuery) PlacesResult
}
