package models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Place struct {
	Name           string  `json:"name"`
	DistanceMeters float64 `json:"distance_meters"`
}

type MarketDataPlaceholders struct {
	Demand string `json:"demand"`
	Supply string `json:"supply"`
}

type AnalysisResponse struct {
	Address                string                 `json:"address"`
	Coordinates            Coordinates            `json:"coordinates"`
	Surroundings           map[string][]Place     `json:"surroundings"`
	MarketDataPlaceholders MarketDataPlaceholders `json:"market_data_placeholders"`
}

// Filled in by hand downstream, never computed here.
var DefaultMarketDataPlaceholders = MarketDataPlaceholders{
	Demand: "Run Web Search for this area",
	Supply: "Check listings count",
}

// UnnamedLocation is used when a place has neither a name nor an address line.
const UnnamedLocation = "Unnamed Location"

// PlaceName returns the first non-empty candidate, or UnnamedLocation.
func PlaceName(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return UnnamedLocation
}
