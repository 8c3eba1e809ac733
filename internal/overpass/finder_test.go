package overpass_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	goverpass "github.com/serjvanilla/go-overpass"

	"github.com/BerylCAtieno/map-analyzer/internal/models"
	"github.com/BerylCAtieno/map-analyzer/internal/overpass"
)

var _ = Describe("BuildQuery", func() {

	var query models.PlaceQuery

	BeforeEach(func() {
		query = models.PlaceQuery{
			Center:       models.Coordinates{Lat: 40.0, Lon: -73.0},
			Categories:   []string{"public_transport.bus"},
			RadiusMeters: 500,
			Limit:        2,
		}
	})

	It("should restrict every selector to the search circle", func() {
		q, err := overpass.BuildQuery(query, 10*time.Second)
		Expect(err).ToNot(HaveOccurred())
		Expect(q).To(HavePrefix("[out:json][timeout:10];"))
		Expect(q).To(ContainSubstring(`node["highway"="bus_stop"](around:500,40.000000,-73.000000);`))
		Expect(q).To(ContainSubstring(`way["amenity"="bus_station"](around:500,40.000000,-73.000000);`))
	})

	It("should skip unknown categories", func() {
		query.Categories = []string{"education.school", "leisure.park"}
		q, err := overpass.BuildQuery(query, 10*time.Second)
		Expect(err).ToNot(HaveOccurred())
		Expect(q).To(ContainSubstring(`["amenity"="school"]`))
		Expect(q).ToNot(ContainSubstring("park"))
	})

	It("should fail when no category can be mapped", func() {
		query.Categories = []string{"leisure.park"}
		_, err := overpass.BuildQuery(query, 10*time.Second)
		Expect(err).To(MatchError(overpass.ErrUnsupportedCategory))
	})

	It("should never ask for a zero-second timeout", func() {
		q, err := overpass.BuildQuery(query, 200*time.Millisecond)
		Expect(err).ToNot(HaveOccurred())
		Expect(q).To(HavePrefix("[out:json][timeout:1];"))
	})
})

var _ = Describe("ToPlaces", func() {

	center := models.Coordinates{Lat: 40.0, Lon: -73.0}

	node := func(id int64, lat, lon float64, tags map[string]string) *goverpass.Node {
		return &goverpass.Node{Meta: goverpass.Meta{ID: id, Tags: tags}, Lat: lat, Lon: lon}
	}

	It("should sort by distance, apply the name fallback and cut to the limit", func() {
		result := &goverpass.Result{
			Nodes: map[int64]*goverpass.Node{
				1: node(1, 40.002, -73.0, map[string]string{"name": "Far Stop"}),
				2: node(2, 40.001, -73.0, map[string]string{"addr:street": "Main St", "addr:housenumber": "12"}),
				3: node(3, 40.0005, -73.0, map[string]string{"highway": "bus_stop"}),
				4: node(4, 40.0001, -73.0, nil),
			},
		}

		places := overpass.ToPlaces(result, center, 2)
		Expect(places).To(HaveLen(2))
		Expect(places[0].Name).To(Equal("Unnamed Location"))
		Expect(places[0].DistanceMeters).To(BeNumerically("~", 56, 1))
		Expect(places[1].Name).To(Equal("12 Main St"))
		Expect(places[1].DistanceMeters).To(BeNumerically("~", 111, 1))
	})

	It("should place a way at the mean of its nodes", func() {
		result := &goverpass.Result{
			Ways: map[int64]*goverpass.Way{
				10: {
					Meta: goverpass.Meta{ID: 10, Tags: map[string]string{"name": "Riverside School"}},
					Nodes: []*goverpass.Node{
						node(11, 40.009, -73.0, nil),
						node(12, 40.011, -73.0, nil),
					},
				},
			},
		}

		places := overpass.ToPlaces(result, center, 3)
		Expect(places).To(HaveLen(1))
		Expect(places[0].Name).To(Equal("Riverside School"))
		Expect(places[0].DistanceMeters).To(BeNumerically("~", 1112, 2))
	})

	It("should return an empty, non-nil list for an empty result", func() {
		places := overpass.ToPlaces(&goverpass.Result{}, center, 3)
		Expect(places).ToNot(BeNil())
		Expect(places).To(BeEmpty())
	})
})
