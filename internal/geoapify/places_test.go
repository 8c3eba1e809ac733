package geoapify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/BerylCAtieno/map-analyzer/internal/geoapify"
	"github.com/BerylCAtieno/map-analyzer/internal/models"
)

var _ = Describe("PlaceFinder", func() {

	var (
		server   *httptest.Server
		status   int
		body     string
		lastPath string
		lastQry  url.Values
		finder   *geoapify.PlaceFinder
		query    models.PlaceQuery
	)

	BeforeEach(func() {
		status = http.StatusOK
		body = `{"features":[]}`
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath = r.URL.Path
			lastQry = r.URL.Query()
			w.WriteHeader(status)
			w.Write([]byte(body))
		}))
		finder = geoapify.NewPlaceFinder(geoapify.NewClient(server.URL+"/", "test-key", 2*time.Second))
		query = models.PlaceQuery{
			Center:       models.Coordinates{Lat: 40.5, Lon: -73.25},
			Categories:   []string{"healthcare.hospital", "healthcare.clinic"},
			RadiusMeters: 5000,
			Limit:        3,
		}
	})

	AfterEach(func() {
		server.Close()
	})

	It("should build the circle filter and proximity bias in lon,lat order", func() {
		finder.Find(context.Background(), query)
		Expect(lastPath).To(Equal("/v2/places"))
		Expect(lastQry.Get("categories")).To(Equal("healthcare.hospital,healthcare.clinic"))
		Expect(lastQry.Get("filter")).To(Equal("circle:-73.25,40.5,5000"))
		Expect(lastQry.Get("bias")).To(Equal("proximity:-73.25,40.5"))
		Expect(lastQry.Get("limit")).To(Equal("3"))
		Expect(lastQry.Get("apiKey")).To(Equal("test-key"))
	})

	It("should keep provider order and apply the name fallback", func() {
		body = `{"features":[
			{"properties":{"name":"City Hospital","address_line1":"1 Health Rd","distance":120}},
			{"properties":{"address_line1":"12 Main St","distance":340.5}},
			{"properties":{"name":"","distance":800}},
			{"properties":{}}
		]}`
		res := finder.Find(context.Background(), query)
		Expect(res.Err).ToNot(HaveOccurred())
		Expect(res.Places).To(Equal([]models.Place{
			{Name: "City Hospital", DistanceMeters: 120},
			{Name: "12 Main St", DistanceMeters: 340.5},
			{Name: "Unnamed Location", DistanceMeters: 800},
			{Name: "Unnamed Location", DistanceMeters: 0},
		}))
	})

	It("should return an empty, non-nil list when nothing is nearby", func() {
		res := finder.Find(context.Background(), query)
		Expect(res.Err).ToNot(HaveOccurred())
		Expect(res.Places).ToNot(BeNil())
		Expect(res.Places).To(BeEmpty())
	})

	Context("when the search fails", func() {
		It("should absorb an upstream error into an empty list", func() {
			status = http.StatusInternalServerError
			res := finder.Find(context.Background(), query)
			Expect(res.Err).To(MatchError(models.ErrUpstreamStatus))
			Expect(res.Places).ToNot(BeNil())
			Expect(res.Places).To(BeEmpty())
		})

		It("should not expose the API key when the request times out", func() {
			slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
				w.Write([]byte(`{"features":[]}`))
			}))
			defer slow.Close()

			f := geoapify.NewPlaceFinder(geoapify.NewClient(slow.URL, "SECRET-KEY-123", 50*time.Millisecond))
			res := f.Find(context.Background(), query)
			Expect(res.Err).To(HaveOccurred())
			Expect(res.Err.Error()).To(ContainSubstring("/v2/places"))
			Expect(res.Err.Error()).ToNot(ContainSubstring("SECRET-KEY-123"))
			Expect(res.Places).To(BeEmpty())
		})

		It("should absorb a malformed body into an empty list", func() {
			body = `{"features":[{"properties":{"distance":"far"}}]}`
			res := finder.Find(context.Background(), query)
			Expect(res.Err).To(MatchError(models.ErrMalformedResponse))
			Expect(res.Places).To(BeEmpty())
		})
	})
})
