package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiBold  = "\033[1m"
)

type TestClient struct {
	baseURL string
	client  *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "Base URL of the analyzer")
	testType := flag.String("test", "all", "Test type: all, home, health, validation, analyze, custom")
	address := flag.String("address", "", "Address to analyze (for custom test)")
	flag.Parse()

	client := NewTestClient(*baseURL)

	fmt.Printf("%sMap Analyzer smoke tests%s against %s\n\n", ansiBold, ansiReset, *baseURL)

	switch *testType {
	case "all":
		client.runAllTests()
	case "home":
		client.testHome()
	case "health":
		client.testHealthCheck()
	case "validation":
		client.testMissingAddress()
	case "analyze":
		client.testAnalyze()
	case "custom":
		if *address == "" {
			fail("address is required for the custom test, use -address")
			os.Exit(1)
		}
		client.testCustomAddress(*address)
	default:
		fail("unknown test type %q (want all, home, health, validation, analyze or custom)", *testType)
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests() {
	checks := []func() bool{
		tc.testHome,
		tc.testHealthCheck,
		tc.testMissingAddress,
		tc.testUnknownAddress,
		tc.testAnalyze,
	}

	failed := 0
	for _, check := range checks {
		if !check() {
			failed++
		}
		fmt.Println()
	}

	fmt.Printf("%d/%d checks passed\n", len(checks)-failed, len(checks))
	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) expectText(path, want string) bool {
	url := fmt.Sprintf("%s%s", tc.baseURL, path)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		fail("request failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fail("GET %s: want 200, got %d", path, resp.StatusCode)
		return false
	}

	if string(body) != want {
		fail("GET %s: want body %q, got %q", path, want, string(body))
		return false
	}
	return true
}

func (tc *TestClient) testHome() bool {
	section("GET /")
	if !tc.expectText("/", "Map Analyzer API is Running!") {
		return false
	}
	pass("liveness message")
	return true
}

func (tc *TestClient) testHealthCheck() bool {
	section("GET /health")
	if !tc.expectText("/health", "OK") {
		return false
	}
	pass("health check")
	return true
}

func (tc *TestClient) postAnalyze(payload string) (int, []byte, error) {
	url := fmt.Sprintf("%s/analyze", tc.baseURL)
	fmt.Printf("POST %s\n", url)
	fmt.Printf("  %s\n", payload)

	resp, err := tc.client.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}

func (tc *TestClient) expectError(payload string, wantStatus int, wantMessage string) bool {
	status, body, err := tc.postAnalyze(payload)
	if err != nil {
		fail("request failed: %v", err)
		return false
	}

	if status != wantStatus {
		fail("%s: want %d, got %d", payload, wantStatus, status)
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var errResp map[string]string
	if err := json.Unmarshal(body, &errResp); err != nil {
		fail("response is not JSON: %v", err)
		return false
	}

	if errResp["error"] != wantMessage {
		fail("%s: want error %q, got %q", payload, wantMessage, errResp["error"])
		return false
	}
	return true
}

func (tc *TestClient) testMissingAddress() bool {
	section("POST /analyze without an address")
	for _, payload := range []string{`{}`, `{"address":""}`, `{"address":null}`} {
		if !tc.expectError(payload, http.StatusBadRequest, "No address provided") {
			return false
		}
	}
	pass("rejected with 400")
	return true
}

func (tc *TestClient) testUnknownAddress() bool {
	section("POST /analyze with an unknown address")
	payload := fmt.Sprintf(`{"address":"zzqx-%d nowhere"}`, time.Now().Unix())
	if !tc.expectError(payload, http.StatusNotFound, "Address not found") {
		return false
	}
	pass("answered with 404")
	return true
}

func (tc *TestClient) testAnalyze() bool {
	return tc.testCustomAddress("350 5th Ave, New York, NY 10118")
}

func (tc *TestClient) testCustomAddress(address string) bool {
	section("POST /analyze")

	payload, _ := json.Marshal(map[string]string{"address": address})
	status, body, err := tc.postAnalyze(string(payload))
	if err != nil {
		fail("request failed: %v", err)
		return false
	}

	if status != http.StatusOK {
		fail("analyze: want 200, got %d", status)
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var analysis struct {
		Address     string `json:"address"`
		Coordinates struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coordinates"`
		Surroundings map[string][]struct {
			Name           string  `json:"name"`
			DistanceMeters float64 `json:"distance_meters"`
		} `json:"surroundings"`
	}
	if err := json.Unmarshal(body, &analysis); err != nil {
		fail("response is not JSON: %v", err)
		return false
	}

	groups := []string{"Schools", "Groceries", "Healthcare", "TrainStations", "BusStops"}
	for _, group := range groups {
		if _, ok := analysis.Surroundings[group]; !ok {
			fail("surroundings is missing %s", group)
			return false
		}
	}

	pass("%s resolved to %.6f, %.6f", analysis.Address, analysis.Coordinates.Lat, analysis.Coordinates.Lon)
	for _, group := range groups {
		places := analysis.Surroundings[group]
		fmt.Printf("  %s (%d)\n", group, len(places))
		for _, p := range places {
			fmt.Printf("    - %s, %.0fm\n", p.Name, p.DistanceMeters)
		}
	}
	return true
}

func section(name string) {
	fmt.Printf("%s== %s%s\n", ansiBold, name, ansiReset)
}

func pass(format string, args ...any) {
	fmt.Printf("%sPASS%s %s\n", ansiGreen, ansiReset, fmt.Sprintf(format, args...))
}

func fail(format string, args ...any) {
	fmt.Printf("%sFAIL%s %s\n", ansiRed, ansiReset, fmt.Sprintf(format, args...))
}
