package locker

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"gitlab.com/begraf/trailpost/geotrack"
)

// Client handles communication with the point locator API.
type Client struct {
	baseURL    string
	token      string
	delay      time.Duration
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a locator API client. The delay is slept between
// consecutive queries to respect the provider's rate limits.
func NewClient(baseURL, token string, delay time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		delay:      delay,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// PointResult records the outcome of the locker query for a single route
// point. A failed query carries its error and contributes zero lockers.
type PointResult struct {
	Point geotrack.Point
	Count int
	Err   error
}

// Report collects the per-point outcomes of one fetch run.
type Report struct {
	Results []PointResult
}

// Failures counts the route points whose query failed.
func (r Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}

	return n
}

type pointsResponse struct {
	Items []Locker `json:"items"`
}

// Near returns the parcel lockers within radiusKm of the given point,
// sorted by distance from it.
func (c *Client) Near(p geotrack.Point, radiusKm float64) ([]Locker, error) {
	params := url.Values{}
	params.Set("type", "parcel_locker")
	params.Set("relative_point", fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon))
	params.Set("max_distance", strconv.Itoa(int(radiusKm*1000)))
	params.Set("sort", "distance")

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/v1/points?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build locator request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("locator request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("locator returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload pointsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode locator response: %w", err)
	}

	return payload.Items, nil
}

// FetchAlongRoute queries every route point in order, one request at a time,
// sleeping the configured delay between requests. A failed query is logged
// and skipped; the returned report carries one result per point so callers
// can inspect failures.
func (c *Client) FetchAlongRoute(route []geotrack.Point, radiusKm float64) ([]Locker, Report) {
	var (
		lockers []Locker
		report  Report
	)

	for i, p := range route {
		c.log.Info().
			Int("point", i+1).
			Int("total", len(route)).
			Float64("lat", p.Lat).
			Float64("lon", p.Lon).
			Msg("querying lockers")

		items, err := c.Near(p, radiusKm)
		if err != nil {
			c.log.Warn().Err(err).Msg("locker query failed")
		}

		lockers = append(lockers, items...)
		report.Results = append(report.Results, PointResult{Point: p, Count: len(items), Err: err})

		if i < len(route)-1 {
			time.Sleep(c.delay)
		}
	}

	return lockers, report
}
