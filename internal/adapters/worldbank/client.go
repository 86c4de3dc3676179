// Package worldbank fetches country names and population statistics from the
// World Bank open data API. Both calls are best-effort: any network or shape
// failure degrades to a fallback value and is never surfaced as an error to
// the caller. The API returns positional JSON arrays, not objects; element
// [0] is paging metadata and element [1] carries the payload.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/lcalzada-xor/timemap/internal/adapters/countrydata"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
	"github.com/lcalzada-xor/timemap/internal/telemetry"
)

const (
	// DefaultBaseURL is the public v2 API root.
	DefaultBaseURL = "https://api.worldbank.org/v2"
	// PopulationIndicator is the total-population series.
	PopulationIndicator = "SP.POP.TOTL"
)

// Client implements ports.Enricher. One attempt per call, no retries, no
// backoff; a zero timeout leaves hung requests hanging, matching the
// product's accepted behavior (each click runs in its own handler).
type Client struct {
	baseURL string
	year    int
	http    *http.Client
}

// New builds a client. timeout of 0 means no client-side timeout.
func New(baseURL string, year int, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		year:    year,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// countryEntry is the useful slice of a /country/{code} element.
type countryEntry struct {
	Name string `json:"name"`
}

// indicatorEntry is the useful slice of an indicator data point. Value may be
// null for years with no figure.
type indicatorEntry struct {
	Value *float64 `json:"value"`
}

// CountryName fetches the official English name for an alpha-2 code and runs
// it through the common-name correction table. ok is false on any failure;
// the pipeline then falls back to the geocoder's raw name.
func (c *Client) CountryName(ctx context.Context, alpha2 string) (string, bool) {
	u := fmt.Sprintf("%s/country/%s?format=json", c.baseURL, url.PathEscape(alpha2))

	var entries []countryEntry
	if err := c.getPositional(ctx, u, &entries); err != nil {
		slog.Warn("country name fetch failed", "code", alpha2, "error", err)
		telemetry.EnrichmentFailures.WithLabelValues("name").Inc()
		return "", false
	}
	if len(entries) == 0 || entries[0].Name == "" {
		telemetry.EnrichmentFailures.WithLabelValues("name").Inc()
		return "", false
	}
	return countrydata.CorrectName(entries[0].Name), true
}

// Population fetches the total-population figure for the configured reference
// year. ok is false on any failure or absent data point; the record then
// simply omits the population.
func (c *Client) Population(ctx context.Context, alpha2 string) (int64, bool) {
	u := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&date=%d",
		c.baseURL, url.PathEscape(alpha2), PopulationIndicator, c.year)

	var entries []indicatorEntry
	if err := c.getPositional(ctx, u, &entries); err != nil {
		slog.Warn("population fetch failed", "code", alpha2, "error", err)
		telemetry.EnrichmentFailures.WithLabelValues("population").Inc()
		return 0, false
	}
	if len(entries) == 0 || entries[0].Value == nil {
		telemetry.EnrichmentFailures.WithLabelValues("population").Inc()
		return 0, false
	}
	return int64(*entries[0].Value), true
}

// getPositional performs the request and decodes element [1] of the top-level
// array into out. Element [0] is paging metadata the caller never needs.
func (c *Client) getPositional(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	telemetry.EnrichmentRequests.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var envelope []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if len(envelope) < 2 {
		return fmt.Errorf("envelope has %d elements, want 2", len(envelope))
	}
	if err := json.Unmarshal(envelope[1], out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

var _ ports.Enricher = (*Client)(nil)
