// Command geolookup runs a single coordinate through the lookup pipeline and
// prints the resulting record as JSON. Useful for smoke-testing the resolvers
// without starting the web server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/lcalzada-xor/timemap/internal/adapters/countrydata"
	"github.com/lcalzada-xor/timemap/internal/adapters/geocode"
	"github.com/lcalzada-xor/timemap/internal/adapters/timezone"
	"github.com/lcalzada-xor/timemap/internal/adapters/worldbank"
	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/services/display"
	"github.com/lcalzada-xor/timemap/internal/core/services/pipeline"
	"github.com/lcalzada-xor/timemap/internal/telemetry"
)

// discardStore satisfies the pipeline without persisting anything.
type discardStore struct{}

func (discardStore) SaveLookup(domain.LocationInfo) error              { return nil }
func (discardStore) RecentLookups(int) ([]domain.LocationInfo, error) { return nil, nil }
func (discardStore) Close() error                                     { return nil }

func main() {
	lat := flag.Float64("lat", 40.7128, "Latitude to look up")
	lng := flag.Float64("lng", -74.0060, "Longitude to look up")
	offline := flag.Bool("offline", false, "Skip World Bank enrichment")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	telemetry.InitMetrics()

	tzResolver, err := timezone.NewResolver()
	if err != nil {
		slog.Error("Failed to initialize timezone resolver", "error", err)
		os.Exit(1)
	}

	baseURL := worldbank.DefaultBaseURL
	if *offline {
		// An unroutable host makes both enrichment calls fail fast, which
		// exercises the silent-degradation path.
		baseURL = "http://127.0.0.1:0"
	}

	p := pipeline.New(
		tzResolver,
		geocode.NewResolver(),
		countrydata.New(),
		worldbank.New(baseURL, 2022, 10*time.Second),
		display.NewPublisher(true, nil),
		discardStore{},
	)
	p.MarkReady()

	rec := p.Lookup(context.Background(), *lat, *lng)

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		slog.Error("Failed to encode record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
