// Package pipeline implements the click pipeline: the sequential chain of
// resolver and enrichment calls that turns a map click into the displayed
// location record. Every fallible step is caught at its own boundary and
// converted into a user-visible message; nothing propagates out of Lookup and
// every path ends in a publish.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
	"github.com/lcalzada-xor/timemap/internal/telemetry"
)

// timeLayout is the 12-hour wall-clock format the panel shows.
const timeLayout = "03:04 PM"

// Pipeline orchestrates one lookup per click. Resolver references are
// read-only after construction; the sequence counter is the only mutable
// state and it is atomic.
type Pipeline struct {
	timezone  ports.TimezoneResolver
	countries ports.CountryResolver
	directory ports.CountryDirectory
	enricher  ports.Enricher
	publisher ports.Publisher
	history   ports.LookupStore // optional; best-effort

	clock  func() time.Time
	tracer trace.Tracer

	seq   atomic.Uint64
	ready atomic.Bool
}

// New wires the pipeline. history may be nil.
func New(tz ports.TimezoneResolver, countries ports.CountryResolver, directory ports.CountryDirectory, enricher ports.Enricher, publisher ports.Publisher, history ports.LookupStore) *Pipeline {
	return &Pipeline{
		timezone:  tz,
		countries: countries,
		directory: directory,
		enricher:  enricher,
		publisher: publisher,
		history:   history,
		clock:     time.Now,
		tracer:    otel.Tracer("timemap/pipeline"),
	}
}

// SetClock overrides the wall clock. Used by tests.
func (p *Pipeline) SetClock(clock func() time.Time) { p.clock = clock }

// MarkReady flips the single-init flag once global initialization completed.
func (p *Pipeline) MarkReady() { p.ready.Store(true) }

// Ready reports whether initialization completed.
func (p *Pipeline) Ready() bool { return p.ready.Load() }

// Lookup runs the full click pipeline for one coordinate and returns the
// published record. Clicks are not debounced or cancelled: overlapping calls
// each run to completion, and the publisher arbitrates which record ends up
// displayed.
func (p *Pipeline) Lookup(ctx context.Context, lat, lng float64) domain.LocationInfo {
	ctx, span := p.tracer.Start(ctx, "pipeline.Lookup",
		trace.WithAttributes(attribute.Float64("lat", lat), attribute.Float64("lng", lng)))
	defer span.End()

	start := p.clock()
	telemetry.LookupsTotal.Inc()

	rec := domain.LocationInfo{
		ID:          uuid.NewString(),
		Sequence:    p.seq.Add(1),
		Coordinates: domain.Coordinate{Latitude: lat, Longitude: lng}.Display(),
		Time:        domain.MsgTimeLoading,
		ResolvedAt:  start,
	}

	// Before initialization completes, short-circuit without touching any
	// resolver.
	if !p.ready.Load() {
		rec.SetError(domain.MsgInitializing)
		telemetry.LookupErrors.WithLabelValues("initializing").Inc()
		return p.finish(rec, start)
	}

	// Timezone and wall-clock time. A failure here also skips the country
	// branch for this click; both share one error boundary.
	if err := p.resolveTime(&rec, lat, lng); err != nil {
		rec.Time = domain.MsgTimeLookupError
		rec.SetError(err.Error())
		telemetry.LookupErrors.WithLabelValues("time_failure").Inc()
		span.RecordError(err)
		return p.finish(rec, start)
	}

	p.resolveCountry(ctx, &rec, lat, lng)
	return p.finish(rec, start)
}

// resolveTime fills the time field from the timezone resolver.
func (p *Pipeline) resolveTime(rec *domain.LocationInfo, lat, lng float64) error {
	if p.timezone == nil {
		return fmt.Errorf("timezone resolver not initialized")
	}
	zone, err := p.timezone.Resolve(lat, lng)
	if err != nil {
		return err
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", zone, err)
	}
	rec.Timezone = zone
	rec.Time = p.clock().In(loc).Format(timeLayout)
	return nil
}

// resolveCountry runs the country branch: reverse-geocode, directory match,
// remote enrichment. All outcomes are recorded on rec; none abort the click.
func (p *Pipeline) resolveCountry(ctx context.Context, rec *domain.LocationInfo, lat, lng float64) {
	if p.countries == nil || p.directory == nil {
		rec.SetError(domain.MsgServiceUnavailable)
		telemetry.LookupErrors.WithLabelValues("service_unavailable").Inc()
		return
	}

	resolved, found, err := p.countries.Resolve(lat, lng)
	if err != nil {
		slog.Error("country resolution failed", "lat", lat, "lng", lng, "error", err)
		rec.SetError(domain.MsgCountryLookupError)
		telemetry.LookupErrors.WithLabelValues("geocoding_failure").Inc()
		return
	}
	if !found {
		// Open water. A displayable outcome, not a retryable fault.
		rec.SetError(domain.MsgNoCountryFound)
		telemetry.LookupErrors.WithLabelValues("no_match").Inc()
		return
	}

	match := p.directory.Find(resolved.Code, resolved.Name)
	if !match.Matched() {
		// The two naming authorities disagree on this territory; show the
		// geocoder's name with no flag and no enrichment.
		rec.SetCountry(resolved.Name)
		return
	}

	if p.enricher == nil {
		rec.SetCountry(fmt.Sprintf("%s %s", match.Record.Emoji, resolved.Name))
		return
	}

	// Name and population are independent failure domains: a failure in one
	// must never abort or blank the other.
	name, ok := p.enricher.CountryName(ctx, match.Record.Alpha2)
	if !ok || name == "" {
		name = resolved.Name
	}
	rec.SetCountry(fmt.Sprintf("%s %s", match.Record.Emoji, name))

	if population, ok := p.enricher.Population(ctx, match.Record.Alpha2); ok {
		rec.SetPopulation(population)
	}
}

// finish publishes the record (every exit path lands here) and appends it to
// the history when the publisher accepted it.
func (p *Pipeline) finish(rec domain.LocationInfo, start time.Time) domain.LocationInfo {
	telemetry.LookupDuration.Observe(p.clock().Sub(start).Seconds())

	accepted := p.publisher.Publish(rec)
	if !accepted {
		return rec
	}
	if p.history != nil {
		if err := p.history.SaveLookup(rec); err != nil {
			slog.Warn("could not persist lookup", "id", rec.ID, "error", err)
		}
	}
	return rec
}
