package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/services/display"
)

// MockTimezoneResolver
type MockTimezoneResolver struct {
	mock.Mock
}

func (m *MockTimezoneResolver) Resolve(lat, lng float64) (string, error) {
	args := m.Called(lat, lng)
	return args.String(0), args.Error(1)
}

// MockCountryResolver
type MockCountryResolver struct {
	mock.Mock
}

func (m *MockCountryResolver) Resolve(lat, lng float64) (domain.ResolvedCountry, bool, error) {
	args := m.Called(lat, lng)
	return args.Get(0).(domain.ResolvedCountry), args.Bool(1), args.Error(2)
}

// MockDirectory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) Find(code, name string) domain.CountryMatch {
	args := m.Called(code, name)
	return args.Get(0).(domain.CountryMatch)
}

func (m *MockDirectory) ByAlpha2(code string) (domain.CountryRecord, bool) {
	args := m.Called(code)
	return args.Get(0).(domain.CountryRecord), args.Bool(1)
}

// MockEnricher
type MockEnricher struct {
	mock.Mock
}

func (m *MockEnricher) CountryName(ctx context.Context, alpha2 string) (string, bool) {
	args := m.Called(ctx, alpha2)
	return args.String(0), args.Bool(1)
}

func (m *MockEnricher) Population(ctx context.Context, alpha2 string) (int64, bool) {
	args := m.Called(ctx, alpha2)
	return args.Get(0).(int64), args.Bool(1)
}

var usRecord = domain.CountryRecord{
	Name:   "United States",
	Alpha2: "US",
	Alpha3: "USA",
	Emoji:  "🇺🇸",
}

func fixedClock() time.Time {
	// 19:30 UTC renders as 02:30 PM in New York (UTC-5 in January).
	return time.Date(2024, 1, 15, 19, 30, 0, 0, time.UTC)
}

func newTestPipeline(tz *MockTimezoneResolver, countries *MockCountryResolver, directory *MockDirectory, enricher *MockEnricher) (*Pipeline, *display.Publisher) {
	pub := display.NewPublisher(true, nil)
	p := New(tz, countries, directory, enricher, pub, nil)
	p.SetClock(fixedClock)
	p.MarkReady()
	return p, pub
}

func TestLookup_BeforeInitialization(t *testing.T) {
	tz := new(MockTimezoneResolver)
	pub := display.NewPublisher(true, nil)
	p := New(tz, nil, nil, nil, pub, nil)

	rec := p.Lookup(context.Background(), 40.7128, -74.0060)

	require.NotNil(t, rec.Error)
	assert.Equal(t, domain.MsgInitializing, *rec.Error)
	assert.Equal(t, domain.MsgTimeLoading, rec.Time)

	// Even the short-circuit publishes.
	current, ok := pub.Current()
	require.True(t, ok)
	assert.Equal(t, rec.ID, current.ID)

	// Nothing may touch the resolvers before readiness.
	tz.AssertNotCalled(t, "Resolve")
}

func TestLookup_FullyEnriched(t *testing.T) {
	tz := new(MockTimezoneResolver)
	countries := new(MockCountryResolver)
	directory := new(MockDirectory)
	enricher := new(MockEnricher)

	tz.On("Resolve", 40.7128, -74.0060).Return("America/New_York", nil)
	countries.On("Resolve", 40.7128, -74.0060).
		Return(domain.ResolvedCountry{Code: "USA", Name: "United States of America"}, true, nil)
	directory.On("Find", "USA", "United States of America").
		Return(domain.MatchedCountry(usRecord))
	enricher.On("CountryName", mock.Anything, "US").Return("United States", true)
	enricher.On("Population", mock.Anything, "US").Return(int64(333_287_557), true)

	p, pub := newTestPipeline(tz, countries, directory, enricher)
	rec := p.Lookup(context.Background(), 40.7128, -74.0060)

	assert.Equal(t, "(40.71, -74.01)", rec.Coordinates)
	assert.Equal(t, "02:30 PM", rec.Time)
	assert.Equal(t, "America/New_York", rec.Timezone)
	require.NotNil(t, rec.Country)
	assert.Equal(t, "🇺🇸 United States", *rec.Country)
	require.NotNil(t, rec.Population)
	assert.Equal(t, int64(333_287_557), *rec.Population)
	assert.Equal(t, "333.29 million", rec.PopulationDisplay)
	assert.Nil(t, rec.Error)

	current, ok := pub.Current()
	require.True(t, ok)
	assert.Equal(t, rec.ID, current.ID)

	tz.AssertExpectations(t)
	countries.AssertExpectations(t)
	directory.AssertExpectations(t)
	enricher.AssertExpectations(t)
}

func TestLookup_OpenWater(t *testing.T) {
	tz := new(MockTimezoneResolver)
	countries := new(MockCountryResolver)
	directory := new(MockDirectory)
	enricher := new(MockEnricher)

	tz.On("Resolve", 0.0, -140.0).Return("Etc/GMT+9", nil)
	countries.On("Resolve", 0.0, -140.0).Return(domain.ResolvedCountry{}, false, nil)

	p, _ := newTestPipeline(tz, countries, directory, enricher)
	rec := p.Lookup(context.Background(), 0, -140)

	// Time still resolves over the ocean; only the country line errors.
	assert.NotEqual(t, domain.MsgTimeLoading, rec.Time)
	assert.NotEqual(t, domain.MsgTimeLookupError, rec.Time)
	assert.Nil(t, rec.Country)
	require.NotNil(t, rec.Error)
	assert.Equal(t, domain.MsgNoCountryFound, *rec.Error)

	enricher.AssertNotCalled(t, "CountryName")
	enricher.AssertNotCalled(t, "Population")
}

func TestLookup_TimeFailureSkipsCountryBranch(t *testing.T) {
	tz := new(MockTimezoneResolver)
	countries := new(MockCountryResolver)

	tz.On("Resolve", 12.0, 12.0).Return("", errors.New("index lookup failed"))

	p, pub := newTestPipeline(tz, countries, new(MockDirectory), new(MockEnricher))
	rec := p.Lookup(context.Background(), 12, 12)

	assert.Equal(t, domain.MsgTimeLookupError, rec.Time)
	require.NotNil(t, rec.Error)
	assert.Nil(t, rec.Country)

	countries.AssertNotCalled(t, "Resolve")

	_, ok := pub.Current()
	assert.True(t, ok, "a failed click must still publish")
}

func TestLookup_GeocoderFault(t *testing.T) {
	tz := new(MockTimezoneResolver)
	countries := new(MockCountryResolver)

	tz.On("Resolve", 1.0, 1.0).Return("Etc/GMT", nil)
	countries.On("Resolve", 1.0, 1.0).Return(domain.ResolvedCountry{}, false, errors.New("index corrupt"))

	p, _ := newTestPipeline(tz, countries, new(MockDirectory), new(MockEnricher))
	rec := p.Lookup(context.Background(), 1, 1)

	require.NotNil(t, rec.Error)
	assert.Equal(t, domain.MsgCountryLookupError, *rec.Error)
	assert.Nil(t, rec.Country)
}

// A territory the directory does not know still gets its raw geocoder name,
// with no flag and no enrichment.
func TestLookup_DirectoryMiss(t *testing.T) {
	tz := new(MockTimezoneResolver)
	countries := new(MockCountryResolver)
	directory := new(MockDirectory)
	enricher := new(MockEnricher)

	tz.On("Resolve", -54.8, -68.3).Return("America/Argentina/Ushuaia", nil)
	countries.On("Resolve", -54.8, -68.3).
		Return(domain.ResolvedCountry{Code: "XYZ", Name: "Uncharted Territory"}, true, nil)
	directory.On("Find", "XYZ", "Uncharted Territory").Return(domain.NoMatch())

	p, _ := newTestPipeline(tz, countries, directory, enricher)
	rec := p.Lookup(context.Background(), -54.8, -68.3)

	require.NotNil(t, rec.Country)
	assert.Equal(t, "Uncharted Territory", *rec.Country)
	assert.Nil(t, rec.Population)
	assert.Nil(t, rec.Error)

	enricher.AssertNotCalled(t, "CountryName")
	enricher.AssertNotCalled(t, "Population")
}

// Remote enrichment going dark degrades silently: flag plus the geocoder's
// name, no population, no error line.
func TestLookup_EnrichmentOutage(t *testing.T) {
	tz := new(MockTimezoneResolver)
	countries := new(MockCountryResolver)
	directory := new(MockDirectory)
	enricher := new(MockEnricher)

	tz.On("Resolve", 40.7128, -74.0060).Return("America/New_York", nil)
	countries.On("Resolve", 40.7128, -74.0060).
		Return(domain.ResolvedCountry{Code: "USA", Name: "United States of America"}, true, nil)
	directory.On("Find", "USA", "United States of America").
		Return(domain.MatchedCountry(usRecord))
	enricher.On("CountryName", mock.Anything, "US").Return("", false)
	enricher.On("Population", mock.Anything, "US").Return(int64(0), false)

	p, _ := newTestPipeline(tz, countries, directory, enricher)
	rec := p.Lookup(context.Background(), 40.7128, -74.0060)

	require.NotNil(t, rec.Country)
	assert.Equal(t, "🇺🇸 United States of America", *rec.Country)
	assert.Nil(t, rec.Population)
	assert.Empty(t, rec.PopulationDisplay)
	assert.Nil(t, rec.Error)
}

// Population can succeed even when the name call fails; the two calls are
// independent.
func TestLookup_NameFailsPopulationSucceeds(t *testing.T) {
	tz := new(MockTimezoneResolver)
	countries := new(MockCountryResolver)
	directory := new(MockDirectory)
	enricher := new(MockEnricher)

	tz.On("Resolve", 40.7128, -74.0060).Return("America/New_York", nil)
	countries.On("Resolve", 40.7128, -74.0060).
		Return(domain.ResolvedCountry{Code: "USA", Name: "United States of America"}, true, nil)
	directory.On("Find", "USA", "United States of America").
		Return(domain.MatchedCountry(usRecord))
	enricher.On("CountryName", mock.Anything, "US").Return("", false)
	enricher.On("Population", mock.Anything, "US").Return(int64(333_287_557), true)

	p, _ := newTestPipeline(tz, countries, directory, enricher)
	rec := p.Lookup(context.Background(), 40.7128, -74.0060)

	require.NotNil(t, rec.Country)
	assert.Equal(t, "🇺🇸 United States of America", *rec.Country)
	require.NotNil(t, rec.Population)
	assert.Equal(t, "333.29 million", rec.PopulationDisplay)
}

func TestLookup_SequencesAreMonotonic(t *testing.T) {
	tz := new(MockTimezoneResolver)
	countries := new(MockCountryResolver)

	tz.On("Resolve", mock.Anything, mock.Anything).Return("Etc/GMT", nil)
	countries.On("Resolve", mock.Anything, mock.Anything).Return(domain.ResolvedCountry{}, false, nil)

	p, _ := newTestPipeline(tz, countries, new(MockDirectory), new(MockEnricher))

	first := p.Lookup(context.Background(), 1, 1)
	second := p.Lookup(context.Background(), 2, 2)
	assert.Less(t, first.Sequence, second.Sequence)
}

// Overlapping clicks each run to completion and each publishes; the last
// publish is the one on display.
func TestLookup_ConcurrentClicks(t *testing.T) {
	tz := new(MockTimezoneResolver)
	countries := new(MockCountryResolver)

	tz.On("Resolve", mock.Anything, mock.Anything).Return("Etc/GMT", nil)
	countries.On("Resolve", mock.Anything, mock.Anything).Return(domain.ResolvedCountry{}, false, nil)

	p, pub := newTestPipeline(tz, countries, new(MockDirectory), new(MockEnricher))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			p.Lookup(context.Background(), float64(n), float64(n))
		}(i)
	}
	wg.Wait()

	current, ok := pub.Current()
	require.True(t, ok)
	assert.NotZero(t, current.Sequence)
}
