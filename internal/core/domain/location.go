package domain

import (
	"fmt"
	"time"
)

// User-facing messages surfaced through LocationInfo.Error. The texts are part
// of the UI contract and are matched by the frontend, so they are centralized
// here rather than scattered through the pipeline.
const (
	MsgInitializing       = "Application is still initializing..."
	MsgServiceUnavailable = "Country data service is not available"
	MsgNoCountryFound     = "No country data found for this location"
	MsgCountryLookupError = "Could not determine country for this location"
	MsgTimeLookupError    = "Could not determine time for this location"
	MsgTimeLoading        = "Loading..."
)

// LocationInfo is the result record assembled for one map click. Exactly one
// record is "current" at any moment; publishing a new one fully replaces it.
type LocationInfo struct {
	ID          string `json:"id"`
	Sequence    uint64 `json:"sequence"`
	Coordinates string `json:"coordinates"`
	Time        string `json:"time"`

	Country           *string `json:"country,omitempty"`
	Population        *int64  `json:"population,omitempty"`
	PopulationDisplay string  `json:"population_display,omitempty"`

	Error *string `json:"error,omitempty"`

	Timezone   string    `json:"timezone,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// SetCountry stores the composed country line ("<emoji> <name>" or a bare name).
func (l *LocationInfo) SetCountry(s string) {
	l.Country = &s
}

// SetPopulation stores the population and its bucketed display form.
func (l *LocationInfo) SetPopulation(n int64) {
	l.Population = &n
	l.PopulationDisplay = FormatPopulation(n)
}

// SetError records a user-visible failure. Errors here are informational; the
// record is still published.
func (l *LocationInfo) SetError(msg string) {
	l.Error = &msg
}

// FormatPopulation buckets a population count into billion/million/thousand
// units with two decimals, or the raw integer below one thousand.
func FormatPopulation(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.2f billion", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.2f million", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.2f thousand", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
