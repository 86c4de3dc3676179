package ports

import (
	"context"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
)

// TimezoneResolver maps a coordinate to an IANA timezone identifier. It must
// be deterministic and side-effect free; over open water it may answer with a
// longitude-derived Etc/GMT zone rather than failing.
type TimezoneResolver interface {
	Resolve(lat, lng float64) (string, error)
}

// CountryResolver reverse-geocodes a coordinate against the in-memory region
// index. ok is false for international waters; this is a normal, displayable
// outcome, not an error. A non-nil error means an internal fault.
type CountryResolver interface {
	Resolve(lat, lng float64) (domain.ResolvedCountry, bool, error)
}

// CountryDirectory is the static country reference table plus its two
// correction tables. Find is idempotent for a given (code, name) pair.
type CountryDirectory interface {
	// Find normalizes the alpha-3 code and scans the table for a record whose
	// alpha-2 equals the normalized code OR whose name matches the resolver's
	// name case-insensitively. First match in table order wins.
	Find(code, name string) domain.CountryMatch
	// ByAlpha2 looks a record up by its canonical alpha-2 code.
	ByAlpha2(code string) (domain.CountryRecord, bool)
}

// Enricher fetches the canonical English name and the latest population
// statistic from the remote service. Both calls degrade rather than fail:
// ok=false means the caller uses its fallback, never that the click errors.
type Enricher interface {
	CountryName(ctx context.Context, alpha2 string) (string, bool)
	Population(ctx context.Context, alpha2 string) (int64, bool)
}

// Publisher owns the single "current displayed record" slot. Publish replaces
// it and pushes the record to every connected display panel; it reports
// whether the record was accepted (a stale sequence may be dropped).
type Publisher interface {
	Publish(rec domain.LocationInfo) bool
	Current() (domain.LocationInfo, bool)
}

// LookupStore appends published records to the lookup history. Storage is
// best-effort supplemental surface: the pipeline never reads it back to
// answer a lookup.
type LookupStore interface {
	SaveLookup(rec domain.LocationInfo) error
	RecentLookups(limit int) ([]domain.LocationInfo, error)
	Close() error
}
