// Package timezone resolves coordinates to IANA timezone identifiers using
// the embedded tzf dataset. The default finder covers oceans with Etc/GMT
// offset zones, so every in-range coordinate yields an identifier.
package timezone

import (
	"fmt"

	"github.com/ringsaturn/tzf"

	"github.com/lcalzada-xor/timemap/internal/core/ports"
)

// Resolver implements ports.TimezoneResolver on top of tzf. The finder loads
// its polygon data once at construction and is safe for concurrent reads.
type Resolver struct {
	finder tzf.F
}

// NewResolver builds the finder from the bundled dataset.
func NewResolver() (*Resolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("init timezone finder: %w", err)
	}
	return &Resolver{finder: finder}, nil
}

// Resolve returns the IANA identifier for the coordinate. tzf takes
// (lng, lat) order.
func (r *Resolver) Resolve(lat, lng float64) (string, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return "", fmt.Errorf("coordinate out of range: (%f, %f)", lat, lng)
	}
	name := r.finder.GetTimezoneName(lng, lat)
	if name == "" {
		return "", fmt.Errorf("no timezone for coordinate (%f, %f)", lat, lng)
	}
	return name, nil
}

var _ ports.TimezoneResolver = (*Resolver)(nil)
