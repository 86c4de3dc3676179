// Package geocode maps coordinates to countries using an in-memory index of
// coarse per-country bounding regions. The dataset trades mathematical
// precision for a dependency-free index that answers in microseconds; callers
// must treat a no-match as a normal outcome for open water.
package geocode

import (
	"fmt"
	"math"
	"sort"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
)

// regionBox is one rectangular approximation for a country. Countries with
// disjoint landmasses carry several boxes.
type regionBox struct {
	code           string // ISO 3166-1 alpha-3
	name           string
	minLat, maxLat float64
	minLng, maxLng float64
}

func (b regionBox) contains(lat, lng float64) bool {
	if lat < b.minLat || lat > b.maxLat {
		return false
	}
	if lng < b.minLng || lng > b.maxLng {
		return false
	}
	return true
}

func (b regionBox) area() float64 {
	return (b.maxLat - b.minLat) * (b.maxLng - b.minLng)
}

// Resolver implements ports.CountryResolver. The box slice is ordered smallest
// area first so that enclaves and small neighbours win over the wide boxes
// that inevitably overlap them. Read-only after construction.
type Resolver struct {
	boxes []regionBox
}

// NewResolver prepares the ordered index from the static dataset.
func NewResolver() *Resolver {
	boxes := append([]regionBox(nil), regions...)
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].area() < boxes[j].area()
	})
	return &Resolver{boxes: boxes}
}

// Resolve finds the country containing the coordinate. ok is false when no
// region matches (international waters). An error is returned only for inputs
// the index cannot reason about.
func (r *Resolver) Resolve(lat, lng float64) (domain.ResolvedCountry, bool, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return domain.ResolvedCountry{}, false, fmt.Errorf("coordinate is not a number")
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return domain.ResolvedCountry{}, false, fmt.Errorf("coordinate out of range: (%f, %f)", lat, lng)
	}
	for _, b := range r.boxes {
		if b.contains(lat, lng) {
			return domain.ResolvedCountry{Code: b.code, Name: b.name}, true, nil
		}
	}
	return domain.ResolvedCountry{}, false, nil
}

var _ ports.CountryResolver = (*Resolver)(nil)
