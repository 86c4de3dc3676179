package domain

import (
	"errors"
	"fmt"
)

// Domain Errors
var (
	ErrLatitudeOutOfRange  = errors.New("latitude must be within [-90, 90]")
	ErrLongitudeOutOfRange = errors.New("longitude must be within [-180, 180]")
)

// Coordinate is a point on the Earth's surface. It is transient: one is
// produced per map click and none are persisted on their own.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// NewCoordinate validates the ranges and returns the coordinate.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, ErrLatitudeOutOfRange
	}
	if lng < -180 || lng > 180 {
		return Coordinate{}, ErrLongitudeOutOfRange
	}
	return Coordinate{Latitude: lat, Longitude: lng}, nil
}

// Display renders the coordinate the way the result panel shows it,
// e.g. "(40.71, -74.01)".
func (c Coordinate) Display() string {
	return fmt.Sprintf("(%.2f, %.2f)", c.Latitude, c.Longitude)
}
