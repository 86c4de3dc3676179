package storage

import (
	"time"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
)

// LookupModel is the GORM model for one published location record.
type LookupModel struct {
	ID          string `gorm:"primaryKey"`
	Sequence    uint64
	Coordinates string
	Time        string
	Timezone    string
	Country     *string
	Population  *int64
	Error       *string
	ResolvedAt  time.Time `gorm:"index"`
}

// toModel converts a domain record to its database model.
func toModel(rec domain.LocationInfo) LookupModel {
	return LookupModel{
		ID:          rec.ID,
		Sequence:    rec.Sequence,
		Coordinates: rec.Coordinates,
		Time:        rec.Time,
		Timezone:    rec.Timezone,
		Country:     rec.Country,
		Population:  rec.Population,
		Error:       rec.Error,
		ResolvedAt:  rec.ResolvedAt,
	}
}

// toDomain converts a database model back to the domain record. The derived
// population display string is rebuilt rather than stored.
func toDomain(m LookupModel) domain.LocationInfo {
	rec := domain.LocationInfo{
		ID:          m.ID,
		Sequence:    m.Sequence,
		Coordinates: m.Coordinates,
		Time:        m.Time,
		Timezone:    m.Timezone,
		Country:     m.Country,
		Error:       m.Error,
		ResolvedAt:  m.ResolvedAt,
	}
	if m.Population != nil {
		rec.SetPopulation(*m.Population)
	}
	return rec
}
