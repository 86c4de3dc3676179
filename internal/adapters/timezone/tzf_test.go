package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver()
	require.NoError(t, err)
	return r
}

func TestResolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name string
		lat  float64
		lng  float64
		zone string
	}{
		{"New York", 40.7128, -74.0060, "America/New_York"},
		{"London", 51.5074, -0.1278, "Europe/London"},
		{"Tokyo", 35.6762, 139.6503, "Asia/Tokyo"},
		{"Sydney", -33.8688, 151.2093, "Australia/Sydney"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, err := r.Resolve(tt.lat, tt.lng)
			require.NoError(t, err)
			assert.Equal(t, tt.zone, zone)
		})
	}
}

// Open ocean maps to an Etc/GMT offset zone rather than failing.
func TestResolve_Ocean(t *testing.T) {
	r := newTestResolver(t)

	zone, err := r.Resolve(0, -140)
	require.NoError(t, err)
	assert.Contains(t, zone, "Etc/GMT")
}

func TestResolve_OutOfRange(t *testing.T) {
	r := newTestResolver(t)

	_, err := r.Resolve(91, 0)
	assert.Error(t, err)

	_, err = r.Resolve(0, -181)
	assert.Error(t, err)
}
