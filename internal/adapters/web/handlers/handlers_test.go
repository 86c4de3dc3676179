package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gmux "github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcalzada-xor/timemap/internal/adapters/countrydata"
	"github.com/lcalzada-xor/timemap/internal/core/domain"
)

type stubService struct {
	rec     domain.LocationInfo
	lastLat float64
	lastLng float64
}

func (s *stubService) Lookup(ctx context.Context, lat, lng float64) domain.LocationInfo {
	s.lastLat, s.lastLng = lat, lng
	return s.rec
}

type stubPublisher struct {
	rec *domain.LocationInfo
}

func (p *stubPublisher) Publish(rec domain.LocationInfo) bool { p.rec = &rec; return true }
func (p *stubPublisher) Current() (domain.LocationInfo, bool) {
	if p.rec == nil {
		return domain.LocationInfo{}, false
	}
	return *p.rec, true
}

func TestHandleLookup(t *testing.T) {
	svc := &stubService{rec: domain.LocationInfo{ID: "abc", Sequence: 1, Coordinates: "(40.71, -74.01)", Time: "02:30 PM"}}
	h := NewLookupHandler(svc, &stubPublisher{})

	req := httptest.NewRequest(http.MethodPost, "/api/lookup", strings.NewReader(`{"lat":40.7128,"lng":-74.0060}`))
	w := httptest.NewRecorder()
	h.HandleLookup(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 40.7128, svc.lastLat)
	assert.Equal(t, -74.0060, svc.lastLng)

	var got domain.LocationInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "02:30 PM", got.Time)
}

func TestHandleLookup_InvalidBody(t *testing.T) {
	h := NewLookupHandler(&stubService{}, &stubPublisher{})

	req := httptest.NewRequest(http.MethodPost, "/api/lookup", strings.NewReader(`not json`))
	w := httptest.NewRecorder()
	h.HandleLookup(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleLookup_OutOfRange(t *testing.T) {
	h := NewLookupHandler(&stubService{}, &stubPublisher{})

	req := httptest.NewRequest(http.MethodPost, "/api/lookup", strings.NewReader(`{"lat":95,"lng":0}`))
	w := httptest.NewRecorder()
	h.HandleLookup(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "latitude")
}

func TestHandleLookup_MethodNotAllowed(t *testing.T) {
	h := NewLookupHandler(&stubService{}, &stubPublisher{})

	req := httptest.NewRequest(http.MethodGet, "/api/lookup", nil)
	w := httptest.NewRecorder()
	h.HandleLookup(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleCurrent_NoRecordYet(t *testing.T) {
	h := NewLookupHandler(&stubService{}, &stubPublisher{})

	req := httptest.NewRequest(http.MethodGet, "/api/current", nil)
	w := httptest.NewRecorder()
	h.HandleCurrent(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandleCurrent(t *testing.T) {
	pub := &stubPublisher{}
	pub.Publish(domain.LocationInfo{ID: "cur", Sequence: 7})
	h := NewLookupHandler(&stubService{}, pub)

	req := httptest.NewRequest(http.MethodGet, "/api/current", nil)
	w := httptest.NewRecorder()
	h.HandleCurrent(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.LocationInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "cur", got.ID)
}

func countryRouter() http.Handler {
	h := NewCountryHandler(countrydata.New())
	r := gmux.NewRouter()
	r.HandleFunc("/api/countries/{code}", h.HandleCountry).Methods(http.MethodGet)
	return r
}

func TestHandleCountry_Alpha2(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/countries/us", nil)
	w := httptest.NewRecorder()
	countryRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.CountryRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "United States", got.Name)
	assert.Equal(t, "🇺🇸", got.Emoji)
}

func TestHandleCountry_Alpha3(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/countries/DEU", nil)
	w := httptest.NewRecorder()
	countryRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.CountryRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Germany", got.Name)
}

func TestHandleCountry_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/countries/ZZZ", nil)
	w := httptest.NewRecorder()
	countryRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleConfig(t *testing.T) {
	h := NewConfigHandler(ClientConfig{TileURL: "https://tiles.example/{z}/{x}/{y}.png", TileAttribution: "test", Version: "dev"})

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	w := httptest.NewRecorder()
	h.HandleConfig(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got ClientConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "https://tiles.example/{z}/{x}/{y}.png", got.TileURL)
}
