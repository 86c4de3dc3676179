package server

import (
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lcalzada-xor/timemap/internal/adapters/web/middleware"
	"github.com/lcalzada-xor/timemap/internal/adapters/web/static"
)

// SetupRoutes wires the HTTP surface.
func SetupRoutes(s *Server) http.Handler {
	mux := http.NewServeMux()

	// Map page and assets.
	mux.Handle("/", http.FileServer(http.FS(static.Files)))

	// Clicks are user-driven; the limiter only guards against scripted abuse.
	lookupLimiter := middleware.NewRateLimiter(120, 1*time.Minute)

	// API paths are registered without method patterns: with the catch-all
	// file server on "/", a method-only mismatch would otherwise fall through
	// to it and 404. The handlers enforce their methods and answer 405.
	mux.Handle("/api/lookup", middleware.RateLimitMiddleware(lookupLimiter)(http.HandlerFunc(s.LookupHandler.HandleLookup)))
	mux.HandleFunc("/api/current", s.LookupHandler.HandleCurrent)
	mux.HandleFunc("/api/history", s.HistoryHandler.HandleHistory)
	mux.HandleFunc("/api/config", s.ConfigHandler.HandleConfig)
	mux.HandleFunc("/api/reports/history.pdf", s.ReportHandler.HandleHistoryPDF)

	// Path-variable routes go through gorilla/mux.
	countries := gmux.NewRouter()
	countries.HandleFunc("/api/countries/{code}", s.CountryHandler.HandleCountry).Methods(http.MethodGet)
	mux.Handle("/api/countries/", countries)

	mux.HandleFunc("/ws", s.WSManager.HandleWebSocket)

	mux.Handle("/metrics", promhttp.Handler())

	return mux
}
