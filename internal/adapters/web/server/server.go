package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/lcalzada-xor/timemap/internal/adapters/web/handlers"
	web "github.com/lcalzada-xor/timemap/internal/adapters/web/websocket"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
)

// Server handles HTTP and WebSocket connections.
type Server struct {
	Addr      string
	WSManager *web.WSManager

	LookupHandler  *handlers.LookupHandler
	HistoryHandler *handlers.HistoryHandler
	CountryHandler *handlers.CountryHandler
	ConfigHandler  *handlers.ConfigHandler
	ReportHandler  *handlers.ReportHandler

	srv *http.Server
}

// NewServer creates a new web server.
func NewServer(
	addr string,
	pipeline handlers.LookupService,
	publisher ports.Publisher,
	store ports.LookupStore,
	directory ports.CountryDirectory,
	exporter handlers.HistoryExporter,
	wsManager *web.WSManager,
	clientConfig handlers.ClientConfig,
) *Server {
	return &Server{
		Addr:           addr,
		WSManager:      wsManager,
		LookupHandler:  handlers.NewLookupHandler(pipeline, publisher),
		HistoryHandler: handlers.NewHistoryHandler(store),
		CountryHandler: handlers.NewCountryHandler(directory),
		ConfigHandler:  handlers.NewConfigHandler(clientConfig),
		ReportHandler:  handlers.NewReportHandler(store, exporter),
	}
}

// Run starts the server and blocks until the context is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	s.WSManager.Start(ctx)

	handler := SetupRoutes(s)
	instrumentedHandler := otelhttp.NewHandler(handler, "timemap-server")

	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           instrumentedHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		slog.Info("web server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("web server shutdown error", "error", err)
		}
	}()

	slog.Info("web server listening", "addr", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
