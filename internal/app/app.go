package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lcalzada-xor/timemap/internal/adapters/countrydata"
	"github.com/lcalzada-xor/timemap/internal/adapters/geocode"
	"github.com/lcalzada-xor/timemap/internal/adapters/reporting"
	"github.com/lcalzada-xor/timemap/internal/adapters/storage"
	"github.com/lcalzada-xor/timemap/internal/adapters/timezone"
	"github.com/lcalzada-xor/timemap/internal/adapters/web/handlers"
	webserver "github.com/lcalzada-xor/timemap/internal/adapters/web/server"
	web "github.com/lcalzada-xor/timemap/internal/adapters/web/websocket"
	"github.com/lcalzada-xor/timemap/internal/adapters/worldbank"
	"github.com/lcalzada-xor/timemap/internal/config"
	"github.com/lcalzada-xor/timemap/internal/core/services/display"
	"github.com/lcalzada-xor/timemap/internal/core/services/pipeline"
	"github.com/lcalzada-xor/timemap/internal/telemetry"
)

// Version is set by the build.
var Version = "dev"

// Application holds the core components of the application. It acts as the
// facade for the whole system, orchestrating services and infrastructure.
type Application struct {
	Config    *config.Config
	Pipeline  *pipeline.Pipeline
	Publisher *display.Publisher
	WebServer *webserver.Server
	Store     *storage.SQLiteAdapter
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	if err := app.bootstrap(); err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

// bootstrap orchestrates the initialization sequence.
func (app *Application) bootstrap() error {
	// 1. Foundation & Infrastructure
	telemetry.InitMetrics()

	store, err := storage.NewSQLiteAdapter(app.Config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open lookup store: %w", err)
	}
	app.Store = store

	// 2. Resolvers
	// Loading the timezone index dominates startup; clicks made before this
	// returns would see the initializing message, so it happens up front.
	tzResolver, err := timezone.NewResolver()
	if err != nil {
		return fmt.Errorf("failed to initialize timezone resolver: %w", err)
	}
	countryResolver := geocode.NewResolver()
	directory := countrydata.New()

	// 3. Enrichment & Display
	enricher := worldbank.New(app.Config.WorldBankBaseURL, app.Config.PopulationYear, app.Config.HTTPTimeout)

	wsManager := web.NewWSManager(nil)
	publisher := display.NewPublisher(app.Config.LatestWins, wsManager)
	wsManager.SetPublisher(publisher)
	app.Publisher = publisher

	// 4. Pipeline
	app.Pipeline = pipeline.New(tzResolver, countryResolver, directory, enricher, publisher, store)
	app.Pipeline.MarkReady()

	// 5. Web Server
	app.WebServer = webserver.NewServer(
		app.Config.Addr,
		app.Pipeline,
		publisher,
		store,
		directory,
		reporting.NewPDFExporter(),
		wsManager,
		handlers.ClientConfig{
			TileURL:         app.Config.TileURL,
			TileAttribution: app.Config.TileAttribution,
			Version:         Version,
		},
	)

	return nil
}

// Run starts the web server and blocks until the context is cancelled.
func (app *Application) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		if err := app.WebServer.Run(ctx); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errChan:
		return fmt.Errorf("web server error: %w", err)
	}

	if err := app.Store.Close(); err != nil {
		slog.Warn("failed to close lookup store", "error", err)
	}

	return nil
}
