package main

//
//  @title           bfpulse API
//  @version         1.0
//  @description     Bolsa Família payment statistics service.
//  @termsOfService  https://github.com/guttosm/bfpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/bfpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        statistics
//  @tag.description Descriptive statistics and state ranking of the installment amounts
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/bfpulse/config"
	_ "github.com/guttosm/bfpulse/docs" // swagger docs
	"github.com/guttosm/bfpulse/internal/app"
	"github.com/guttosm/bfpulse/internal/ingestion"
	"github.com/guttosm/bfpulse/internal/logger"
	"github.com/guttosm/bfpulse/internal/report"
	"github.com/guttosm/bfpulse/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// renderers picks the report outputs for analyze mode. The chart is always
// written; format selects the stdout report.
func renderers(format string, out io.Writer, chartPath string) ([]report.Renderer, error) {
	var primary report.Renderer
	switch format {
	case "text":
		primary = report.NewConsoleRenderer(out)
	case "json":
		primary = report.NewJSONRenderer(out)
	default:
		return nil, fmt.Errorf("unknown format %q (want text or json)", format)
	}
	return []report.Renderer{primary, report.NewChartRenderer(chartPath)}, nil
}

// main is the entry point of the bfpulse application.
//
// Modes (selected via --mode flag):
//   - analyze: Loads the Parquet dataset, prints the statistics report and writes the charts.
//   - convert: Turns the last N monthly CSV files from --dir into the Parquet dataset.
//   - ingest:  Persists the Parquet dataset into PostgreSQL.
//   - api:     Starts the REST API over the payments stored in PostgreSQL.
//
// Flags:
//   - --mode:     Execution mode. Default: "analyze".
//   - --dir:      Directory containing the monthly CSV files. Default: "./dados/input".
//   - --months:   How many months to convert (1-12). Default: 1.
//   - --parallel: Files parsed concurrently in convert mode (0=auto).
//   - --force:    Re-ingest a dataset already present in the ingestion log.
//   - --port:     Port for the API server. Defaults to SERVER_PORT.
//   - --format:   Report format in analyze mode ("text" or "json").
//   - --top:      Ranking size; overrides TOP_K.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger (stderr; stdout carries the report)
	logger.Init()

	mode := flag.String("mode", "analyze", "Mode: analyze, convert, ingest or api")
	dir := flag.String("dir", "./dados/input", "Directory with the monthly NovoBolsaFamilia CSV files")
	months := flag.Int("months", 1, "Number of last months to convert (1-12)")
	parallel := flag.Int("parallel", 0, "How many files to parse concurrently (0=auto up to CPU)")
	force := flag.Bool("force", false, "Re-ingest the dataset even if already ingested (deletes its payments first)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	format := flag.String("format", "text", "Report format for analyze mode: text or json")
	top := flag.Int("top", config.AppConfig.Analysis.TopK, "How many states to rank")
	flag.Parse()

	cfg := config.AppConfig
	cfg.Analysis.TopK = *top

	switch *mode {
	case "analyze":
		rs, err := renderers(*format, os.Stdout, cfg.Data.ChartPath())
		if err != nil {
			logger.L().Fatal().Err(err).Msg("invalid flags")
		}
		if err := app.RunAnalysis(ctx, cfg, rs...); err != nil {
			logger.L().Error().Err(err).Msg("analysis finished with errors")
			os.Exit(1)
		}
		logger.L().Info().Str("chart", cfg.Data.ChartPath()).Msg("analysis completed successfully")

	case "convert":
		logger.L().Info().Msg("running conversion")
		n, err := ingestion.ConvertDirectory(ctx, *dir, cfg.Data.Path(), *months, *parallel, time.Now())
		if err != nil {
			logger.L().Fatal().Err(err).Msg("conversion failed")
		}
		logger.L().Info().Int("rows", n).Str("out", cfg.Data.Path()).Msg("conversion completed successfully")

	case "ingest":
		logger.L().Info().Msg("running ingestion")

		// Direct DB connection for ingestion
		db, err := app.InitPostgres(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := storage.Migrate(db); err != nil {
			logger.L().Fatal().Err(err).Msg("migration failed")
		}
		if _, err := ingestion.PersistDataset(ctx, cfg.Data.Path(), db, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
