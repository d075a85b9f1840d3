package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bfpulse/config"
	"github.com/guttosm/bfpulse/internal/api"
	"github.com/guttosm/bfpulse/internal/logger"
	"github.com/guttosm/bfpulse/internal/service"
	"github.com/guttosm/bfpulse/internal/stats"
	"github.com/guttosm/bfpulse/internal/storage"
)

// InitializeApp sets up all API dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Loads every stored payment once; the API serves that snapshot.
//   - Builds the analysis service, the HTTP handlers and the router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close the DB connection.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	method, err := stats.ParseMethod(cfg.Analysis.QuantileMethod)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid QUANTILE_METHOD: %w", err)
	}

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewPaymentsRepository(db)
	ds, err := repo.LoadPayments(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to load payments: %w", err)
	}
	logger.L().Info().Int("rows", ds.Len()).Str("source", ds.Source()).Msg("payments loaded")

	svc := service.NewAnalysisService(ds, cfg.Analysis.FenceCoef)
	handler := api.NewHandler(svc, method, cfg.Analysis.TopK)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.PingContext)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
