package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/querysphere-backend/internal/api"
	chatapi "github.com/futig/querysphere-backend/internal/api/chat"
	referenceapi "github.com/futig/querysphere-backend/internal/api/reference"
	"github.com/futig/querysphere-backend/internal/config"
	"github.com/futig/querysphere-backend/internal/pkg/formatter"
	"github.com/futig/querysphere-backend/internal/pkg/validator"
	"github.com/futig/querysphere-backend/internal/repository"
	"github.com/futig/querysphere-backend/internal/usecase/chat"
	"github.com/futig/querysphere-backend/internal/usecase/reference"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.Int("marker_base", cfg.ChatCfg.MarkerBase),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations", zap.String("source", cfg.MigrationsPath))
	if err := repository.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	metadataRepo := repository.NewDocumentMetadataPostgres(db)
	logger.Info("Repositories initialized")

	if cfg.UniofficeLicenseKey == "" {
		logger.Warn("UNIOFFICE_LICENSE_KEY is not set, DOCX export is disabled")
	} else if err := formatter.SetDOCXLicense(cfg.UniofficeLicenseKey); err != nil {
		logger.Error("DOCX export is disabled", zap.Error(err))
	}

	// Initialize validators
	chatValidator := validator.NewChatValidator(cfg.ChatCfg)

	// Initialize use cases
	chatUC := chat.NewUsecase(
		cfg.ChatCfg.MarkerBase,
		cfg.ExamplePrompts,
		chatValidator,
		formatter.NewFactory(),
		logger,
	)

	referenceUC := reference.NewUsecase(
		metadataRepo,
		cfg.ReferencesCfg.CacheTTL,
		cfg.ReferencesCfg.CacheCleanupInterval,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	chatHandler := chatapi.NewHandler(chatUC, cfg.ChatCfg.MaxRequestSize)
	referenceHandler := referenceapi.NewHandler(referenceUC)

	router := api.SetupRouter(chatHandler, referenceHandler, cfg.CORSCfg.AllowedOrigins, logger)
	logger.Info("HTTP router configured")

	server := newHTTPServer(cfg.ServerAddr, router)

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}

// writeTimeoutSlack leaves room to write the middleware's timeout response.
const writeTimeoutSlack = 5 * time.Second

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: api.RequestTimeout + writeTimeoutSlack,
		IdleTimeout:  90 * time.Second,
	}
}
