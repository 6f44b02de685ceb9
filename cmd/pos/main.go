package main

import (
	"context"
	"log"
	"os"

	"github.com/fekuna/omnipos-grocery/config"
	"github.com/fekuna/omnipos-grocery/internal/checkout/receipt"
	"github.com/fekuna/omnipos-grocery/internal/console"
	"github.com/fekuna/omnipos-grocery/internal/product"
	"github.com/fekuna/omnipos-grocery/internal/shell"
	"github.com/fekuna/omnipos-grocery/pkg/logger"

	chkH "github.com/fekuna/omnipos-grocery/internal/checkout/handler"
	chkUCPkg "github.com/fekuna/omnipos-grocery/internal/checkout/usecase"

	prodH "github.com/fekuna/omnipos-grocery/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-grocery/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-grocery/internal/product/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		OutputPaths:       cfg.Logger.Output,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// The shell blocks on stdin, so SIGINT and SIGTERM keep their default
	// behaviour and end the process.
	ctx := context.Background()

	// 3. Open the catalog store
	var prodRepo product.Repository
	switch cfg.Catalog.Driver {
	case config.DriverPostgres:
		db, err := prodRepoPkg.ConnectPostgres(ctx, cfg.Catalog.PostgresDSN)
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Using PostgreSQL catalog")
		prodRepo = prodRepoPkg.NewPGRepository(db)
	default:
		appLogger.Info("Using CSV catalog", zap.String("path", cfg.Catalog.Path))
		prodRepo = prodRepoPkg.NewCSVRepository(cfg.Catalog.Path)
	}

	// 4. Initialize UseCases
	receipts := receipt.NewFileWriter(cfg.Receipt.Dir, cfg.Receipt.Currency)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	chkUC := chkUCPkg.NewCheckoutUseCase(prodRepo, receipts, appLogger)

	// 5. Initialize Handlers
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	chkHandler := chkH.NewCheckoutHandler(chkUC, appLogger)

	// 6. Run the menu
	sh := shell.New(console.New(os.Stdin, os.Stdout), prodHandler, chkHandler, appLogger)
	if err := sh.Run(ctx); err != nil {
		appLogger.Warn("shell stopped", zap.Error(err))
	}
}
