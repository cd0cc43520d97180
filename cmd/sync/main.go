package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hsb1709/ejoyshopper/config"
	"github.com/hsb1709/ejoyshopper/internal/clients"
	"github.com/hsb1709/ejoyshopper/internal/repository"
	"github.com/hsb1709/ejoyshopper/internal/usecase"
	"github.com/hsb1709/ejoyshopper/pkg/httpclient"
)

func main() {
	logger := setupLogger("info")

	cfg := config.Load(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s' in config, using default 'info'. Error: %v", cfg.LogLevel, err)
	} else {
		logger.SetLevel(logLevel)
	}

	// The sync variant cannot run without its full configuration; this
	// is the only path that exits nonzero.
	if err := cfg.RequireSync(); err != nil {
		logger.Fatalf("Configuration error: %v", err)
	}
	logger.Info("Starting product sync...")

	httpClient := httpclient.New(cfg.RequestTimeout)
	source := clients.NewFeedHTTPClient(cfg.APIURL, httpClient, logger)
	normalizer := usecase.NewProductNormalizer(cfg.MemberID, logger)
	repo := repository.NewSupabaseProductRepository(cfg.SupabaseURL, cfg.StoreKey(), httpClient, logger)
	syncUseCase := usecase.NewSyncUseCase(source, normalizer, repo, logger)

	summary := syncUseCase.Run(context.Background())

	logger.Infof("Sync finished: %d products built, %d upserted", len(summary.Products), summary.Upserted)
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
