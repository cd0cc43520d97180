package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hsb1709/ejoyshopper/config"
	"github.com/hsb1709/ejoyshopper/internal/clients"
	"github.com/hsb1709/ejoyshopper/internal/domain"
	"github.com/hsb1709/ejoyshopper/internal/repository"
	"github.com/hsb1709/ejoyshopper/internal/usecase"
	"github.com/hsb1709/ejoyshopper/pkg/httpclient"
)

// defaultMember is the built-in affiliate id used when -member is not
// given.
const defaultMember = "af000049855"

func main() {
	logger := setupLogger("info")

	mode := flag.String("mode", "scrape", "Dataset to produce: scrape or api")
	insert := flag.Bool("insert", false, "Write the produced records to the store")
	member := flag.String("member", defaultMember, "Member id embedded in mock affiliate links")
	flag.Parse()

	cfg := config.Load(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s' in config, using default 'info'. Error: %v", cfg.LogLevel, err)
	} else {
		logger.SetLevel(logLevel)
	}
	logger.Infof("Starting scraper (mode '%s', insert=%v)...", *mode, *insert)

	var source domain.ProductSource
	switch *mode {
	case "scrape":
		source = clients.NewMockScrapeSource(*member, logger)
	case "api":
		source = clients.NewMockAPISource(logger)
	default:
		logger.Fatalf("Unknown mode: %s. Expected 'scrape' or 'api'.", *mode)
	}

	var repo domain.ProductRepository
	switch {
	case !*insert:
		repo = repository.NewNoopProductRepository("remote write disabled (run with -insert to enable)", logger)
	case !cfg.StoreConfigured():
		repo = repository.NewNoopProductRepository("SUPABASE_URL/SUPABASE_SERVICE_ROLE_KEY not set", logger)
	default:
		repo = repository.NewSupabaseProductRepository(cfg.SupabaseURL, cfg.StoreKey(), httpclient.New(cfg.RequestTimeout), logger)
	}

	// Mock URLs already encode their member id, so no link decoration
	// happens here.
	normalizer := usecase.NewProductNormalizer("", logger)
	syncUseCase := usecase.NewSyncUseCase(source, normalizer, repo, logger)

	summary := syncUseCase.Run(context.Background())

	fmt.Printf("✅ 執行成功，共 %d 筆商品\n", len(summary.Products))
	for _, p := range summary.Products {
		fmt.Printf("- %s\n", p.Title)
	}
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
