package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hsb1709/ejoyshopper/internal/domain"
)

// Summary reports what a run produced. Fetch and store failures are
// recorded rather than propagated: producing records succeeds
// independently of the persistence step.
type Summary struct {
	Products     []domain.Product
	Dropped      int
	Upserted     int
	WriteSkipped bool
	FetchErr     error
	StoreErr     error
}

type SyncUseCase struct {
	source     domain.ProductSource
	normalizer *ProductNormalizer
	repo       domain.ProductRepository
	log        *logrus.Logger
}

func NewSyncUseCase(source domain.ProductSource, normalizer *ProductNormalizer, repo domain.ProductRepository, logger *logrus.Logger) *SyncUseCase {
	return &SyncUseCase{
		source:     source,
		normalizer: normalizer,
		repo:       repo,
		log:        logger,
	}
}

// Run executes one fetch, normalize, upsert pass. It never returns an
// error: failures are logged and recorded in the Summary, and the
// caller decides the process exit status.
func (uc *SyncUseCase) Run(ctx context.Context) Summary {
	var summary Summary

	records, err := uc.source.Fetch(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Fetching products failed: %v", err)
		summary.FetchErr = err
		return summary
	}
	if len(records) == 0 {
		uc.log.Warn("Use Case: No products fetched. Exiting.")
		return summary
	}

	source := uc.source.Name()
	for _, raw := range records {
		product, err := uc.normalizer.Normalize(raw, source)
		if err != nil {
			summary.Dropped++
			continue
		}
		summary.Products = append(summary.Products, *product)
	}
	uc.log.Infof("Use Case: Built %d products from %d raw records (%d dropped)",
		len(summary.Products), len(records), summary.Dropped)

	if len(summary.Products) == 0 {
		uc.log.Info("Use Case: No products to upsert")
		return summary
	}

	result, err := uc.repo.UpsertProducts(ctx, summary.Products)
	if err != nil {
		uc.log.Errorf("Use Case: Store write failed (records were still produced): %v", err)
		summary.StoreErr = err
		return summary
	}
	summary.Upserted = result.Upserted
	summary.WriteSkipped = result.Skipped
	return summary
}
