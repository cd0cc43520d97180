package repository

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hsb1709/ejoyshopper/internal/domain"
)

type noopProductRepository struct {
	reason string
	log    *logrus.Logger
}

// NewNoopProductRepository returns a ProductRepository that skips every
// write and logs why. It is wired when the remote write step is
// disabled or the store is not configured; skipping is a success, not
// an error.
func NewNoopProductRepository(reason string, logger *logrus.Logger) domain.ProductRepository {
	return &noopProductRepository{reason: reason, log: logger}
}

func (r *noopProductRepository) UpsertProducts(ctx context.Context, products []domain.Product) (*domain.UpsertResult, error) {
	r.log.Infof("Store: Skipping upsert of %d products: %s", len(products), r.reason)
	return &domain.UpsertResult{Skipped: true}, nil
}
