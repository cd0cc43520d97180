package clients

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hsb1709/ejoyshopper/internal/domain"
)

type mockSource struct {
	name    string
	records []domain.RawRecord
	log     *logrus.Logger
}

func (s *mockSource) Name() string { return s.name }

func (s *mockSource) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	s.log.Infof("MockSource: Returning %d built-in '%s' records", len(s.records), s.name)
	return s.records, nil
}

// NewMockScrapeSource returns the built-in "scrape" dataset: one known
// product listed under the member's affiliate link.
func NewMockScrapeSource(member string, logger *logrus.Logger) domain.ProductSource {
	return &mockSource{
		name: domain.SourceScrape,
		records: []domain.RawRecord{
			{
				"url":      "https://www.mymall.com.tw/pro-123?member=" + member,
				"title":    "測試商品",
				"price":    299,
				"currency": "TWD",
				"stock":    100,
			},
		},
		log: logger,
	}
}

// NewMockAPISource returns the built-in "api" dataset mimicking one
// feed record.
func NewMockAPISource(logger *logrus.Logger) domain.ProductSource {
	return &mockSource{
		name: domain.SourceAPI,
		records: []domain.RawRecord{
			{
				"url":      "https://www.mymall.com.tw/pro-456",
				"title":    "API 測試商品",
				"price":    499,
				"currency": "TWD",
				"stock":    50,
			},
		},
		log: logger,
	}
}
