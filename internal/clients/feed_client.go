package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/hsb1709/ejoyshopper/internal/domain"
)

// Sentinel errors classifying feed fetch failures.
var (
	ErrFeedTransport = errors.New("feed transport failure")
	ErrFeedRejected  = errors.New("feed returned non-success status")
	ErrFeedMalformed = errors.New("malformed feed response")
)

// Doer is the HTTP transport injected into the client so tests can
// substitute a fake.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type feedResponse struct {
	Items []domain.RawRecord `json:"items"`
}

type feedHTTPClient struct {
	apiURL string
	client Doer
	log    *logrus.Logger
}

// NewFeedHTTPClient returns a ProductSource fetching raw records from a
// JSON feed that exposes an "items" list.
func NewFeedHTTPClient(apiURL string, client Doer, logger *logrus.Logger) domain.ProductSource {
	return &feedHTTPClient{
		apiURL: apiURL,
		client: client,
		log:    logger,
	}
}

func (c *feedHTTPClient) Name() string { return domain.SourceAPI }

func (c *feedHTTPClient) Fetch(ctx context.Context) ([]domain.RawRecord, error) {
	c.log.Infof("Feed: Fetching products from API: %s", c.apiURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		c.log.Errorf("Feed: Failed to create request for %s: %v", c.apiURL, err)
		return nil, fmt.Errorf("%w: %v", ErrFeedTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("Feed: Failed to fetch products from API: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrFeedTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.log.Errorf("Feed: API returned status %d. Response body: %s", resp.StatusCode, string(bodyBytes))
		return nil, fmt.Errorf("%w: status %d", ErrFeedRejected, resp.StatusCode)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Errorf("Feed: Failed to decode API response: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrFeedMalformed, err)
	}

	c.log.Infof("Feed: Fetched %d raw records", len(payload.Items))
	return payload.Items, nil
}
