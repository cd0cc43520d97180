package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hsb1709/ejoyshopper/internal/domain"
)

// Sentinel errors classifying store write failures. A missing store
// configuration is not an error: the no-op repository covers that case.
var (
	ErrStoreTransport    = errors.New("store transport failure")
	ErrStoreRejected     = errors.New("store rejected upsert")
	ErrMalformedResponse = errors.New("malformed store response")
)

// Doer is the HTTP transport injected into the repository so tests can
// substitute a fake.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxBodyExcerpt bounds response bodies quoted in failure logs.
const maxBodyExcerpt = 400

type supabaseProductRepository struct {
	baseURL string
	apiKey  string
	client  Doer
	log     *logrus.Logger
}

// NewSupabaseProductRepository returns a ProductRepository writing to
// the Supabase (PostgREST) products table. Writes are batched upserts
// keyed on id, so repeating a batch updates rows instead of duplicating
// them.
func NewSupabaseProductRepository(baseURL, apiKey string, client Doer, logger *logrus.Logger) domain.ProductRepository {
	return &supabaseProductRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
		log:     logger,
	}
}

func (r *supabaseProductRepository) UpsertProducts(ctx context.Context, products []domain.Product) (*domain.UpsertResult, error) {
	if len(products) == 0 {
		r.log.Info("Supabase: No products to upsert")
		return &domain.UpsertResult{}, nil
	}

	requestID := uuid.NewString()
	url := fmt.Sprintf("%s/rest/v1/products?on_conflict=id", r.baseURL)
	r.log.Infof("Supabase: Upserting %d products (request %s)", len(products), requestID)

	body, err := json.Marshal(products)
	if err != nil {
		r.log.Errorf("Supabase: Failed to marshal upsert payload: %v", err)
		return nil, fmt.Errorf("failed to marshal upsert payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		r.log.Errorf("Supabase: Failed to create upsert request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreTransport, err)
	}
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=representation")
	req.Header.Set("X-Request-Id", requestID)

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Errorf("Supabase: Upsert request %s failed: %v", requestID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		r.log.Errorf("Supabase: Failed to read upsert response for request %s: %v", requestID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.log.Errorf("Supabase: Upsert request %s failed with status %d. Response body: %s",
			requestID, resp.StatusCode, excerpt(respBody))
		return nil, fmt.Errorf("%w: status %d", ErrStoreRejected, resp.StatusCode)
	}

	// return=representation makes the store echo the written rows; the
	// row count is the acknowledgement.
	var rows []json.RawMessage
	if err := json.Unmarshal(respBody, &rows); err != nil {
		r.log.Errorf("Supabase: Unexpected payload in upsert response for request %s: %v. Response body: %s",
			requestID, err, excerpt(respBody))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	r.log.Infof("Supabase: Successfully upserted %d products", len(rows))
	return &domain.UpsertResult{Upserted: len(rows)}, nil
}

func excerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		return string(body[:maxBodyExcerpt]) + "..."
	}
	return string(body)
}
