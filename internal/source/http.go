package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"countrypick/internal/domain"
)

// HTTPSource fetches the list from a restcountries-compatible endpoint
type HTTPSource struct {
	url        string
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	client     *http.Client
}

// NewHTTPSource creates an HTTP source. retries is the number of extra
// attempts after the first failure.
func NewHTTPSource(url string, timeout time.Duration, retries int, retryDelay time.Duration) *HTTPSource {
	return &HTTPSource{
		url:        url,
		timeout:    timeout,
		retries:    retries,
		retryDelay: retryDelay,
		client:     http.DefaultClient,
	}
}

func (s *HTTPSource) Name() string { return "http" }

// Load fetches and decodes the list, retrying with a fixed delay
func (s *HTTPSource) Load(ctx context.Context) ([]domain.Item, error) {
	var lastErr error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.retryDelay):
			}
		}

		items, err := s.fetch(ctx)
		if err == nil {
			return items, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("fetch %s failed after %d attempts: %w", s.url, s.retries+1, lastErr)
}

func (s *HTTPSource) fetch(ctx context.Context) ([]domain.Item, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "countrypick")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return Decode(resp.Body)
}
