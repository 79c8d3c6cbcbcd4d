package netcheck

import (
	"context"
	"net/http"
	"time"
)

//go:generate moq -out checker_mock.go . Checker

// Checker reports current network reachability.
// The answer is a best-effort snapshot, not a guarantee: a call made
// right after a positive answer may still fail. Consumers decide whether
// to attempt network I/O at all; the attempt's own outcome is the
// ground truth.
type Checker interface {
	Online(ctx context.Context) bool
}

// probeTimeout ограничивает время одной проверки, чтобы офлайн
// определялся быстро
const probeTimeout = 3 * time.Second

// HTTPChecker probes the server health endpoint
type HTTPChecker struct {
	httpClient *http.Client
	healthURL  string
}

// NewHTTPChecker creates a checker probing serverURL's health endpoint
func NewHTTPChecker(serverURL string) *HTTPChecker {
	return &HTTPChecker{
		healthURL: serverURL + "/healthz",
		httpClient: &http.Client{
			Timeout: probeTimeout,
		},
	}
}

// Online reports whether the server health endpoint is reachable
func (c *HTTPChecker) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
