package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

var defaultClient = &http.Client{Timeout: 10 * time.Second}

// HTTPResolver fetches http and https URIs with GET.
type HTTPResolver struct {
	// Client, when nil, falls back to a shared client with a 10s timeout.
	Client *http.Client
	// MaxSize caps the response size; zero means DefaultMaxSize.
	MaxSize int64
}

func (h *HTTPResolver) Fetch(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	c := h.Client
	if c == nil {
		c = defaultClient
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: GET %s: %s", uri, resp.Status)
	}
	return readAll(resp.Body, h.MaxSize)
}
