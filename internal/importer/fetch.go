package importer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pfrederiksen/library-events/internal/event"
)

const (
	UserAgent = "library-events/1.0 (github.com/pfrederiksen/library-events)"
	Timeout   = 30 * time.Second
)

// Fetcher downloads event tables over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Fetch downloads url and parses its events table with ParseHTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]event.Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ParseHTML(resp.Body)
}
