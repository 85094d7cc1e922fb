// Package remote fetches the latest progress snapshot for a pattern from
// the sync service. Failures never block loading a pattern locally; the
// session treats them as "no remote copy".
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"stitch-tracker/internal/progress"
)

// Client talks to the progress sync service.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the service at base, e.g.
// "https://sync.example.net".
func NewClient(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// LoadLatest fetches the most recent snapshot for the pattern. A 404 means
// no remote copy exists and returns (nil, 0, nil).
func (c *Client) LoadLatest(ctx context.Context, patternID string) (*progress.Progress, int64, error) {
	u := fmt.Sprintf("%s/patterns/%s/progress", c.base, url.PathEscape(patternID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("remote: fetch %s: %w", patternID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("remote: fetch %s: status %s", patternID, resp.Status)
	}

	var snap progress.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, 0, fmt.Errorf("remote: decode %s: %w", patternID, err)
	}
	p, err := progress.FromSnapshot(&snap)
	if err != nil {
		return nil, 0, fmt.Errorf("remote: %w", err)
	}
	return p, snap.UpdatedAt, nil
}
