package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
)

type urlRosterRepo struct {
	url       string
	client    *http.Client
	hasHeader bool
}

// NewURLRosterRepository fetches the roster with a single GET.
// A nil client falls back to http.DefaultClient.
func NewURLRosterRepository(rawURL string, client *http.Client, hasHeader bool) RosterRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &urlRosterRepo{url: rawURL, client: client, hasHeader: hasHeader}
}

func (r *urlRosterRepo) Names(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch roster: unexpected status %d", resp.StatusCode)
	}

	ext := ""
	if u, err := url.Parse(r.url); err == nil {
		ext = path.Ext(u.Path) // query strings don't hide the extension
	}
	return parseRoster(resp.Body, ext, r.hasHeader)
}
