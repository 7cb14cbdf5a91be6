// Package fetch retrieves raw feed and GitHub payloads over HTTP and
// assembles per-source results. A failed fetch for one feed is logged and
// treated as zero items for that feed; other feeds and sources continue.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tesso57/ainews/internal/domain/news"
	"github.com/tesso57/ainews/internal/feedparse"
	"go.uber.org/zap"
)

const (
	userAgent        = "ainews/1.0"
	feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"
	githubAccept     = "application/vnd.github+json"
	defaultGitHubAPI = "https://api.github.com"
	fetchTimeout     = 10 * time.Second
	releasePageSize  = 10
)

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// Client fetches feeds and GitHub endpoints for digest sources.
type Client struct {
	http    *http.Client
	token   string
	log     *zap.SugaredLogger
	apiBase string
}

// NewClient constructs a Client. token may be empty; it is only used for
// GitHub API requests.
func NewClient(token string, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		http:    &http.Client{Timeout: fetchTimeout},
		token:   token,
		log:     log,
		apiBase: defaultGitHubAPI,
	}
}

// WithGitHubAPI overrides the GitHub API base URL. Used by tests.
func (c *Client) WithGitHubAPI(base string) *Client {
	c.apiBase = strings.TrimRight(base, "/")
	return c
}

func (c *Client) get(ctx context.Context, rawURL string, github bool) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	if github {
		req.Header.Set("Accept", githubAccept)
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
	} else {
		req.Header.Set("Accept", feedAcceptHeader)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("GET %s: unexpected status %d", rawURL, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchSource fetches every feed and GitHub endpoint configured for one
// source, filtering items older than cutoff. It never fails: each endpoint
// error is logged and contributes an empty group.
func (c *Client) FetchSource(ctx context.Context, src news.Source, cutoff time.Time) news.SourceResult {
	result := news.SourceResult{Key: src.Key, Name: src.Name}

	for _, f := range src.Feeds {
		var items []news.Item
		raw, err := c.get(ctx, f.URL, false)
		if err != nil {
			c.log.Warnw("feed fetch failed", "source", src.Key, "url", f.URL, "error", err)
		} else {
			items = feedparse.FilterByDate(feedparse.ParseFeed(raw), cutoff)
		}
		result.Feeds = append(result.Feeds, news.Group{Label: orDefault(f.Label, f.URL), Items: items})
	}

	for _, r := range src.Repos {
		endpoint := fmt.Sprintf("%s/repos/%s/%s/releases?per_page=%d", c.apiBase, r.Owner, r.Repo, releasePageSize)
		var items []news.Item
		raw, err := c.get(ctx, endpoint, true)
		if err != nil {
			c.log.Warnw("releases fetch failed", "source", src.Key, "repo", r.Owner+"/"+r.Repo, "error", err)
		} else {
			items = feedparse.FilterByDate(feedparse.ParseReleases(raw), cutoff)
		}
		result.Releases = append(result.Releases, news.Group{Label: orDefault(r.Label, r.Owner+"/"+r.Repo), Items: items})
	}

	for _, q := range src.Trending {
		query := fmt.Sprintf("%s created:>%s", q.Query, cutoff.Format("2006-01-02"))
		endpoint := fmt.Sprintf("%s/search/repositories?q=%s&sort=stars&order=desc", c.apiBase, url.QueryEscape(query))
		var items []news.Item
		raw, err := c.get(ctx, endpoint, true)
		if err != nil {
			c.log.Warnw("trending fetch failed", "source", src.Key, "query", q.Query, "error", err)
		} else {
			items = feedparse.ParseTrending(raw)
		}
		result.Trending = append(result.Trending, news.Group{Label: orDefault(q.Label, q.Query), Items: items})
	}

	return result
}

// FetchAll fetches all sources concurrently, one goroutine per source. Each
// goroutine writes only its own result slot, so no locking is needed. The
// returned slice preserves the input source order.
func (c *Client) FetchAll(ctx context.Context, sources []news.Source, maxAgeDays int, now time.Time) []news.SourceResult {
	if maxAgeDays <= 0 {
		maxAgeDays = 1
	}
	cutoff := now.AddDate(0, 0, -maxAgeDays)

	results := make([]news.SourceResult, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		i, src := i, src
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = c.FetchSource(ctx, src, cutoff)
		}()
	}
	wg.Wait()
	return results
}

func orDefault(label, fallback string) string {
	if strings.TrimSpace(label) != "" {
		return label
	}
	return fallback
}

// ErrEmptyURL is returned by ValidateFeed for blank feed URLs.
var ErrEmptyURL = errors.New("feed url is empty")
