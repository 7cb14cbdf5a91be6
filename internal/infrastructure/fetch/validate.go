package fetch

import (
	"context"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
)

// ParserFunc is exposed for testing.
// It allows mocking the strict feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = &http.Client{
		Timeout:   fetchTimeout,
		Transport: acceptTransport{base: http.DefaultTransport},
	}
	return fp.ParseURLWithContext(url, ctx)
}

// ValidateFeed strictly parses the feed at url and returns its title. Unlike
// the digest path, malformed documents are reported as errors here; this
// backs the doctor command.
func ValidateFeed(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", ErrEmptyURL
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return "", err
	}
	title := parsed.Title
	if title == "" {
		title = url
	}
	return title, nil
}
