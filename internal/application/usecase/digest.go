// Package usecase contains application-level services.
package usecase

import (
	"context"
	"time"

	"github.com/tesso57/ainews/internal/domain/news"
)

// Fetcher abstracts retrieval of all configured endpoints for a set of
// sources. Implementations must isolate per-feed failures and never abort
// the whole pass.
type Fetcher interface {
	FetchAll(ctx context.Context, sources []news.Source, maxAgeDays int, now time.Time) []news.SourceResult
}

// SeenStore abstracts the cross-run seen-item record.
type SeenStore interface {
	Seen(key string) (bool, error)
	Mark(key, source, title string, now time.Time) error
}

// DigestService coordinates fetching and optional deduplication for one
// digest run.
type DigestService struct {
	Fetcher Fetcher
	Seen    SeenStore // nil disables deduplication
	Now     func() time.Time
}

// NewDigestService constructs a DigestService.
func NewDigestService(fetcher Fetcher, seen SeenStore, now func() time.Time) DigestService {
	return DigestService{
		Fetcher: fetcher,
		Seen:    seen,
		Now:     now,
	}
}

// Build fetches all sources for the lookback window and, when a seen store is
// configured, drops items reported by earlier runs and records the survivors.
func (s DigestService) Build(ctx context.Context, sources []news.Source, days int) []news.SourceResult {
	if days <= 0 {
		days = 1
	}
	now := s.now()
	results := s.Fetcher.FetchAll(ctx, sources, days, now)
	if s.Seen != nil {
		for i := range results {
			s.dedupe(&results[i], now)
		}
	}
	return results
}

// dedupe filters already-seen items out of every group and marks the rest.
// Store errors fail open: the item stays in the digest.
func (s DigestService) dedupe(r *news.SourceResult, now time.Time) {
	for _, groups := range [][]news.Group{r.Feeds, r.Releases, r.Trending} {
		for gi := range groups {
			kept := groups[gi].Items[:0]
			for _, it := range groups[gi].Items {
				key := it.DedupeKey()
				if key == "" {
					kept = append(kept, it)
					continue
				}
				seen, err := s.Seen.Seen(key)
				if err == nil && seen {
					continue
				}
				kept = append(kept, it)
				_ = s.Seen.Mark(key, r.Key, it.Title, now)
			}
			groups[gi].Items = kept
		}
	}
}

func (s DigestService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
