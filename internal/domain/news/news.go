// Package news defines the value types shared across the digest pipeline.
package news

// Feed describes one RSS or Atom feed belonging to a source.
type Feed struct {
	URL   string `yaml:"url" json:"url"`
	Type  string `yaml:"type" json:"type"` // "rss" or "atom"
	Label string `yaml:"label" json:"label"`
}

// Repo describes a GitHub repository polled for releases.
type Repo struct {
	Owner string `yaml:"owner" json:"owner"`
	Repo  string `yaml:"repo" json:"repo"`
	Label string `yaml:"label" json:"label"`
}

// TrendingQuery describes a GitHub repository search used as a trending signal.
type TrendingQuery struct {
	Query string `yaml:"query" json:"query"`
	Label string `yaml:"label" json:"label"`
}

// Source is a named news origin. It is built once at startup and never
// mutated during a run.
type Source struct {
	Key      string
	Name     string
	Feeds    []Feed
	Repos    []Repo
	Trending []TrendingQuery
}

// Item is one extracted entry from a feed or a GitHub API response.
// Empty string fields mean the origin did not provide that value.
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars,omitempty"`
}

// Group is the items fetched from a single feed or endpoint, under its label.
type Group struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// SourceResult aggregates everything fetched for one source in one pass.
type SourceResult struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Feeds    []Group `json:"feeds,omitempty"`
	Releases []Group `json:"releases,omitempty"`
	Trending []Group `json:"trending,omitempty"`
}

// DedupeKey returns the identity used for cross-run deduplication: the link
// when present, else the title.
func (it Item) DedupeKey() string {
	if it.Link != "" {
		return it.Link
	}
	return it.Title
}

// ItemCount returns the total number of items across all groups.
func (r SourceResult) ItemCount() int {
	n := 0
	for _, g := range r.Feeds {
		n += len(g.Items)
	}
	for _, g := range r.Releases {
		n += len(g.Items)
	}
	for _, g := range r.Trending {
		n += len(g.Items)
	}
	return n
}

// HasItems reports whether any group produced at least one item.
func (r SourceResult) HasItems() bool {
	return r.ItemCount() > 0
}
