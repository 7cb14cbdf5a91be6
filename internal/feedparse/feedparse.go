// Package feedparse extracts structured items from raw feed XML and GitHub
// API JSON. It is deliberately not a full XML parser: feeds are scanned with
// first-match regular expressions, missing tags degrade to empty fields, and
// malformed payloads yield empty results instead of errors.
package feedparse

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tesso57/ainews/internal/domain/news"
)

const (
	maxReleases = 5
	maxTrending = 10
)

var (
	htmlTagRe  = regexp.MustCompile(`<[^>]*>`)
	cdataRe    = regexp.MustCompile(`(?s)^<!\[CDATA\[(.*)\]\]>$`)
	atomLinkRe = regexp.MustCompile(`<link[^>]*href="([^"]+)"`)
	rssLinkRe  = regexp.MustCompile(`(?s)<link(?:\s[^>]*)?>(.*?)</link>`)
	itemRe     = regexp.MustCompile(`(?s)<item(?:\s[^>]*)?>(.*?)</item>`)
	entryRe    = regexp.MustCompile(`(?s)<entry(?:\s[^>]*)?>(.*?)</entry>`)

	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// StripHTML removes tag markup, decodes the five common HTML entities, and
// collapses all whitespace runs to single spaces.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	s = htmlTagRe.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// ExtractTag returns the text content of the first <tag> element, unwrapping
// a CDATA section when present. Tags carrying attributes are matched; tag
// names are case-sensitive. Returns "" when the tag is absent.
func ExtractTag(xml, tag string) string {
	q := regexp.QuoteMeta(tag)
	re := regexp.MustCompile(`(?s)<` + q + `(?:\s[^>]*)?>(.*?)</` + q + `>`)
	m := re.FindStringSubmatch(xml)
	if m == nil {
		return ""
	}
	inner := strings.TrimSpace(m[1])
	if cm := cdataRe.FindStringSubmatch(inner); cm != nil {
		return strings.TrimSpace(cm[1])
	}
	return inner
}

// ExtractLink resolves an entry's canonical URL: Atom <link href="..."> first,
// then RSS <link>url</link>, then <guid> as a last resort. Returns "" when
// none is present.
func ExtractLink(block string) string {
	if m := atomLinkRe.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := rssLinkRe.FindStringSubmatch(block); m != nil {
		if link := strings.TrimSpace(m[1]); link != "" {
			return link
		}
	}
	return ExtractTag(block, "guid")
}

// ParseFeed extracts items from a raw RSS 2.0 or Atom document. The dialect
// is auto-detected by scanning for <item> blocks first, then <entry> blocks.
// Entries missing sub-tags still yield an item with empty fields; a document
// with no entries yields an empty slice.
func ParseFeed(raw string) []news.Item {
	blocks := itemRe.FindAllStringSubmatch(raw, -1)
	if len(blocks) == 0 {
		blocks = entryRe.FindAllStringSubmatch(raw, -1)
	}

	items := make([]news.Item, 0, len(blocks))
	for _, m := range blocks {
		block := m[1]

		date := ExtractTag(block, "pubDate")
		if date == "" {
			date = ExtractTag(block, "published")
		}
		if date == "" {
			date = ExtractTag(block, "updated")
		}

		desc := ExtractTag(block, "description")
		if desc == "" {
			desc = ExtractTag(block, "summary")
		}

		items = append(items, news.Item{
			Title:       StripHTML(ExtractTag(block, "title")),
			Link:        ExtractLink(block),
			Date:        date,
			Description: StripHTML(desc),
		})
	}
	return items
}

// ParseReleases extracts items from a GitHub releases API response, keeping
// at most 5 in the API's order. Invalid JSON yields an empty slice.
func ParseReleases(raw string) []news.Item {
	var releases []struct {
		Name        string `json:"name"`
		TagName     string `json:"tag_name"`
		HTMLURL     string `json:"html_url"`
		PublishedAt string `json:"published_at"`
		Body        string `json:"body"`
	}
	if err := json.Unmarshal([]byte(raw), &releases); err != nil {
		return nil
	}
	if len(releases) > maxReleases {
		releases = releases[:maxReleases]
	}

	items := make([]news.Item, 0, len(releases))
	for _, r := range releases {
		title := r.Name
		if strings.TrimSpace(title) == "" {
			title = r.TagName
		}
		items = append(items, news.Item{
			Title:       title,
			Link:        r.HTMLURL,
			Date:        r.PublishedAt,
			Description: r.Body,
		})
	}
	return items
}

// ParseTrending extracts items from a GitHub repository search response,
// keeping at most 10. Missing "items" or invalid JSON yields an empty slice.
func ParseTrending(raw string) []news.Item {
	var resp struct {
		Items []struct {
			FullName    string `json:"full_name"`
			HTMLURL     string `json:"html_url"`
			Description string `json:"description"`
			Stars       int    `json:"stargazers_count"`
			CreatedAt   string `json:"created_at"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil
	}
	repos := resp.Items
	if len(repos) > maxTrending {
		repos = repos[:maxTrending]
	}

	items := make([]news.Item, 0, len(repos))
	for _, r := range repos {
		items = append(items, news.Item{
			Title:       fmt.Sprintf("%s (★%d)", r.FullName, r.Stars),
			Link:        r.HTMLURL,
			Date:        r.CreatedAt,
			Description: r.Description,
			Stars:       r.Stars,
		})
	}
	return items
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02",
}

// ParseDate parses the date formats that commonly appear in RSS, Atom, and
// GitHub payloads. Reports false when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByDate keeps items dated at or after cutoff. Items with an absent or
// unparseable date are always kept: dropping real content is worse than
// including one extra undated item. Input order is preserved.
func FilterByDate(items []news.Item, cutoff time.Time) []news.Item {
	kept := make([]news.Item, 0, len(items))
	for _, it := range items {
		if it.Date == "" {
			kept = append(kept, it)
			continue
		}
		t, ok := ParseDate(it.Date)
		if !ok || !t.Before(cutoff) {
			kept = append(kept, it)
		}
	}
	return kept
}
