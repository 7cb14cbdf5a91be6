package feedparse

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tesso57/ainews/internal/domain/news"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "hello world", "hello world"},
		{"tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"entities decoded", "a &amp; b &lt;c&gt; &quot;d&quot; &#39;e&#39;", `a & b <c> "d" 'e'`},
		{"whitespace collapsed", "a\n\n  b\tc", "a b c"},
		{"tag with attributes", `<a href="https://example.com">link</a> text`, "link text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripHTMLIdempotent(t *testing.T) {
	inputs := []string{
		"<p>Hello <b>world</b></p>",
		"plain text with   spaces",
		"a &amp; b",
		"<div><span>nested</span> markup</div>\nwith newlines",
	}
	for _, in := range inputs {
		once := StripHTML(in)
		if twice := StripHTML(once); twice != once {
			t.Errorf("StripHTML not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestExtractTag(t *testing.T) {
	t.Run("plain text content", func(t *testing.T) {
		if got := ExtractTag("<title>X</title>", "title"); got != "X" {
			t.Errorf("got %q, want X", got)
		}
	})
	t.Run("CDATA content", func(t *testing.T) {
		if got := ExtractTag("<title><![CDATA[X]]></title>", "title"); got != "X" {
			t.Errorf("got %q, want X", got)
		}
	})
	t.Run("tag with attributes", func(t *testing.T) {
		if got := ExtractTag(`<title type="text">Hello</title>`, "title"); got != "Hello" {
			t.Errorf("got %q, want Hello", got)
		}
	})
	t.Run("first match wins", func(t *testing.T) {
		xml := "<title>first</title><title>second</title>"
		if got := ExtractTag(xml, "title"); got != "first" {
			t.Errorf("got %q, want first", got)
		}
	})
	t.Run("absent tag", func(t *testing.T) {
		if got := ExtractTag("<other>X</other>", "title"); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
	t.Run("similar tag name does not match", func(t *testing.T) {
		if got := ExtractTag("<titlefoo>X</titlefoo>", "title"); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
	t.Run("multiline content", func(t *testing.T) {
		if got := ExtractTag("<summary>line one\nline two</summary>", "summary"); got != "line one\nline two" {
			t.Errorf("got %q", got)
		}
	})
}

func TestExtractLink(t *testing.T) {
	t.Run("atom href preferred", func(t *testing.T) {
		block := `<link href="https://atom.example/post"/><link>https://rss.example/post</link>`
		if got := ExtractLink(block); got != "https://atom.example/post" {
			t.Errorf("got %q", got)
		}
	})
	t.Run("rss element text", func(t *testing.T) {
		if got := ExtractLink("<link>https://rss.example/post</link>"); got != "https://rss.example/post" {
			t.Errorf("got %q", got)
		}
	})
	t.Run("guid fallback", func(t *testing.T) {
		block := `<guid isPermaLink="true">https://example.com/guid</guid>`
		if got := ExtractLink(block); got != "https://example.com/guid" {
			t.Errorf("got %q", got)
		}
	})
	t.Run("nothing present", func(t *testing.T) {
		if got := ExtractLink("<title>no link here</title>"); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}

const rssTwoItems = `<?xml version="1.0"?>
<rss version="2.0">
<channel>
  <title>Example Blog</title>
  <item>
    <title>First Post</title>
    <link>https://example.com/first</link>
    <pubDate>Mon, 15 Jan 2024 10:00:00 +0000</pubDate>
    <description><![CDATA[<p>The <b>first</b> post.</p>]]></description>
  </item>
  <item>
    <title>Second Post</title>
    <link>https://example.com/second</link>
    <pubDate>Tue, 16 Jan 2024 10:00:00 +0000</pubDate>
    <description>The second post.</description>
  </item>
</channel>
</rss>`

func TestParseFeedRSS(t *testing.T) {
	items := ParseFeed(rssTwoItems)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Title != "First Post" {
		t.Errorf("items[0].Title = %q", items[0].Title)
	}
	if items[0].Link != "https://example.com/first" {
		t.Errorf("items[0].Link = %q", items[0].Link)
	}
	if items[0].Date != "Mon, 15 Jan 2024 10:00:00 +0000" {
		t.Errorf("items[0].Date = %q", items[0].Date)
	}
	if items[0].Description != "The first post." {
		t.Errorf("items[0].Description = %q", items[0].Description)
	}
	if items[1].Title != "Second Post" {
		t.Errorf("items[1].Title = %q", items[1].Title)
	}
}

func TestParseFeedAtom(t *testing.T) {
	atom := `<?xml version="1.0"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title type="text">Atom Post</title>
    <link href="https://example.com/atom-post"/>
    <published>2024-01-15T10:00:00Z</published>
    <summary>An atom entry.</summary>
  </entry>
</feed>`
	items := ParseFeed(atom)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	it := items[0]
	if it.Title != "Atom Post" || it.Link != "https://example.com/atom-post" {
		t.Errorf("unexpected item: %+v", it)
	}
	if it.Date != "2024-01-15T10:00:00Z" {
		t.Errorf("Date = %q", it.Date)
	}
	if it.Description != "An atom entry." {
		t.Errorf("Description = %q", it.Description)
	}
}

func TestParseFeedDegradesGracefully(t *testing.T) {
	t.Run("entry with no sub-tags still yields an item", func(t *testing.T) {
		items := ParseFeed("<item><unrelated>x</unrelated></item>")
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0] != (news.Item{}) {
			t.Errorf("expected zero-value item, got %+v", items[0])
		}
	})
	t.Run("empty feed", func(t *testing.T) {
		if items := ParseFeed("<rss><channel><title>empty</title></channel></rss>"); len(items) != 0 {
			t.Errorf("got %d items, want 0", len(items))
		}
	})
	t.Run("empty input", func(t *testing.T) {
		if items := ParseFeed(""); len(items) != 0 {
			t.Errorf("got %d items, want 0", len(items))
		}
	})
}

func releasesJSON(n int) string {
	releases := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		releases = append(releases, map[string]any{
			"name":         fmt.Sprintf("v1.%d.0", i),
			"tag_name":     fmt.Sprintf("v1.%d.0", i),
			"html_url":     fmt.Sprintf("https://github.com/x/y/releases/v1.%d.0", i),
			"published_at": "2024-01-15T10:00:00Z",
			"body":         "changelog",
		})
	}
	data, _ := json.Marshal(releases)
	return string(data)
}

func TestParseReleases(t *testing.T) {
	t.Run("caps at five preserving order", func(t *testing.T) {
		items := ParseReleases(releasesJSON(10))
		if len(items) != 5 {
			t.Fatalf("got %d items, want 5", len(items))
		}
		for i, it := range items {
			want := fmt.Sprintf("v1.%d.0", i)
			if it.Title != want {
				t.Errorf("items[%d].Title = %q, want %q", i, it.Title, want)
			}
		}
	})
	t.Run("blank name falls back to tag_name", func(t *testing.T) {
		items := ParseReleases(`[{"name":"  ","tag_name":"v2.0.0","html_url":"u","published_at":"d","body":"b"}]`)
		if len(items) != 1 || items[0].Title != "v2.0.0" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})
	t.Run("invalid JSON", func(t *testing.T) {
		if items := ParseReleases("not json"); len(items) != 0 {
			t.Errorf("got %d items, want 0", len(items))
		}
	})
	t.Run("non-array JSON", func(t *testing.T) {
		if items := ParseReleases(`{"message":"rate limited"}`); len(items) != 0 {
			t.Errorf("got %d items, want 0", len(items))
		}
	})
}

func TestParseTrending(t *testing.T) {
	repos := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		repos = append(repos, fmt.Sprintf(
			`{"full_name":"org/repo%d","html_url":"https://github.com/org/repo%d","description":"desc","stargazers_count":%d}`,
			i, i, 100+i))
	}
	raw := `{"items":[` + strings.Join(repos, ",") + `]}`

	items := ParseTrending(raw)
	if len(items) != 10 {
		t.Fatalf("got %d items, want 10", len(items))
	}
	if items[0].Title != "org/repo0 (★100)" {
		t.Errorf("items[0].Title = %q", items[0].Title)
	}
	if items[0].Stars != 100 {
		t.Errorf("items[0].Stars = %d, want 100", items[0].Stars)
	}

	t.Run("missing items key", func(t *testing.T) {
		if items := ParseTrending(`{"total_count":0}`); len(items) != 0 {
			t.Errorf("got %d items, want 0", len(items))
		}
	})
	t.Run("invalid JSON", func(t *testing.T) {
		if items := ParseTrending("<html>"); len(items) != 0 {
			t.Errorf("got %d items, want 0", len(items))
		}
	})
}

func TestParseDate(t *testing.T) {
	ok := []string{
		"2024-01-15T10:00:00Z",
		"2024-01-15T10:00:00.123Z",
		"Mon, 15 Jan 2024 10:00:00 +0000",
		"Mon, 15 Jan 2024 10:00:00 GMT",
		"2024-01-15",
	}
	for _, s := range ok {
		if _, parsed := ParseDate(s); !parsed {
			t.Errorf("ParseDate(%q) failed", s)
		}
	}
	bad := []string{"", "yesterday", "15/01/2024"}
	for _, s := range bad {
		if _, parsed := ParseDate(s); parsed {
			t.Errorf("ParseDate(%q) unexpectedly succeeded", s)
		}
	}
}

func TestFilterByDate(t *testing.T) {
	cutoff := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	items := []news.Item{
		{Title: "old", Date: "2024-01-10T00:00:00Z"},
		{Title: "undated"},
		{Title: "unparseable", Date: "not a date"},
		{Title: "at cutoff", Date: "2024-01-15T00:00:00Z"},
		{Title: "new", Date: "2024-01-16T00:00:00Z"},
	}
	got := FilterByDate(items, cutoff)
	want := []string{"undated", "unparseable", "at cutoff", "new"}
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(got), len(want), got)
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("got[%d].Title = %q, want %q", i, got[i].Title, title)
		}
	}
}
