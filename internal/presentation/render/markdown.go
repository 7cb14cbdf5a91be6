package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/ainews/internal/domain/news"
)

const maxDescriptionWidth = 200

// Options controls digest rendering.
type Options struct {
	Days int
	Lang string
	Now  time.Time
}

// Markdown renders the aggregated results as a localized Markdown document.
// Sources without any surviving items are omitted entirely; when nothing
// survived at all, a localized "no news" line replaces the sections. Missing
// item fields (link, date, description) simply omit their sub-line.
func Markdown(results []news.SourceResult, opt Options) string {
	l := GetLabels(opt.Lang)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", l.Title)

	dayWord := l.Days
	if opt.Days == 1 {
		dayWord = l.Day
	}
	fmt.Fprintf(&b, "**%s**: %s\n", l.GeneratedAt, opt.Now.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**%s**: %d %s\n\n", l.Period, opt.Days, dayWord)

	total := 0
	for _, r := range results {
		total += r.ItemCount()
	}

	if total == 0 {
		b.WriteString(l.NoNews + "\n\n")
		writeFooter(&b, l)
		return b.String()
	}

	fmt.Fprintf(&b, "**%s**: %d\n\n", l.Summary, total)

	for _, r := range results {
		if !r.HasItems() {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", r.Name)
		writeGroups(&b, r.Feeds, "📝", l.BlogPosts, l, opt.Lang, true)
		writeGroups(&b, r.Releases, "🚀", l.Releases, l, opt.Lang, false)
		writeGroups(&b, r.Trending, "🔥", l.Trending, l, opt.Lang, false)
	}

	writeQuickLinks(&b, results, l)
	writeFooter(&b, l)
	return b.String()
}

// writeQuickLinks collects every linked item into one flat list for fast
// scanning.
func writeQuickLinks(b *strings.Builder, results []news.SourceResult, l Labels) {
	var links []news.Item
	for _, r := range results {
		for _, groups := range [][]news.Group{r.Feeds, r.Releases, r.Trending} {
			for _, g := range groups {
				for _, it := range g.Items {
					if it.Link != "" && it.Title != "" {
						links = append(links, it)
					}
				}
			}
		}
	}
	if len(links) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", l.QuickLinks)
	for _, it := range links {
		fmt.Fprintf(b, "- [%s](%s)\n", it.Title, it.Link)
	}
	b.WriteString("\n")
}

func writeGroups(b *strings.Builder, groups []news.Group, emoji, fallback string, l Labels, lang string, withDescription bool) {
	for _, g := range groups {
		if len(g.Items) == 0 {
			continue
		}
		label := g.Label
		if label == "" {
			label = fallback
		}
		fmt.Fprintf(b, "### %s %s\n\n", emoji, label)
		for _, it := range g.Items {
			writeItem(b, it, l, lang, withDescription)
		}
		b.WriteString("\n")
	}
}

func writeItem(b *strings.Builder, it news.Item, l Labels, lang string, withDescription bool) {
	title := it.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(b, "- **%s**\n", title)
	if it.Link != "" {
		fmt.Fprintf(b, "  [%s](%s)\n", l.ReadMore, it.Link)
	}
	if it.Date != "" {
		fmt.Fprintf(b, "  %s\n", FormatDate(it.Date, lang))
	}
	if withDescription && it.Description != "" {
		fmt.Fprintf(b, "  > %s\n", ansi.Truncate(it.Description, maxDescriptionWidth, "..."))
	}
}

func writeFooter(b *strings.Builder, l Labels) {
	b.WriteString("---\n\n")
	fmt.Fprintf(b, "*%s*\n", l.PoweredBy)
}
