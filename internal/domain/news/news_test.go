package news

import "testing"

func TestDedupeKey(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"link preferred", Item{Title: "T", Link: "https://example.com"}, "https://example.com"},
		{"title fallback", Item{Title: "T"}, "T"},
		{"empty", Item{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.DedupeKey(); got != tt.want {
				t.Errorf("DedupeKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourceResultCounts(t *testing.T) {
	r := SourceResult{
		Feeds:    []Group{{Items: []Item{{Title: "a"}, {Title: "b"}}}},
		Releases: []Group{{Items: []Item{{Title: "c"}}}},
		Trending: []Group{{}},
	}
	if got := r.ItemCount(); got != 3 {
		t.Errorf("ItemCount() = %d, want 3", got)
	}
	if !r.HasItems() {
		t.Error("HasItems() = false, want true")
	}
	if (SourceResult{Feeds: []Group{{}}}).HasItems() {
		t.Error("empty groups should report no items")
	}
}
