// Package render turns aggregated fetch results into localized Markdown or
// JSON digests.
package render

// Labels is the full set of UI strings for one digest language. Every
// supported language defines every field; a partially translated entry is a
// defect.
type Labels struct {
	Title       string
	GeneratedAt string
	Period      string
	Day         string
	Days        string
	BlogPosts   string
	Releases    string
	Trending    string
	NoNews      string
	ReadMore    string
	Summary     string
	QuickLinks  string
	PoweredBy   string
}

var labels = map[string]Labels{
	"en": {
		Title:       "AI News Digest",
		GeneratedAt: "Generated at",
		Period:      "Period",
		Day:         "day",
		Days:        "days",
		BlogPosts:   "Blog Posts",
		Releases:    "Releases",
		Trending:    "Trending",
		NoNews:      "No new items in this period.",
		ReadMore:    "Read more",
		Summary:     "Summary",
		QuickLinks:  "Quick Links",
		PoweredBy:   "Powered by ainews",
	},
	"zh-TW": {
		Title:       "AI 新聞摘要",
		GeneratedAt: "產生時間",
		Period:      "回顧期間",
		Day:         "天",
		Days:        "天",
		BlogPosts:   "部落格文章",
		Releases:    "版本發布",
		Trending:    "熱門專案",
		NoNews:      "這段期間沒有新消息。",
		ReadMore:    "閱讀全文",
		Summary:     "摘要",
		QuickLinks:  "快速連結",
		PoweredBy:   "由 ainews 產生",
	},
	"zh-CN": {
		Title:       "AI 新闻摘要",
		GeneratedAt: "生成时间",
		Period:      "回顾周期",
		Day:         "天",
		Days:        "天",
		BlogPosts:   "博客文章",
		Releases:    "版本发布",
		Trending:    "热门项目",
		NoNews:      "这段时间没有新消息。",
		ReadMore:    "阅读全文",
		Summary:     "摘要",
		QuickLinks:  "快速链接",
		PoweredBy:   "由 ainews 生成",
	},
	"ja": {
		Title:       "AIニュースダイジェスト",
		GeneratedAt: "生成日時",
		Period:      "対象期間",
		Day:         "日",
		Days:        "日間",
		BlogPosts:   "ブログ記事",
		Releases:    "リリース",
		Trending:    "トレンド",
		NoNews:      "この期間に新しいニュースはありません。",
		ReadMore:    "続きを読む",
		Summary:     "サマリー",
		QuickLinks:  "クイックリンク",
		PoweredBy:   "Powered by ainews",
	},
}

// GetLabels returns the label set for lang, falling back to English for any
// unknown language code.
func GetLabels(lang string) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels["en"]
}

// SupportedLangs lists the language codes with a complete label set.
func SupportedLangs() []string {
	return []string{"en", "zh-TW", "zh-CN", "ja"}
}
