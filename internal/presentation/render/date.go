package render

import (
	"github.com/tesso57/ainews/internal/feedparse"
)

// FormatDate renders an ISO-ish date string as a locale-appropriate short
// date. Unparseable input is returned unchanged so raw information survives
// formatting failures.
func FormatDate(raw, lang string) string {
	t, ok := feedparse.ParseDate(raw)
	if !ok {
		return raw
	}
	switch lang {
	case "ja", "zh-TW", "zh-CN":
		return t.Format("2006年1月2日")
	default:
		return t.Format("Jan 2, 2006")
	}
}
