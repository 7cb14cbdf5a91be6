package render

import (
	"encoding/json"

	"github.com/tesso57/ainews/internal/domain/news"
)

// Digest is the machine-readable form of one digest run. Empty sources are
// kept here so consumers can distinguish "fetched nothing" from "not fetched".
type Digest struct {
	GeneratedAt string              `json:"generated_at"`
	Days        int                 `json:"days"`
	Sources     []news.SourceResult `json:"sources"`
}

// JSON renders the aggregated results as an indented JSON document.
func JSON(results []news.SourceResult, opt Options) (string, error) {
	d := Digest{
		GeneratedAt: opt.Now.Format("2006-01-02T15:04:05Z07:00"),
		Days:        opt.Days,
		Sources:     results,
	}
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
