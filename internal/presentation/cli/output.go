package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// OutputPath returns the dated digest file path for the given format
// ("json" gets .json, everything else .md). One file per calendar day;
// same-day re-runs overwrite.
func OutputPath(dir, format string, now time.Time) string {
	ext := "md"
	if format == "json" {
		ext = "json"
	}
	return filepath.Join(dir, fmt.Sprintf("ai-news-%s.%s", now.Format("2006-01-02"), ext))
}

// WriteDigest persists content to the dated digest file, creating the output
// directory if needed, and returns the written path.
func WriteDigest(dir, format, content string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := OutputPath(dir, format, now)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write digest: %w", err)
	}
	return path, nil
}
