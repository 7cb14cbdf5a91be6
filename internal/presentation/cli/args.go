// Package cli parses digest command arguments and renders status output.
package cli

import (
	"strconv"
	"strings"
)

// Args is the parsed digest invocation. It is not mutated after parsing.
type Args struct {
	Format  string
	Output  string
	Days    int
	Sources []string
	Lang    string
	Dedupe  bool
	Help    bool
}

// ParseArgs parses digest flags leniently: unrecognized flags are ignored and
// bad values fall back to defaults, favoring availability over strictness.
// defaultSources is the full configured source key list; defaultLang and
// defaultDays come from configuration (which already honors AI_NEWS_LANG).
func ParseArgs(argv []string, defaultSources []string, defaultLang string, defaultDays int) Args {
	lang := strings.TrimSpace(defaultLang)
	if lang == "" {
		lang = "en"
	}
	if defaultDays <= 0 {
		defaultDays = 1
	}
	a := Args{
		Format:  "markdown",
		Output:  "console",
		Days:    defaultDays,
		Sources: defaultSources,
		Lang:    lang,
	}

	for _, arg := range argv {
		switch {
		case arg == "--help" || arg == "-h":
			a.Help = true
		case arg == "--dedupe":
			a.Dedupe = true
		case strings.HasPrefix(arg, "--format="):
			if v := strings.TrimPrefix(arg, "--format="); v != "" {
				a.Format = v
			}
		case strings.HasPrefix(arg, "--output="):
			if v := strings.TrimPrefix(arg, "--output="); v != "" {
				a.Output = v
			}
		case strings.HasPrefix(arg, "--days="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--days="))
			if err != nil {
				n = 1
			}
			a.Days = n
		case strings.HasPrefix(arg, "--sources="):
			if keys := splitSources(strings.TrimPrefix(arg, "--sources=")); len(keys) > 0 {
				a.Sources = keys
			}
		case strings.HasPrefix(arg, "--lang="):
			if v := strings.TrimSpace(strings.TrimPrefix(arg, "--lang=")); v != "" {
				a.Lang = v
			}
		}
	}
	return a
}

func splitSources(raw string) []string {
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
