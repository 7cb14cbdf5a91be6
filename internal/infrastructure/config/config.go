// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/ainews/internal/application/settings"
	"github.com/tesso57/ainews/internal/domain/news"
	"gopkg.in/yaml.v3"
)

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// Load loads the configuration from the specified path or default location
// (~/.config/ainews/config.yaml), creating it with defaults on first run.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(home, ".config", "ainews", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{Settings: cfg, configPath: configPath}

	var options []kong.Option
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}
	if _, err = parser.Parse([]string{}); err != nil {
		return nil, err
	}

	// Source tables are nested structures kong cannot resolve; decode them
	// from the same file in a second pass.
	cfg.Sources, err = loadSources(configPath)
	if err != nil {
		return nil, err
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = settings.DefaultSources()
	}

	store.Settings = cfg
	store.Settings.OutputDir = normalizeOutputDir(store.Settings.OutputDir)

	if store.Settings.OutputDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		store.Settings.OutputDir = filepath.Join(home, ".claude", "news")
	}

	// Save defaults if new file
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

func loadSources(configPath string) ([]settings.SourceConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var doc struct {
		Sources []settings.SourceConfig `yaml:"sources"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sources from %s: %w", configPath, err)
	}
	return doc.Sources, nil
}

func normalizeOutputDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return dir
		}
		return filepath.Join(home, strings.TrimPrefix(dir[1:], "/"))
	}
	return dir
}

// DefaultDataDir returns the XDG-aware data directory for run state.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ainews")
}

// SeenDBPath returns the path of the seen-item database.
func (s *Store) SeenDBPath() string {
	return filepath.Join(DefaultDataDir(), "seen.db")
}

// SourceKeys returns the configured source keys in config order.
func (s *Store) SourceKeys() []string {
	keys := make([]string, 0, len(s.Settings.Sources))
	for _, src := range s.Settings.Sources {
		keys = append(keys, src.Key)
	}
	return keys
}

// SelectSources resolves the requested keys into runtime sources, preserving
// config order. Unknown keys are skipped rather than rejected.
func (s *Store) SelectSources(keys []string) []news.Source {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[strings.TrimSpace(k)] = true
	}
	selected := make([]news.Source, 0, len(s.Settings.Sources))
	for _, src := range s.Settings.Sources {
		if want[src.Key] {
			selected = append(selected, src.Source())
		}
	}
	return selected
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		// Try various naming conventions
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return f, nil
}
