// Package settings defines application-level configuration data.
package settings

import "github.com/tesso57/ainews/internal/domain/news"

// SourceConfig is the persisted form of one news source.
type SourceConfig struct {
	Key      string               `yaml:"key"`
	Name     string               `yaml:"name"`
	Feeds    []news.Feed          `yaml:"feeds,omitempty"`
	Repos    []news.Repo          `yaml:"repos,omitempty"`
	Trending []news.TrendingQuery `yaml:"trending,omitempty"`
}

// Source converts the persisted form into the immutable runtime value.
func (c SourceConfig) Source() news.Source {
	return news.Source{
		Key:      c.Key,
		Name:     c.Name,
		Feeds:    c.Feeds,
		Repos:    c.Repos,
		Trending: c.Trending,
	}
}

// Settings represents the application configuration.
type Settings struct {
	OutputDir   string         `yaml:"output_dir" kong:"help='Directory for digest files',env='AI_NEWS_OUTPUT_DIR'"`
	Lang        string         `yaml:"lang" kong:"help='Digest language (en/zh-TW/zh-CN/ja)',env='AI_NEWS_LANG',default='en'"`
	Days        int            `yaml:"days" kong:"help='Default lookback window in days',default='1'"`
	GitHubToken string         `yaml:"github_token" kong:"name='github-token',help='GitHub API token for higher rate limits',env='GITHUB_TOKEN'"`
	Sources     []SourceConfig `yaml:"sources,omitempty" kong:"-"`
}

// DefaultSources is the built-in source table used when the config file does
// not define its own.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{
			Key:  "anthropic",
			Name: "Anthropic",
			Feeds: []news.Feed{
				{URL: "https://www.anthropic.com/news/rss.xml", Type: "rss", Label: "Anthropic News"},
			},
			Repos: []news.Repo{
				{Owner: "anthropics", Repo: "claude-code", Label: "Claude Code"},
			},
		},
		{
			Key:  "openai",
			Name: "OpenAI",
			Feeds: []news.Feed{
				{URL: "https://openai.com/blog/rss.xml", Type: "rss", Label: "OpenAI Blog"},
			},
			Repos: []news.Repo{
				{Owner: "openai", Repo: "openai-python", Label: "OpenAI Python SDK"},
			},
		},
		{
			Key:  "google",
			Name: "Google AI",
			Feeds: []news.Feed{
				{URL: "https://blog.google/technology/ai/rss/", Type: "rss", Label: "Google AI Blog"},
			},
			Repos: []news.Repo{
				{Owner: "google-gemini", Repo: "gemini-cli", Label: "Gemini CLI"},
			},
		},
		{
			Key:  "meta",
			Name: "Meta AI",
			Feeds: []news.Feed{
				{URL: "https://ai.meta.com/blog/rss/", Type: "rss", Label: "Meta AI Blog"},
			},
		},
		{
			Key:  "huggingface",
			Name: "Hugging Face",
			Feeds: []news.Feed{
				{URL: "https://huggingface.co/blog/feed.xml", Type: "atom", Label: "Hugging Face Blog"},
			},
		},
		{
			Key:  "github",
			Name: "GitHub",
			Trending: []news.TrendingQuery{
				{Query: "topic:llm", Label: "Trending LLM Repos"},
			},
		},
	}
}
