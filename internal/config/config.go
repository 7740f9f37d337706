package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Category kinds.
const (
	KindFixed    = "fixed"
	KindDropdown = "dropdown"
)

// Config represents the main application configuration
type Config struct {
	// Movie API backend
	API APIConfig `yaml:"api"`

	// Interactive browsing surface
	Browse BrowseConfig `yaml:"browse"`

	// Frontends
	Telegram *TelegramConfig `yaml:"telegram,omitempty"`

	// Application settings
	App AppConfig `yaml:"app"`
}

// APIConfig holds the movie REST backend configuration
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// BrowseConfig holds category layout and labels for the browse surfaces
type BrowseConfig struct {
	// Number of cards loaded per category grid
	CardsPerCategory int `yaml:"cards_per_category"`

	// Accordion control labels
	ExpandLabel   string `yaml:"expand_label"`
	CollapseLabel string `yaml:"collapse_label"`

	// Categories in declared render order
	Categories []CategoryConfig `yaml:"categories"`
}

// CategoryConfig describes one titled movie category.
// Fixed categories carry a static title plus query; dropdown categories
// start on a genre picked by index from the fetched genre list and let
// the user re-select at runtime.
type CategoryConfig struct {
	ID    string `yaml:"id"`
	Kind  string `yaml:"kind"` // "fixed" or "dropdown"
	Title string `yaml:"title,omitempty"`

	// Fixed query parts
	SortBy string `yaml:"sort_by,omitempty"`
	Genre  string `yaml:"genre,omitempty"`

	// Dropdown default: index into the fetched genre list. The index is
	// plain configuration; when the genre list is shorter the category
	// falls back to index%2 (1st or 2nd genre).
	DefaultGenreIndex int `yaml:"default_genre_index,omitempty"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken       string  `yaml:"bot_token"`
	AllowedChatIDs []int64 `yaml:"allowed_chat_ids,omitempty"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	LogLevel string `yaml:"log_level"` // "debug", "info", "warn", "error"
}

// Default returns the built-in configuration: an OCMovies-style backend on
// localhost and the stock five categories (top-rated, Mystery, Action, two
// genre dropdowns defaulting to the 3rd and 4th genre).
func Default() *Config {
	cfg := &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8000/api/v1",
			TimeoutSeconds: 15,
		},
		Browse: BrowseConfig{
			CardsPerCategory: 6,
			ExpandLabel:      "Voir plus",
			CollapseLabel:    "Voir moins",
			Categories: []CategoryConfig{
				{ID: "top-rated", Kind: KindFixed, Title: "Films les mieux notés", SortBy: "-imdb_score"},
				{ID: "mystery", Kind: KindFixed, Title: "Mystery", Genre: "Mystery", SortBy: "-imdb_score"},
				{ID: "action", Kind: KindFixed, Title: "Action", Genre: "Action", SortBy: "-imdb_score"},
				{ID: "pick-1", Kind: KindDropdown, DefaultGenreIndex: 2},
				{ID: "pick-2", Kind: KindDropdown, DefaultGenreIndex: 3},
			},
		},
		App: AppConfig{LogLevel: "info"},
	}
	return cfg
}

// Load loads configuration from a YAML file with environment variable overrides
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the file at path, falling back to Default() when the
// file does not exist. Any other read or validation problem is an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return Load(path)
}

// applyEnvOverrides overrides config values with environment variables
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FILMOTHEQUE_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("FILMOTHEQUE_LOG_LEVEL"); v != "" {
		c.App.LogLevel = v
	}
	if c.Telegram != nil {
		if v := os.Getenv("FILMOTHEQUE_TELEGRAM_BOT_TOKEN"); v != "" {
			c.Telegram.BotToken = v
		}
	}
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL")
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 15
	}

	if c.Browse.CardsPerCategory <= 0 {
		c.Browse.CardsPerCategory = 6
	}
	if c.Browse.ExpandLabel == "" {
		c.Browse.ExpandLabel = "Voir plus"
	}
	if c.Browse.CollapseLabel == "" {
		c.Browse.CollapseLabel = "Voir moins"
	}
	if len(c.Browse.Categories) == 0 {
		c.Browse.Categories = Default().Browse.Categories
	}

	seen := make(map[string]bool, len(c.Browse.Categories))
	for i := range c.Browse.Categories {
		cat := &c.Browse.Categories[i]
		if cat.ID == "" {
			return fmt.Errorf("browse.categories[%d]: id is required", i)
		}
		if seen[cat.ID] {
			return fmt.Errorf("browse.categories: duplicate id %q", cat.ID)
		}
		seen[cat.ID] = true

		switch cat.Kind {
		case KindFixed:
			if cat.Title == "" {
				return fmt.Errorf("browse.categories[%s]: fixed category needs a title", cat.ID)
			}
		case KindDropdown:
			if cat.DefaultGenreIndex < 0 {
				return fmt.Errorf("browse.categories[%s]: default_genre_index must be >= 0", cat.ID)
			}
		case "":
			cat.Kind = KindFixed
			if cat.Title == "" {
				return fmt.Errorf("browse.categories[%s]: fixed category needs a title", cat.ID)
			}
		default:
			return fmt.Errorf("browse.categories[%s]: unknown kind %q", cat.ID, cat.Kind)
		}
	}

	if c.Telegram != nil && c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required when the telegram section is present")
	}

	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}

	return nil
}
