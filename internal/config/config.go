package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the CLI and preview server settings.
type Config struct {
	Port    int    `env:"HEROFLEX_PORT" envDefault:"4002"`
	LogMode string `env:"HEROFLEX_LOG_MODE" envDefault:"dev"`

	// Sanity image CDN settings; the builder falls back to asset URLs when
	// the project id is empty.
	SanityProjectID string `env:"HEROFLEX_SANITY_PROJECT_ID"`
	SanityDataset   string `env:"HEROFLEX_SANITY_DATASET" envDefault:"production"`

	Theme        string `env:"HEROFLEX_THEME"`
	ThemeVariant string `env:"HEROFLEX_THEME_VARIANT"`
	ThemeDir     string `env:"HEROFLEX_THEME_DIR"`
	Stylesheet   string `env:"HEROFLEX_STYLESHEET"`

	ContentDir  string        `env:"HEROFLEX_CONTENT_DIR" envDefault:"content"`
	HTTPTimeout time.Duration `env:"HEROFLEX_HTTP_TIMEOUT" envDefault:"10s"`
	AllowHTTP   bool          `env:"HEROFLEX_ALLOW_HTTP" envDefault:"false"`
}

// Load reads the given .env files (default ".env") into the process
// environment and parses the configuration. Missing files are ignored;
// variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return parse(env.Options{})
}

// FromMap parses the configuration from an explicit environment, ignoring
// the process environment.
func FromMap(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	cfg.LogMode = strings.ToLower(strings.TrimSpace(cfg.LogMode))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges the environment parser cannot express.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: HEROFLEX_PORT %d out of range", c.Port)
	}
	if c.HTTPTimeout < 0 {
		return errors.New("config: HEROFLEX_HTTP_TIMEOUT must not be negative")
	}
	return nil
}

// Addr is the listen address for the preview server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
