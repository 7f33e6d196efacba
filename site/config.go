package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"go.yaml.in/yaml/v3"

	"github.com/eringen/opengraph"
)

// SiteConfig holds all configuration for the reference site.
type SiteConfig struct {
	Name        string `yaml:"name" toml:"name"`               // Site name (default "Open Graph")
	URL         string `yaml:"url" toml:"url"`                 // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description" toml:"description"` // Description of the home page

	Addr         string `yaml:"addr" toml:"addr"`                   // Listen address (default ":3000")
	DatabasePath string `yaml:"database_path" toml:"database_path"` // SQLite path (default "data/opengraph.db")
	StaticDir    string `yaml:"static_dir" toml:"static_dir"`       // Served under /public (default "public")

	SessionSecret string `yaml:"session_secret" toml:"session_secret"` // Required to serve: signs the locale cookie
	CookieSecure  bool   `yaml:"cookie_secure" toml:"cookie_secure"`   // Set true for HTTPS

	PageCacheTTL time.Duration `yaml:"page_cache_ttl" toml:"page_cache_ttl"` // Page cache TTL (default 5min)

	OpenGraph opengraph.Config `yaml:"opengraph" toml:"opengraph"`
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Open Graph"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/opengraph.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
	if c.OpenGraph.BaseURL == "" {
		c.OpenGraph.BaseURL = c.URL
	}
}

// LoadConfig reads a SiteConfig from a YAML file, or TOML when the file
// name ends in .toml. Unknown YAML keys are rejected.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.NewDecoder(f).Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the logger for requests and the tag graph.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithGraphOptions passes extra options, such as custom builders, to the
// underlying opengraph.Graph.
func WithGraphOptions(opts ...opengraph.Option) Option {
	return func(a *App) {
		a.graphOpts = append(a.graphOpts, opts...)
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
