package opengraph

import "github.com/charmbracelet/log"

// FromSiteSettings is the value of Config.ApplicationID or Config.AdminID
// that makes the identifier come from the stored SiteSettings instead of
// the configuration itself.
const FromSiteSettings = "SiteConfig"

// Config holds everything the builders and the object adapter need.
// The zero value is usable; New fills in defaults.
type Config struct {
	BaseURL           string                     `yaml:"base_url" toml:"base_url"`                     // absolute site root (default "http://localhost:3000")
	DefaultType       string                     `yaml:"default_type" toml:"default_type"`             // default "website"
	DefaultTagBuilder string                     `yaml:"default_tagbuilder" toml:"default_tagbuilder"` // builder for unregistered types (default "website")
	DefaultImage      string                     `yaml:"default_image" toml:"default_image"`           // default "/opengraph/images/logo.gif"
	DefaultLocale     string                     `yaml:"default_locale" toml:"default_locale"`         // default "en_US"
	Locales           []string                   `yaml:"locales" toml:"locales"`                       // supported locales (default: Facebook list)
	ApplicationID     string                     `yaml:"application_id" toml:"application_id"`         // literal fb:app_id or FromSiteSettings
	AdminID           string                     `yaml:"admin_id" toml:"admin_id"`                     // literal fb:admins or FromSiteSettings
	SummaryWords      int                        `yaml:"summary_words" toml:"summary_words"`           // description fallback length (default 100)
	Prototypes        map[string]PrototypeConfig `yaml:"prototypes" toml:"prototypes"`                 // per-type overrides
}

// PrototypeConfig overrides the builder or namespace used for one type.
type PrototypeConfig struct {
	TagBuilder string `yaml:"tagbuilder" toml:"tagbuilder"`
	Namespace  string `yaml:"namespace" toml:"namespace"`
}

const (
	defaultBaseURL      = "http://localhost:3000"
	defaultImagePath    = "/opengraph/images/logo.gif"
	defaultLocale       = "en_US"
	defaultSummaryWords = 100
	defaultTitle        = "Untitled"
)

func (c *Config) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.DefaultType == "" {
		c.DefaultType = DefaultType
	}
	if c.DefaultTagBuilder == "" {
		c.DefaultTagBuilder = TypeWebsite
	}
	if c.DefaultImage == "" {
		c.DefaultImage = defaultImagePath
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = defaultLocale
	}
	c.DefaultLocale = NormalizeLocale(c.DefaultLocale)
	if len(c.Locales) == 0 {
		c.Locales = append([]string(nil), facebookLocales...)
	}
	if c.SummaryWords <= 0 {
		c.SummaryWords = defaultSummaryWords
	}
}

// Application returns the Application view of the stored site settings,
// resolving FromSiteSettings indirections.
func (c Config) Application(s SiteSettings) Application {
	return siteApplication{cfg: c, settings: s}
}

// SiteSettings is the stored site record (the host's "site config").
type SiteSettings struct {
	Title         string `json:"title" yaml:"title"`
	ApplicationID string `json:"application_id" yaml:"application_id"`
	AdminID       string `json:"admin_id" yaml:"admin_id"`
}

type siteApplication struct {
	cfg      Config
	settings SiteSettings
}

func (a siteApplication) OGSiteTitle() string { return a.settings.Title }

func (a siteApplication) OGApplicationID() string {
	return configurable(a.cfg.ApplicationID, a.settings.ApplicationID)
}

func (a siteApplication) OGAdminID() string {
	return configurable(a.cfg.AdminID, a.settings.AdminID)
}

func configurable(configured, stored string) string {
	if configured == FromSiteSettings {
		return stored
	}
	return configured
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger used for debug output (default log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(g *Graph) {
		g.logger = l
	}
}

// WithBuilder registers an additional named tag builder that prototypes can
// refer to via PrototypeConfig.TagBuilder.
func WithBuilder(name string, fn BuilderFunc) Option {
	return func(g *Graph) {
		g.builders[name] = fn
	}
}

// WithPrototype registers or replaces the prototype for a type.
func WithPrototype(typ string, p PrototypeConfig) Option {
	return func(g *Graph) {
		g.extra[typ] = p
	}
}
