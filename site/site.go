// Package site is a small content site that serves pages decorated with
// Open Graph metadata. Pages live in SQLite, are cached in memory with
// their Markdown bodies rendered, and are served by Echo with the meta tags
// and namespace prefix produced by an opengraph.Graph.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/eringen/opengraph"
)

// App wires together the store, cache, tag graph, handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PageCache
	Graph  *opengraph.Graph

	logger       *log.Logger
	graphOpts    []opengraph.Option
	customRoutes []func(*App)
	ready        bool
}

// New creates an App: it builds the tag graph and opens the store. Routes
// are registered by Setup or Start.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	graphOpts := append([]opengraph.Option{opengraph.WithLogger(a.logger)}, a.graphOpts...)
	g, err := opengraph.New(cfg.OpenGraph, graphOpts...)
	if err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}
	a.Graph = g

	store, err := NewStore(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("site: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPageCache(store, cfg.PageCacheTTL, cfg.StaticDir)
	return a, nil
}

// Setup registers middleware and routes. It is idempotent; Start calls it.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return errors.New("site: SessionSecret is required")
	}
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and serves HTTP until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.logger.Info("listening", "addr", a.Config.Addr, "url", a.Config.URL)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/opengraph/*", echo.WrapHandler(http.FileServer(http.FS(embeddedFS))))

	if _, err := os.Stat(a.Config.StaticDir); err == nil {
		e.Static("/public", a.Config.StaticDir)
	}

	e.GET(sitemapPath, a.handleSitemap)
	e.GET("/", a.handleHome)
	e.GET("/:slug/", a.handlePage)
	e.GET("/:slug/og.json", a.handlePageTags)
}

// Settings returns the stored site settings, using the configured site
// name when no title is stored.
func (a *App) Settings() (opengraph.SiteSettings, error) {
	s, err := a.Cache.Settings()
	if err != nil {
		return s, err
	}
	if s.Title == "" {
		s.Title = a.Config.Name
	}
	return s, nil
}

// PageTags builds the Open Graph tags for the page with the given slug as
// it would be served in locale.
func (a *App) PageTags(slug, locale string) (opengraph.Tags, error) {
	var page opengraph.Page
	var err error
	if slug == "" || slug == homeSlug {
		page, err = a.homePage()
	} else {
		page, err = a.Cache.GetPage(slug)
	}
	if err != nil {
		return nil, err
	}
	settings, err := a.Settings()
	if err != nil {
		return nil, err
	}
	obj := a.Graph.Object(&page, a.Graph.Config().ResolveLocale(locale), settings)
	return a.Graph.Tags(obj, a.Graph.Application(settings)), nil
}

// Close releases the store. Call it when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
