package site

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/eringen/opengraph"
)

// PageCache is an in-memory cache of rendered pages and site settings with
// a TTL. Page bodies are stored as Markdown and cached as HTML.
type PageCache struct {
	mu       sync.RWMutex
	pages    map[string]opengraph.Page
	order    []string
	settings opengraph.SiteSettings
	fetched  time.Time
	ttl      time.Duration
	store    *Store
	md       goldmark.Markdown
	images   *imageProber
}

// NewPageCache creates a PageCache backed by the given Store. Local images
// are probed for their dimensions under staticDir.
func NewPageCache(s *Store, ttl time.Duration, staticDir string) *PageCache {
	return &PageCache{
		store:  s,
		ttl:    ttl,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		images: newImageProber(staticDir),
	}
}

func (c *PageCache) valid() bool {
	return c.pages != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = nil
	c.mu.Unlock()
}

func (c *PageCache) load() error {
	if c.valid() {
		return nil
	}
	pages, err := c.store.ListPages()
	if err != nil {
		return err
	}
	settings, err := c.store.GetSettings()
	if err != nil {
		return err
	}
	byslug := make(map[string]opengraph.Page, len(pages))
	order := make([]string, 0, len(pages))
	for _, p := range pages {
		if p, err = c.prepare(p); err != nil {
			return err
		}
		byslug[p.Slug] = p
		order = append(order, p.Slug)
	}
	c.pages = byslug
	c.order = order
	c.settings = settings
	c.fetched = time.Now()
	return nil
}

// prepare renders the Markdown body and fills in local image metadata.
func (c *PageCache) prepare(p opengraph.Page) (opengraph.Page, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(p.Content), &buf); err != nil {
		return p, fmt.Errorf("render %s: %w", p.Slug, err)
	}
	p.Content = buf.String()
	p.Image = c.images.probe(p.Image)
	return p, nil
}

// ensureLoaded takes a read lock first and only upgrades to a write lock
// when a reload is needed.
func (c *PageCache) ensureLoaded() (cached, error) {
	c.mu.RLock()
	if c.valid() {
		v := cached{c.pages, c.order, c.settings}
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return cached{}, err
	}
	return cached{c.pages, c.order, c.settings}, nil
}

// cached is a consistent snapshot of the cache contents.
type cached struct {
	pages    map[string]opengraph.Page
	order    []string
	settings opengraph.SiteSettings
}

// GetPage returns a rendered page by slug, or ErrNotFound.
func (c *PageCache) GetPage(slug string) (opengraph.Page, error) {
	v, err := c.ensureLoaded()
	if err != nil {
		return opengraph.Page{}, err
	}
	p, ok := v.pages[normalizeSlug(slug)]
	if !ok {
		return opengraph.Page{}, ErrNotFound
	}
	return p, nil
}

// Settings returns the cached site settings.
func (c *PageCache) Settings() (opengraph.SiteSettings, error) {
	v, err := c.ensureLoaded()
	return v.settings, err
}

// ListPages returns the cached pages, newest first.
func (c *PageCache) ListPages() ([]opengraph.Page, error) {
	v, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	pages := make([]opengraph.Page, 0, len(v.order))
	for _, slug := range v.order {
		pages = append(pages, v.pages[slug])
	}
	return pages, nil
}
