// Package opengraph decorates content objects with Open Graph metadata.
//
// A content object implements the Object capability (and optionally one of
// the narrower ones such as Article or MusicRadioStation). A Graph resolves
// the object's declared type to a tag builder through its Registry, and the
// builder appends the <meta property="..." content="..."> pairs for that type.
//
// Hosts that keep their content in plain records can use Graph.Object to
// wrap a Page in an adapter that supplies sensible defaults for every field.
package opengraph

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/charmbracelet/log"
)

// Graph is the entry point for building tags. It is immutable after New
// and safe for concurrent use.
type Graph struct {
	cfg      Config
	registry *Registry
	logger   *log.Logger

	builders map[string]BuilderFunc
	extra    map[string]PrototypeConfig
}

// New creates a Graph with the given configuration. It fails only when a
// prototype refers to a tag builder that does not exist.
func New(cfg Config, opts ...Option) (*Graph, error) {
	cfg.setDefaults()

	g := &Graph{
		cfg:      cfg,
		logger:   log.Default(),
		builders: builtinBuilders(),
		extra:    make(map[string]PrototypeConfig),
	}
	for _, opt := range opts {
		opt(g)
	}

	configs := builtinPrototypes()
	for typ, pc := range cfg.Prototypes {
		configs[typ] = mergePrototype(configs[typ], pc)
	}
	for typ, pc := range g.extra {
		configs[typ] = mergePrototype(configs[typ], pc)
	}

	r, err := newRegistry(g.builders, configs, cfg.DefaultTagBuilder, g.logger)
	if err != nil {
		return nil, err
	}
	g.registry = r
	return g, nil
}

func mergePrototype(base, override PrototypeConfig) PrototypeConfig {
	if override.TagBuilder != "" {
		base.TagBuilder = override.TagBuilder
	}
	if override.Namespace != "" {
		base.Namespace = override.Namespace
	}
	return base
}

// Config returns the effective configuration, defaults applied.
func (g *Graph) Config() Config { return g.cfg }

// Registry returns the type registry.
func (g *Graph) Registry() *Registry { return g.registry }

// Application returns the Application view of stored site settings.
func (g *Graph) Application(s SiteSettings) Application {
	return g.cfg.Application(s)
}

// ResolveType returns the object's declared type, or the configured
// default type when it declares none.
func (g *Graph) ResolveType(obj Object) string {
	if t := strings.TrimSpace(obj.OGType()); t != "" {
		return t
	}
	return g.cfg.DefaultType
}

// Builder returns the tag builder responsible for typ.
func (g *Graph) Builder(typ string) Builder {
	return g.registry.Resolve(typ)
}

// Tags builds the ordered tag list for obj.
func (g *Graph) Tags(obj Object, app Application) Tags {
	typ := g.ResolveType(obj)
	if obj.OGType() != typ {
		obj = typedObject{Object: obj, typ: typ}
	}
	b := g.Builder(typ)
	tags := b.BuildTags(nil, defaultedObject{Object: obj, cfg: g.cfg, app: app}, app)
	g.logger.Debug("built open graph tags", "type", typ, "count", len(tags))
	return tags
}

// Head returns a component rendering the meta tags for obj.
func (g *Graph) Head(obj Object, app Application) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return MetaTags(g.Tags(obj, app)).Render(ctx, w)
	})
}

// typedObject overrides the type of an object that declares none, or
// declares it with surrounding whitespace.
type typedObject struct {
	Object
	typ string
}

func (o typedObject) OGType() string { return o.typ }

// defaultedObject guarantees the required properties (title, image, url)
// are never empty. Narrower capabilities are reached through Unwrap.
type defaultedObject struct {
	Object
	cfg Config
	app Application
}

func (o defaultedObject) OGTitle() string {
	if t := strings.TrimSpace(o.Object.OGTitle()); t != "" {
		return t
	}
	if o.app != nil {
		if t := strings.TrimSpace(o.app.OGSiteTitle()); t != "" {
			return t
		}
	}
	return defaultTitle
}

// OGImage drops images without a URL and falls back to the default image
// when none remain.
func (o defaultedObject) OGImage() []Media {
	var imgs []Media
	for _, m := range o.Object.OGImage() {
		if strings.TrimSpace(m.URL) != "" {
			imgs = append(imgs, m)
		}
	}
	if len(imgs) == 0 {
		return []Media{{URL: AbsoluteURL(o.cfg.BaseURL, o.cfg.DefaultImage)}}
	}
	return imgs
}

func (o defaultedObject) AbsoluteLink() string {
	if l := strings.TrimSpace(o.Object.AbsoluteLink()); l != "" {
		return l
	}
	return AbsoluteURL(o.cfg.BaseURL, "/")
}

func (o defaultedObject) Unwrap() Object { return o.Object }

// as finds the first object in the wrapper chain that implements T.
func as[T any](obj Object) (T, bool) {
	for obj != nil {
		if t, ok := obj.(T); ok {
			return t, true
		}
		u, ok := obj.(interface{ Unwrap() Object })
		if !ok {
			break
		}
		obj = u.Unwrap()
	}
	var zero T
	return zero, false
}

func (o typedObject) Unwrap() Object { return o.Object }
