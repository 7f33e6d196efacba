package opengraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// ErrUnknownBuilder is returned by New when a prototype names a tag builder
// that has not been registered.
var ErrUnknownBuilder = errors.New("opengraph: unknown tag builder")

// BuilderFunc constructs a tag builder. Builders are stateless, so a
// constructor is called once per lookup and its result discarded after use.
type BuilderFunc func() Builder

// Prototype associates a type with its tag builder and the namespace
// prefix it contributes to the root <html> element.
type Prototype struct {
	Type       string
	TagBuilder string
	Namespace  string

	build BuilderFunc
}

// Registry maps Open Graph type names to prototypes. It is built once by
// New and is read-only afterwards.
type Registry struct {
	prototypes map[string]Prototype
	fallback   Prototype
	logger     *log.Logger
}

// builtinBuilders are the tag builders available by name.
func builtinBuilders() map[string]BuilderFunc {
	return map[string]BuilderFunc{
		TypeWebsite:           func() Builder { return WebsiteBuilder{} },
		TypeArticle:           func() Builder { return ArticleBuilder{} },
		TypeBook:              func() Builder { return BookBuilder{} },
		TypeProfile:           func() Builder { return ProfileBuilder{} },
		TypeMusicSong:         func() Builder { return MusicSongBuilder{} },
		TypeMusicAlbum:        func() Builder { return MusicAlbumBuilder{} },
		TypeMusicPlaylist:     func() Builder { return MusicPlaylistBuilder{} },
		TypeMusicRadioStation: func() Builder { return MusicRadioStationBuilder{} },
		TypeVideoMovie:        func() Builder { return VideoBuilder{} },
		TypeVideoEpisode:      func() Builder { return VideoEpisodeBuilder{} },
		TypeVideoTVShow:       func() Builder { return VideoBuilder{} },
		TypeVideoOther:        func() Builder { return VideoBuilder{} },
	}
}

// builtinPrototypes pairs each built-in type with the builder of the same name.
func builtinPrototypes() map[string]PrototypeConfig {
	return map[string]PrototypeConfig{
		TypeWebsite:           {TagBuilder: TypeWebsite, Namespace: nsWebsite},
		TypeArticle:           {TagBuilder: TypeArticle, Namespace: nsArticle},
		TypeBook:              {TagBuilder: TypeBook, Namespace: nsBook},
		TypeProfile:           {TagBuilder: TypeProfile, Namespace: nsProfile},
		TypeMusicSong:         {TagBuilder: TypeMusicSong, Namespace: nsMusic},
		TypeMusicAlbum:        {TagBuilder: TypeMusicAlbum, Namespace: nsMusic},
		TypeMusicPlaylist:     {TagBuilder: TypeMusicPlaylist, Namespace: nsMusic},
		TypeMusicRadioStation: {TagBuilder: TypeMusicRadioStation, Namespace: nsMusic},
		TypeVideoMovie:        {TagBuilder: TypeVideoMovie, Namespace: nsVideo},
		TypeVideoEpisode:      {TagBuilder: TypeVideoEpisode, Namespace: nsVideo},
		TypeVideoTVShow:       {TagBuilder: TypeVideoTVShow, Namespace: nsVideo},
		TypeVideoOther:        {TagBuilder: TypeVideoOther, Namespace: nsVideo},
	}
}

func newRegistry(builders map[string]BuilderFunc, configs map[string]PrototypeConfig, fallback string, logger *log.Logger) (*Registry, error) {
	r := &Registry{
		prototypes: make(map[string]Prototype, len(configs)),
		logger:     logger,
	}
	for typ, pc := range configs {
		name := pc.TagBuilder
		if name == "" {
			name = typ
		}
		fn, ok := builders[name]
		if !ok {
			return nil, fmt.Errorf("%w %q for type %q", ErrUnknownBuilder, name, typ)
		}
		r.prototypes[typ] = Prototype{
			Type:       typ,
			TagBuilder: name,
			Namespace:  pc.Namespace,
			build:      fn,
		}
	}
	fn, ok := builders[fallback]
	if !ok {
		return nil, fmt.Errorf("%w %q (default)", ErrUnknownBuilder, fallback)
	}
	r.fallback = Prototype{TagBuilder: fallback, build: fn}
	return r, nil
}

// Prototype returns the prototype registered for typ.
func (r *Registry) Prototype(typ string) (Prototype, bool) {
	p, ok := r.prototypes[typ]
	return p, ok
}

// Resolve returns the tag builder for typ. Unregistered types resolve to
// the default builder; Resolve never fails.
func (r *Registry) Resolve(typ string) Builder {
	if p, ok := r.prototypes[typ]; ok {
		return p.build()
	}
	r.logger.Debug("no prototype registered, using default tag builder", "type", typ, "builder", r.fallback.TagBuilder)
	return r.fallback.build()
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.prototypes))
	for t := range r.prototypes {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
