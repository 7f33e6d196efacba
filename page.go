package opengraph

import (
	"strings"
	"time"
)

// Page is a plain content record a host can hand to Graph.Object to get a
// fully defaulted Object. Content is HTML.
type Page struct {
	Slug            string      `json:"slug" yaml:"slug"`
	Title           string      `json:"title" yaml:"title"`
	Type            string      `json:"type,omitempty" yaml:"type"`
	MetaDescription string      `json:"meta_description,omitempty" yaml:"meta_description"`
	Content         string      `json:"content,omitempty" yaml:"content"`
	Image           Media       `json:"image,omitempty" yaml:"image"`
	Link            string      `json:"link,omitempty" yaml:"link"`
	Audio           []Media     `json:"audio,omitempty" yaml:"audio"`
	Video           []Media     `json:"video,omitempty" yaml:"video"`
	Published       time.Time   `json:"published,omitempty" yaml:"published"`
	Modified        time.Time   `json:"modified,omitempty" yaml:"modified"`
	Details         PageDetails `json:"details,omitempty" yaml:"details"`
}

// PageDetails carries the type-specific fields. References to profiles,
// songs and albums are absolute URLs.
type PageDetails struct {
	// article
	Expires time.Time `json:"expires,omitempty" yaml:"expires"`
	Section string    `json:"section,omitempty" yaml:"section"`
	Authors []string  `json:"authors,omitempty" yaml:"authors"`
	Tags    []string  `json:"tags,omitempty" yaml:"tags"`

	// book
	ISBN        string    `json:"isbn,omitempty" yaml:"isbn"`
	ReleaseDate time.Time `json:"release_date,omitempty" yaml:"release_date"`

	// music
	Duration  int        `json:"duration,omitempty" yaml:"duration"`
	Musicians []string   `json:"musicians,omitempty" yaml:"musicians"`
	Creators  []string   `json:"creators,omitempty" yaml:"creators"`
	Songs     []TrackURL `json:"songs,omitempty" yaml:"songs"`
	Albums    []TrackURL `json:"albums,omitempty" yaml:"albums"`

	// video
	Actors    []ActorURL `json:"actors,omitempty" yaml:"actors"`
	Directors []string   `json:"directors,omitempty" yaml:"directors"`
	Writers   []string   `json:"writers,omitempty" yaml:"writers"`
	Series    string     `json:"series,omitempty" yaml:"series"`

	// profile
	FirstName string `json:"first_name,omitempty" yaml:"first_name"`
	LastName  string `json:"last_name,omitempty" yaml:"last_name"`
	Username  string `json:"username,omitempty" yaml:"username"`
	Gender    string `json:"gender,omitempty" yaml:"gender"`
}

// TrackURL is the serializable form of TrackRef.
type TrackURL struct {
	URL   string `json:"url" yaml:"url"`
	Disc  int    `json:"disc,omitempty" yaml:"disc"`
	Track int    `json:"track,omitempty" yaml:"track"`
}

// ActorURL is the serializable form of ActorRef.
type ActorURL struct {
	URL  string `json:"url" yaml:"url"`
	Role string `json:"role,omitempty" yaml:"role"`
}

// Object adapts page into an Object for the current request. The result
// implements the capability matching the page's declared type, so
// type-specific builders find their fields.
func (g *Graph) Object(page *Page, locale string, site SiteSettings) Object {
	base := &pageObject{page: page, cfg: g.cfg, locale: locale, site: site}
	switch base.OGType() {
	case TypeWebsite:
		return websitePage{base}
	case TypeArticle:
		return articlePage{base}
	case TypeBook:
		return bookPage{base}
	case TypeProfile:
		return profilePage{base}
	case TypeMusicSong:
		return songPage{base}
	case TypeMusicAlbum:
		return albumPage{base}
	case TypeMusicPlaylist:
		return playlistPage{base}
	case TypeMusicRadioStation:
		return radioStationPage{base}
	case TypeVideoEpisode:
		return episodePage{videoPage{base}}
	case TypeVideoMovie, TypeVideoTVShow, TypeVideoOther:
		return videoPage{base}
	}
	return base
}

// pageObject implements Object over a Page with the fallback policy for
// every field.
type pageObject struct {
	page   *Page
	cfg    Config
	locale string
	site   SiteSettings
}

func (p *pageObject) OGType() string {
	if t := strings.TrimSpace(p.page.Type); t != "" {
		return t
	}
	return p.cfg.DefaultType
}

func (p *pageObject) OGTitle() string { return strings.TrimSpace(p.page.Title) }

func (p *pageObject) OGSiteName() string { return p.site.Title }

// OGImage resolves the page image, or the configured default image, to an
// absolute URL. og:image is required, so this never returns nothing.
func (p *pageObject) OGImage() []Media {
	img := p.page.Image
	if strings.TrimSpace(img.URL) == "" {
		return []Media{{URL: AbsoluteURL(p.cfg.BaseURL, p.cfg.DefaultImage)}}
	}
	img.URL = AbsoluteURL(p.cfg.BaseURL, img.URL)
	if img.SecureURL != "" {
		img.SecureURL = AbsoluteURL(p.cfg.BaseURL, img.SecureURL)
	}
	return []Media{img}
}

func (p *pageObject) AbsoluteLink() string {
	if p.page.Link != "" {
		return AbsoluteURL(p.cfg.BaseURL, p.page.Link)
	}
	if p.page.Slug == "" {
		return AbsoluteURL(p.cfg.BaseURL, "/")
	}
	return BuildURL(p.cfg.BaseURL, p.page.Slug)
}

// OGDescription prefers the explicit meta description and falls back to a
// summary of the page content.
func (p *pageObject) OGDescription() string {
	if d := strings.TrimSpace(p.page.MetaDescription); d != "" {
		return d
	}
	return Summary(p.page.Content, p.cfg.SummaryWords)
}

func (p *pageObject) OGDeterminer() Determiner { return DefaultDeterminer }

// OGLocales returns the current locale when it is supported, otherwise the
// configured default.
func (p *pageObject) OGLocales() []string {
	return []string{p.cfg.ResolveLocale(p.locale)}
}

func (p *pageObject) OGAudio() []Media { return p.absoluteMedia(p.page.Audio) }

func (p *pageObject) OGVideo() []Media { return p.absoluteMedia(p.page.Video) }

func (p *pageObject) absoluteMedia(in []Media) []Media {
	if len(in) == 0 {
		return nil
	}
	out := make([]Media, 0, len(in))
	for _, m := range in {
		if m.URL == "" {
			continue
		}
		m.URL = AbsoluteURL(p.cfg.BaseURL, m.URL)
		out = append(out, m)
	}
	return out
}

func (p *pageObject) links(urls []string) []Linker {
	var out []Linker
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, URL(AbsoluteURL(p.cfg.BaseURL, u)))
		}
	}
	return out
}

func (p *pageObject) tracks(refs []TrackURL) []TrackRef {
	var out []TrackRef
	for _, r := range refs {
		if strings.TrimSpace(r.URL) == "" {
			continue
		}
		out = append(out, TrackRef{Ref: URL(AbsoluteURL(p.cfg.BaseURL, r.URL)), Disc: r.Disc, Track: r.Track})
	}
	return out
}

type websitePage struct{ *pageObject }

func (websitePage) OGWebsite() {}

type articlePage struct{ *pageObject }

func (p articlePage) OGArticlePublishedTime() time.Time  { return p.page.Published }
func (p articlePage) OGArticleModifiedTime() time.Time   { return p.page.Modified }
func (p articlePage) OGArticleExpirationTime() time.Time { return p.page.Details.Expires }
func (p articlePage) OGArticleAuthors() []Linker         { return p.links(p.page.Details.Authors) }
func (p articlePage) OGArticleSection() string           { return p.page.Details.Section }
func (p articlePage) OGArticleTags() []string            { return p.page.Details.Tags }

type bookPage struct{ *pageObject }

func (p bookPage) OGBookAuthors() []Linker      { return p.links(p.page.Details.Authors) }
func (p bookPage) OGBookISBN() string           { return p.page.Details.ISBN }
func (p bookPage) OGBookReleaseDate() time.Time { return p.page.Details.ReleaseDate }
func (p bookPage) OGBookTags() []string         { return p.page.Details.Tags }

type profilePage struct{ *pageObject }

func (p profilePage) OGProfileFirstName() string { return p.page.Details.FirstName }
func (p profilePage) OGProfileLastName() string  { return p.page.Details.LastName }
func (p profilePage) OGProfileUsername() string  { return p.page.Details.Username }
func (p profilePage) OGProfileGender() string    { return p.page.Details.Gender }

type songPage struct{ *pageObject }

func (songPage) OGMusic()                     {}
func (p songPage) OGMusicDuration() int       { return p.page.Details.Duration }
func (p songPage) OGMusicAlbums() []TrackRef  { return p.tracks(p.page.Details.Albums) }
func (p songPage) OGMusicMusicians() []Linker { return p.links(p.page.Details.Musicians) }

type albumPage struct{ *pageObject }

func (albumPage) OGMusic()                        {}
func (p albumPage) OGMusicSongs() []TrackRef      { return p.tracks(p.page.Details.Songs) }
func (p albumPage) OGMusicMusicians() []Linker    { return p.links(p.page.Details.Musicians) }
func (p albumPage) OGMusicReleaseDate() time.Time { return p.page.Details.ReleaseDate }

type playlistPage struct{ *pageObject }

func (playlistPage) OGMusic()                    {}
func (p playlistPage) OGMusicSongs() []TrackRef  { return p.tracks(p.page.Details.Songs) }
func (p playlistPage) OGMusicCreators() []Linker { return p.links(p.page.Details.Creators) }

type radioStationPage struct{ *pageObject }

func (radioStationPage) OGMusic()                    {}
func (p radioStationPage) OGMusicCreators() []Linker { return p.links(p.page.Details.Creators) }

type videoPage struct{ *pageObject }

func (p videoPage) OGVideoActors() []ActorRef {
	var out []ActorRef
	for _, a := range p.page.Details.Actors {
		if strings.TrimSpace(a.URL) == "" {
			continue
		}
		out = append(out, ActorRef{Ref: URL(AbsoluteURL(p.cfg.BaseURL, a.URL)), Role: a.Role})
	}
	return out
}
func (p videoPage) OGVideoDirectors() []Linker    { return p.links(p.page.Details.Directors) }
func (p videoPage) OGVideoWriters() []Linker      { return p.links(p.page.Details.Writers) }
func (p videoPage) OGVideoDuration() int          { return p.page.Details.Duration }
func (p videoPage) OGVideoReleaseDate() time.Time { return p.page.Details.ReleaseDate }
func (p videoPage) OGVideoTags() []string         { return p.page.Details.Tags }

type episodePage struct{ videoPage }

func (p episodePage) OGVideoSeries() Linker {
	if p.page.Details.Series == "" {
		return nil
	}
	return URL(AbsoluteURL(p.cfg.BaseURL, p.page.Details.Series))
}
