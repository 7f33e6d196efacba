package opengraph

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func newTestGraph(t *testing.T, cfg Config, opts ...Option) *Graph {
	t.Helper()
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://example.com"
	}
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	g, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

var testSite = SiteSettings{Title: "Example"}

func TestRequiredTagsForEveryType(t *testing.T) {
	g := newTestGraph(t, Config{})
	for _, typ := range g.Registry().Types() {
		t.Run(typ, func(t *testing.T) {
			page := &Page{Slug: "thing", Type: typ}
			tags := g.Tags(g.Object(page, "en_US", testSite), g.Application(testSite))

			for _, prop := range []string{"og:title", "og:type", "og:image", "og:url"} {
				if _, ok := tags.Get(prop); !ok {
					t.Errorf("%s missing from %v", prop, tags)
				}
			}
			if got, _ := tags.Get("og:type"); got != typ {
				t.Errorf("og:type = %q, want %q", got, typ)
			}
			if got, _ := tags.Get("og:image"); got != "https://example.com/opengraph/images/logo.gif" {
				t.Errorf("og:image = %q, want default image", got)
			}
		})
	}
}

func TestTitleFallsBackToSiteThenUntitled(t *testing.T) {
	g := newTestGraph(t, Config{})
	page := &Page{Slug: "untitled"}

	tags := g.Tags(g.Object(page, "", testSite), g.Application(testSite))
	if got, _ := tags.Get("og:title"); got != "Example" {
		t.Errorf("og:title = %q, want site title", got)
	}

	tags = g.Tags(g.Object(page, "", SiteSettings{}), g.Application(SiteSettings{}))
	if got, _ := tags.Get("og:title"); got != "Untitled" {
		t.Errorf("og:title = %q, want %q", got, "Untitled")
	}
}

func TestArticleTags(t *testing.T) {
	g := newTestGraph(t, Config{ApplicationID: "123", AdminID: FromSiteSettings})
	site := SiteSettings{Title: "Example", AdminID: "999"}
	page := &Page{
		Slug:            "hello",
		Title:           "Hello",
		Type:            TypeArticle,
		MetaDescription: "  Greeting  ",
		Published:       time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Details: PageDetails{
			Section: "News",
			Authors: []string{"/people/ann/"},
			Tags:    []string{"go", "web"},
		},
	}

	got := g.Tags(g.Object(page, "fr-fr", site), g.Application(site))
	want := Tags{
		{"og:title", "Hello"},
		{"og:type", "article"},
		{"og:image", "https://example.com/opengraph/images/logo.gif"},
		{"og:url", "https://example.com/hello/"},
		{"og:site_name", "Example"},
		{"og:description", "Greeting"},
		{"og:locale", "fr_FR"},
		{"fb:admins", "999"},
		{"fb:app_id", "123"},
		{"article:published_time", "2024-01-15T10:00:00Z"},
		{"article:author", "https://example.com/people/ann/"},
		{"article:section", "News"},
		{"article:tag", "go"},
		{"article:tag", "web"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("article tags mismatch (-want +got):\n%s", diff)
	}
}

func TestDescriptionOmittedWithoutSource(t *testing.T) {
	g := newTestGraph(t, Config{})
	tags := g.Tags(g.Object(&Page{Slug: "empty", Title: "Empty"}, "", testSite), nil)
	if d, ok := tags.Get("og:description"); ok {
		t.Errorf("og:description = %q, want absent", d)
	}
}

func TestDescriptionFallsBackToSummary(t *testing.T) {
	g := newTestGraph(t, Config{})
	content := "<p>" + strings.Repeat("word ", 150) + "</p>"
	page := &Page{Slug: "long", Title: "Long", Content: content}

	tags := g.Tags(g.Object(page, "", testSite), nil)
	got, ok := tags.Get("og:description")
	if !ok {
		t.Fatal("og:description missing")
	}
	if want := Summary(content, 100); got != want {
		t.Errorf("og:description = %q, want %q", got, want)
	}
	if n := len(strings.Fields(strings.TrimSuffix(got, "…"))); n != 100 {
		t.Errorf("summary has %d words, want 100", n)
	}
}

func TestUnregisteredTypeUsesWebsiteBuilder(t *testing.T) {
	g := newTestGraph(t, Config{})
	if _, ok := g.Builder("made.up").(WebsiteBuilder); !ok {
		t.Errorf("Builder(made.up) = %T, want WebsiteBuilder", g.Builder("made.up"))
	}

	tags := g.Tags(g.Object(&Page{Slug: "x", Title: "X", Type: "made.up"}, "", testSite), nil)
	if got, _ := tags.Get("og:type"); got != "made.up" {
		t.Errorf("og:type = %q, want declared type", got)
	}
}

func TestRadioStationCreatorsInOrder(t *testing.T) {
	g := newTestGraph(t, Config{})
	page := &Page{
		Slug:  "station",
		Title: "Station",
		Type:  TypeMusicRadioStation,
		Details: PageDetails{
			Creators: []string{"https://example.com/dj/zed/", "https://example.com/dj/amy/"},
		},
	}

	tags := g.Tags(g.Object(page, "", testSite), nil)
	want := []string{"https://example.com/dj/zed/", "https://example.com/dj/amy/"}
	if diff := cmp.Diff(want, tags.All("music:creator")); diff != "" {
		t.Errorf("music:creator mismatch (-want +got):\n%s", diff)
	}
}

// station is a hand-written object, not an adapted Page.
type station struct {
	creators []Linker
}

func (station) AbsoluteLink() string     { return "https://radio.example/" }
func (station) OGType() string           { return TypeMusicRadioStation }
func (station) OGTitle() string          { return "Radio" }
func (station) OGImage() []Media         { return nil }
func (station) OGSiteName() string       { return "" }
func (station) OGDescription() string    { return "" }
func (station) OGDeterminer() Determiner { return DeterminerThe }
func (station) OGLocales() []string      { return []string{"en_US", "en_GB"} }
func (station) OGAudio() []Media {
	return []Media{{URL: "https://radio.example/live.mp3", Type: "audio/mpeg"}}
}
func (station) OGVideo() []Media            { return nil }
func (station) OGMusic()                    {}
func (s station) OGMusicCreators() []Linker { return s.creators }

type host struct{ link string }

func (h host) AbsoluteLink() string { return h.link }

func TestRadioStationWithProfileObjects(t *testing.T) {
	g := newTestGraph(t, Config{})
	obj := station{creators: []Linker{host{"https://radio.example/hosts/1"}, URL("https://radio.example/hosts/2")}}

	got := g.Tags(obj, nil)
	want := Tags{
		{"og:title", "Radio"},
		{"og:type", "music.radio_station"},
		{"og:image", "https://example.com/opengraph/images/logo.gif"},
		{"og:url", "https://radio.example/"},
		{"og:determiner", "the"},
		{"og:locale", "en_US"},
		{"og:locale:alternate", "en_GB"},
		{"og:audio", "https://radio.example/live.mp3"},
		{"og:audio:type", "audio/mpeg"},
		{"music:creator", "https://radio.example/hosts/1"},
		{"music:creator", "https://radio.example/hosts/2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("station tags mismatch (-want +got):\n%s", diff)
	}
}

func TestMusicAndVideoTags(t *testing.T) {
	g := newTestGraph(t, Config{})
	release := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		page Page
		want Tags
	}{
		{
			name: "song",
			page: Page{Type: TypeMusicSong, Details: PageDetails{
				Duration:  215,
				Albums:    []TrackURL{{URL: "/albums/one/", Disc: 1, Track: 4}},
				Musicians: []string{"/band/"},
			}},
			want: Tags{
				{"music:duration", "215"},
				{"music:album", "https://example.com/albums/one/"},
				{"music:album:disc", "1"},
				{"music:album:track", "4"},
				{"music:musician", "https://example.com/band/"},
			},
		},
		{
			name: "album",
			page: Page{Type: TypeMusicAlbum, Details: PageDetails{
				Songs:       []TrackURL{{URL: "/songs/a/", Track: 1}, {URL: "/songs/b/", Track: 2}},
				ReleaseDate: release,
			}},
			want: Tags{
				{"music:song", "https://example.com/songs/a/"},
				{"music:song:track", "1"},
				{"music:song", "https://example.com/songs/b/"},
				{"music:song:track", "2"},
				{"music:release_date", "2020-06-01"},
			},
		},
		{
			name: "playlist",
			page: Page{Type: TypeMusicPlaylist, Details: PageDetails{
				Songs:    []TrackURL{{URL: "/songs/a/"}},
				Creators: []string{"/me/"},
			}},
			want: Tags{
				{"music:song", "https://example.com/songs/a/"},
				{"music:creator", "https://example.com/me/"},
			},
		},
		{
			name: "episode",
			page: Page{Type: TypeVideoEpisode, Details: PageDetails{
				Actors:    []ActorURL{{URL: "/cast/lead/", Role: "Captain"}},
				Directors: []string{"/crew/dir/"},
				Duration:  1800,
				Series:    "/shows/space/",
			}},
			want: Tags{
				{"video:actor", "https://example.com/cast/lead/"},
				{"video:actor:role", "Captain"},
				{"video:director", "https://example.com/crew/dir/"},
				{"video:duration", "1800"},
				{"video:series", "https://example.com/shows/space/"},
			},
		},
		{
			name: "book",
			page: Page{Type: TypeBook, Details: PageDetails{
				Authors:     []string{"/authors/jo/"},
				ISBN:        "978-3-16-148410-0",
				ReleaseDate: release,
			}},
			want: Tags{
				{"book:author", "https://example.com/authors/jo/"},
				{"book:isbn", "978-3-16-148410-0"},
				{"book:release_date", "2020-06-01"},
			},
		},
		{
			name: "profile",
			page: Page{Type: TypeProfile, Details: PageDetails{
				FirstName: "Ann",
				LastName:  "Lee",
				Username:  "ann",
				Gender:    "Other",
			}},
			want: Tags{
				{"profile:first_name", "Ann"},
				{"profile:last_name", "Lee"},
				{"profile:username", "ann"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := tt.page
			page.Slug = tt.name
			page.Title = tt.name
			all := g.Tags(g.Object(&page, "", SiteSettings{}), nil)

			// Type-specific tags follow the base tags.
			var got Tags
			for _, tag := range all {
				if !strings.HasPrefix(tag.Property, "og:") && !strings.HasPrefix(tag.Property, "fb:") {
					got = append(got, tag)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%s tags mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestMediaStructuredProperties(t *testing.T) {
	g := newTestGraph(t, Config{})
	page := &Page{
		Slug:  "pic",
		Title: "Pic",
		Image: Media{URL: "/public/pic.jpg", Type: "image/jpeg", Width: 1200, Height: 630},
	}
	tags := g.Tags(g.Object(page, "", testSite), nil)

	want := []Tag{
		{"og:image", "https://example.com/public/pic.jpg"},
		{"og:image:type", "image/jpeg"},
		{"og:image:width", "1200"},
		{"og:image:height", "630"},
	}
	if diff := cmp.Diff(want, []Tag(tags[2:6])); diff != "" {
		t.Errorf("image tags mismatch (-want +got):\n%s", diff)
	}
}

// blankObject returns whitespace where the required properties belong.
type blankObject struct {
	images []Media
}

func (blankObject) AbsoluteLink() string     { return "  " }
func (blankObject) OGType() string           { return " " }
func (blankObject) OGTitle() string          { return "   " }
func (o blankObject) OGImage() []Media       { return o.images }
func (blankObject) OGSiteName() string       { return "" }
func (blankObject) OGDescription() string    { return "" }
func (blankObject) OGDeterminer() Determiner { return DefaultDeterminer }
func (blankObject) OGLocales() []string      { return nil }
func (blankObject) OGAudio() []Media         { return nil }
func (blankObject) OGVideo() []Media         { return nil }

func TestWhitespaceRequiredPropertiesAreDefaulted(t *testing.T) {
	g := newTestGraph(t, Config{})
	obj := blankObject{images: []Media{{URL: " "}}}

	got := g.Tags(obj, nil)
	want := Tags{
		{"og:title", "Untitled"},
		{"og:type", "website"},
		{"og:image", "https://example.com/opengraph/images/logo.gif"},
		{"og:url", "https://example.com/"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if ns := g.Namespace(obj); !strings.Contains(ns, "website: http://ogp.me/ns/website#") {
		t.Errorf("Namespace = %q, want website namespace", ns)
	}
}

func TestBlankImagesSkipped(t *testing.T) {
	g := newTestGraph(t, Config{})
	obj := blankObject{images: []Media{
		{URL: ""},
		{URL: "https://cdn.example/a.png", Width: 10},
		{URL: "  "},
		{URL: "https://cdn.example/b.png"},
	}}

	tags := g.Tags(obj, nil)
	want := []string{"https://cdn.example/a.png", "https://cdn.example/b.png"}
	if diff := cmp.Diff(want, tags.All("og:image")); diff != "" {
		t.Errorf("og:image mismatch (-want +got):\n%s", diff)
	}
	if got, _ := tags.Get("og:image:width"); got != "10" {
		t.Errorf("og:image:width = %q, want 10", got)
	}
}

type blankApp struct{}

func (blankApp) OGSiteTitle() string     { return " \t" }
func (blankApp) OGApplicationID() string { return "" }
func (blankApp) OGAdminID() string       { return "" }

func TestTitleFallback(t *testing.T) {
	g := newTestGraph(t, Config{})
	tests := []struct {
		name string
		app  Application
		want string
	}{
		{"no application", nil, "Untitled"},
		{"blank site title", blankApp{}, "Untitled"},
		{"site title", g.Application(testSite), "Example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := g.Tags(blankObject{}, tt.app).Get("og:title")
			if got != tt.want {
				t.Errorf("og:title = %q, want %q", got, tt.want)
			}
		})
	}
}
