package site

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"

	"github.com/eringen/opengraph"
	"github.com/eringen/opengraph/inspect"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	a, err := New(SiteConfig{
		Name:          "Example",
		URL:           "https://example.com",
		Description:   "An example site",
		DatabasePath:  filepath.Join(dir, "test.db"),
		StaticDir:     filepath.Join(dir, "public"),
		SessionSecret: "test-secret",
	}, WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })

	writePNG(t, filepath.Join(dir, "public", "hello.png"), 40, 20)
	page := opengraph.Page{
		Slug:      "hello",
		Title:     "Hello",
		Type:      opengraph.TypeArticle,
		Content:   "First paragraph of the article.",
		Image:     opengraph.Media{URL: "/public/hello.png"},
		Published: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	if err := a.Store.SavePage(page); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}
	if err := a.Setup(); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	return a
}

func serve(a *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func metaContent(doc *goquery.Document, property string) string {
	v, _ := doc.Find(`meta[property="` + property + `"]`).First().Attr("content")
	return v
}

func TestSetupRequiresSessionSecret(t *testing.T) {
	a, err := New(SiteConfig{DatabasePath: filepath.Join(t.TempDir(), "test.db")}, WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer a.Close()
	if err := a.Setup(); err == nil {
		t.Error("Setup without SessionSecret should fail")
	}
}

func TestPageHandler(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/hello/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	doc := parse(t, rec)

	prefix, _ := doc.Find("html").Attr("prefix")
	if !strings.Contains(prefix, "article: http://ogp.me/ns/article#") {
		t.Errorf("prefix = %q, want article namespace", prefix)
	}
	if lang, _ := doc.Find("html").Attr("lang"); lang != "en-US" {
		t.Errorf("lang = %q, want en-US", lang)
	}

	checks := map[string]string{
		"og:title":               "Hello",
		"og:type":                "article",
		"og:url":                 "https://example.com/hello/",
		"og:image":               "https://example.com/public/hello.png",
		"og:image:type":          "image/png",
		"og:image:width":         "40",
		"og:image:height":        "20",
		"og:site_name":           "Example",
		"og:description":         "First paragraph of the article.",
		"og:locale":              "en_US",
		"article:published_time": "2024-01-15T10:00:00Z",
	}
	for prop, want := range checks {
		if got := metaContent(doc, prop); got != want {
			t.Errorf("%s = %q, want %q", prop, got, want)
		}
	}
	if got := doc.Find("main h1").Text(); got != "Hello" {
		t.Errorf("h1 = %q, want Hello", got)
	}
}

func TestPageRoundTripsThroughInspect(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/hello/", nil))

	tags, err := inspect.Extract(rec.Body)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if err := inspect.Validate(tags); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
	want, err := a.PageTags("hello", "en_US")
	if err != nil {
		t.Fatalf("PageTags failed: %v", err)
	}
	if len(tags) != len(want) {
		t.Errorf("extracted %d tags, built %d", len(tags), len(want))
	}
}

func TestHomeHandlerWithoutHomePage(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	doc := parse(t, rec)
	checks := map[string]string{
		"og:title":       "Example",
		"og:type":        "website",
		"og:url":         "https://example.com/",
		"og:description": "An example site",
		"og:image":       "https://example.com/opengraph/images/logo.gif",
	}
	for prop, want := range checks {
		if got := metaContent(doc, prop); got != want {
			t.Errorf("%s = %q, want %q", prop, got, want)
		}
	}
	prefix, _ := doc.Find("html").Attr("prefix")
	if !strings.Contains(prefix, "website: http://ogp.me/ns/website#") {
		t.Errorf("prefix = %q, want website namespace", prefix)
	}
}

func TestHomeHandlerUsesHomePage(t *testing.T) {
	a := newTestApp(t)
	if err := a.Store.SavePage(opengraph.Page{Slug: "home", Title: "Welcome", MetaDescription: "Start here"}); err != nil {
		t.Fatal(err)
	}
	a.Cache.Invalidate()

	doc := parse(t, serve(a, httptest.NewRequest(http.MethodGet, "/", nil)))
	if got := metaContent(doc, "og:title"); got != "Welcome" {
		t.Errorf("og:title = %q, want Welcome", got)
	}
	if got := metaContent(doc, "og:url"); got != "https://example.com/" {
		t.Errorf("og:url = %q, want site root", got)
	}
}

func TestNotFound(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/missing/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := parse(t, rec).Find("h1").Text(); got != "Page not found" {
		t.Errorf("h1 = %q", got)
	}
}

func TestCacheControlByStatus(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		path string
		code int
		want string
	}{
		{"/hello/", http.StatusOK, "public, max-age=3600"},
		{"/missing/", http.StatusNotFound, "no-store"},
		{"/no/such/route/", http.StatusNotFound, "no-store"},
	}
	for _, tt := range tests {
		rec := serve(a, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.code {
			t.Errorf("GET %s status = %d, want %d", tt.path, rec.Code, tt.code)
			continue
		}
		if got := rec.Header().Get("Cache-Control"); got != tt.want {
			t.Errorf("GET %s Cache-Control = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/hello", nil))
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/hello/" {
		t.Errorf("Location = %q, want /hello/", loc)
	}
}

func TestPageTagsJSON(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/hello/og.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body ogResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Type != opengraph.TypeArticle {
		t.Errorf("type = %q, want article", body.Type)
	}
	if got, _ := body.Tags.Get("og:title"); got != "Hello" {
		t.Errorf("og:title = %q, want Hello", got)
	}

	rec = serve(a, httptest.NewRequest(http.MethodGet, "/missing/og.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing og.json status = %d, want 404", rec.Code)
	}
}

func TestDefaultImageServed(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/opengraph/images/logo.gif", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/gif" {
		t.Errorf("Content-Type = %q, want image/gif", ct)
	}
}

func TestLocaleNegotiation(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/hello/", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	if got := metaContent(parse(t, serve(a, req)), "og:locale"); got != "de_DE" {
		t.Errorf("Accept-Language og:locale = %q, want de_DE", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/hello/?locale=xx_YY", nil)
	if got := metaContent(parse(t, serve(a, req)), "og:locale"); got != "en_US" {
		t.Errorf("unsupported locale og:locale = %q, want en_US", got)
	}
}

func TestLocaleRememberedInSession(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/hello/?locale=fr_FR", nil))
	if got := metaContent(parse(t, rec), "og:locale"); got != "fr_FR" {
		t.Fatalf("og:locale = %q, want fr_FR", got)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie set")
	}

	req := httptest.NewRequest(http.MethodGet, "/hello/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	if got := metaContent(parse(t, serve(a, req)), "og:locale"); got != "fr_FR" {
		t.Errorf("remembered og:locale = %q, want fr_FR", got)
	}
}

func TestSitemap(t *testing.T) {
	a := newTestApp(t)
	rec := serve(a, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<loc>https://example.com/</loc>",
		"<loc>https://example.com/hello/</loc>",
		"<lastmod>2024-01-15</lastmod>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %s:\n%s", want, body)
		}
	}
}
