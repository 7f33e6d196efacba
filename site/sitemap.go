package site

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/opengraph"
)

const sitemapPath = "/sitemap.xml"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) handleSitemap(c echo.Context) error {
	pages, err := a.Cache.ListPages()
	if err != nil {
		return err
	}
	base := a.Graph.Config().BaseURL
	urls := []sitemapURL{{Loc: opengraph.AbsoluteURL(base, "/")}}
	for _, p := range pages {
		if p.Slug == homeSlug {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:     opengraph.BuildURL(base, p.Slug),
			LastMod: lastMod(p),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

func lastMod(p opengraph.Page) string {
	t := p.Modified
	if t.IsZero() {
		t = p.Published
	}
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}
