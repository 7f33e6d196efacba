package site

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/opengraph"
)

// homeSlug is the page shown at the site root when it exists.
const homeSlug = "home"

// ogResponse is the JSON body of /:slug/og.json.
type ogResponse struct {
	Type   string         `json:"type"`
	Prefix string         `json:"prefix"`
	Locale string         `json:"locale"`
	Tags   opengraph.Tags `json:"tags"`
}

func (a *App) handleHome(c echo.Context) error {
	locale := a.requestLocale(c)
	page, err := a.homePage()
	if err != nil {
		return err
	}
	return a.renderPage(c, page, locale)
}

func (a *App) handlePage(c echo.Context) error {
	locale := a.requestLocale(c)
	page, err := a.Cache.GetPage(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	return a.renderPage(c, page, locale)
}

func (a *App) handlePageTags(c echo.Context) error {
	locale := a.requestLocale(c)
	slug := c.Param("slug")
	page, err := a.Cache.GetPage(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "page not found")
		}
		return err
	}
	settings, err := a.Settings()
	if err != nil {
		return err
	}
	obj := a.Graph.Object(&page, locale, settings)
	return c.JSON(http.StatusOK, ogResponse{
		Type:   a.Graph.ResolveType(obj),
		Prefix: a.Graph.Namespace(obj),
		Locale: locale,
		Tags:   a.Graph.Tags(obj, a.Graph.Application(settings)),
	})
}

func (a *App) renderPage(c echo.Context, page opengraph.Page, locale string) error {
	settings, err := a.Settings()
	if err != nil {
		return err
	}
	obj := a.Graph.Object(&page, locale, settings)
	return render(c, layout(pageData{
		Lang:     htmlLang(locale),
		Prefix:   a.Graph.Namespace(obj),
		SiteName: settings.Title,
		Title:    page.Title,
		Body:     page.Content,
		Tags:     a.Graph.Tags(obj, a.Graph.Application(settings)),
	}))
}

// homePage returns the stored home page, or a website object describing
// the site itself.
func (a *App) homePage() (opengraph.Page, error) {
	page, err := a.Cache.GetPage(homeSlug)
	if err == nil {
		page.Slug, page.Link = "", ""
		return page, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return page, err
	}
	settings, err := a.Settings()
	if err != nil {
		return page, err
	}
	return opengraph.Page{
		Title:           settings.Title,
		Type:            opengraph.TypeWebsite,
		MetaDescription: a.Config.Description,
	}, nil
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !wantsJSON(c) {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.logger.Error("server error", "uri", c.Request().RequestURI, "err", err)
		_ = a.renderServerError(c, code)
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func wantsJSON(c echo.Context) bool {
	return strings.HasSuffix(c.Request().URL.Path, ".json")
}
