package site

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func render(c echo.Context, cmp templ.Component) error {
	return renderStatus(c, http.StatusOK, cmp)
}

// renderStatus writes cmp as an HTML response. Error pages are sent with
// Cache-Control: no-store.
func renderStatus(c echo.Context, code int, cmp templ.Component) error {
	h := c.Response().Header()
	h.Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	if code >= http.StatusBadRequest {
		h.Set("Cache-Control", "no-store")
		h.Del("Vary")
	}
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

func (a *App) renderNotFound(c echo.Context) error {
	return renderStatus(c, http.StatusNotFound, notFoundView(a.Config.Name))
}

func (a *App) renderServerError(c echo.Context, code int) error {
	return renderStatus(c, code, serverErrorView(a.Config.Name))
}
