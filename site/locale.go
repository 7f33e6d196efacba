package site

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "opengraph_session"
	localeKey   = "locale"
)

// requestLocale decides the locale for a request. An explicit ?locale=
// choice is remembered in the session; otherwise the session value or the
// Accept-Language header is used. The result is always supported.
func (a *App) requestLocale(c echo.Context) string {
	cfg := a.Graph.Config()
	if q := c.QueryParam(localeKey); q != "" && cfg.IsLocaleValid(q) {
		locale := cfg.ResolveLocale(q)
		if err := a.saveLocale(c, locale); err != nil {
			a.logger.Warn("save locale", "err", err)
		}
		return locale
	}
	if sess, err := session.Get(sessionName, c); err == nil {
		if l, ok := sess.Values[localeKey].(string); ok && cfg.IsLocaleValid(l) {
			return cfg.ResolveLocale(l)
		}
	}
	if h := c.Request().Header.Get("Accept-Language"); h != "" {
		return cfg.MatchAcceptLanguage(h)
	}
	return cfg.DefaultLocale
}

func (a *App) saveLocale(c echo.Context, locale string) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values[localeKey] = locale
	return sess.Save(c.Request(), c.Response())
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 365,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}
