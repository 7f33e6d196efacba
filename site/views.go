package site

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/opengraph"
)

// pageData is everything the layout needs to render one document.
type pageData struct {
	Lang     string
	Prefix   string
	SiteName string
	Title    string
	Body     string // trusted HTML
	Tags     []opengraph.Tag
}

func layout(d pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html")
		if d.Lang != "" {
			b.WriteString(` lang="` + templ.EscapeString(d.Lang) + `"`)
		}
		if d.Prefix != "" {
			b.WriteString(` prefix="` + templ.EscapeString(d.Prefix) + `"`)
		}
		b.WriteString(">\n<head>\n<meta charset=\"utf-8\"/>\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
		b.WriteString("<title>" + templ.EscapeString(documentTitle(d)) + "</title>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := opengraph.MetaTags(d.Tags).Render(ctx, w); err != nil {
			return err
		}
		b.Reset()
		b.WriteString("</head>\n<body>\n<header><a href=\"/\">" + templ.EscapeString(d.SiteName) + "</a></header>\n<main>\n")
		if d.Title != "" {
			b.WriteString("<h1>" + templ.EscapeString(d.Title) + "</h1>\n")
		}
		b.WriteString(d.Body)
		b.WriteString("</main>\n</body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func documentTitle(d pageData) string {
	switch {
	case d.Title == "":
		return d.SiteName
	case d.SiteName == "" || d.Title == d.SiteName:
		return d.Title
	}
	return d.Title + " | " + d.SiteName
}

func notFoundView(siteName string) templ.Component {
	return layout(pageData{
		SiteName: siteName,
		Title:    "Page not found",
		Body:     "<p>The page you are looking for does not exist.</p>\n",
	})
}

func serverErrorView(siteName string) templ.Component {
	return layout(pageData{
		SiteName: siteName,
		Title:    "Something went wrong",
		Body:     "<p>Please try again later.</p>\n",
	})
}

// htmlLang converts an Open Graph locale (en_US) to a BCP 47 tag (en-US).
func htmlLang(locale string) string {
	return strings.ReplaceAll(locale, "_", "-")
}
