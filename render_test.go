package opengraph

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestMetaTagsEscapes(t *testing.T) {
	var buf bytes.Buffer
	err := MetaTags([]Tag{{"og:title", `Fish & "Chips"`}}).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := `<meta property="og:title" content="Fish &amp; &#34;Chips&#34;"/>` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("MetaTags = %q, want %q", got, want)
	}
}

func TestHeadRendersParsableTags(t *testing.T) {
	g := newTestGraph(t, Config{})
	page := &Page{Slug: "hello", Title: "Hello <World>", MetaDescription: "Say hi"}
	obj := g.Object(page, "", testSite)

	var buf bytes.Buffer
	buf.WriteString("<html><head>")
	if err := g.Head(obj, g.Application(testSite)).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	buf.WriteString("</head><body></body></html>")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse rendered head: %v", err)
	}
	want := g.Tags(obj, g.Application(testSite))
	metas := doc.Find("head meta[property]")
	if metas.Length() != len(want) {
		t.Fatalf("rendered %d meta tags, want %d", metas.Length(), len(want))
	}
	metas.Each(func(i int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		content, _ := s.Attr("content")
		if prop != want[i].Property || content != want[i].Content {
			t.Errorf("meta %d = (%q, %q), want (%q, %q)", i, prop, content, want[i].Property, want[i].Content)
		}
	})
}
