// Package inspect reads Open Graph tags back out of rendered HTML, either
// from a reader or from a live URL, and checks them for the required
// properties.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eringen/opengraph"
)

// ErrMissingProperty is wrapped by Validate for each absent required property.
var ErrMissingProperty = errors.New("missing required property")

// Required lists the properties every Open Graph object must carry.
var Required = []string{"og:title", "og:type", "og:image", "og:url"}

var prefixes = []string{"og:", "fb:", "music:", "video:", "article:", "book:", "profile:", "website:"}

// maxBody caps how much of a fetched page is read.
const maxBody = 5 << 20

// Extract returns the Open Graph meta tags found in an HTML document, in
// document order. Meta elements outside the known namespaces are ignored.
func Extract(r io.Reader) (opengraph.Tags, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	var tags opengraph.Tags
	doc.Find("meta[property]").Each(func(_ int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		prop = strings.TrimSpace(prop)
		if !hasKnownPrefix(prop) {
			return
		}
		content, _ := s.Attr("content")
		tags = append(tags, opengraph.Tag{Property: prop, Content: strings.TrimSpace(content)})
	})
	return tags, nil
}

// Namespace returns the prefix attribute of the root html element.
func Namespace(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	prefix, _ := doc.Find("html").First().Attr("prefix")
	return prefix, nil
}

// Fetch downloads url and extracts its tags. A nil client uses
// http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, url string) (opengraph.Tags, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	return Extract(io.LimitReader(resp.Body, maxBody))
}

// Validate reports every required property that is missing or empty.
// The returned error joins one ErrMissingProperty per property.
func Validate(tags opengraph.Tags) error {
	var errs []error
	for _, prop := range Required {
		if v, ok := tags.Get(prop); !ok || v == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingProperty, prop))
		}
	}
	return errors.Join(errs...)
}

func hasKnownPrefix(prop string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(prop, p) {
			return true
		}
	}
	return false
}
