package opengraph

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// MetaTags returns a templ.Component that writes one meta element per tag,
// in order.
func MetaTags(tags []Tag) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, t := range tags {
			b.WriteString(`<meta property="`)
			b.WriteString(templ.EscapeString(t.Property))
			b.WriteString(`" content="`)
			b.WriteString(templ.EscapeString(t.Content))
			b.WriteString("\"/>\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}
