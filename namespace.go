package opengraph

import (
	"html"
	"sort"
	"strings"
)

// Namespace prefixes contributed by each family of types.
const (
	nsMusic   = "music"
	nsVideo   = "video"
	nsArticle = "article"
	nsBook    = "book"
	nsProfile = "profile"
	nsWebsite = "website"
)

const baseNamespaces = "og: http://ogp.me/ns# fb: http://www.facebook.com/2008/fbml"

// namespaceOrder fixes the order prefixes appear in, after og and fb.
var namespaceOrder = []string{nsMusic, nsVideo, nsArticle, nsBook, nsProfile, nsWebsite}

var namespaceURIs = map[string]string{
	nsMusic:   "http://ogp.me/ns/music#",
	nsVideo:   "http://ogp.me/ns/video#",
	nsArticle: "http://ogp.me/ns/article#",
	nsBook:    "http://ogp.me/ns/book#",
	nsProfile: "http://ogp.me/ns/profile#",
	nsWebsite: "http://ogp.me/ns/website#",
}

// Namespace returns the RDFa prefix declaration for obj, listing the og and
// fb namespaces followed by every namespace its type and capabilities use.
func (g *Graph) Namespace(obj Object) string {
	used := make(map[string]bool)

	typ := g.ResolveType(obj)
	if p, ok := g.registry.Prototype(typ); ok && p.Namespace != "" {
		used[p.Namespace] = true
	}
	if typ == TypeWebsite {
		used[nsWebsite] = true
	}
	if _, ok := as[Music](obj); ok {
		used[nsMusic] = true
	}
	if _, ok := as[Video](obj); ok {
		used[nsVideo] = true
	}
	if _, ok := as[Article](obj); ok {
		used[nsArticle] = true
	}
	if _, ok := as[Book](obj); ok {
		used[nsBook] = true
	}
	if _, ok := as[Profile](obj); ok {
		used[nsProfile] = true
	}
	if _, ok := as[Website](obj); ok {
		used[nsWebsite] = true
	}

	var b strings.Builder
	b.WriteString(baseNamespaces)
	for _, ns := range namespaceOrder {
		if used[ns] {
			b.WriteString(" " + ns + ": " + namespaceURIs[ns])
			delete(used, ns)
		}
	}
	// Custom prototypes may declare namespaces outside the standard set;
	// they are written as prefix-only declarations under ogp.me.
	for _, ns := range sortedKeys(used) {
		b.WriteString(" " + ns + ": http://ogp.me/ns/" + ns + "#")
	}
	return b.String()
}

// NamespaceAttr returns the namespace declaration as an attribute, ready to
// be placed inside the root element: <html{{ NamespaceAttr }}>.
func (g *Graph) NamespaceAttr(obj Object) string {
	return ` prefix="` + html.EscapeString(g.Namespace(obj)) + `"`
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
