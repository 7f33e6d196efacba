package opengraph

import (
	"net/url"
	"path"
	"strings"
)

// AbsoluteURL resolves ref against base. Absolute refs are returned as-is;
// an empty ref yields base itself.
func AbsoluteURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	if ref == "" {
		return b.String()
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return r.String()
	}
	if !strings.HasSuffix(b.Path, "/") {
		b.Path += "/"
	}
	// Root-relative refs resolve under the base path so that sites mounted
	// below a prefix keep it.
	if strings.HasPrefix(r.Path, "/") && r.Host == "" {
		r.Path = strings.TrimPrefix(r.Path, "/")
	}
	return b.ResolveReference(r).String()
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}
