package site

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/eringen/opengraph"
)

const staticPrefix = "/public/"

// imageProber fills in the type and dimensions of images served from the
// static directory, so og:image:width and og:image:height can be emitted
// without the author entering them.
type imageProber struct {
	dir string
}

func newImageProber(dir string) *imageProber {
	return &imageProber{dir: dir}
}

// probe returns m with Type, Width and Height filled in when m points at a
// readable local image. Values already set are kept.
func (p *imageProber) probe(m opengraph.Media) opengraph.Media {
	if m.Width > 0 && m.Height > 0 && m.Type != "" {
		return m
	}
	path, ok := p.localPath(m.URL)
	if !ok {
		return m
	}
	f, err := os.Open(path)
	if err != nil {
		return m
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return m
	}
	if m.Type == "" {
		m.Type = "image/" + format
	}
	if m.Width == 0 && m.Height == 0 {
		m.Width, m.Height = cfg.Width, cfg.Height
	}
	return m
}

// localPath maps a /public/ URL to a file inside the static directory.
func (p *imageProber) localPath(url string) (string, bool) {
	if p.dir == "" || !strings.HasPrefix(url, staticPrefix) {
		return "", false
	}
	rel := filepath.FromSlash(strings.TrimPrefix(url, staticPrefix))
	if !filepath.IsLocal(rel) {
		return "", false
	}
	return filepath.Join(p.dir, rel), true
}
