package site

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
	_ "modernc.org/sqlite"

	"github.com/eringen/opengraph"
)

// ErrNotFound is returned when a requested page does not exist.
var ErrNotFound = errors.New("page not found")

// ErrUnknownSetting is returned by SetSetting for keys the site does not use.
var ErrUnknownSetting = errors.New("unknown setting")

// Setting keys stored in the settings table.
const (
	SettingTitle         = "title"
	SettingApplicationID = "application_id"
	SettingAdminID       = "admin_id"
)

// SettingKeys lists the keys accepted by SetSetting.
var SettingKeys = []string{SettingTitle, SettingApplicationID, SettingAdminID}

// Store wraps a SQLite database holding pages and site settings.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets page reads proceed while an import writes; writers wait on
	// the busy timeout instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS pages (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT '',
    meta_description TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    link TEXT NOT NULL DEFAULT '',
    media TEXT NOT NULL DEFAULT '{}',
    published TEXT NOT NULL DEFAULT '',
    modified TEXT NOT NULL DEFAULT '',
    details TEXT NOT NULL DEFAULT '{}'
);
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// pageMedia is the JSON shape of the media column.
type pageMedia struct {
	Image opengraph.Media   `json:"image"`
	Audio []opengraph.Media `json:"audio,omitempty"`
	Video []opengraph.Media `json:"video,omitempty"`
}

const pageColumns = `slug, title, type, meta_description, content, link, media, published, modified, details`

type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (opengraph.Page, error) {
	var p opengraph.Page
	var media, published, modified, details string
	if err := row.Scan(&p.Slug, &p.Title, &p.Type, &p.MetaDescription, &p.Content, &p.Link,
		&media, &published, &modified, &details); err != nil {
		return p, err
	}
	var m pageMedia
	if err := json.Unmarshal([]byte(media), &m); err != nil {
		return p, fmt.Errorf("decode media of %s: %w", p.Slug, err)
	}
	p.Image, p.Audio, p.Video = m.Image, m.Audio, m.Video
	if err := json.Unmarshal([]byte(details), &p.Details); err != nil {
		return p, fmt.Errorf("decode details of %s: %w", p.Slug, err)
	}
	p.Published = parseTime(published)
	p.Modified = parseTime(modified)
	return p, nil
}

// GetPage returns a single page by slug, or ErrNotFound.
func (s *Store) GetPage(slug string) (opengraph.Page, error) {
	p, err := scanPage(s.db.QueryRow(`SELECT `+pageColumns+` FROM pages WHERE slug = ?`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

// ListPages returns every page, newest first.
func (s *Store) ListPages() ([]opengraph.Page, error) {
	rows, err := s.db.Query(`SELECT ` + pageColumns + ` FROM pages ORDER BY published DESC, slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []opengraph.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// SavePage upserts a page. The slug is normalized to lowercase; a page
// without one gets a slug derived from its title.
func (s *Store) SavePage(p opengraph.Page) error {
	return savePage(s.db, p)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func savePage(db execer, p opengraph.Page) error {
	p.Slug = normalizeSlug(p.Slug)
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Slug == "" {
		return errors.New("page needs a slug or a title")
	}
	media, err := json.Marshal(pageMedia{Image: p.Image, Audio: p.Audio, Video: p.Video})
	if err != nil {
		return err
	}
	details, err := json.Marshal(p.Details)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR REPLACE INTO pages (`+pageColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Title, p.Type, p.MetaDescription, p.Content, p.Link,
		string(media), formatTime(p.Published), formatTime(p.Modified), string(details))
	return err
}

// DeletePage removes a page by slug.
func (s *Store) DeletePage(slug string) error {
	res, err := s.db.Exec(`DELETE FROM pages WHERE slug = ?`, normalizeSlug(slug))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ImportPages reads a YAML list of pages from r and saves them in one
// transaction. It returns the number of pages saved.
func (s *Store) ImportPages(r io.Reader) (int, error) {
	var pages []opengraph.Page
	if err := yaml.NewDecoder(r).Decode(&pages); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("decode pages: %w", err)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	for i, p := range pages {
		if err := savePage(tx, p); err != nil {
			return 0, fmt.Errorf("page %d (%q): %w", i+1, p.Slug, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(pages), nil
}

// GetSettings returns the stored site settings. Missing keys are empty.
func (s *Store) GetSettings() (opengraph.SiteSettings, error) {
	var settings opengraph.SiteSettings
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return settings, err
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, err
		}
		switch key {
		case SettingTitle:
			settings.Title = value
		case SettingApplicationID:
			settings.ApplicationID = value
		case SettingAdminID:
			settings.AdminID = value
		}
	}
	return settings, rows.Err()
}

// SetSetting stores one site setting. An empty value deletes it.
func (s *Store) SetSetting(key, value string) error {
	if !validSetting(key) {
		return fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		_, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key)
		return err
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

func validSetting(key string) bool {
	for _, k := range SettingKeys {
		if k == key {
			return true
		}
	}
	return false
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
