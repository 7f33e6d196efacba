package opengraph

import "strconv"

// Open Graph type identifiers understood by the built-in registry.
const (
	TypeWebsite           = "website"
	TypeArticle           = "article"
	TypeBook              = "book"
	TypeProfile           = "profile"
	TypeMusicSong         = "music.song"
	TypeMusicAlbum        = "music.album"
	TypeMusicPlaylist     = "music.playlist"
	TypeMusicRadioStation = "music.radio_station"
	TypeVideoMovie        = "video.movie"
	TypeVideoEpisode      = "video.episode"
	TypeVideoTVShow       = "video.tv_show"
	TypeVideoOther        = "video.other"

	// DefaultType is used for objects that do not declare a type.
	DefaultType = TypeWebsite
)

// Determiner is the word that appears before an object's title in a sentence.
type Determiner string

const (
	DeterminerBlank Determiner = ""
	DeterminerA     Determiner = "a"
	DeterminerAn    Determiner = "an"
	DeterminerThe   Determiner = "the"
	DeterminerAuto  Determiner = "auto"

	// DefaultDeterminer is what every adapted object reports. A blank
	// determiner is omitted from the output.
	DefaultDeterminer = DeterminerBlank
)

// Gender values accepted for profile:gender.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Tag is a single Open Graph property/content pair, serialized as
// <meta property="..." content="...">.
type Tag struct {
	Property string `json:"property"`
	Content  string `json:"content"`
}

// Media describes an og:image, og:audio or og:video structured property.
// Only URL is required; zero fields are omitted.
type Media struct {
	URL       string `json:"url" yaml:"url"`
	SecureURL string `json:"secure_url,omitempty" yaml:"secure_url"`
	Type      string `json:"type,omitempty" yaml:"type"`
	Width     int    `json:"width,omitempty" yaml:"width"`
	Height    int    `json:"height,omitempty" yaml:"height"`
}

// Linker is anything that can be referenced by an absolute URL, such as a
// profile object or a plain URL.
type Linker interface {
	AbsoluteLink() string
}

// URL is a Linker for references that are already absolute URLs.
type URL string

// AbsoluteLink returns u unchanged.
func (u URL) AbsoluteLink() string { return string(u) }

// URLs converts a list of strings into Linkers.
func URLs(vals ...string) []Linker {
	out := make([]Linker, 0, len(vals))
	for _, v := range vals {
		out = append(out, URL(v))
	}
	return out
}

// TrackRef references a song or album together with its position.
// Disc and Track are omitted when zero.
type TrackRef struct {
	Ref   Linker
	Disc  int
	Track int
}

// ActorRef references a video actor and the role they played.
type ActorRef struct {
	Ref  Linker
	Role string
}

// Tags is an ordered tag list with lookup helpers.
type Tags []Tag

// Get returns the content of the first tag with the given property.
func (ts Tags) Get(property string) (string, bool) {
	for _, t := range ts {
		if t.Property == property {
			return t.Content, true
		}
	}
	return "", false
}

// All returns the contents of every tag with the given property, in order.
func (ts Tags) All(property string) []string {
	var out []string
	for _, t := range ts {
		if t.Property == property {
			out = append(out, t.Content)
		}
	}
	return out
}

func itoa(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
