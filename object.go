package opengraph

import "time"

// Object is the capability a content object implements to be described with
// Open Graph metadata. Builders receive it as a parameter; type-specific
// builders additionally look for one of the narrower capabilities below.
type Object interface {
	Linker

	OGType() string
	OGTitle() string
	OGImage() []Media
	OGSiteName() string
	OGDescription() string
	OGDeterminer() Determiner
	// OGLocales returns the primary locale first, followed by alternates.
	OGLocales() []string
	OGAudio() []Media
	OGVideo() []Media
}

// Application is the site-wide configuration view builders read Facebook
// identifiers from.
type Application interface {
	OGSiteTitle() string
	OGApplicationID() string
	OGAdminID() string
}

// Website marks an object as an og:type=website.
type Website interface {
	Object
	OGWebsite()
}

// Article is implemented by objects of type article.
type Article interface {
	Object
	OGArticlePublishedTime() time.Time
	OGArticleModifiedTime() time.Time
	OGArticleExpirationTime() time.Time
	OGArticleAuthors() []Linker
	OGArticleSection() string
	OGArticleTags() []string
}

// Book is implemented by objects of type book.
type Book interface {
	Object
	OGBookAuthors() []Linker
	OGBookISBN() string
	OGBookReleaseDate() time.Time
	OGBookTags() []string
}

// Profile is implemented by objects of type profile. Profiles are also used
// as references from other objects (authors, creators, actors).
type Profile interface {
	Object
	OGProfileFirstName() string
	OGProfileLastName() string
	OGProfileUsername() string
	OGProfileGender() string
}

// Music is the common marker for all music.* objects.
type Music interface {
	Object
	OGMusic()
}

// MusicSong is implemented by objects of type music.song.
type MusicSong interface {
	Music
	// OGMusicDuration is the song length in seconds.
	OGMusicDuration() int
	OGMusicAlbums() []TrackRef
	OGMusicMusicians() []Linker
}

// MusicSongList is shared by albums and playlists.
type MusicSongList interface {
	Music
	OGMusicSongs() []TrackRef
}

// MusicAlbum is implemented by objects of type music.album.
type MusicAlbum interface {
	MusicSongList
	OGMusicMusicians() []Linker
	OGMusicReleaseDate() time.Time
}

// MusicPlaylist is implemented by objects of type music.playlist.
type MusicPlaylist interface {
	MusicSongList
	OGMusicCreators() []Linker
}

// MusicRadioStation is implemented by objects of type music.radio_station.
type MusicRadioStation interface {
	Music
	OGMusicCreators() []Linker
}

// Video is implemented by all video.* objects.
type Video interface {
	Object
	OGVideoActors() []ActorRef
	OGVideoDirectors() []Linker
	OGVideoWriters() []Linker
	// OGVideoDuration is the length in seconds.
	OGVideoDuration() int
	OGVideoReleaseDate() time.Time
	OGVideoTags() []string
}

// VideoEpisode is a video that belongs to a TV show.
type VideoEpisode interface {
	Video
	OGVideoSeries() Linker
}
