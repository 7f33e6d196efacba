package opengraph

// MusicBuilder holds the base behavior shared by the music.* builders.
type MusicBuilder struct {
	BaseBuilder
}

// MusicSongBuilder builds og:type=music.song.
type MusicSongBuilder struct {
	MusicBuilder
}

// BuildTags implements Builder.
func (b MusicSongBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = b.MusicBuilder.BuildTags(tags, obj, app)
	song, ok := as[MusicSong](obj)
	if !ok {
		return tags
	}
	tags = appendTag(tags, "music:duration", itoa(song.OGMusicDuration()))
	tags = appendTrackRefs(tags, "music:album", song.OGMusicAlbums())
	tags = appendRelatedProfileTags(tags, "music:musician", song.OGMusicMusicians())
	return tags
}

// MusicAlbumBuilder builds og:type=music.album.
type MusicAlbumBuilder struct {
	MusicBuilder
}

// BuildTags implements Builder.
func (b MusicAlbumBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = b.MusicBuilder.BuildTags(tags, obj, app)
	album, ok := as[MusicAlbum](obj)
	if !ok {
		return tags
	}
	tags = appendTrackRefs(tags, "music:song", album.OGMusicSongs())
	tags = appendRelatedProfileTags(tags, "music:musician", album.OGMusicMusicians())
	tags = appendDate(tags, "music:release_date", album.OGMusicReleaseDate())
	return tags
}

// MusicPlaylistBuilder builds og:type=music.playlist.
type MusicPlaylistBuilder struct {
	MusicBuilder
}

// BuildTags implements Builder.
func (b MusicPlaylistBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = b.MusicBuilder.BuildTags(tags, obj, app)
	playlist, ok := as[MusicPlaylist](obj)
	if !ok {
		return tags
	}
	tags = appendTrackRefs(tags, "music:song", playlist.OGMusicSongs())
	tags = appendRelatedProfileTags(tags, "music:creator", playlist.OGMusicCreators())
	return tags
}

// MusicRadioStationBuilder builds og:type=music.radio_station.
type MusicRadioStationBuilder struct {
	MusicBuilder
}

// BuildTags implements Builder.
func (b MusicRadioStationBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = b.MusicBuilder.BuildTags(tags, obj, app)
	if station, ok := as[MusicRadioStation](obj); ok {
		tags = appendRelatedProfileTags(tags, "music:creator", station.OGMusicCreators())
	}
	return tags
}
