package opengraph

// VideoBuilder builds video.movie, video.tv_show and video.other.
type VideoBuilder struct {
	BaseBuilder
}

// BuildTags implements Builder.
func (b VideoBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = b.BaseBuilder.BuildTags(tags, obj, app)
	video, ok := as[Video](obj)
	if !ok {
		return tags
	}
	for _, actor := range video.OGVideoActors() {
		if actor.Ref == nil || actor.Ref.AbsoluteLink() == "" {
			continue
		}
		tags = appendTag(tags, "video:actor", actor.Ref.AbsoluteLink())
		tags = appendTag(tags, "video:actor:role", actor.Role)
	}
	tags = appendRelatedProfileTags(tags, "video:director", video.OGVideoDirectors())
	tags = appendRelatedProfileTags(tags, "video:writer", video.OGVideoWriters())
	tags = appendTag(tags, "video:duration", itoa(video.OGVideoDuration()))
	tags = appendDate(tags, "video:release_date", video.OGVideoReleaseDate())
	tags = appendTags(tags, "video:tag", video.OGVideoTags())
	return tags
}

// VideoEpisodeBuilder builds video.episode, which adds the series it
// belongs to.
type VideoEpisodeBuilder struct {
	VideoBuilder
}

// BuildTags implements Builder.
func (b VideoEpisodeBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = b.VideoBuilder.BuildTags(tags, obj, app)
	if episode, ok := as[VideoEpisode](obj); ok && episode.OGVideoSeries() != nil {
		tags = appendTag(tags, "video:series", episode.OGVideoSeries().AbsoluteLink())
	}
	return tags
}
