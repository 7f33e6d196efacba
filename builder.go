package opengraph

import (
	"strings"
	"time"
)

// Builder appends the tags for one Open Graph type to tags and returns the
// extended slice.
type Builder interface {
	BuildTags(tags []Tag, obj Object, app Application) []Tag
}

// BaseBuilder emits the properties every object carries: the required
// og:title, og:type, og:image and og:url, the optional og:* properties, and
// the Facebook identifiers. Every other builder delegates to it first.
type BaseBuilder struct{}

// BuildTags implements Builder.
func (BaseBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = appendTag(tags, "og:title", obj.OGTitle())
	tags = appendTag(tags, "og:type", obj.OGType())
	tags = appendMedia(tags, "og:image", obj.OGImage())
	tags = appendTag(tags, "og:url", obj.AbsoluteLink())

	tags = appendTag(tags, "og:site_name", obj.OGSiteName())
	tags = appendTag(tags, "og:description", obj.OGDescription())
	tags = appendTag(tags, "og:determiner", string(obj.OGDeterminer()))
	tags = appendLocales(tags, obj.OGLocales())
	tags = appendMedia(tags, "og:audio", obj.OGAudio())
	tags = appendMedia(tags, "og:video", obj.OGVideo())

	if app != nil {
		tags = appendTag(tags, "fb:admins", app.OGAdminID())
		tags = appendTag(tags, "fb:app_id", app.OGApplicationID())
	}
	return tags
}

// WebsiteBuilder builds og:type=website. A website has no properties
// beyond the base set.
type WebsiteBuilder struct {
	BaseBuilder
}

func appendTag(tags []Tag, property, content string) []Tag {
	content = strings.TrimSpace(content)
	if content == "" {
		return tags
	}
	return append(tags, Tag{Property: property, Content: content})
}

func appendTags(tags []Tag, property string, contents []string) []Tag {
	for _, c := range contents {
		tags = appendTag(tags, property, c)
	}
	return tags
}

// appendMedia emits the structured form of an image, audio or video
// property. Entries without a URL are skipped along with their metadata.
func appendMedia(tags []Tag, property string, media []Media) []Tag {
	for _, m := range media {
		if strings.TrimSpace(m.URL) == "" {
			continue
		}
		tags = appendTag(tags, property, m.URL)
		tags = appendTag(tags, property+":secure_url", m.SecureURL)
		tags = appendTag(tags, property+":type", m.Type)
		tags = appendTag(tags, property+":width", itoa(m.Width))
		tags = appendTag(tags, property+":height", itoa(m.Height))
	}
	return tags
}

func appendLocales(tags []Tag, locales []string) []Tag {
	for i, l := range locales {
		if i == 0 {
			tags = appendTag(tags, "og:locale", l)
			continue
		}
		tags = appendTag(tags, "og:locale:alternate", l)
	}
	return tags
}

// appendTime emits an ISO 8601 datetime. Zero times are omitted.
func appendTime(tags []Tag, property string, t time.Time) []Tag {
	if t.IsZero() {
		return tags
	}
	return appendTag(tags, property, t.Format(time.RFC3339))
}

// appendDate emits an ISO 8601 date, or a full datetime when t carries a
// time of day.
func appendDate(tags []Tag, property string, t time.Time) []Tag {
	if t.IsZero() {
		return tags
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return appendTag(tags, property, t.Format(time.DateOnly))
	}
	return appendTag(tags, property, t.Format(time.RFC3339))
}

// appendRelatedProfileTags emits one tag per referenced profile or URL, in
// the order given.
func appendRelatedProfileTags(tags []Tag, property string, refs []Linker) []Tag {
	for _, r := range refs {
		if r == nil {
			continue
		}
		tags = appendTag(tags, property, r.AbsoluteLink())
	}
	return tags
}

func appendTrackRefs(tags []Tag, property string, refs []TrackRef) []Tag {
	for _, r := range refs {
		if r.Ref == nil || r.Ref.AbsoluteLink() == "" {
			continue
		}
		tags = appendTag(tags, property, r.Ref.AbsoluteLink())
		tags = appendTag(tags, property+":disc", itoa(r.Disc))
		tags = appendTag(tags, property+":track", itoa(r.Track))
	}
	return tags
}
