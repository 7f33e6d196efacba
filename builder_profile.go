package opengraph

import "strings"

// ProfileBuilder builds og:type=profile.
type ProfileBuilder struct {
	BaseBuilder
}

// BuildTags implements Builder.
func (b ProfileBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = b.BaseBuilder.BuildTags(tags, obj, app)
	profile, ok := as[Profile](obj)
	if !ok {
		return tags
	}
	tags = appendTag(tags, "profile:first_name", profile.OGProfileFirstName())
	tags = appendTag(tags, "profile:last_name", profile.OGProfileLastName())
	tags = appendTag(tags, "profile:username", profile.OGProfileUsername())
	// profile:gender only allows male or female.
	switch g := strings.ToLower(strings.TrimSpace(profile.OGProfileGender())); g {
	case GenderMale, GenderFemale:
		tags = appendTag(tags, "profile:gender", g)
	}
	return tags
}
