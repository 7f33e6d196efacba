package opengraph

// BookBuilder builds og:type=book.
type BookBuilder struct {
	BaseBuilder
}

// BuildTags implements Builder.
func (b BookBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = b.BaseBuilder.BuildTags(tags, obj, app)
	book, ok := as[Book](obj)
	if !ok {
		return tags
	}
	tags = appendRelatedProfileTags(tags, "book:author", book.OGBookAuthors())
	tags = appendTag(tags, "book:isbn", book.OGBookISBN())
	tags = appendDate(tags, "book:release_date", book.OGBookReleaseDate())
	tags = appendTags(tags, "book:tag", book.OGBookTags())
	return tags
}
