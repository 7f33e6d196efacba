package opengraph

// ArticleBuilder builds og:type=article.
type ArticleBuilder struct {
	BaseBuilder
}

// BuildTags implements Builder.
func (b ArticleBuilder) BuildTags(tags []Tag, obj Object, app Application) []Tag {
	tags = b.BaseBuilder.BuildTags(tags, obj, app)
	article, ok := as[Article](obj)
	if !ok {
		return tags
	}
	tags = appendTime(tags, "article:published_time", article.OGArticlePublishedTime())
	tags = appendTime(tags, "article:modified_time", article.OGArticleModifiedTime())
	tags = appendTime(tags, "article:expiration_time", article.OGArticleExpirationTime())
	tags = appendRelatedProfileTags(tags, "article:author", article.OGArticleAuthors())
	tags = appendTag(tags, "article:section", article.OGArticleSection())
	tags = appendTags(tags, "article:tag", article.OGArticleTags())
	return tags
}
