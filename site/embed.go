package site

import "embed"

// EmbeddedAssets contains the assets shipped with the site, including the
// default Open Graph image at opengraph/images/logo.gif.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
