package seo

import "html/template"

// OpenGraph holds the og:* metadata for a page.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

// Twitter holds the twitter:* card metadata.
type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is the per-page head metadata rendered into the shared layout.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Keywords    []string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []template.JS
}
