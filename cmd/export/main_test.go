package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swissquality-storen/web/internal/catalog"
)

func TestTargetFile(t *testing.T) {
	assert.Equal(t, filepath.Join("dist", "index.html"), targetFile("dist", "/"))
	assert.Equal(t, filepath.Join("dist", "kontakt", "index.html"), targetFile("dist", "/kontakt"))
	assert.Equal(t, filepath.Join("dist", "angebote", "storen", "index.html"), targetFile("dist", "/angebote/storen"))
	assert.Equal(t, filepath.Join("dist", "sitemap.xml"), targetFile("dist", "/sitemap.xml"))
	assert.Equal(t, filepath.Join("dist", "robots.txt"), targetFile("dist", "/robots.txt"))
}

func TestEnumerateCoversCrossProduct(t *testing.T) {
	cat, err := catalog.New(
		[]catalog.Service{
			{ID: "a", Slug: "storen", Name: "Storen"},
			{ID: "b", Slug: "markisen", Name: "Markisen"},
		},
		[]catalog.Location{
			{Slug: "dorf", Name: "Dorf", Canton: "Zürich"},
			{Slug: "stadt", Name: "Stadt", Canton: "Zürich"},
			{Slug: "feld", Name: "Feld", Canton: "Aargau"},
		},
		"Dorf",
	)
	require.NoError(t, err)

	paths := enumerate(cat)

	// 12 fixed paths + 2 services + 3 regions + 6 combinations.
	assert.Len(t, paths, 12+2+3+6)
	assert.Contains(t, paths, "/angebote/markisen")
	assert.Contains(t, paths, "/regionen/feld")
	assert.Contains(t, paths, "/markisen-stadt")

	seen := map[string]bool{}
	for _, p := range paths {
		assert.False(t, seen[p], "duplicate path %s", p)
		seen[p] = true
	}
}
