package sitemap

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swissquality-storen/web/internal/catalog"
)

const baseURL = "https://www.example.ch"

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		[]catalog.Service{
			{ID: "storen", Slug: "storen", Name: "Storen"},
			{ID: "markisen", Slug: "markisen", Name: "Markisen"},
		},
		[]catalog.Location{
			{Slug: "dorf", Name: "Dorf", PLZ: "8000", Canton: "Zürich", Distance: 1},
			{Slug: "stadt", Name: "Stadt", PLZ: "8001", Canton: "Zürich", Distance: 2},
			{Slug: "feld", Name: "Feld", PLZ: "5000", Canton: "Aargau", Distance: 3},
		},
		"Bülach",
	)
	require.NoError(t, err)
	return c
}

func TestGenerateCardinality(t *testing.T) {
	c := testCatalog(t)
	entries := Generate(c, baseURL, time.Now())

	// 10 static routes + 2 services + 3 locations + 6 combinations.
	assert.Len(t, entries, 10+2+3+6)
}

func TestGenerateStaticRouteMetadata(t *testing.T) {
	c := testCatalog(t)
	entries := Generate(c, baseURL, time.Now())

	byURL := map[string]Entry{}
	for _, e := range entries {
		byURL[e.URL] = e
	}

	home, ok := byURL[baseURL]
	require.True(t, ok, "home entry missing")
	assert.Equal(t, Weekly, home.ChangeFreq)
	assert.Equal(t, 1.0, home.Priority)

	agb, ok := byURL[baseURL+"/agb"]
	require.True(t, ok, "agb entry missing")
	assert.Equal(t, Yearly, agb.ChangeFreq)
	assert.Equal(t, 0.3, agb.Priority)

	svc, ok := byURL[baseURL+"/angebote/storen"]
	require.True(t, ok, "service entry missing")
	assert.Equal(t, Monthly, svc.ChangeFreq)
	assert.Equal(t, 0.8, svc.Priority)

	region, ok := byURL[baseURL+"/regionen/feld"]
	require.True(t, ok, "region entry missing")
	assert.Equal(t, 0.7, region.Priority)

	combo, ok := byURL[baseURL+"/storen-dorf"]
	require.True(t, ok, "combination entry missing")
	assert.Equal(t, Monthly, combo.ChangeFreq)
	assert.Equal(t, 0.75, combo.Priority)
}

// The combination entries must match the path enumerator one to one:
// same cardinality, same slug construction.
func TestGenerateEnumeratorParity(t *testing.T) {
	c := testCatalog(t)
	entries := Generate(c, baseURL, time.Now())

	enumerated := map[string]struct{}{}
	for _, token := range c.CombinedSlugs() {
		enumerated[token] = struct{}{}
	}

	known := map[string]struct{}{}
	for _, slug := range c.ServiceSlugs() {
		known["/angebote/"+slug] = struct{}{}
	}
	for _, slug := range c.LocationSlugs() {
		known["/regionen/"+slug] = struct{}{}
	}

	var comboCount int
	for _, e := range entries {
		path := strings.TrimPrefix(e.URL, baseURL)
		if path == "" || isStaticPath(path) {
			continue
		}
		if _, ok := known[path]; ok {
			continue
		}
		token := strings.TrimPrefix(path, "/")
		_, present := enumerated[token]
		assert.True(t, present, "sitemap advertises %q which the enumerator does not produce", token)
		delete(enumerated, token)
		comboCount++

		_, _, resolvable := c.ResolveCombined(token)
		assert.True(t, resolvable, "sitemap advertises %q which does not resolve", token)
	}

	assert.Empty(t, enumerated, "enumerator produced tokens missing from the sitemap")
	assert.Equal(t, len(c.Services())*len(c.Locations()), comboCount)
}

func isStaticPath(path string) bool {
	for _, r := range staticRoutes {
		if r.path == path {
			return true
		}
	}
	return false
}

func TestMarshalXML(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	out, err := MarshalXML([]Entry{
		{URL: baseURL + "/storen-dorf", LastModified: now, ChangeFreq: Monthly, Priority: 0.75},
	})
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, xmlHeaderPrefix), "missing xml header")
	assert.Contains(t, s, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, s, "<loc>https://www.example.ch/storen-dorf</loc>")
	assert.Contains(t, s, "<lastmod>2026-08-31</lastmod>")
	assert.Contains(t, s, "<changefreq>monthly</changefreq>")
	assert.Contains(t, s, "<priority>0.75</priority>")
}

const xmlHeaderPrefix = `<?xml version="1.0" encoding="UTF-8"?>`
