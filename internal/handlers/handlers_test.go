package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swissquality-storen/web/internal/catalog"
	"github.com/swissquality-storen/web/internal/content"
	"github.com/swissquality-storen/web/internal/site"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	services := []catalog.Service{
		{
			ID: "storen", Slug: "storen", Name: "Storen",
			ShortDescription: "Storen für Haus und Wohnung.",
			Description:      "Lamellenstoren in allen Grössen.",
			PriceRange:       "CHF 500 - 2500",
			Benefits:         []string{"Langlebig"},
			Features:         []string{"Motorisierung"},
			Applications:     []string{"Wohnbau"},
			Keywords:         []string{"storen"},
			FAQ:              []catalog.FAQItem{{Question: "Wie lange dauert die Montage?", Answer: "In der Regel einen halben Tag."}},
		},
		{
			ID: "markisen", Slug: "markisen", Name: "Markisen",
			ShortDescription: "Markisen für Terrasse und Balkon.",
			Description:      "Gelenkarm- und Kassettenmarkisen.",
			PriceRange:       "CHF 1500 - 6000",
		},
	}
	locations := []catalog.Location{
		{Slug: "dorf", Name: "Dorf", PLZ: "8000", Canton: "Zürich", Distance: 5},
		{Slug: "stadt", Name: "Stadt", PLZ: "8001", Canton: "Zürich", Distance: 12},
		{Slug: "feld", Name: "Feld", PLZ: "5000", Canton: "Aargau", Distance: 20},
	}
	cat, err := catalog.New(services, locations, "Dorf")
	require.NoError(t, err)
	return cat
}

func testContentStore(t *testing.T) *content.Store {
	t.Helper()
	dir := t.TempDir()
	page := "---\ntitle: Impressum\nsummary: Rechtliche Angaben.\neffective_date: 2024-01-01\n---\n\n## Verantwortlich\n\nSwiss Quality Storen GmbH\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "impressum.md"), []byte(page), 0o644))
	return content.NewStore(dir, time.Minute)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	renderer, err := NewRenderer("../../templates", false)
	require.NoError(t, err)

	srv, err := NewServer(ServerDeps{
		Catalog:  testCatalog(t),
		Content:  testContentStore(t),
		Renderer: renderer,
		Site:     site.Default,
		Company:  site.DefaultCompany,
	})
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPageRoutes(t *testing.T) {
	router := newTestServer(t).Routes()

	for _, path := range []string{
		"/", "/angebote", "/angebote/storen", "/regionen", "/regionen/dorf",
		"/showroom", "/ueber-uns", "/occasionen", "/kontakt", "/impressum",
	} {
		rec := get(t, router, path)
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html", "path %s", path)
	}
}

func TestCombinedPage(t *testing.T) {
	router := newTestServer(t).Routes()

	rec := get(t, router, "/storen-dorf")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Storen in Dorf")
	assert.Contains(t, body, "/markisen-dorf", "cross links to the other service in the same location")
	assert.Contains(t, body, "/storen-stadt", "cross links to nearby locations in the same canton")
}

func TestNotFound(t *testing.T) {
	router := newTestServer(t).Routes()

	for _, path := range []string{
		"/storen",        // service slug without location
		"/storen-berg",   // unknown location remainder
		"/angebote/nope", // unknown service
		"/regionen/nope", // unknown location
		"/does-not-exist",
	} {
		rec := get(t, router, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s", path)
		assert.Contains(t, rec.Body.String(), "Seite nicht gefunden", "path %s", path)
	}
}

func TestServicePageMetadata(t *testing.T) {
	router := newTestServer(t).Routes()

	rec := get(t, router, "/angebote/storen")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<link rel="canonical" href="https://www.swissquality-storen.ch/angebote/storen">`)
	assert.Contains(t, body, `"@type":"FAQPage"`)
	assert.Contains(t, body, `"@type":"BreadcrumbList"`)
}

func TestSitemapRoute(t *testing.T) {
	router := newTestServer(t).Routes()

	rec := get(t, router, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")
	body := rec.Body.String()
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, "https://www.swissquality-storen.ch/storen-dorf")
	assert.Contains(t, body, "https://www.swissquality-storen.ch/angebote/markisen")
	assert.Contains(t, body, "https://www.swissquality-storen.ch/regionen/feld")
}

func TestRobotsRoute(t *testing.T) {
	router := newTestServer(t).Routes()

	rec := get(t, router, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://www.swissquality-storen.ch/sitemap.xml")
	assert.Contains(t, rec.Body.String(), "Disallow: /api/")
}

func TestHealthz(t *testing.T) {
	router := newTestServer(t).Routes()

	rec := get(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestLegalPage(t *testing.T) {
	router := newTestServer(t).Routes()

	rec := get(t, router, "/impressum")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Impressum</h1>")
	assert.Contains(t, body, "Gültig ab 01.01.2024")

	rec = get(t, router, "/datenschutz")
	assert.Equal(t, http.StatusNotFound, rec.Code, "missing markdown file renders the 404 page")
}

func TestFormEndpointsAbsentWithoutSubmissionService(t *testing.T) {
	router := newTestServer(t).Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
