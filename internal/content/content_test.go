package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, slug, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".md"), []byte(body), 0o644))
}

func TestGetRendersFrontMatterAndMarkdown(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "impressum", `---
title: Impressum
summary: Rechtliche Angaben
effective_date: 2024-01-01
version: "1.2"
---

## Kontakt

Swiss Quality Storen GmbH
`)

	s := NewStore(dir, time.Minute)
	page, err := s.Get("impressum")
	require.NoError(t, err)

	assert.Equal(t, "Impressum", page.Title)
	assert.Equal(t, "Rechtliche Angaben", page.Summary)
	assert.Equal(t, "1.2", page.Version)
	assert.Equal(t, 2024, page.EffectiveDate.Year())
	assert.Contains(t, string(page.Body), "<h2")
	assert.Contains(t, string(page.Body), "Kontakt")
}

func TestGetStripsByteOrderMark(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "impressum", "\ufeff---\ntitle: Impressum\n---\nInhalt\n")

	s := NewStore(dir, time.Minute)
	page, err := s.Get("impressum")
	require.NoError(t, err)

	assert.Equal(t, "Impressum", page.Title)
	assert.Contains(t, string(page.Body), "Inhalt")
}

func TestGetSanitizesHTML(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "agb", "Hallo <script>alert(1)</script> Welt\n")

	s := NewStore(dir, time.Minute)
	page, err := s.Get("agb")
	require.NoError(t, err)

	assert.NotContains(t, string(page.Body), "<script>")
	assert.Contains(t, string(page.Body), "Hallo")
}

func TestGetFallsBackToPrettifiedSlugTitle(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "ueber-uns", "Inhalt ohne Front Matter\n")

	s := NewStore(dir, time.Minute)
	page, err := s.Get("ueber-uns")
	require.NoError(t, err)
	assert.Equal(t, "Ueber Uns", page.Title)
}

func TestGetNotFound(t *testing.T) {
	s := NewStore(t.TempDir(), time.Minute)

	_, err := s.Get("fehlt")
	assert.ErrorIs(t, err, ErrNotFound)

	for _, slug := range []string{"", "../etc/passwd", "a/b"} {
		_, err := s.Get(slug)
		assert.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}
}

func TestGetUsesCache(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "datenschutz", "---\ntitle: Datenschutz\n---\nAlt\n")

	s := NewStore(dir, time.Hour)
	first, err := s.Get("datenschutz")
	require.NoError(t, err)
	require.True(t, strings.Contains(string(first.Body), "Alt"))

	// Rewrite on disk; the cached render must still be served.
	writePage(t, dir, "datenschutz", "---\ntitle: Datenschutz\n---\nNeu\n")
	second, err := s.Get("datenschutz")
	require.NoError(t, err)
	assert.Contains(t, string(second.Body), "Alt")
}
