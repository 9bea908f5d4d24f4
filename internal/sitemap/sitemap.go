// Package sitemap derives the search-engine discovery document from the
// catalog. The combination entries are built with the exact slug construction
// the path enumerator uses, so every advertised URL is guaranteed to resolve.
package sitemap

import (
	"encoding/xml"
	"strconv"
	"time"

	"github.com/swissquality-storen/web/internal/catalog"
)

// ChangeFreq is the sitemap change-frequency hint.
type ChangeFreq string

const (
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
)

// Entry is one sitemap URL with its static metadata.
type Entry struct {
	URL          string
	LastModified time.Time
	ChangeFreq   ChangeFreq
	Priority     float64
}

// staticRoute carries the hand-assigned metadata for a fixed page.
type staticRoute struct {
	path       string
	changeFreq ChangeFreq
	priority   float64
}

var staticRoutes = []staticRoute{
	{"/", Weekly, 1.0},
	{"/angebote", Weekly, 0.9},
	{"/showroom", Monthly, 0.9},
	{"/occasionen", Weekly, 0.8},
	{"/regionen", Weekly, 0.8},
	{"/kontakt", Monthly, 0.8},
	{"/ueber-uns", Monthly, 0.7},
	{"/impressum", Yearly, 0.3},
	{"/datenschutz", Yearly, 0.3},
	{"/agb", Yearly, 0.3},
}

// Generate returns all sitemap entries: the fixed static routes, one entry
// per service, one per location, and one per service×location combination.
func Generate(cat *catalog.Catalog, baseURL string, now time.Time) []Entry {
	entries := make([]Entry, 0, len(staticRoutes)+len(cat.Services())+len(cat.Locations())+len(cat.Services())*len(cat.Locations()))

	for _, r := range staticRoutes {
		url := baseURL + r.path
		if r.path == "/" {
			url = baseURL
		}
		entries = append(entries, Entry{URL: url, LastModified: now, ChangeFreq: r.changeFreq, Priority: r.priority})
	}

	for _, slug := range cat.ServiceSlugs() {
		entries = append(entries, Entry{
			URL:          baseURL + "/angebote/" + slug,
			LastModified: now,
			ChangeFreq:   Monthly,
			Priority:     0.8,
		})
	}

	for _, slug := range cat.LocationSlugs() {
		entries = append(entries, Entry{
			URL:          baseURL + "/regionen/" + slug,
			LastModified: now,
			ChangeFreq:   Monthly,
			Priority:     0.7,
		})
	}

	for _, token := range cat.CombinedSlugs() {
		entries = append(entries, Entry{
			URL:          baseURL + "/" + token,
			LastModified: now,
			ChangeFreq:   Monthly,
			Priority:     0.75,
		})
	}

	return entries
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

// MarshalXML serializes the entries into a sitemap.org urlset document,
// including the XML header.
func MarshalXML(entries []Entry) ([]byte, error) {
	set := xmlURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]xmlURL, 0, len(entries)),
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, xmlURL{
			Loc:        e.URL,
			LastMod:    e.LastModified.UTC().Format("2006-01-02"),
			ChangeFreq: string(e.ChangeFreq),
			Priority:   formatPriority(e.Priority),
		})
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

func formatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
