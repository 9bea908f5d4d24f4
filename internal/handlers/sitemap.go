package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/swissquality-storen/web/internal/platform/observability"
	"github.com/swissquality-storen/web/internal/sitemap"
)

// Sitemap serves the XML sitemap covering every static, service, region, and
// combined page.
func (s *Server) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries := sitemap.Generate(s.catalog, s.site.BaseURL, s.now())
	body, err := sitemap.MarshalXML(entries)
	if err != nil {
		observability.FromContext(r.Context()).Error("sitemap marshal failed", zap.Error(err))
		http.Error(w, "Interner Serverfehler", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Robots serves robots.txt pointing crawlers at the sitemap.
func (s *Server) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", s.site.BaseURL)
}
