// Package handlers wires the HTTP routes of the website: the rendered
// pages, the sitemap, and the form submission API.
package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/swissquality-storen/web/internal/catalog"
	"github.com/swissquality-storen/web/internal/content"
	"github.com/swissquality-storen/web/internal/nav"
	"github.com/swissquality-storen/web/internal/platform/metrics"
	"github.com/swissquality-storen/web/internal/platform/observability"
	"github.com/swissquality-storen/web/internal/site"
	"github.com/swissquality-storen/web/internal/submissions"
)

var (
	errCatalogRequired  = errors.New("handlers: catalog is required")
	errRendererRequired = errors.New("handlers: renderer is required")
	errContentRequired  = errors.New("handlers: content store is required")
)

// ServerDeps wires the dependencies of the web server.
type ServerDeps struct {
	Catalog     *catalog.Catalog
	Content     *content.Store
	Renderer    *Renderer
	Submissions *submissions.Service
	Site        site.Site
	Company     site.Company
	Logger      *zap.Logger
	Metrics     *metrics.Recorder
	PublicDir   string
}

// Server holds the request handlers for all routes.
type Server struct {
	catalog     *catalog.Catalog
	content     *content.Store
	renderer    *Renderer
	submissions *submissions.Service
	site        site.Site
	company     site.Company
	logger      *zap.Logger
	metrics     *metrics.Recorder
	publicDir   string
	now         func() time.Time
}

// NewServer constructs a Server enforcing dependency validation. The
// submission service is optional; without it the form endpoints are not
// registered (used by the static export).
func NewServer(deps ServerDeps) (*Server, error) {
	if deps.Catalog == nil {
		return nil, errCatalogRequired
	}
	if deps.Renderer == nil {
		return nil, errRendererRequired
	}
	if deps.Content == nil {
		return nil, errContentRequired
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		catalog:     deps.Catalog,
		content:     deps.Content,
		renderer:    deps.Renderer,
		submissions: deps.Submissions,
		site:        deps.Site,
		company:     deps.Company,
		logger:      logger,
		metrics:     deps.Metrics,
		publicDir:   deps.PublicDir,
		now:         time.Now,
	}, nil
}

// Routes assembles the chi router with the full middleware chain.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// Behind the load balancer RealIP resolves the client from X-Forwarded-For.
	r.Use(middleware.RealIP)
	r.Use(observability.InjectLoggerMiddleware(s.logger))
	r.Use(observability.RequestLoggerMiddleware())
	r.Use(observability.RecoveryMiddleware(s.logger))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware())
	}
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	if s.publicDir != "" {
		assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(s.publicDir, "assets"))))
		r.Handle("/assets/*", assets)
	}

	r.Get("/", s.Home)
	r.Get("/angebote", s.ServicesIndex)
	r.Get("/angebote/{slug}", s.ServiceDetail)
	r.Get("/regionen", s.RegionsIndex)
	r.Get("/regionen/{slug}", s.RegionDetail)
	r.Get("/showroom", s.Showroom)
	r.Get("/ueber-uns", s.About)
	r.Get("/occasionen", s.Occasions)
	r.Get("/kontakt", s.Contact)
	r.Get("/impressum", s.LegalPage("impressum"))
	r.Get("/datenschutz", s.LegalPage("datenschutz"))
	r.Get("/agb", s.LegalPage("agb"))
	r.Get("/sitemap.xml", s.Sitemap)
	r.Get("/robots.txt", s.Robots)

	if s.submissions != nil {
		r.Post("/api/contact", s.SubmitContact)
		r.Post("/api/newsletter", s.SubmitNewsletter)
	}

	// Combined service-location pages live at the root level; anything the
	// resolver cannot place is the site 404.
	r.Get("/{combined}", s.Combined)
	r.NotFound(s.NotFound)

	return r
}

// page assembles the layout fields every rendered page shares.
func (s *Server) page(path, leafLabel string) PageData {
	return PageData{
		Path:        path,
		Nav:         nav.Build(path),
		FooterNav:   nav.BuildFooter(path),
		Breadcrumbs: nav.Breadcrumbs(path, leafLabel),
		Site:        s.site,
		Company:     s.company,
		Year:        s.now().Year(),
	}
}
