package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/swissquality-storen/web/internal/content"
	"github.com/swissquality-storen/web/internal/nav"
	"github.com/swissquality-storen/web/internal/platform/observability"
	"github.com/swissquality-storen/web/internal/seo"
)

const nearbyLimit = 6

// Home renders the landing page.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	data := s.page("/", "")
	data.Meta = s.meta(
		"Storen, Rollladen & Sonnenschutz in Bülach und Region Zürich",
		s.site.Description,
		"/",
	)
	data.Meta.JSONLD = append(data.Meta.JSONLD, seo.JSON(seo.LocalBusiness(s.site, s.company)))
	data.Home = &HomeData{
		Services:  s.catalog.Services(),
		Locations: s.catalog.Nearest(8),
		Highlights: []string{
			"Schweizer Qualitätsprodukte",
			"Professionelle Montage durch eigene Monteure",
			"Kostenlose Beratung und Offerte",
			"Schneller Reparaturservice in der ganzen Region",
		},
	}
	s.renderer.Render(w, r, http.StatusOK, "home", data)
}

// ServicesIndex renders the service overview.
func (s *Server) ServicesIndex(w http.ResponseWriter, r *http.Request) {
	data := s.page("/angebote", "")
	data.Meta = s.meta(
		"Unsere Angebote – Storen, Rollladen, Markisen & mehr",
		"Alle Dienstleistungen von Swiss Quality Storen im Überblick: Lamellenstoren, Rollladen, Markisen, Sonnenschirme und Insektenschutzgitter.",
		"/angebote",
	)
	data.Services = &ServicesData{Services: s.catalog.Services()}
	s.renderer.Render(w, r, http.StatusOK, "services", data)
}

// ServiceDetail renders one service page.
func (s *Server) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	svc, ok := s.catalog.ServiceBySlug(slug)
	if !ok {
		s.NotFound(w, r)
		return
	}

	path := "/angebote/" + svc.Slug
	data := s.page(path, svc.Name)
	data.Meta = s.meta(
		fmt.Sprintf("%s – Beratung, Verkauf & Montage", svc.Name),
		svc.ShortDescription,
		path,
	)
	data.Meta.Keywords = svc.Keywords
	pageURL := s.site.BaseURL + path
	data.Meta.JSONLD = append(data.Meta.JSONLD,
		seo.JSON(seo.Service(svc, pageURL, s.company.Name, "Region Zürich")),
		seo.JSON(seo.BreadcrumbList([]seo.BreadcrumbItem{
			{Name: "Home", Item: s.site.BaseURL + "/"},
			{Name: "Angebote", Item: s.site.BaseURL + "/angebote"},
			{Name: svc.Name, Item: pageURL},
		})),
	)
	if len(svc.FAQ) > 0 {
		data.Meta.JSONLD = append(data.Meta.JSONLD, seo.JSON(seo.FAQPage(svc.FAQ)))
	}
	data.Service = &ServiceData{
		Service:       svc,
		OtherServices: s.catalog.OtherServices(svc.ID),
		Locations:     s.catalog.Nearest(nearbyLimit),
	}
	s.renderer.Render(w, r, http.StatusOK, "service", data)
}

// RegionsIndex renders the region overview grouped by canton.
func (s *Server) RegionsIndex(w http.ResponseWriter, r *http.Request) {
	data := s.page("/regionen", "")
	data.Meta = s.meta(
		"Unsere Einsatzregionen – Storen-Service in Ihrer Nähe",
		fmt.Sprintf("Swiss Quality Storen ist in %d Gemeinden rund um %s für Sie im Einsatz.", len(s.catalog.Locations()), s.catalog.ServiceCenter()),
		"/regionen",
	)
	groups := make([]CantonGroup, 0, 4)
	for _, canton := range s.catalog.Cantons() {
		groups = append(groups, CantonGroup{
			Canton:    canton,
			Locations: s.catalog.LocationsInCanton(canton, "", 0),
		})
	}
	data.Regions = &RegionsData{Cantons: groups}
	s.renderer.Render(w, r, http.StatusOK, "regions", data)
}

// RegionDetail renders one region page.
func (s *Server) RegionDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	loc, ok := s.catalog.LocationBySlug(slug)
	if !ok {
		s.NotFound(w, r)
		return
	}

	path := "/regionen/" + loc.Slug
	data := s.page(path, loc.Name)
	data.Meta = s.meta(
		fmt.Sprintf("Storen-Service in %s – Montage & Reparatur vor Ort", loc.Name),
		fmt.Sprintf("Lamellenstoren, Rollladen und Sonnenschutz in %s (%s): Beratung, Montage und Reparatur durch Swiss Quality Storen.", loc.Name, loc.Canton),
		path,
	)
	data.Region = &RegionData{
		Location: loc,
		Services: s.catalog.Services(),
		Nearby:   s.catalog.LocationsInCanton(loc.Canton, loc.Slug, nearbyLimit),
	}
	s.renderer.Render(w, r, http.StatusOK, "region", data)
}

// Combined renders a service×location landing page, resolving the root-level
// path segment against the catalogs.
func (s *Server) Combined(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "combined")
	svc, loc, ok := s.catalog.ResolveCombined(slug)
	if !ok {
		s.NotFound(w, r)
		return
	}

	path := "/" + svc.Slug + "-" + loc.Slug
	data := s.page(path, fmt.Sprintf("%s in %s", svc.Name, loc.Name))
	data.Meta = s.meta(
		fmt.Sprintf("%s in %s – Beratung, Montage & Reparatur", svc.Name, loc.Name),
		fmt.Sprintf("%s in %s (%s): Swiss Quality Storen berät, montiert und repariert bei Ihnen vor Ort. %s", svc.Name, loc.Name, loc.Canton, svc.ShortDescription),
		path,
	)
	data.Meta.Keywords = append([]string{
		fmt.Sprintf("%s %s", strings.ToLower(svc.Name), loc.Name),
		fmt.Sprintf("%s %s", strings.ToLower(svc.Name), loc.PLZ),
	}, svc.Keywords...)
	pageURL := s.site.BaseURL + path
	data.Meta.JSONLD = append(data.Meta.JSONLD,
		seo.JSON(seo.Service(svc, pageURL, s.company.Name, loc.Name)),
		seo.JSON(seo.BreadcrumbList([]seo.BreadcrumbItem{
			{Name: "Home", Item: s.site.BaseURL + "/"},
			{Name: svc.Name, Item: s.site.BaseURL + "/angebote/" + svc.Slug},
			{Name: loc.Name, Item: pageURL},
		})),
	)
	data.Combined = &CombinedData{
		Service:       svc,
		Location:      loc,
		OtherServices: s.catalog.OtherServices(svc.ID),
		Nearby:        s.catalog.LocationsInCanton(loc.Canton, loc.Slug, nearbyLimit),
	}
	s.renderer.Render(w, r, http.StatusOK, "combined", data)
}

// Showroom renders the showroom page.
func (s *Server) Showroom(w http.ResponseWriter, r *http.Request) {
	data := s.page("/showroom", "")
	data.Meta = s.meta(
		"Showroom in Bülach – Storen & Sonnenschutz live erleben",
		fmt.Sprintf("Besuchen Sie unseren Showroom an der %s in %s und erleben Sie unsere Storen, Markisen und Rollladen in Originalgrösse.", s.company.Address.Street, s.company.Address.City),
		"/showroom",
	)
	s.renderer.Render(w, r, http.StatusOK, "showroom", data)
}

// About renders the company page.
func (s *Server) About(w http.ResponseWriter, r *http.Request) {
	data := s.page("/ueber-uns", "")
	data.Meta = s.meta(
		"Über uns – Swiss Quality Storen GmbH",
		"Lernen Sie das Team hinter Swiss Quality Storen kennen: Schweizer Handwerk, langjährige Erfahrung und persönliche Beratung rund um Sonnenschutz.",
		"/ueber-uns",
	)
	data.About = &AboutData{
		Milestones: []Milestone{
			{Year: "2015", Title: "Gründung", Text: "Start als Zwei-Mann-Betrieb mit Fokus auf Storen-Reparaturen in Bülach."},
			{Year: "2018", Title: "Eigener Showroom", Text: "Eröffnung des Showrooms an der Schlosserstrasse mit Ausstellung aller Produktlinien."},
			{Year: "2022", Title: "Region erweitert", Text: "Ausbau des Einsatzgebiets auf die Kantone Aargau, Schaffhausen und Thurgau."},
		},
	}
	s.renderer.Render(w, r, http.StatusOK, "about", data)
}

// Occasions renders the second-hand offers page.
func (s *Server) Occasions(w http.ResponseWriter, r *http.Request) {
	data := s.page("/occasionen", "")
	data.Meta = s.meta(
		"Occasionen – geprüfte Ausstellungsstücke zu reduzierten Preisen",
		"Geprüfte Ausstellungsstücke und Occasionen: Markisen, Storen und Sonnenschirme aus unserem Showroom zu stark reduzierten Preisen.",
		"/occasionen",
	)
	s.renderer.Render(w, r, http.StatusOK, "occasions", data)
}

// Contact renders the contact page with the form.
func (s *Server) Contact(w http.ResponseWriter, r *http.Request) {
	data := s.page("/kontakt", "")
	data.Meta = s.meta(
		"Kontakt – kostenlose Beratung und Offerte",
		fmt.Sprintf("Kontaktieren Sie Swiss Quality Storen: %s oder %s. Wir melden uns innert eines Arbeitstages.", s.company.Contact.Phone, s.company.Contact.Email),
		"/kontakt",
	)
	data.Contact = &ContactData{
		Services:  s.catalog.Services(),
		Locations: s.catalog.Locations(),
	}
	s.renderer.Render(w, r, http.StatusOK, "contact", data)
}

// LegalPage returns a handler rendering one markdown-backed legal page.
func (s *Server) LegalPage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := s.content.Get(slug)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				s.NotFound(w, r)
				return
			}
			observability.FromContext(r.Context()).Error("legal page load failed",
				zap.String("slug", slug), zap.Error(err))
			http.Error(w, "Interner Serverfehler", http.StatusInternalServerError)
			return
		}

		path := "/" + slug
		data := s.page(path, page.Title)
		data.Meta = s.meta(page.Title, page.Summary, path)
		data.Legal = &page
		s.renderer.Render(w, r, http.StatusOK, "legal", data)
	}
}

// NotFound renders the site 404 page.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	data := s.page(r.URL.Path, "Seite nicht gefunden")
	data.Meta = s.meta(
		"Seite nicht gefunden",
		"Die angeforderte Seite existiert nicht. Zurück zur Startseite von Swiss Quality Storen.",
		"",
	)
	data.Breadcrumbs = nav.Breadcrumbs("/", "")
	s.renderer.Render(w, r, http.StatusNotFound, "notfound", data)
}

// meta assembles the shared head metadata for a page.
func (s *Server) meta(title, description, path string) seo.Meta {
	fullTitle := title + " | " + s.site.ShortName
	m := seo.Meta{
		Title:       fullTitle,
		Description: description,
		OG: seo.OpenGraph{
			Title:       fullTitle,
			Description: description,
			Image:       s.site.OGImage,
			Type:        "website",
			SiteName:    s.site.Name,
		},
		Twitter: seo.Twitter{
			Card:  "summary_large_image",
			Image: s.site.OGImage,
		},
	}
	if path != "" {
		m.Canonical = s.site.BaseURL + path
		m.OG.URL = m.Canonical
	}
	return m
}
