package handlers

import (
	"github.com/swissquality-storen/web/internal/catalog"
	"github.com/swissquality-storen/web/internal/content"
	"github.com/swissquality-storen/web/internal/nav"
	"github.com/swissquality-storen/web/internal/seo"
	"github.com/swissquality-storen/web/internal/site"
)

// PageData is the view model shared by every rendered page.
type PageData struct {
	Meta        seo.Meta
	Path        string
	Nav         []nav.RenderedItem
	FooterNav   []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	Site        site.Site
	Company     site.Company
	Year        int

	// Per-page payloads
	Home     *HomeData
	Service  *ServiceData
	Services *ServicesData
	Region   *RegionData
	Regions  *RegionsData
	Combined *CombinedData
	Contact  *ContactData
	Legal    *content.Page
	About    *AboutData
}

// HomeData is the view model for the landing page.
type HomeData struct {
	Services   []catalog.Service
	Locations  []catalog.Location
	Highlights []string
}

// ServicesData is the view model for the service overview.
type ServicesData struct {
	Services []catalog.Service
}

// ServiceData is the view model for one service detail page.
type ServiceData struct {
	Service       catalog.Service
	OtherServices []catalog.Service
	Locations     []catalog.Location
}

// RegionsData is the view model for the region overview, grouped by canton.
type RegionsData struct {
	Cantons []CantonGroup
}

// CantonGroup lists the served municipalities of one canton.
type CantonGroup struct {
	Canton    string
	Locations []catalog.Location
}

// RegionData is the view model for one region detail page.
type RegionData struct {
	Location catalog.Location
	Services []catalog.Service
	Nearby   []catalog.Location
}

// CombinedData is the view model for a service×location landing page.
type CombinedData struct {
	Service       catalog.Service
	Location      catalog.Location
	OtherServices []catalog.Service
	Nearby        []catalog.Location
}

// ContactData is the view model for the contact page.
type ContactData struct {
	Services  []catalog.Service
	Locations []catalog.Location
}

// AboutData is the view model for the about page.
type AboutData struct {
	Milestones []Milestone
}

// Milestone is one entry of the company history timeline.
type Milestone struct {
	Year  string
	Title string
	Text  string
}
