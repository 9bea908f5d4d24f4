package nav

import (
	"path"
	"strings"
)

// Item represents a navigation entry. Children are rendered as a dropdown.
type Item struct {
	Path     string
	Label    string
	Children []Item
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	Label    string
	Active   bool
	Children []RenderedItem
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/ueber-uns", Label: "Über uns"},
	{Path: "/angebote", Label: "Angebote", Children: []Item{
		{Path: "/angebote/lamellenstoren", Label: "Lamellenstoren"},
		{Path: "/angebote/rollladen", Label: "Rollladen"},
		{Path: "/angebote/markisen", Label: "Markisen"},
		{Path: "/angebote/sonnenschirme", Label: "Sonnenschirme"},
		{Path: "/angebote/insektenschutzgitter", Label: "Insektenschutzgitter"},
	}},
	{Path: "/showroom", Label: "Showroom"},
	{Path: "/occasionen", Label: "Occasionen"},
	{Path: "/regionen", Label: "Regionen"},
	{Path: "/kontakt", Label: "Kontakt"},
}

// Footer is the legal footer navigation.
var Footer = []Item{
	{Path: "/impressum", Label: "Impressum"},
	{Path: "/datenschutz", Label: "Datenschutz"},
	{Path: "/agb", Label: "AGB"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	return buildItems(Main, currentPath)
}

// BuildFooter renders the footer navigation with active state.
func BuildFooter(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	return buildItems(Footer, currentPath)
}

func buildItems(items []Item, currentPath string) []RenderedItem {
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		out = append(out, RenderedItem{
			Href:     it.Path,
			Label:    it.Label,
			Active:   isActive(it.Path, currentPath),
			Children: buildItems(it.Children, currentPath),
		})
	}
	return out
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path and an optional
// display label for the final segment (e.g. a service or location name).
// Always starts at Home; known top-level sections use their nav label.
func Breadcrumbs(currentPath, leafLabel string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href += "/" + seg
		label := lookupLabel(href)
		if label == "" {
			label = titleFromSegment(seg)
		}
		if i == len(parts)-1 && leafLabel != "" {
			label = leafLabel
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: i == len(parts)-1})
	}
	return crumbs
}

func lookupLabel(href string) string {
	for _, it := range Main {
		if it.Path == href {
			return it.Label
		}
		for _, child := range it.Children {
			if child.Path == href {
				return child.Label
			}
		}
	}
	for _, it := range Footer {
		if it.Path == href {
			return it.Label
		}
	}
	return ""
}

func titleFromSegment(seg string) string {
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
