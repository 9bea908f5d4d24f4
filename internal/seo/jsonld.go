package seo

import (
	"encoding/json"
	"html/template"

	"github.com/swissquality-storen/web/internal/catalog"
	"github.com/swissquality-storen/web/internal/site"
)

// JSON marshals v to a compact JSON payload that the template engine embeds
// verbatim into ld+json script blocks. It returns an empty payload on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// LocalBusiness returns the schema.org LocalBusiness payload for the company.
func LocalBusiness(s site.Site, c site.Company) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"name":        c.Name,
		"description": s.Description,
		"url":         s.BaseURL,
		"image":       s.OGImage,
		"telephone":   c.Contact.PhoneFormatted,
		"email":       c.Contact.Email,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   c.Address.Street,
			"addressLocality": c.Address.City,
			"postalCode":      c.Address.PLZ,
			"addressCountry":  c.Address.CountryCode,
		},
	}
}

// Service returns a schema.org Service payload, optionally scoped to an area.
func Service(svc catalog.Service, pageURL, providerName, areaServed string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        svc.Name,
		"description": svc.ShortDescription,
		"url":         pageURL,
		"provider": map[string]any{
			"@type": "LocalBusiness",
			"name":  providerName,
		},
	}
	if areaServed != "" {
		m["areaServed"] = map[string]any{
			"@type": "City",
			"name":  areaServed,
		}
	}
	return m
}

// BreadcrumbItem maps a name to its absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds a schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// FAQPage builds a schema.org FAQPage from the service FAQ entries.
func FAQPage(items []catalog.FAQItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for _, it := range items {
		el = append(el, map[string]any{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": el,
	}
}
