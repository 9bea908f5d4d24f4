// Package catalog holds the immutable reference data the site is generated
// from: the service offerings and the serviceable municipalities. Both tables
// are loaded once at startup, validated, and then shared read-only between
// the page handlers, the path enumerator and the sitemap generator.
package catalog

// FAQItem is a single question/answer pair displayed on service pages.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Service represents one product/offering category.
type Service struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	ShortDescription string    `json:"shortDescription"`
	Description      string    `json:"description"`
	PriceRange       string    `json:"priceRange"`
	Benefits         []string  `json:"benefits"`
	Features         []string  `json:"features"`
	Applications     []string  `json:"applications"`
	Keywords         []string  `json:"keywords"`
	FAQ              []FAQItem `json:"faq"`
}

// Location represents one serviceable municipality.
type Location struct {
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	PLZ        string  `json:"plz"`
	Canton     string  `json:"canton"`
	Distance   float64 `json:"distance"`
	Population string  `json:"population,omitempty"`
}

// servicesDocument mirrors the on-disk services file.
type servicesDocument struct {
	Services []Service `json:"services"`
}

// locationsDocument mirrors the on-disk locations file. Count is denormalized
// and ServiceCenter names the reference point distances are measured from.
type locationsDocument struct {
	Count         int        `json:"count"`
	ServiceCenter string     `json:"serviceCenter"`
	Locations     []Location `json:"locations"`
}
