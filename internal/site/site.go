// Package site holds the static site and company facts shared by page
// metadata, structured data and the transactional mails.
package site

// Site describes the public website identity used for canonical URLs and meta tags.
type Site struct {
	Name        string
	ShortName   string
	Description string
	BaseURL     string
	OGImage     string
	Language    string
	Locale      string
}

// Address is the postal address of the service center.
type Address struct {
	Street      string
	City        string
	PLZ         string
	Country     string
	CountryCode string
}

// Contact groups the public contact channels.
type Contact struct {
	Phone          string
	PhoneFormatted string
	PhoneLink      string
	Email          string
	EmailLink      string
}

// Company describes the operating company behind the site.
type Company struct {
	Name            string
	Address         Address
	Contact         Contact
	OpeningWeekdays string
	OpeningWeekend  string
}

// Default is the shipped configuration for Swiss Quality Storen GmbH.
// The base URL can be overridden through configuration for staging deployments.
var Default = Site{
	Name:        "Swiss Quality Storen GmbH",
	ShortName:   "Swiss Quality Storen",
	Description: "Ihr Spezialist für Lamellenstoren, Rollladen, Markisen und Sonnenschutz in Bülach und der Region Zürich. Schweizer Qualität, professionelle Montage, faire Preise.",
	BaseURL:     "https://www.swissquality-storen.ch",
	OGImage:     "https://www.swissquality-storen.ch/og-image.jpg",
	Language:    "de-CH",
	Locale:      "de_CH",
}

// DefaultCompany is the shipped company record.
var DefaultCompany = Company{
	Name: "Swiss Quality Storen GmbH",
	Address: Address{
		Street:      "Schlosserstrasse 4",
		City:        "Bülach",
		PLZ:         "8180",
		Country:     "Switzerland",
		CountryCode: "CH",
	},
	Contact: Contact{
		Phone:          "062 558 98 18",
		PhoneFormatted: "+41 62 558 98 18",
		PhoneLink:      "tel:+41625589818",
		Email:          "info@swissquality-storen.ch",
		EmailLink:      "mailto:info@swissquality-storen.ch",
	},
	OpeningWeekdays: "Mo - Fr: 7:00 - 12:00, 13:00 - 17:00",
	OpeningWeekend:  "Sa - So: Geschlossen",
}
