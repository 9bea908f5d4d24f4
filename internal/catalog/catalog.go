package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog bundles the two reference tables. It is immutable after New and
// safe for concurrent use without locking.
type Catalog struct {
	services      []Service
	locations     []Location
	locationIndex map[string]int
	serviceIndex  map[string]int
	serviceCenter string
}

// New builds a catalog from the given tables and validates it. Declaration
// order of both slices is preserved; it is the authoritative scan order for
// combined-slug resolution.
func New(services []Service, locations []Location, serviceCenter string) (*Catalog, error) {
	c := &Catalog{
		services:      services,
		locations:     locations,
		locationIndex: make(map[string]int, len(locations)),
		serviceIndex:  make(map[string]int, len(services)),
		serviceCenter: serviceCenter,
	}
	for i, l := range locations {
		c.locationIndex[l.Slug] = i
	}
	for i, s := range services {
		c.serviceIndex[s.Slug] = i
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the two JSON documents from disk and builds a validated catalog.
func Load(servicesPath, locationsPath string) (*Catalog, error) {
	var sdoc servicesDocument
	if err := readJSON(servicesPath, &sdoc); err != nil {
		return nil, fmt.Errorf("catalog: load services: %w", err)
	}
	var ldoc locationsDocument
	if err := readJSON(locationsPath, &ldoc); err != nil {
		return nil, fmt.Errorf("catalog: load locations: %w", err)
	}
	if ldoc.Count != 0 && ldoc.Count != len(ldoc.Locations) {
		return nil, fmt.Errorf("catalog: locations document declares %d entries but contains %d", ldoc.Count, len(ldoc.Locations))
	}
	return New(sdoc.Services, ldoc.Locations, ldoc.ServiceCenter)
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Services returns the service table in declaration order.
func (c *Catalog) Services() []Service { return c.services }

// Locations returns the location table in declaration order.
func (c *Catalog) Locations() []Location { return c.locations }

// ServiceCenter returns the reference point distances are measured from.
func (c *Catalog) ServiceCenter() string { return c.serviceCenter }

// ServiceBySlug looks up a service by its URL slug.
func (c *Catalog) ServiceBySlug(slug string) (Service, bool) {
	i, ok := c.serviceIndex[slug]
	if !ok {
		return Service{}, false
	}
	return c.services[i], true
}

// LocationBySlug looks up a location by its URL slug.
func (c *Catalog) LocationBySlug(slug string) (Location, bool) {
	i, ok := c.locationIndex[slug]
	if !ok {
		return Location{}, false
	}
	return c.locations[i], true
}

// LocationsInCanton returns up to limit locations sharing the canton,
// excluding excludeSlug, in declaration order. limit <= 0 means no limit.
func (c *Catalog) LocationsInCanton(canton, excludeSlug string, limit int) []Location {
	var out []Location
	for _, l := range c.locations {
		if l.Canton != canton || l.Slug == excludeSlug {
			continue
		}
		out = append(out, l)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Nearest returns up to limit locations ordered by distance from the
// service center. limit <= 0 means all locations.
func (c *Catalog) Nearest(limit int) []Location {
	out := make([]Location, len(c.locations))
	copy(out, c.locations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// OtherServices returns every service except the one with the given id,
// in declaration order.
func (c *Catalog) OtherServices(id string) []Service {
	out := make([]Service, 0, len(c.services))
	for _, s := range c.services {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// Cantons returns the distinct canton names sorted with German collation,
// for the grouped region listing.
func (c *Catalog) Cantons() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, l := range c.locations {
		if _, ok := seen[l.Canton]; ok {
			continue
		}
		seen[l.Canton] = struct{}{}
		out = append(out, l.Canton)
	}
	col := collate.New(language.German)
	sort.Slice(out, func(i, j int) bool {
		return col.CompareString(out[i], out[j]) < 0
	})
	return out
}
