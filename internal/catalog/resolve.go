package catalog

import "strings"

// ResolveCombined maps a single combined path segment such as
// "lamellenstoren-zuerich" back to its (service, location) pair.
//
// Services are scanned in declaration order. The first service whose slug plus
// a hyphen prefixes the input AND whose remainder is an exact location slug
// wins; later services are not consulted. A prefix match whose remainder is
// not a known location is coincidental and the scan continues. The scan order
// tie-break keeps generated URLs stable and must not change.
func (c *Catalog) ResolveCombined(slug string) (Service, Location, bool) {
	for _, s := range c.services {
		prefix := s.Slug + "-"
		if !strings.HasPrefix(slug, prefix) {
			continue
		}
		rest := strings.TrimPrefix(slug, prefix)
		if i, ok := c.locationIndex[rest]; ok {
			return s, c.locations[i], true
		}
	}
	return Service{}, Location{}, false
}
