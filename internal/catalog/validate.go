package catalog

import (
	"fmt"
	"regexp"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validate enforces the catalog invariants at startup:
//
//   - both tables are non-empty and every slug is lowercase-hyphenated
//   - slugs are unique within each table
//   - no combined token is ambiguous: for every (service, location) pair the
//     combined slug must resolve back to exactly that pair under the
//     declaration-order scan. An ambiguous catalog (a service slug that is a
//     hyphen-prefix of another combined token) is rejected outright instead
//     of being silently resolved by scan order.
func (c *Catalog) validate() error {
	if len(c.services) == 0 {
		return fmt.Errorf("catalog: services table is empty")
	}
	if len(c.locations) == 0 {
		return fmt.Errorf("catalog: locations table is empty")
	}

	seenIDs := make(map[string]struct{}, len(c.services))
	seenSlugs := make(map[string]struct{}, len(c.services))
	for _, s := range c.services {
		if !slugPattern.MatchString(s.Slug) {
			return fmt.Errorf("catalog: service %q has malformed slug %q", s.ID, s.Slug)
		}
		if s.ID == "" {
			return fmt.Errorf("catalog: service with slug %q has no id", s.Slug)
		}
		if _, dup := seenIDs[s.ID]; dup {
			return fmt.Errorf("catalog: duplicate service id %q", s.ID)
		}
		if _, dup := seenSlugs[s.Slug]; dup {
			return fmt.Errorf("catalog: duplicate service slug %q", s.Slug)
		}
		seenIDs[s.ID] = struct{}{}
		seenSlugs[s.Slug] = struct{}{}
	}

	seenLoc := make(map[string]struct{}, len(c.locations))
	for _, l := range c.locations {
		if !slugPattern.MatchString(l.Slug) {
			return fmt.Errorf("catalog: location %q has malformed slug %q", l.Name, l.Slug)
		}
		if _, dup := seenLoc[l.Slug]; dup {
			return fmt.Errorf("catalog: duplicate location slug %q", l.Slug)
		}
		seenLoc[l.Slug] = struct{}{}
	}

	for _, s := range c.services {
		for _, l := range c.locations {
			token := s.Slug + "-" + l.Slug
			rs, rl, ok := c.ResolveCombined(token)
			if !ok {
				return fmt.Errorf("catalog: combined slug %q does not resolve", token)
			}
			if rs.Slug != s.Slug || rl.Slug != l.Slug {
				return fmt.Errorf("catalog: combined slug %q is ambiguous: resolves to (%s, %s) instead of (%s, %s)",
					token, rs.Slug, rl.Slug, s.Slug, l.Slug)
			}
		}
	}
	return nil
}
