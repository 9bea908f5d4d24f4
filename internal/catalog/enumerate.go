package catalog

// CombinedSlugs enumerates every service×location combination as a single
// path token "service-location". Order is deterministic: services outer,
// locations inner, both in declaration order. Cardinality is always
// len(services) * len(locations); every token resolves via ResolveCombined.
func (c *Catalog) CombinedSlugs() []string {
	out := make([]string, 0, len(c.services)*len(c.locations))
	for _, s := range c.services {
		for _, l := range c.locations {
			out = append(out, s.Slug+"-"+l.Slug)
		}
	}
	return out
}

// ServiceSlugs enumerates the plain service page tokens.
func (c *Catalog) ServiceSlugs() []string {
	out := make([]string, 0, len(c.services))
	for _, s := range c.services {
		out = append(out, s.Slug)
	}
	return out
}

// LocationSlugs enumerates the plain region page tokens.
func (c *Catalog) LocationSlugs() []string {
	out := make([]string, 0, len(c.locations))
	for _, l := range c.locations {
		out = append(out, l.Slug)
	}
	return out
}
