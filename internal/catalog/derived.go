package catalog

import "github.com/MrSnakeDoc/marquee/internal/domain"

// Derived sets back the filter pickers. They are recomputed on every call:
// the collections are small and only change on reload, so precomputing and
// invalidating would buy nothing.

// distinct appends values to out the first time each is seen, preserving
// first-appearance order.
func distinct(values []string, seen map[string]bool, out []string) []string {
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// DistinctCategories returns every distinct event category.
func (c *Catalog) DistinctCategories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, e := range c.events {
		out = distinct([]string{e.Category}, seen, out)
	}
	return out
}

// DistinctTags returns the union of tags across all entities of a kind.
func (c *Catalog) DistinctTags(kind domain.Kind) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	switch kind {
	case domain.KindEvent:
		for _, e := range c.events {
			out = distinct(e.Tags, seen, out)
		}
	case domain.KindArtist:
		for _, a := range c.artists {
			out = distinct(a.Tags, seen, out)
		}
	case domain.KindVenue:
		for _, v := range c.venues {
			out = distinct(v.Tags, seen, out)
		}
	}
	return out
}

// DistinctLocations returns every distinct venue location.
func (c *Catalog) DistinctLocations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, v := range c.venues {
		out = distinct([]string{v.Location}, seen, out)
	}
	return out
}

// DistinctGenres returns every distinct artist genre.
func (c *Catalog) DistinctGenres() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, a := range c.artists {
		out = distinct([]string{a.Genre}, seen, out)
	}
	return out
}

// DistinctAmenities returns the union of venue amenities.
func (c *Catalog) DistinctAmenities() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, v := range c.venues {
		out = distinct(v.Amenities, seen, out)
	}
	return out
}

// PriceBuckets returns the fixed price-range labels. They are not derived
// from data; the query engine's price predicate gives them meaning.
func (c *Catalog) PriceBuckets() []string {
	out := make([]string, len(domain.PriceBuckets))
	copy(out, domain.PriceBuckets)
	return out
}
