package catalog

import "github.com/MrSnakeDoc/marquee/internal/domain"

// Cross-reference resolution. The id lists on the three entity kinds are not
// guaranteed mutually consistent (Venue.EventIDs naming an event does not
// imply that event points back), so each direction resolves independently
// from whichever side is asked. Dangling ids are silently dropped, never
// errors.

// PopularEventRef is one resolved entry of Artist.PopularEvents. The source
// stores display names rather than ids, so Event is nil when no event in the
// catalog carries that exact name; the caller can still show Name.
type PopularEventRef struct {
	Name  string        `json:"name"`
	Event *domain.Event `json:"event,omitempty"`
}

// EventsForArtist returns the events named by artist.EventIDs, in the order
// the artist lists them.
func (c *Catalog) EventsForArtist(artist *domain.Artist) []*domain.Event {
	out := make([]*domain.Event, 0, len(artist.EventIDs))
	for _, id := range artist.EventIDs {
		if e, ok := c.EventByID(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// EventsForVenue returns the events named by venue.EventIDs, in the order
// the venue lists them.
func (c *Catalog) EventsForVenue(venue *domain.Venue) []*domain.Event {
	out := make([]*domain.Event, 0, len(venue.EventIDs))
	for _, id := range venue.EventIDs {
		if e, ok := c.EventByID(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// ArtistsForEvent returns the artists named by event.ArtistIDs, in billing
// order.
func (c *Catalog) ArtistsForEvent(event *domain.Event) []*domain.Artist {
	out := make([]*domain.Artist, 0, len(event.ArtistIDs))
	for _, id := range event.ArtistIDs {
		if a, ok := c.ArtistByID(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// VenueForEvent returns the event's venue, or nil when the reference
// dangles. Callers render a "not found" affordance for nil.
func (c *Catalog) VenueForEvent(event *domain.Event) *domain.Venue {
	v, ok := c.VenueByID(event.VenueID)
	if !ok {
		return nil
	}
	return v
}

// ArtistsPerformingAtVenue returns every artist billed on any of the venue's
// events, de-duplicated by artist id, in first-appearance order. Both hops
// resolve under one read lock so a concurrent reload cannot mix snapshots.
func (c *Catalog) ArtistsPerformingAtVenue(venue *domain.Venue) []*domain.Artist {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var out []*domain.Artist
	for _, eventID := range venue.EventIDs {
		e, ok := c.eventByID[eventID]
		if !ok {
			continue
		}
		for _, artistID := range e.ArtistIDs {
			a, ok := c.artistByID[artistID]
			if !ok || seen[a.ID] {
				continue
			}
			seen[a.ID] = true
			out = append(out, a)
		}
	}
	return out
}

// SimilarArtists returns other artists sharing the genre, in catalog order,
// capped at limit. There is no ranking beyond the genre match.
func (c *Catalog) SimilarArtists(artist *domain.Artist, limit int) []*domain.Artist {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*domain.Artist
	for _, a := range c.artists {
		if a.ID == artist.ID || a.Genre != artist.Genre {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// SimilarVenues returns other venues sharing the location, in catalog order,
// capped at limit.
func (c *Catalog) SimilarVenues(venue *domain.Venue, limit int) []*domain.Venue {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*domain.Venue
	for _, v := range c.venues {
		if v.ID == venue.ID || v.Location != venue.Location {
			continue
		}
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// PopularEventsForArtist resolves each popular-event name against the event
// collection by exact name match. Unresolved names are kept with a nil
// event so the caller can still display them without a link.
func (c *Catalog) PopularEventsForArtist(artist *domain.Artist) []PopularEventRef {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]PopularEventRef, 0, len(artist.PopularEvents))
	for _, name := range artist.PopularEvents {
		ref := PopularEventRef{Name: name}
		for _, e := range c.events {
			if e.Name == name {
				ref.Event = e
				break
			}
		}
		out = append(out, ref)
	}
	return out
}
