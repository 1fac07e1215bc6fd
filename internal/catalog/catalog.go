package catalog

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/marquee/internal/domain"
)

// Catalog provides in-memory storage and lookup for the three entity
// collections. Collections are immutable between reloads; the lock only
// guards the atomic swap performed by the reloader, so every query observes
// one consistent snapshot.
//
// Slices preserve catalog order (the order entities appear in the seed
// files), which is the baseline ordering of every query result. The id maps
// exist for O(1) detail lookups; cross-reference resolution stays linear
// because the catalog is tens of entities and never mutates at runtime.
type Catalog struct {
	mu         sync.RWMutex
	events     []*domain.Event
	artists    []*domain.Artist
	venues     []*domain.Venue
	eventByID  map[string]*domain.Event
	artistByID map[string]*domain.Artist
	venueByID  map[string]*domain.Venue
	lastReload time.Time
}

// New creates an empty catalog.
func New() *Catalog {
	c := &Catalog{}
	c.reindex(nil, nil, nil)
	return c
}

// Replace swaps in a full new snapshot of all three collections.
func (c *Catalog) Replace(events []*domain.Event, artists []*domain.Artist, venues []*domain.Venue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reindex(events, artists, venues)
	c.lastReload = time.Now()
}

func (c *Catalog) reindex(events []*domain.Event, artists []*domain.Artist, venues []*domain.Venue) {
	c.events = events
	c.artists = artists
	c.venues = venues

	c.eventByID = make(map[string]*domain.Event, len(events))
	for _, e := range events {
		c.eventByID[e.ID] = e
	}
	c.artistByID = make(map[string]*domain.Artist, len(artists))
	for _, a := range artists {
		c.artistByID[a.ID] = a
	}
	c.venueByID = make(map[string]*domain.Venue, len(venues))
	for _, v := range venues {
		c.venueByID[v.ID] = v
	}
}

// Events returns all events in catalog order. The returned slice is a copy;
// the entities themselves are shared and must be treated as read-only.
func (c *Catalog) Events() []*domain.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Artists returns all artists in catalog order.
func (c *Catalog) Artists() []*domain.Artist {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Artist, len(c.artists))
	copy(out, c.artists)
	return out
}

// Venues returns all venues in catalog order.
func (c *Catalog) Venues() []*domain.Venue {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*domain.Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// EventByID retrieves an event by id.
func (c *Catalog) EventByID(id string) (*domain.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.eventByID[id]
	return e, ok
}

// ArtistByID retrieves an artist by id.
func (c *Catalog) ArtistByID(id string) (*domain.Artist, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.artistByID[id]
	return a, ok
}

// VenueByID retrieves a venue by id.
func (c *Catalog) VenueByID(id string) (*domain.Venue, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.venueByID[id]
	return v, ok
}

// Contains reports whether an entity reference resolves against the catalog.
func (c *Catalog) Contains(id string, kind domain.Kind) bool {
	switch kind {
	case domain.KindEvent:
		_, ok := c.EventByID(id)
		return ok
	case domain.KindArtist:
		_, ok := c.ArtistByID(id)
		return ok
	case domain.KindVenue:
		_, ok := c.VenueByID(id)
		return ok
	}
	return false
}

// Counts returns the size of each collection.
func (c *Catalog) Counts() (events, artists, venues int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.events), len(c.artists), len(c.venues)
}

// LastReload returns the timestamp of the last snapshot swap.
func (c *Catalog) LastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}
