// Package query turns one tab's user inputs (free-text term, active
// filters, optional sort key) into the final ordered result list.
package query

import (
	"github.com/MrSnakeDoc/marquee/internal/catalog"
	"github.com/MrSnakeDoc/marquee/internal/domain"
)

// Input carries the three independent user inputs for one tab. The zero
// value means "show everything in catalog order".
type Input struct {
	Term    string
	Filters domain.Filters
	Sort    domain.SortKey
}

// Engine runs the search → filter → sort pipeline over the catalog. Every
// stage is pure and deterministic; concurrent runs are independent.
type Engine struct {
	cat *catalog.Catalog
}

// New creates an engine over the given catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Events returns the event list for the given inputs.
func (e *Engine) Events(in Input) []*domain.Event {
	out := domain.FilterEvents(e.cat.Events(), in.Term, in.Filters)
	domain.SortEvents(out, in.Sort)
	return out
}

// Artists returns the artist list for the given inputs.
func (e *Engine) Artists(in Input) []*domain.Artist {
	out := domain.FilterArtists(e.cat.Artists(), in.Term, in.Filters)
	domain.SortArtists(out, in.Sort)
	return out
}

// Venues returns the venue list for the given inputs.
func (e *Engine) Venues(in Input) []*domain.Venue {
	out := domain.FilterVenues(e.cat.Venues(), in.Term, in.Filters)
	domain.SortVenues(out, in.Sort)
	return out
}

// Counts returns the result size per tab for the same inputs, as shown on
// the tab badges.
func (e *Engine) Counts(in Input) (events, artists, venues int) {
	return len(e.Events(in)), len(e.Artists(in)), len(e.Venues(in))
}
