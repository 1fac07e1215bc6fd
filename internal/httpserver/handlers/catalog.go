package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/marquee/internal/catalog"
	"github.com/MrSnakeDoc/marquee/internal/domain"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/logger"
)

type eventListResponse struct {
	Count  int             `json:"count"`
	Events []*domain.Event `json:"events"`
}

type artistListResponse struct {
	Count   int              `json:"count"`
	Artists []*domain.Artist `json:"artists"`
}

type venueListResponse struct {
	Count  int             `json:"count"`
	Venues []*domain.Venue `json:"venues"`
}

// Events lists events through the search/filter/sort pipeline.
func Events(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := parseInput(r)
		events := d.Engine.Events(in)

		d.Logger.Debug("event query",
			logger.String("q", in.Term),
			logger.Int("results", len(events)))

		writeJSON(w, http.StatusOK, eventListResponse{Count: len(events), Events: events})
	}
}

// Artists lists artists through the search/filter/sort pipeline.
func Artists(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := parseInput(r)
		artists := d.Engine.Artists(in)

		d.Logger.Debug("artist query",
			logger.String("q", in.Term),
			logger.Int("results", len(artists)))

		writeJSON(w, http.StatusOK, artistListResponse{Count: len(artists), Artists: artists})
	}
}

// Venues lists venues through the search/filter/sort pipeline.
func Venues(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := parseInput(r)
		venues := d.Engine.Venues(in)

		d.Logger.Debug("venue query",
			logger.String("q", in.Term),
			logger.Int("results", len(venues)))

		writeJSON(w, http.StatusOK, venueListResponse{Count: len(venues), Venues: venues})
	}
}

type eventDetailResponse struct {
	Event   *domain.Event    `json:"event"`
	Artists []*domain.Artist `json:"artists"`
	Venue   *domain.Venue    `json:"venue"`
}

// EventDetail returns one event with its lineup and venue resolved.
// Dangling references are dropped rather than failing the page.
func EventDetail(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		event, ok := d.Catalog.EventByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}

		writeJSON(w, http.StatusOK, eventDetailResponse{
			Event:   event,
			Artists: d.Catalog.ArtistsForEvent(event),
			Venue:   d.Catalog.VenueForEvent(event),
		})
	}
}

type artistDetailResponse struct {
	Artist        *domain.Artist            `json:"artist"`
	Events        []*domain.Event           `json:"events"`
	PopularEvents []catalog.PopularEventRef `json:"popularEvents"`
	Similar       []*domain.Artist          `json:"similarArtists"`
}

// ArtistDetail returns one artist with upcoming events, popular events
// resolved by name, and same-genre artists.
func ArtistDetail(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		artist, ok := d.Catalog.ArtistByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "artist not found")
			return
		}

		writeJSON(w, http.StatusOK, artistDetailResponse{
			Artist:        artist,
			Events:        d.Catalog.EventsForArtist(artist),
			PopularEvents: d.Catalog.PopularEventsForArtist(artist),
			Similar:       d.Catalog.SimilarArtists(artist, d.SimilarLimit),
		})
	}
}

type venueDetailResponse struct {
	Venue   *domain.Venue    `json:"venue"`
	Events  []*domain.Event  `json:"events"`
	Artists []*domain.Artist `json:"artists"`
	Similar []*domain.Venue  `json:"similarVenues"`
}

// VenueDetail returns one venue with its events, the artists performing
// there, and same-location venues.
func VenueDetail(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		venue, ok := d.Catalog.VenueByID(id)
		if !ok {
			writeError(w, http.StatusNotFound, "venue not found")
			return
		}

		writeJSON(w, http.StatusOK, venueDetailResponse{
			Venue:   venue,
			Events:  d.Catalog.EventsForVenue(venue),
			Artists: d.Catalog.ArtistsPerformingAtVenue(venue),
			Similar: d.Catalog.SimilarVenues(venue, d.SimilarLimit),
		})
	}
}

type metaResponse struct {
	Categories   []string       `json:"categories"`
	EventTags    []string       `json:"eventTags"`
	Genres       []string       `json:"genres"`
	Locations    []string       `json:"locations"`
	Amenities    []string       `json:"amenities"`
	PriceBuckets []string       `json:"priceBuckets"`
	Counts       map[string]int `json:"counts"`
}

// Meta exposes the distinct facet values the catalog currently offers,
// the fixed price buckets, and entity counts. Frontends build their
// filter panels from this.
func Meta(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, artists, venues := d.Catalog.Counts()

		writeJSON(w, http.StatusOK, metaResponse{
			Categories:   d.Catalog.DistinctCategories(),
			EventTags:    d.Catalog.DistinctTags(domain.KindEvent),
			Genres:       d.Catalog.DistinctGenres(),
			Locations:    d.Catalog.DistinctLocations(),
			Amenities:    d.Catalog.DistinctAmenities(),
			PriceBuckets: d.Catalog.PriceBuckets(),
			Counts: map[string]int{
				"events":  events,
				"artists": artists,
				"venues":  venues,
			},
		})
	}
}
