package query

import (
	"testing"

	"github.com/MrSnakeDoc/marquee/internal/catalog"
	"github.com/MrSnakeDoc/marquee/internal/domain"
)

func testEngine() *Engine {
	c := catalog.New()
	c.Replace(
		[]*domain.Event{
			{ID: "evt1", Name: "Rock Revolution", Description: "High-energy rock concert.", Date: "2025-04-15T19:00:00", Price: 75, Category: "Concert", Tags: []string{"rock", "indie"}},
			{ID: "evt2", Name: "Neon Nights", Description: "Electronic music experience.", Date: "2025-04-18T22:00:00", Price: 45, Category: "Club Night", Tags: []string{"electronic", "dj"}},
			{ID: "evt3", Name: "Pop Sensation Tour", Description: "Pop performance.", Date: "2025-04-22T20:00:00", Price: 85, Category: "Concert", Tags: []string{"pop"}},
		},
		[]*domain.Artist{
			{ID: "art1", Name: "Cosmic Vibe", Genre: "Electronic", PopularEvents: []string{"Neon Nights", "Bass Dimension"}},
			{ID: "art2", Name: "Melody Ravens", Genre: "Indie Rock", PopularEvents: []string{"Rock Revolution", "Indie Summit", "Encore"}},
		},
		[]*domain.Venue{
			{ID: "ven1", Name: "Nebula Arena", Location: "Los Angeles", Capacity: 15000},
			{ID: "ven2", Name: "Twilight Club", Location: "New York", Capacity: 800},
		},
	)
	return New(c)
}

func TestEmptyInputReturnsCatalogOrder(t *testing.T) {
	e := testEngine()

	events := e.Events(Input{})
	if len(events) != 3 {
		t.Fatalf("empty input returned %d events, want all 3", len(events))
	}
	want := []string{"evt1", "evt2", "evt3"}
	for i, ev := range events {
		if ev.ID != want[i] {
			t.Errorf("events[%d] = %s, want %s", i, ev.ID, want[i])
		}
	}
}

func TestCategoryFilterScenario(t *testing.T) {
	e := testEngine()

	events := e.Events(Input{Filters: domain.Filters{domain.FilterCategory: {"Club Night"}}})
	if len(events) != 1 || events[0].ID != "evt2" {
		t.Errorf("category filter returned %d events, want exactly evt2", len(events))
	}
}

func TestDateSortScenario(t *testing.T) {
	e := testEngine()

	// Narrow to evt2 and evt1 (out of date order by price), then sort by date.
	events := e.Events(Input{
		Filters: domain.Filters{domain.FilterPrice: {"Under $40", "$40 - $60", "$60 - $80"}},
		Sort:    domain.SortDate,
	})
	if len(events) != 2 || events[0].ID != "evt1" || events[1].ID != "evt2" {
		t.Errorf("date sort returned wrong order, got %d events", len(events))
	}
}

func TestSearchAppliesBeforeSort(t *testing.T) {
	e := testEngine()

	events := e.Events(Input{Term: "music", Sort: domain.SortPrice})
	if len(events) != 1 || events[0].ID != "evt2" {
		t.Errorf("term+sort returned %d events, want evt2 only", len(events))
	}
}

func TestArtistPopularitySort(t *testing.T) {
	e := testEngine()

	artists := e.Artists(Input{Sort: domain.SortPopularity})
	if len(artists) != 2 || artists[0].ID != "art2" {
		t.Errorf("popularity sort should put art2 (3 popular events) first")
	}
}

func TestVenueCapacitySortDescending(t *testing.T) {
	e := testEngine()

	venues := e.Venues(Input{Sort: domain.SortCapacity})
	if len(venues) != 2 || venues[0].ID != "ven1" {
		t.Errorf("capacity sort should put the arena first")
	}
}

func TestCounts(t *testing.T) {
	e := testEngine()

	// "club" only appears in the Twilight Club venue name.
	events, artists, venues := e.Counts(Input{Term: "club"})
	if events != 0 || artists != 0 || venues != 1 {
		t.Errorf("counts = %d/%d/%d, want 0/0/1", events, artists, venues)
	}
}
