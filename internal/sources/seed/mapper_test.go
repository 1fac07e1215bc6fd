package seed

import (
	"testing"
)

func TestMapPreservesOrderAndFields(t *testing.T) {
	doc := &Document{
		Events: []EventEntry{
			{ID: "e1", Name: "First", Price: 10, Category: "Concert", VenueID: "v1", ArtistIDs: []string{"a1"}},
			{ID: "e2", Name: "Second", Price: 20, Category: "Festival"},
		},
		Artists: []ArtistEntry{
			{ID: "a1", Name: "Band", Genre: "Rock", SocialLinks: SocialEntry{Instagram: "@band"}},
		},
		Venues: []VenueEntry{
			{ID: "v1", Name: "Hall", Location: "Town", Capacity: 100},
		},
	}

	events, artists, venues, err := NewMapper().Map(doc)
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if len(events) != 2 || events[0].ID != "e1" || events[1].ID != "e2" {
		t.Errorf("events not mapped in order: %d entries", len(events))
	}
	if len(artists) != 1 || artists[0].SocialLinks.Instagram != "@band" {
		t.Errorf("artist social links lost: %+v", artists)
	}
	if len(venues) != 1 || venues[0].Capacity != 100 {
		t.Errorf("venue fields lost: %+v", venues)
	}
}

func TestMapSkipsInvalidEntries(t *testing.T) {
	doc := &Document{
		Events: []EventEntry{
			{ID: "", Name: "No id"},
			{ID: "e1", Name: ""},
			{ID: "e2", Name: "Negative", Price: -5},
			{ID: "e3", Name: "Kept", Price: 0},
		},
	}

	events, _, _, err := NewMapper().Map(doc)
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if len(events) != 1 || events[0].ID != "e3" {
		t.Errorf("invalid entries not skipped, got %d events", len(events))
	}
}

func TestMapKeepsDanglingReferences(t *testing.T) {
	doc := &Document{
		Events: []EventEntry{
			{ID: "e1", Name: "Show", VenueID: "missing-venue", ArtistIDs: []string{"missing-artist"}},
		},
	}

	events, _, _, err := NewMapper().Map(doc)
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	// Dangling ids are the resolver's problem, not the mapper's.
	if events[0].VenueID != "missing-venue" || len(events[0].ArtistIDs) != 1 {
		t.Errorf("dangling references must survive mapping: %+v", events[0])
	}
}

func TestMapEmptyDocument(t *testing.T) {
	if _, _, _, err := NewMapper().Map(&Document{}); err == nil {
		t.Fatal("Map() should fail for a document with no valid entities")
	}
}
