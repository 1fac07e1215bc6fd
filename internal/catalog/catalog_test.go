package catalog

import (
	"testing"

	"github.com/MrSnakeDoc/marquee/internal/domain"
)

func seededCatalog() *Catalog {
	c := New()
	c.Replace(
		[]*domain.Event{
			{ID: "evt1", Name: "Rock Revolution", Category: "Concert", Tags: []string{"rock", "indie"}, VenueID: "ven1", ArtistIDs: []string{"art2"}},
			{ID: "evt2", Name: "Neon Nights", Category: "Club Night", Tags: []string{"electronic", "dj"}, VenueID: "ven2", ArtistIDs: []string{"art1", "art4"}},
			{ID: "evt3", Name: "Pop Sensation Tour", Category: "Concert", Tags: []string{"pop"}, VenueID: "ven1", ArtistIDs: []string{"art3"}},
		},
		[]*domain.Artist{
			{ID: "art1", Name: "Cosmic Vibe", Genre: "Electronic", Tags: []string{"electronic", "dj"}},
			{ID: "art2", Name: "Melody Ravens", Genre: "Indie Rock", Tags: []string{"indie", "rock"}},
			{ID: "art3", Name: "Luna Frost", Genre: "Pop", Tags: []string{"pop"}},
			{ID: "art4", Name: "Quantum Beats", Genre: "Hip Hop", Tags: []string{"hiphop"}},
		},
		[]*domain.Venue{
			{ID: "ven1", Name: "Nebula Arena", Location: "Los Angeles", Amenities: []string{"Parking", "Food court"}, Tags: []string{"arena"}},
			{ID: "ven2", Name: "Twilight Club", Location: "New York", Amenities: []string{"Bar service", "Parking"}, Tags: []string{"club"}},
		},
	)
	return c
}

func TestNewCatalogIsEmpty(t *testing.T) {
	c := New()
	events, artists, venues := c.Counts()
	if events != 0 || artists != 0 || venues != 0 {
		t.Errorf("New() counts = %d/%d/%d, want 0/0/0", events, artists, venues)
	}
}

func TestReplaceSwapsSnapshot(t *testing.T) {
	c := seededCatalog()

	c.Replace(
		[]*domain.Event{{ID: "evt9", Name: "Something Else"}},
		nil,
		nil,
	)

	events, artists, venues := c.Counts()
	if events != 1 || artists != 0 || venues != 0 {
		t.Errorf("counts after replace = %d/%d/%d, want 1/0/0", events, artists, venues)
	}
	if _, ok := c.EventByID("evt1"); ok {
		t.Error("old snapshot entity still resolvable after Replace")
	}
	if c.LastReload().IsZero() {
		t.Error("LastReload not set by Replace")
	}
}

func TestCollectionsPreserveCatalogOrder(t *testing.T) {
	c := seededCatalog()

	events := c.Events()
	want := []string{"evt1", "evt2", "evt3"}
	for i, e := range events {
		if e.ID != want[i] {
			t.Errorf("Events()[%d] = %s, want %s", i, e.ID, want[i])
		}
	}
}

func TestLookupByID(t *testing.T) {
	c := seededCatalog()

	if a, ok := c.ArtistByID("art3"); !ok || a.Name != "Luna Frost" {
		t.Errorf("ArtistByID(art3) = %v, %v", a, ok)
	}
	if _, ok := c.VenueByID("ven9"); ok {
		t.Error("VenueByID(ven9) should miss")
	}
	if !c.Contains("evt2", domain.KindEvent) {
		t.Error("Contains(evt2, event) = false")
	}
	if c.Contains("evt2", domain.KindVenue) {
		t.Error("ids are namespaced by kind; evt2 must not resolve as a venue")
	}
}

func TestDistinctCategories(t *testing.T) {
	c := seededCatalog()

	got := c.DistinctCategories()
	want := []string{"Concert", "Club Night"}
	if len(got) != len(want) {
		t.Fatalf("DistinctCategories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DistinctCategories()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDistinctTagsPerKind(t *testing.T) {
	c := seededCatalog()

	tests := []struct {
		kind domain.Kind
		want int
	}{
		{domain.KindEvent, 5},  // rock indie electronic dj pop
		{domain.KindArtist, 6}, // electronic dj indie rock pop hiphop
		{domain.KindVenue, 2},  // arena club
	}
	for _, tt := range tests {
		got := c.DistinctTags(tt.kind)
		if len(got) != tt.want {
			t.Errorf("DistinctTags(%s) = %v (%d), want %d entries", tt.kind, got, len(got), tt.want)
		}
	}
}

func TestDistinctLocationsGenresAmenities(t *testing.T) {
	c := seededCatalog()

	if got := c.DistinctLocations(); len(got) != 2 {
		t.Errorf("DistinctLocations() = %v, want 2 entries", got)
	}
	if got := c.DistinctGenres(); len(got) != 4 {
		t.Errorf("DistinctGenres() = %v, want 4 entries", got)
	}
	// "Parking" appears at both venues but must be listed once.
	if got := c.DistinctAmenities(); len(got) != 3 {
		t.Errorf("DistinctAmenities() = %v, want 3 entries", got)
	}
}

func TestPriceBucketsAreFixed(t *testing.T) {
	c := New() // no data needed, buckets are static labels

	got := c.PriceBuckets()
	want := []string{"Under $40", "$40 - $60", "$60 - $80", "$80 - $100", "$100+"}
	if len(got) != len(want) {
		t.Fatalf("PriceBuckets() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PriceBuckets()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
