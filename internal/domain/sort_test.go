package domain

import (
	"testing"
)

func eventIDs(events []*Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func sameOrder(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSortEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []*Event
		key    SortKey
		want   []string
	}{
		{
			name: "no key preserves order",
			events: []*Event{
				{ID: "evt2", Name: "B"},
				{ID: "evt1", Name: "A"},
			},
			key:  SortNone,
			want: []string{"evt2", "evt1"},
		},
		{
			name: "by name lexicographic",
			events: []*Event{
				{ID: "evt2", Name: "Neon Nights"},
				{ID: "evt1", Name: "Bass Dimension"},
				{ID: "evt3", Name: "Flow Masters"},
			},
			key:  SortName,
			want: []string{"evt1", "evt3", "evt2"},
		},
		{
			name: "by date ascending",
			events: []*Event{
				{ID: "evt2", Date: "2025-04-18T22:00:00"},
				{ID: "evt1", Date: "2025-04-15T19:00:00"},
			},
			key:  SortDate,
			want: []string{"evt1", "evt2"},
		},
		{
			name: "malformed dates sort last",
			events: []*Event{
				{ID: "evt3", Date: "not a date"},
				{ID: "evt2", Date: "2025-05-05T21:00:00"},
				{ID: "evt4", Date: ""},
				{ID: "evt1", Date: "2025-04-15T19:00:00"},
			},
			key:  SortDate,
			want: []string{"evt1", "evt2", "evt3", "evt4"},
		},
		{
			name: "by price ascending",
			events: []*Event{
				{ID: "evt1", Price: 75},
				{ID: "evt2", Price: 45},
				{ID: "evt3", Price: 85},
			},
			key:  SortPrice,
			want: []string{"evt2", "evt1", "evt3"},
		},
		{
			name: "price ties keep incoming order",
			events: []*Event{
				{ID: "evt1", Price: 45},
				{ID: "evt2", Price: 45},
				{ID: "evt3", Price: 40},
			},
			key:  SortPrice,
			want: []string{"evt3", "evt1", "evt2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortEvents(tt.events, tt.key)
			got := eventIDs(tt.events)
			if !sameOrder(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortEventsIdempotent(t *testing.T) {
	events := []*Event{
		{ID: "evt2", Name: "Neon Nights"},
		{ID: "evt1", Name: "Bass Dimension"},
		{ID: "evt3", Name: "Flow Masters"},
	}
	SortEvents(events, SortName)
	first := eventIDs(events)
	SortEvents(events, SortName)
	second := eventIDs(events)
	if !sameOrder(first, second) {
		t.Errorf("second sort changed order: %v -> %v", first, second)
	}
}

func TestSortArtists(t *testing.T) {
	artists := []*Artist{
		{ID: "art1", Name: "Cosmic Vibe", Genre: "Electronic", PopularEvents: []string{"a", "b"}},
		{ID: "art2", Name: "Melody Ravens", Genre: "Indie Rock", PopularEvents: []string{"a", "b", "c"}},
		{ID: "art3", Name: "Luna Frost", Genre: "Pop", PopularEvents: []string{"a"}},
	}

	SortArtists(artists, SortPopularity)
	if artists[0].ID != "art2" || artists[1].ID != "art1" || artists[2].ID != "art3" {
		t.Errorf("popularity sort order = [%s %s %s], want [art2 art1 art3]",
			artists[0].ID, artists[1].ID, artists[2].ID)
	}

	SortArtists(artists, SortGenre)
	if artists[0].Genre != "Electronic" || artists[2].Genre != "Pop" {
		t.Errorf("genre sort order wrong: got first=%s last=%s", artists[0].Genre, artists[2].Genre)
	}
}

func TestSortVenues(t *testing.T) {
	venues := []*Venue{
		{ID: "ven2", Name: "Twilight Club", Location: "New York", Capacity: 800},
		{ID: "ven1", Name: "Nebula Arena", Location: "Los Angeles", Capacity: 15000},
		{ID: "ven5", Name: "Velvet Lounge", Location: "Austin", Capacity: 300},
	}

	SortVenues(venues, SortCapacity)
	if venues[0].ID != "ven1" || venues[2].ID != "ven5" {
		t.Errorf("capacity sort should be descending, got first=%s last=%s", venues[0].ID, venues[2].ID)
	}

	SortVenues(venues, SortLocation)
	if venues[0].Location != "Austin" {
		t.Errorf("location sort first = %s, want Austin", venues[0].Location)
	}
}

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2025-04-15T19:00:00", true},
		{"2025-04-15T19:00:00Z", true},
		{"2025-04-15", true},
		{"", false},
		{"soon", false},
		{"15/04/2025", false},
	}

	for _, tt := range tests {
		_, ok := parseEventDate(tt.input)
		if ok != tt.valid {
			t.Errorf("parseEventDate(%q) valid = %v, want %v", tt.input, ok, tt.valid)
		}
	}
}
