package domain

import (
	"sort"
	"strings"
	"time"
)

// SortKey selects one comparator in the sort stage. The empty key means
// "no sort": results keep catalog order.
type SortKey string

const (
	SortNone       SortKey = ""
	SortName       SortKey = "name"
	SortDate       SortKey = "date"
	SortPrice      SortKey = "price"
	SortGenre      SortKey = "genre"
	SortPopularity SortKey = "popularity"
	SortLocation   SortKey = "location"
	SortCapacity   SortKey = "capacity"
)

// dateLayouts are the timestamp shapes accepted in Event.Date. The catalog
// data uses a zone-less ISO-8601 form.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseEventDate parses an event timestamp. The second return is false for
// malformed dates; callers sort those after every valid date so ordering
// never depends on parser quirks.
func parseEventDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortEvents stable-sorts events in place by the given key. Ties and the
// empty key preserve the incoming order.
func SortEvents(events []*Event, key SortKey) {
	switch key {
	case SortName:
		sort.SliceStable(events, func(i, j int) bool {
			return strings.Compare(events[i].Name, events[j].Name) < 0
		})
	case SortDate:
		sort.SliceStable(events, func(i, j int) bool {
			ti, oki := parseEventDate(events[i].Date)
			tj, okj := parseEventDate(events[j].Date)
			if oki != okj {
				return oki // invalid dates sort last
			}
			if !oki {
				return false
			}
			return ti.Before(tj)
		})
	case SortPrice:
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Price < events[j].Price
		})
	}
}

// SortArtists stable-sorts artists in place by the given key. Popularity is
// a proxy: the number of listed popular events, descending.
func SortArtists(artists []*Artist, key SortKey) {
	switch key {
	case SortName:
		sort.SliceStable(artists, func(i, j int) bool {
			return strings.Compare(artists[i].Name, artists[j].Name) < 0
		})
	case SortGenre:
		sort.SliceStable(artists, func(i, j int) bool {
			return strings.Compare(artists[i].Genre, artists[j].Genre) < 0
		})
	case SortPopularity:
		sort.SliceStable(artists, func(i, j int) bool {
			return len(artists[i].PopularEvents) > len(artists[j].PopularEvents)
		})
	}
}

// SortVenues stable-sorts venues in place by the given key. Capacity sorts
// descending, largest room first.
func SortVenues(venues []*Venue, key SortKey) {
	switch key {
	case SortName:
		sort.SliceStable(venues, func(i, j int) bool {
			return strings.Compare(venues[i].Name, venues[j].Name) < 0
		})
	case SortLocation:
		sort.SliceStable(venues, func(i, j int) bool {
			return strings.Compare(venues[i].Location, venues[j].Location) < 0
		})
	case SortCapacity:
		sort.SliceStable(venues, func(i, j int) bool {
			return venues[i].Capacity > venues[j].Capacity
		})
	}
}
