package domain

import "strings"

// Filter category names shared by the engine and its callers.
const (
	FilterCategory  = "category"
	FilterTags      = "tags"
	FilterPrice     = "price"
	FilterGenre     = "genre"
	FilterAmenities = "amenities"
	FilterLocation  = "location"
)

// PriceBuckets are the fixed price-range labels offered by the filter UI.
// They are static labels, not derived from catalog data; only PriceInBucket
// gives them meaning.
var PriceBuckets = []string{
	"Under $40",
	"$40 - $60",
	"$60 - $80",
	"$80 - $100",
	"$100+",
}

// Filters maps a filter category to the values currently selected in it.
// A category with no values imposes no constraint. Within a category any
// selected value may match (OR); across categories every constrained
// category must pass (AND).
type Filters map[string][]string

// Active reports whether the given category constrains results.
func (f Filters) Active(category string) bool {
	return len(f[category]) > 0
}

// MatchesTerm reports whether an entity's name or description contains the
// term as a case-insensitive substring. An empty term matches everything.
func MatchesTerm(name, description, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(name), term) ||
		strings.Contains(strings.ToLower(description), term)
}

// PriceInBucket reports whether a price falls inside a named bucket.
// Buckets are half-open on the upper bound except the top one.
func PriceInBucket(price float64, bucket string) bool {
	switch bucket {
	case "Under $40":
		return price < 40
	case "$40 - $60":
		return price >= 40 && price < 60
	case "$60 - $80":
		return price >= 60 && price < 80
	case "$80 - $100":
		return price >= 80 && price < 100
	case "$100+":
		return price >= 100
	}
	return false
}

// anyEqual reports whether value equals at least one of the selected values.
func anyEqual(value string, selected []string) bool {
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// anyOverlap reports whether the entity labels contain at least one of the
// selected values.
func anyOverlap(labels []string, selected []string) bool {
	for _, s := range selected {
		for _, l := range labels {
			if s == l {
				return true
			}
		}
	}
	return false
}

// MatchEvent applies the event predicates: free-text term plus the category,
// tags and price filter categories.
func MatchEvent(e *Event, term string, f Filters) bool {
	if !MatchesTerm(e.Name, e.Description, term) {
		return false
	}
	if f.Active(FilterCategory) && !anyEqual(e.Category, f[FilterCategory]) {
		return false
	}
	if f.Active(FilterTags) && !anyOverlap(e.Tags, f[FilterTags]) {
		return false
	}
	if f.Active(FilterPrice) {
		matched := false
		for _, bucket := range f[FilterPrice] {
			if PriceInBucket(e.Price, bucket) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// MatchArtist applies the artist predicates: free-text term plus the genre
// and tags filter categories.
func MatchArtist(a *Artist, term string, f Filters) bool {
	if !MatchesTerm(a.Name, a.Description, term) {
		return false
	}
	if f.Active(FilterGenre) && !anyEqual(a.Genre, f[FilterGenre]) {
		return false
	}
	if f.Active(FilterTags) && !anyOverlap(a.Tags, f[FilterTags]) {
		return false
	}
	return true
}

// MatchVenue applies the venue predicates: free-text term plus the location,
// amenities and tags filter categories.
func MatchVenue(v *Venue, term string, f Filters) bool {
	if !MatchesTerm(v.Name, v.Description, term) {
		return false
	}
	if f.Active(FilterLocation) && !anyEqual(v.Location, f[FilterLocation]) {
		return false
	}
	if f.Active(FilterAmenities) && !anyOverlap(v.Amenities, f[FilterAmenities]) {
		return false
	}
	if f.Active(FilterTags) && !anyOverlap(v.Tags, f[FilterTags]) {
		return false
	}
	return true
}

// FilterEvents returns the events passing the term and filter predicates,
// preserving input order.
func FilterEvents(events []*Event, term string, f Filters) []*Event {
	out := make([]*Event, 0, len(events))
	for _, e := range events {
		if MatchEvent(e, term, f) {
			out = append(out, e)
		}
	}
	return out
}

// FilterArtists returns the artists passing the term and filter predicates,
// preserving input order.
func FilterArtists(artists []*Artist, term string, f Filters) []*Artist {
	out := make([]*Artist, 0, len(artists))
	for _, a := range artists {
		if MatchArtist(a, term, f) {
			out = append(out, a)
		}
	}
	return out
}

// FilterVenues returns the venues passing the term and filter predicates,
// preserving input order.
func FilterVenues(venues []*Venue, term string, f Filters) []*Venue {
	out := make([]*Venue, 0, len(venues))
	for _, v := range venues {
		if MatchVenue(v, term, f) {
			out = append(out, v)
		}
	}
	return out
}
