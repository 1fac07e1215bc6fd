package domain

import (
	"fmt"
	"time"
)

// Kind identifies one of the three entity collections. Ids are only unique
// within a kind, so every external reference carries its kind alongside.
type Kind string

const (
	KindEvent  Kind = "event"
	KindArtist Kind = "artist"
	KindVenue  Kind = "venue"
)

// ParseKind validates a kind received from the outside (URL segments,
// persisted payloads).
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindEvent, KindArtist, KindVenue:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown entity kind: %q", s)
}

// SavedItem is one entry in a user's saved ledger. Uniqueness is enforced by
// the (ID, Type) pair; toggling an existing pair removes it.
type SavedItem struct {
	ID      string    `json:"id"`
	Type    Kind      `json:"type"`
	SavedAt time.Time `json:"savedAt"`
}

// Preference kinds. Preferences describe taste, not entities, so they use
// their own type space.
const (
	PrefGenre    = "genre"
	PrefCategory = "category"
	PrefLocation = "location"
)

// Preference is one entry in a user's preference ledger. Uniqueness is
// enforced by the (Type, Value) pair.
type Preference struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
}
