package domain

// Event represents a single dated happening in the catalog.
// Cross-references (VenueID, ArtistIDs) are plain string ids resolved by
// lookup at read time; they are not guaranteed to point at existing entities.
type Event struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier within the event collection.
	// Example: "evt1"
	ID string `json:"id"`

	// Name is the display name. Also the target of name-based resolution
	// from Artist.PopularEvents.
	Name string `json:"name"`

	// ─────────────────────────────
	// Scheduling & pricing
	// ─────────────────────────────

	// Date is an ISO-8601 timestamp string. It is stored as text and only
	// parsed when sorting by date.
	// Example: "2025-04-15T19:00:00"
	Date string `json:"date"`

	// Price is the ticket price in dollars. Never negative.
	Price float64 `json:"price"`

	// ─────────────────────────────
	// Cross-references
	// ─────────────────────────────

	// VenueID references Venue.ID. May be a dangling reference.
	VenueID string `json:"venueId"`

	// ArtistIDs references Artist.ID, in billing order. May contain
	// dangling references.
	ArtistIDs []string `json:"artistIds"`

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	// Description is free text, searched together with Name.
	Description string `json:"description"`

	// Image is an unvalidated URI reference.
	Image string `json:"image"`

	// Category is drawn from an open set. Example: "Concert"
	Category string `json:"category"`

	// Tags is an unordered label set, order preserved for display.
	Tags []string `json:"tags"`
}
