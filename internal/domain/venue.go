package domain

// Venue represents a physical location hosting events.
type Venue struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier within the venue collection.
	// Example: "ven1"
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// ─────────────────────────────
	// Location & capacity
	// ─────────────────────────────

	// Location is a free-text city or region label. Example: "New York"
	Location string `json:"location"`

	// Address is the full street address.
	Address string `json:"address"`

	// Capacity is the maximum audience size. Always positive.
	Capacity int `json:"capacity"`

	// ─────────────────────────────
	// Cross-references
	// ─────────────────────────────

	// EventIDs references Event.ID. May contain dangling references and is
	// not guaranteed consistent with Event.VenueID.
	EventIDs []string `json:"eventIds"`

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	Description string   `json:"description"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
	Tags        []string `json:"tags"`
}
