package domain

// SocialLinks holds the optional public handles of an artist.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Artist represents a performer in the catalog.
type Artist struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier within the artist collection.
	// Example: "art2"
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Genre is a single free-form genre label. Example: "Indie Rock"
	Genre string `json:"genre"`

	// ─────────────────────────────
	// Cross-references
	// ─────────────────────────────

	// EventIDs references Event.ID. May contain dangling references and is
	// not guaranteed consistent with Event.ArtistIDs.
	EventIDs []string `json:"eventIds"`

	// PopularEvents lists event display names, not ids. The source data is
	// denormalized this way; entries are resolved by exact name match and
	// may resolve to nothing.
	PopularEvents []string `json:"popularEvents"`

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	Description string      `json:"description"`
	Image       string      `json:"image"`
	SocialLinks SocialLinks `json:"socialLinks,omitempty"`
	Tags        []string    `json:"tags"`
}
