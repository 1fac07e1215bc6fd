package seed

// Document is the top-level structure of a catalog YAML file: three flat
// entity lists. File order is catalog order.
type Document struct {
	Events  []EventEntry  `yaml:"events"`
	Artists []ArtistEntry `yaml:"artists"`
	Venues  []VenueEntry  `yaml:"venues"`
}

// EventEntry is one event as written in the seed file.
type EventEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Date        string   `yaml:"date"`
	VenueID     string   `yaml:"venueId"`
	ArtistIDs   []string `yaml:"artistIds"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Price       float64  `yaml:"price"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
}

// ArtistEntry is one artist as written in the seed file.
type ArtistEntry struct {
	ID            string      `yaml:"id"`
	Name          string      `yaml:"name"`
	Genre         string      `yaml:"genre"`
	Description   string      `yaml:"description"`
	Image         string      `yaml:"image"`
	PopularEvents []string    `yaml:"popularEvents"`
	EventIDs      []string    `yaml:"eventIds"`
	SocialLinks   SocialEntry `yaml:"socialLinks"`
	Tags          []string    `yaml:"tags"`
}

// SocialEntry holds the optional social handles of an artist entry.
type SocialEntry struct {
	Instagram string `yaml:"instagram"`
	Twitter   string `yaml:"twitter"`
	Website   string `yaml:"website"`
}

// VenueEntry is one venue as written in the seed file.
type VenueEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Location    string   `yaml:"location"`
	Address     string   `yaml:"address"`
	Capacity    int      `yaml:"capacity"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Amenities   []string `yaml:"amenities"`
	EventIDs    []string `yaml:"eventIds"`
	Tags        []string `yaml:"tags"`
}
