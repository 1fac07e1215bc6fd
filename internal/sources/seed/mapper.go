package seed

import (
	"fmt"

	"github.com/MrSnakeDoc/marquee/internal/domain"
)

// Mapper converts a parsed seed document into domain entities, dropping
// entries that cannot identify themselves. Cross-reference ids are kept
// verbatim even when they dangle: resolution tolerates misses by contract,
// and a seed file is allowed to be internally inconsistent.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts a Document to the three entity collections, preserving file
// order.
func (m *Mapper) Map(doc *Document) ([]*domain.Event, []*domain.Artist, []*domain.Venue, error) {
	events := make([]*domain.Event, 0, len(doc.Events))
	for _, entry := range doc.Events {
		if entry.ID == "" || entry.Name == "" {
			continue
		}
		// Skip entries with a negative price
		if entry.Price < 0 {
			continue
		}
		events = append(events, &domain.Event{
			ID:          entry.ID,
			Name:        entry.Name,
			Date:        entry.Date,
			VenueID:     entry.VenueID,
			ArtistIDs:   entry.ArtistIDs,
			Description: entry.Description,
			Image:       entry.Image,
			Price:       entry.Price,
			Category:    entry.Category,
			Tags:        entry.Tags,
		})
	}

	artists := make([]*domain.Artist, 0, len(doc.Artists))
	for _, entry := range doc.Artists {
		if entry.ID == "" || entry.Name == "" {
			continue
		}
		artists = append(artists, &domain.Artist{
			ID:            entry.ID,
			Name:          entry.Name,
			Genre:         entry.Genre,
			Description:   entry.Description,
			Image:         entry.Image,
			PopularEvents: entry.PopularEvents,
			EventIDs:      entry.EventIDs,
			SocialLinks: domain.SocialLinks{
				Instagram: entry.SocialLinks.Instagram,
				Twitter:   entry.SocialLinks.Twitter,
				Website:   entry.SocialLinks.Website,
			},
			Tags: entry.Tags,
		})
	}

	venues := make([]*domain.Venue, 0, len(doc.Venues))
	for _, entry := range doc.Venues {
		if entry.ID == "" || entry.Name == "" {
			continue
		}
		venues = append(venues, &domain.Venue{
			ID:          entry.ID,
			Name:        entry.Name,
			Location:    entry.Location,
			Address:     entry.Address,
			Capacity:    entry.Capacity,
			Description: entry.Description,
			Image:       entry.Image,
			Amenities:   entry.Amenities,
			EventIDs:    entry.EventIDs,
			Tags:        entry.Tags,
		})
	}

	if len(events) == 0 && len(artists) == 0 && len(venues) == 0 {
		return nil, nil, nil, fmt.Errorf("no valid entities found in catalog document")
	}

	return events, artists, venues, nil
}
