package scheduler

import (
	"testing"
	"time"

	"github.com/MrSnakeDoc/marquee/internal/catalog"
	"github.com/MrSnakeDoc/marquee/internal/domain"
)

func TestPruneSavedItems(t *testing.T) {
	cat := catalog.New()
	cat.Replace(
		[]*domain.Event{{ID: "evt1", Name: "Sunset Sessions"}},
		[]*domain.Artist{{ID: "art1", Name: "The Wavelengths"}},
		nil,
	)

	now := time.Now()
	items := []domain.SavedItem{
		{ID: "evt1", Type: domain.KindEvent, SavedAt: now},
		{ID: "evt9", Type: domain.KindEvent, SavedAt: now},
		{ID: "art1", Type: domain.KindArtist, SavedAt: now},
		{ID: "art1", Type: domain.KindEvent, SavedAt: now}, // wrong kind, must not resolve
	}

	kept, dropped := pruneSavedItems(items, cat.Contains)

	if dropped != 2 {
		t.Errorf("Expected 2 dropped, got %d", dropped)
	}
	if len(kept) != 2 {
		t.Fatalf("Expected 2 kept, got %d", len(kept))
	}
	if kept[0].ID != "evt1" || kept[1].ID != "art1" {
		t.Errorf("Expected [evt1 art1] in order, got [%s %s]", kept[0].ID, kept[1].ID)
	}
}

func TestPruneSavedItems_NothingToPrune(t *testing.T) {
	cat := catalog.New()
	cat.Replace([]*domain.Event{{ID: "evt1", Name: "Sunset Sessions"}}, nil, nil)

	items := []domain.SavedItem{{ID: "evt1", Type: domain.KindEvent}}
	kept, dropped := pruneSavedItems(items, cat.Contains)

	if dropped != 0 {
		t.Errorf("Expected 0 dropped, got %d", dropped)
	}
	if len(kept) != 1 {
		t.Errorf("Expected 1 kept, got %d", len(kept))
	}
}

func TestPruneEventIDs(t *testing.T) {
	cat := catalog.New()
	cat.Replace(
		[]*domain.Event{
			{ID: "evt1", Name: "Sunset Sessions"},
			{ID: "evt2", Name: "Electric Nights"},
		},
		[]*domain.Artist{{ID: "art1", Name: "The Wavelengths"}},
		nil,
	)

	ids := []string{"evt2", "gone", "evt1", "art1"} // art1 is not an event

	kept, dropped := pruneEventIDs(ids, cat.Contains)

	if dropped != 2 {
		t.Errorf("Expected 2 dropped, got %d", dropped)
	}
	if len(kept) != 2 || kept[0] != "evt2" || kept[1] != "evt1" {
		t.Errorf("Expected [evt2 evt1] in order, got %v", kept)
	}
}
