package query

import (
	"testing"

	"github.com/MrSnakeDoc/marquee/internal/domain"
)

func TestToggleSortThreeState(t *testing.T) {
	s := NewSelection()

	s.ToggleSort(domain.SortName)
	if s.Sort != domain.SortName {
		t.Fatalf("first toggle: Sort = %q, want name", s.Sort)
	}

	// Same key again clears.
	s.ToggleSort(domain.SortName)
	if s.Sort != domain.SortNone {
		t.Fatalf("second toggle: Sort = %q, want cleared", s.Sort)
	}

	// Different key replaces, not stacks.
	s.ToggleSort(domain.SortDate)
	s.ToggleSort(domain.SortPrice)
	if s.Sort != domain.SortPrice {
		t.Errorf("replace: Sort = %q, want price", s.Sort)
	}
}

func TestSortToggleRevertsToFilterOrder(t *testing.T) {
	e := testEngine()
	s := NewSelection()

	baseline := e.Events(s.Input())

	s.ToggleSort(domain.SortPrice)
	sorted := e.Events(s.Input())
	if sorted[0].ID != "evt2" {
		t.Fatalf("price sort first = %s, want evt2", sorted[0].ID)
	}

	s.ToggleSort(domain.SortPrice)
	reverted := e.Events(s.Input())
	for i := range baseline {
		if reverted[i].ID != baseline[i].ID {
			t.Fatalf("order after clearing sort diverges at %d: %s vs %s",
				i, reverted[i].ID, baseline[i].ID)
		}
	}
}

func TestToggleFilterMultiSelect(t *testing.T) {
	s := NewSelection()

	s.ToggleFilter(domain.FilterCategory, "Concert")
	s.ToggleFilter(domain.FilterCategory, "Festival")
	s.ToggleFilter(domain.FilterTags, "rock")
	if s.ActiveFilterCount() != 3 {
		t.Fatalf("ActiveFilterCount = %d, want 3", s.ActiveFilterCount())
	}

	// Re-selecting an active value removes only that value.
	s.ToggleFilter(domain.FilterCategory, "Concert")
	if s.ActiveFilterCount() != 2 {
		t.Fatalf("ActiveFilterCount after removal = %d, want 2", s.ActiveFilterCount())
	}
	if vals := s.Filters[domain.FilterCategory]; len(vals) != 1 || vals[0] != "Festival" {
		t.Errorf("category values = %v, want [Festival]", vals)
	}
}

func TestClearFilters(t *testing.T) {
	s := NewSelection()
	s.Term = "rock"
	s.ToggleSort(domain.SortName)
	s.ToggleFilter(domain.FilterTags, "rock")

	s.ClearFilters()
	if s.ActiveFilterCount() != 0 {
		t.Error("ClearFilters left active values")
	}
	if s.Term != "rock" || s.Sort != domain.SortName {
		t.Error("ClearFilters must not touch term or sort")
	}
}
