package query

import "github.com/MrSnakeDoc/marquee/internal/domain"

// Selection is the mutable toggle state a caller accumulates between engine
// runs: at most one sort key plus multi-select filters. The engine itself
// stays stateless; this type only encodes the toggle contract.
type Selection struct {
	Term    string
	Filters domain.Filters
	Sort    domain.SortKey
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{Filters: make(domain.Filters)}
}

// ToggleSort sets the sort key, or clears it when the key is already
// active. Selecting a different key replaces the current one.
func (s *Selection) ToggleSort(key domain.SortKey) {
	if s.Sort == key {
		s.Sort = domain.SortNone
		return
	}
	s.Sort = key
}

// ToggleFilter adds a value to a filter category, or removes it when
// already selected.
func (s *Selection) ToggleFilter(category, value string) {
	if s.Filters == nil {
		s.Filters = make(domain.Filters)
	}
	selected := s.Filters[category]
	for i, v := range selected {
		if v == value {
			s.Filters[category] = append(selected[:i:i], selected[i+1:]...)
			return
		}
	}
	s.Filters[category] = append(selected, value)
}

// ClearFilters drops every active filter value, keeping term and sort.
func (s *Selection) ClearFilters() {
	s.Filters = make(domain.Filters)
}

// ActiveFilterCount returns the number of selected filter values across all
// categories.
func (s *Selection) ActiveFilterCount() int {
	n := 0
	for _, values := range s.Filters {
		n += len(values)
	}
	return n
}

// Input snapshots the selection for an engine run.
func (s *Selection) Input() Input {
	return Input{Term: s.Term, Filters: s.Filters, Sort: s.Sort}
}
