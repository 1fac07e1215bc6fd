package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/marquee/internal/domain"
	"github.com/MrSnakeDoc/marquee/internal/query"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// filterParamPrefix introduces filter query parameters, e.g.
// ?filter.category=Concert&filter.category=Festival&filter.genre=Pop
const filterParamPrefix = "filter."

// parseInput builds a query pipeline input from the request's q, sort and
// filter.* parameters. Unknown filter categories pass through; they simply
// never match.
func parseInput(r *http.Request) query.Input {
	values := r.URL.Query()

	filters := domain.Filters{}
	for key, vals := range values {
		if !strings.HasPrefix(key, filterParamPrefix) {
			continue
		}
		category := strings.TrimPrefix(key, filterParamPrefix)
		if category == "" {
			continue
		}
		for _, v := range vals {
			if v = strings.TrimSpace(v); v != "" {
				filters[category] = append(filters[category], v)
			}
		}
	}

	return query.Input{
		Term:    strings.TrimSpace(values.Get("q")),
		Filters: filters,
		Sort:    domain.SortKey(strings.TrimSpace(values.Get("sort"))),
	}
}
