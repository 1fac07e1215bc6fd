package mw

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/marquee/internal/logger"
	redisstore "github.com/MrSnakeDoc/marquee/internal/store/redis"
)

// UserHeader carries the caller's identity. There is no real
// authentication; the header is the session cookie analog of the demo
// frontend this API serves.
const UserHeader = "X-User"

// User extracts the caller identity from the request.
func User(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(UserHeader))
}

// RequireSession rejects requests whose user has no active session.
func RequireSession(store *redisstore.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := User(r)
			if user == "" {
				deny(w, "missing "+UserHeader+" header")
				return
			}

			loggedIn, err := store.IsLoggedIn(r.Context(), user)
			if err != nil {
				log.Warn("failed to check session",
					logger.String("user", user),
					logger.Error(err))
				deny(w, "session check failed")
				return
			}
			if !loggedIn {
				deny(w, "not signed in")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
