package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/marquee/internal/httpserver/deps"
	"github.com/MrSnakeDoc/marquee/internal/httpserver/mw"
	"github.com/MrSnakeDoc/marquee/internal/logger"
	redisstore "github.com/MrSnakeDoc/marquee/internal/store/redis"
)

// Minimum password lengths. The password is checked for shape and then
// discarded; no credential is ever stored.
const (
	minSignInPassword = 6
	minJoinPassword   = 8
)

type signInRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type signInResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Token    string `json:"token"`
}

// SignIn opens a session for the caller. Any plausible email with a
// long-enough password is accepted; the token is an opaque id with no
// cryptographic meaning.
func SignIn(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)
		if user == "" {
			writeError(w, http.StatusBadRequest, "missing "+mw.UserHeader+" header")
			return
		}

		var req signInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		email := strings.TrimSpace(req.Email)
		if email == "" {
			email = user
		}
		if !strings.Contains(email, "@") {
			writeError(w, http.StatusBadRequest, "invalid email")
			return
		}
		if len(req.Password) < minSignInPassword {
			writeError(w, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = "User"
		}

		token := uuid.NewString()
		profile := redisstore.Profile{
			Email:         email,
			Name:          name,
			Notifications: true,
		}
		if err := store.SignIn(r.Context(), user, profile, token); err != nil {
			d.Logger.Error("failed to open session",
				logger.String("user", user),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to sign in")
			return
		}

		d.Logger.Info("user signed in",
			logger.String("user", user))

		writeJSON(w, http.StatusOK, signInResponse{LoggedIn: true, Token: token})
	}
}

// Join creates an account. With no real backend it behaves like SignIn
// but insists on a name and a longer password.
func Join(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)
		if user == "" {
			writeError(w, http.StatusBadRequest, "missing "+mw.UserHeader+" header")
			return
		}

		var req signInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		email := strings.TrimSpace(req.Email)
		name := strings.TrimSpace(req.Name)
		if email == "" || !strings.Contains(email, "@") {
			writeError(w, http.StatusBadRequest, "invalid email")
			return
		}
		if name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		if len(req.Password) < minJoinPassword {
			writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
			return
		}

		token := uuid.NewString()
		profile := redisstore.Profile{
			Email:         email,
			Name:          name,
			Notifications: true,
		}
		if err := store.SignIn(r.Context(), user, profile, token); err != nil {
			d.Logger.Error("failed to create account",
				logger.String("user", user),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to join")
			return
		}

		d.Logger.Info("user joined",
			logger.String("user", user))

		writeJSON(w, http.StatusCreated, signInResponse{LoggedIn: true, Token: token})
	}
}

// Logout drops the session flag. Ledgers and profile fields survive across
// logins, like browser localStorage would.
func Logout(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		user := mw.User(r)
		if user == "" {
			writeError(w, http.StatusBadRequest, "missing "+mw.UserHeader+" header")
			return
		}

		if err := store.SignOut(r.Context(), user); err != nil {
			d.Logger.Error("failed to close session",
				logger.String("user", user),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to log out")
			return
		}

		d.Logger.Info("user logged out",
			logger.String("user", user))

		writeJSON(w, http.StatusOK, signInResponse{LoggedIn: false})
	}
}
