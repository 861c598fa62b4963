package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexedwards/argon2id"
	"github.com/thenoetrevino/taskdesk/internal/database"
)

// handleRegister handles POST /api/auth/register
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}
	creds, err := req.credentials()
	if err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}

	hash, err := argon2id.CreateHash(creds.Password, argon2id.DefaultParams)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		writeError(w, newStatusTextError(http.StatusInternalServerError))
		return
	}

	user, err := s.store.CreateUser(r.Context(), creds.Email, hash)
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			writeError(w, newConflictError(err.Error()))
			return
		}
		slog.Error("failed to create user", "error", err)
		writeError(w, newStatusTextError(http.StatusInternalServerError))
		return
	}

	slog.Info("user registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, map[string]any{"id": user.ID, "email": user.Email})
}

// handleLogin handles POST /api/auth/login and answers {"token": "..."}
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}
	creds, err := req.credentials()
	if err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}

	// Unknown email and wrong password get the same answer
	invalid := newUnauthorizedError("invalid email or password")

	user, err := s.store.GetUserByEmail(r.Context(), creds.Email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			writeError(w, invalid)
			return
		}
		slog.Error("failed to fetch user", "error", err)
		writeError(w, newStatusTextError(http.StatusInternalServerError))
		return
	}

	match, err := argon2id.ComparePasswordAndHash(creds.Password, user.PasswordHash)
	if err != nil {
		slog.Error("failed to compare password hash", "error", err)
		writeError(w, newStatusTextError(http.StatusInternalServerError))
		return
	}
	if !match {
		writeError(w, invalid)
		return
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		writeError(w, newStatusTextError(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
