// Package server is a small development implementation of the tasks API.
// It serves the same routes the client talks to, backed by SQLite.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/thenoetrevino/taskdesk/internal/database"
)

// Server holds the handlers' dependencies
type Server struct {
	store  database.DataStore
	tokens *TokenIssuer
	router *mux.Router
}

// New wires the routes over store, signing tokens with tokens
func New(store database.DataStore, tokens *TokenIssuer) *Server {
	s := &Server{
		store:  store,
		tokens: tokens,
		router: mux.NewRouter(),
	}
	s.registerRoutes()
	return s
}

// ServeHTTP makes Server an http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.router.Use(logRequests)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, newStatusTextError(http.StatusNotFound))
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, newStatusTextError(http.StatusMethodNotAllowed))
	})

	auth := s.router.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	auth.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	tasks := s.router.PathPrefix("/api/tasks").Subrouter()
	tasks.Use(s.requireAuth)
	tasks.HandleFunc("", s.handleListTasks).Methods(http.MethodGet)
	tasks.HandleFunc("", s.handleCreateTask).Methods(http.MethodPost)
	tasks.HandleFunc("/{taskID:[0-9]+}", s.handleUpdateTask).Methods(http.MethodPut)
	tasks.HandleFunc("/{taskID:[0-9]+}", s.handleDeleteTask).Methods(http.MethodDelete)
	tasks.HandleFunc("/{taskID:[0-9]+}/updateStatus", s.handleUpdateStatus).Methods(http.MethodPatch)
}
