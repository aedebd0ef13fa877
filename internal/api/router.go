package api

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/peterkahumu/fastapi-todo-project/internal/store"
)

// NewRouter builds the API routes and applies common middleware.
// The {$} suffix pins the trailing-slash routes to an exact match.
func NewRouter(s *store.Store, logger *log.Logger) http.Handler {
	h := &Handler{Store: s, Logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /todos", h.List)
	mux.HandleFunc("GET /todo/{todo_id}", h.Get)
	mux.HandleFunc("POST /todos/{$}", h.Create)
	mux.HandleFunc("PATCH /todo/{todo_id}/{$}", h.Update)
	mux.HandleFunc("DELETE /todo/{todo_id}/{$}", h.Delete)

	var root http.Handler = mux
	root = panicRecoveryMiddleware(root, logger)
	root = accessLogMiddleware(root, logger)
	root = requestIDMiddleware(root)
	return root
}
