// Package api exposes the to-do collection over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/peterkahumu/fastapi-todo-project/internal/store"
	"github.com/peterkahumu/fastapi-todo-project/internal/todo"
)

// Handler holds the shared store and serves the five to-do endpoints.
type Handler struct {
	Store  *store.Store
	Logger *log.Logger
}

type errorDetail struct {
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// errorResponse mirrors the {"detail": ...} failure body: a plain
// string for 400/404/405, a list of field errors for 422.
type errorResponse struct {
	Detail any `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Detail: msg})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verrs todo.ValidationErrors
	if !errors.As(err, &verrs) {
		var verr *todo.ValidationError
		if errors.As(err, &verr) {
			verrs = todo.ValidationErrors{verr}
		} else {
			verrs = todo.ValidationErrors{{Err: err}}
		}
	}
	details := make([]errorDetail, 0, len(verrs))
	for _, ve := range verrs {
		details = append(details, errorDetail{Path: ve.Path, Message: ve.Err.Error()})
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: details})
}

// pathID parses the {todo_id} path segment. A non-integer id is a 422,
// matching how typed path parameters fail at the boundary.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("todo_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: []errorDetail{
			{Path: "todo_id", Message: "must be an integer"},
		}})
		return 0, false
	}
	return id, true
}

// List handles GET /todos with an optional first_n query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var firstN *int
	if raw := r.URL.Query().Get("first_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: []errorDetail{
				{Path: "first_n", Message: "must be an integer"},
			}})
			return
		}
		firstN = &n
	}

	todos, err := h.Store.List(firstN)
	if err != nil {
		if errors.Is(err, store.ErrNegativeLimit) {
			writeError(w, http.StatusBadRequest, "Index must be a positive number.")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, todos)
}

// Get handles GET /todo/{todo_id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	t, err := h.Store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Todo not found.")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Create handles POST /todos/.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	req, err := todo.ValidateCreate(raw)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	created := h.Store.Create(req)
	h.Logger.Info("created todo", "todo_id", created.ID, "priority", created.Priority.String())
	writeJSON(w, http.StatusOK, created)
}

// Update handles PATCH /todo/{todo_id}/. The body is validated before
// the id lookup, so an invalid patch against a missing id is a 422.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	patch, err := todo.ValidateUpdate(raw)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	updated, err := h.Store.Update(id, patch)
	if err != nil {
		writeError(w, http.StatusNotFound, "Todo not found.")
		return
	}
	h.Logger.Info("updated todo", "todo_id", updated.ID)
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /todo/{todo_id}/.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	removed, err := h.Store.Delete(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Todo not found.")
		return
	}
	h.Logger.Info("deleted todo", "todo_id", removed.ID)
	writeJSON(w, http.StatusOK, removed)
}
