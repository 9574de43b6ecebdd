package handlers

import (
	"errors"
	"net/http"

	"github.com/fadzzz/timesheet/middleware"
	"github.com/fadzzz/timesheet/models"
	"github.com/fadzzz/timesheet/store"

	"github.com/go-chi/chi/v5"
)

type ClientsHandler struct {
	store *store.Store
}

func NewClientsHandler(st *store.Store) *ClientsHandler {
	return &ClientsHandler{store: st}
}

// List returns the session user's clients, seeding the defaults on a
// first empty load.
func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	clients, source, err := h.store.ListClients(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load clients")
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clients": clients,
		"source":  source,
	})
}

type createClientRequest struct {
	Name string `json:"name"`
}

// Create adds a client, rejecting empty and case-insensitively
// duplicate names.
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, source, err := h.store.CreateClient(user.ID, req.Name)
	switch {
	case errors.Is(err, store.ErrEmptyClientName):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, store.ErrDuplicateClient):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to create client")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"client": created,
		"source": source,
	})
}

// Delete removes a client by identifier.
func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	source, err := h.store.DeleteClient(user.ID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete client")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": id,
		"source":  source,
	})
}
