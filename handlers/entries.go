package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fadzzz/timesheet/middleware"
	"github.com/fadzzz/timesheet/models"
	"github.com/fadzzz/timesheet/store"
	"github.com/fadzzz/timesheet/timecalc"

	"github.com/go-chi/chi/v5"
)

type EntriesHandler struct {
	store *store.Store
}

func NewEntriesHandler(st *store.Store) *EntriesHandler {
	return &EntriesHandler{store: st}
}

type entriesResponse struct {
	Entries []models.TimeEntry `json:"entries"`
	Source  store.Source       `json:"source"`
}

// List returns the session user's entries, optionally bounded by
// inclusive start/end dates.
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	var (
		entries []models.TimeEntry
		source  store.Source
		err     error
	)
	if start != "" || end != "" {
		if _, perr := timecalc.ParseDate(start); perr != nil {
			writeError(w, http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD")
			return
		}
		if _, perr := timecalc.ParseDate(end); perr != nil {
			writeError(w, http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD")
			return
		}
		entries, source, err = h.store.ListEntriesByDateRange(user.ID, start, end)
	} else {
		entries, source, err = h.store.ListEntries(user.ID)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load entries")
		return
	}
	if entries == nil {
		entries = []models.TimeEntry{}
	}
	writeJSON(w, http.StatusOK, entriesResponse{Entries: entries, Source: source})
}

type createEntryRequest struct {
	Date        string  `json:"date"`
	Client      string  `json:"client"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
}

// Create validates and records a new entry. Invalid input is reported
// back, never silently corrected.
func (h *EntriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry := models.TimeEntry{
		UserID:      user.ID,
		Date:        req.Date,
		Client:      req.Client,
		Hours:       req.Hours,
		Description: req.Description,
	}

	created, source, err := h.store.CreateEntry(entry)
	switch {
	case errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidHours),
		errors.Is(err, models.ErrEmptyClient):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to create entry")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"entry":  created,
		"source": source,
	})
}

// Delete removes one of the session user's entries by identifier.
func (h *EntriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}

	source, err := h.store.DeleteEntry(user.ID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete entry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": id,
		"source":  source,
	})
}
