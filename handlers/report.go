package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/fadzzz/timesheet/middleware"
	"github.com/fadzzz/timesheet/models"
	"github.com/fadzzz/timesheet/store"
	"github.com/fadzzz/timesheet/timecalc"
)

type ReportHandler struct {
	store *store.Store
}

func NewReportHandler(st *store.Store) *ReportHandler {
	return &ReportHandler{store: st}
}

type weekReport struct {
	WeekStart  string             `json:"week_start"`
	WeekEnd    string             `json:"week_end"`
	Label      string             `json:"label"`
	Totals     map[string]float64 `json:"totals"`
	TotalHours float64            `json:"total_hours"`
	Entries    []models.TimeEntry `json:"entries"`
	PrevWeek   string             `json:"prev_week"`
	NextWeek   string             `json:"next_week"`
	Source     store.Source       `json:"source"`
}

// Week reports per-client totals for the Saturday-to-Friday window
// containing the given date (today when absent). The prev/next fields
// let a caller page through weeks without re-deriving from today.
func (h *ReportHandler) Week(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	anchor := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := timecalc.ParseDate(dateStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		anchor = parsed
	}

	weekStart := timecalc.WeekStart(anchor)
	weekEnd := timecalc.WeekEnd(anchor)

	entries, source, err := h.store.ListEntriesByDateRange(
		user.ID,
		timecalc.FormatDate(weekStart),
		timecalc.FormatDate(weekEnd),
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load week entries")
		return
	}
	if entries == nil {
		entries = []models.TimeEntry{}
	}

	totals := make(map[string]float64)
	var totalHours float64
	for _, entry := range entries {
		totals[entry.Client] += entry.Hours
		totalHours += entry.Hours
	}

	writeJSON(w, http.StatusOK, weekReport{
		WeekStart:  timecalc.FormatDate(weekStart),
		WeekEnd:    timecalc.FormatDate(weekEnd),
		Label:      timecalc.FormatDisplayDate(weekStart) + " - " + timecalc.FormatDisplayDate(weekEnd),
		Totals:     totals,
		TotalHours: totalHours,
		Entries:    entries,
		PrevWeek:   timecalc.FormatDate(timecalc.PrevWeek(weekStart)),
		NextWeek:   timecalc.FormatDate(timecalc.NextWeek(weekStart)),
		Source:     source,
	})
}

// ExportCSV streams the user's entries within a date range as CSV.
// The range defaults to the current week window.
func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" && end == "" {
		now := time.Now()
		start = timecalc.FormatDate(timecalc.WeekStart(now))
		end = timecalc.FormatDate(timecalc.WeekEnd(now))
	}
	if _, err := timecalc.ParseDate(start); err != nil {
		writeError(w, http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD")
		return
	}
	if _, err := timecalc.ParseDate(end); err != nil {
		writeError(w, http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD")
		return
	}

	entries, _, err := h.store.ListEntriesByDateRange(user.ID, start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load entries")
		return
	}

	filename := fmt.Sprintf("timesheet_%s_%s.csv", start, end)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	// Write header
	writer.Write([]string{"Date", "Client", "Hours", "Description"})

	// Write data
	for _, entry := range entries {
		writer.Write([]string{
			entry.Date,
			entry.Client,
			fmt.Sprintf("%.2f", entry.Hours),
			entry.Description,
		})
	}
}
