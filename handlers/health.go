package handlers

import (
	"net/http"
	"time"
)

// Health reports liveness; the timestamp mirrors what deploy probes
// expect from the original service.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
