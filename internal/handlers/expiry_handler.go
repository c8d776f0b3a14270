package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/jwaldner/expiry/internal/calendar"
	"github.com/jwaldner/expiry/internal/contracts"
	"github.com/jwaldner/expiry/internal/expiry"
	"github.com/jwaldner/expiry/internal/models"
	"github.com/jwaldner/expiry/internal/services"
)

// ExpiryHandler serves expiry snapshots and the contract table - HTTP layer only
type ExpiryHandler struct {
	requests  *services.RequestService
	snapshots *services.SnapshotService
}

// NewExpiryHandler creates a new expiry handler
func NewExpiryHandler(requests *services.RequestService, snapshots *services.SnapshotService) *ExpiryHandler {
	return &ExpiryHandler{
		requests:  requests,
		snapshots: snapshots,
	}
}

// SnapshotHandler returns the expiry snapshot for today or the requested date
func (h *ExpiryHandler) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	query, err := h.requests.ParseSnapshotRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	snapshot, err := h.snapshots.Snapshot(query.Date, query.Locale)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.SnapshotResponse{
		Success: true,
		Data:    *snapshot,
		Meta:    meta(r, query.Locale.String()),
	})
}

// TableHandler returns the twelve-month contract letter table as JSON or CSV
func (h *ExpiryHandler) TableHandler(w http.ResponseWriter, r *http.Request) {
	query, err := h.requests.ParseTableRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	rows := h.snapshots.Table(query.Locale)

	if query.Format == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="contracts.csv"`)
		if err := gocsv.Marshal(&rows, w); err != nil {
			log.WithField("request_id", RequestID(r)).Errorf("failed to write contract table csv: %v", err)
		}
		return
	}

	writeJSON(w, r, http.StatusOK, models.TableResponse{
		Success: true,
		Data:    rows,
		Meta:    meta(r, query.Locale.String()),
	})
}

// LetterHandler resolves a contract letter to its month and option type
func (h *ExpiryHandler) LetterHandler(w http.ResponseWriter, r *http.Request) {
	l := h.requests.ResolveLocale(r.URL.Query().Get("locale"), r.Header.Get("Accept-Language"))

	info, err := h.snapshots.Letter(mux.Vars(r)["letter"], l)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.LetterResponse{
		Success: true,
		Data:    *info,
		Meta:    meta(r, l.String()),
	})
}

// HealthHandler reports liveness
func (h *ExpiryHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"today":  h.requests.Today().String(),
	})
}

func meta(r *http.Request, localeTag string) models.ResponseMetadata {
	return models.ResponseMetadata{
		Locale:    localeTag,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: RequestID(r),
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrBadRequest),
		errors.Is(err, expiry.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, contracts.ErrUnknownLetter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	entry := log.WithFields(log.Fields{
		"request_id": RequestID(r),
		"path":       r.URL.Path,
		"status":     status,
	})
	if status >= http.StatusInternalServerError {
		entry.Errorf("request failed: %v", err)
	} else {
		entry.Warnf("rejected request: %v", err)
	}

	writeJSON(w, r, status, models.ErrorResponse{
		Success:   false,
		Error:     err.Error(),
		RequestID: RequestID(r),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithField("request_id", RequestID(r)).Errorf("failed to encode response: %v", err)
	}
}
