package handlers

import (
	"github.com/gorilla/mux"
)

// NewRouter wires the expiry endpoints
func NewRouter(h *ExpiryHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, AccessLogMiddleware)

	r.HandleFunc("/healthz", h.HealthHandler).Methods("GET")

	// Expiry snapshot endpoints
	r.HandleFunc("/api/expiry", h.SnapshotHandler).Methods("GET")
	r.HandleFunc("/api/expiry/{date}", h.SnapshotHandler).Methods("GET")

	// Contract letter endpoints
	r.HandleFunc("/api/contracts", h.TableHandler).Methods("GET")
	r.HandleFunc("/api/contracts/{letter}", h.LetterHandler).Methods("GET")

	return r
}
