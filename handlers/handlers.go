package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"smartbank-go/config"
	"smartbank-go/store"
	"smartbank-go/utils"
)

// ErrorResponse is the standardized error envelope for all failures.
type ErrorResponse struct {
	Status    int         `json:"status"`
	Error     string      `json:"error"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func sendError(w http.ResponseWriter, status int, err string, details interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:    status,
		Error:     err,
		Details:   details,
		Timestamp: time.Now(),
	})
}

func sendJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type Handlers struct {
	store  *store.Store
	tokens *utils.TokenService
	config *config.Config
}

func NewHandlers(st *store.Store, tokens *utils.TokenService, cfg *config.Config) *Handlers {
	return &Handlers{
		store:  st,
		tokens: tokens,
		config: cfg,
	}
}

func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "SmartBank API",
		"status":  "running",
	})
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
		"service":   "SmartBank",
		"version":   "1.0.0",
	})
}
