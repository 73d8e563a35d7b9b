package handlers

import (
	"github.com/gorilla/mux"

	"smartbank-go/middleware"
	"smartbank-go/store"
	"smartbank-go/utils"
)

// NewRouter wires the HTTP surface. Protected routes sit behind the bearer
// token guard, which loads the current user into the request context.
func NewRouter(h *Handlers, tokens *utils.TokenService, st *store.Store) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Root).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/register", h.Register).Methods("POST")
	api.HandleFunc("/auth/login", h.Login).Methods("POST")

	protected := api.PathPrefix("/users/me").Subrouter()
	protected.Use(middleware.Auth(tokens, st))
	protected.HandleFunc("", h.GetProfile).Methods("GET")
	protected.HandleFunc("/kyc", h.SubmitKYC).Methods("POST")
	protected.HandleFunc("/kyc/status", h.GetKYCStatus).Methods("GET")

	return r
}
