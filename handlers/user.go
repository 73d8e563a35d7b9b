package handlers

import (
	"net/http"

	"smartbank-go/middleware"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		sendError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	sendJSON(w, http.StatusOK, user)
}
