package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"smartbank-go/models"
	"smartbank-go/utils"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		sendError(w, http.StatusUnprocessableEntity, "Validation failed", utils.FormatValidationError(err))
		return
	}

	if violations := utils.ValidatePasswordStrength(req.Password); len(violations) > 0 {
		sendError(w, http.StatusUnprocessableEntity, "Validation failed",
			models.ValidationErrors(violations))
		return
	}

	dob, err := utils.ParseISODate(req.DateOfBirth)
	if err != nil {
		sendError(w, http.StatusUnprocessableEntity, "Validation failed",
			models.ValidationErrors{"date_of_birth must be an ISO date (YYYY-MM-DD)"})
		return
	}
	if !utils.IsAdult(dob, time.Now()) {
		sendError(w, http.StatusUnprocessableEntity, "Validation failed",
			models.ValidationErrors{"Must be at least 18 years old"})
		return
	}

	if _, err := h.store.FindUserByEmail(req.Email); err == nil {
		sendError(w, http.StatusBadRequest, "Email already registered", nil)
		return
	}
	if _, err := h.store.FindUserByPhone(req.PhoneNumber); err == nil {
		sendError(w, http.StatusBadRequest, "Phone number already registered", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to hash password", nil)
		return
	}

	user := models.User{
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  req.DateOfBirth,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
	}

	if err := h.store.CreateUser(&user); err != nil {
		// Unique-index race: a concurrent register slipped past the pre-check.
		if errors.Is(err, models.ErrDuplicateResource) {
			sendError(w, http.StatusBadRequest, "Email or phone number already registered", nil)
			return
		}
		log.Printf("Failed to create user %s: %v", req.Email, err)
		sendError(w, http.StatusInternalServerError, "Failed to create user", nil)
		return
	}

	log.Printf("User registered: id=%s email=%s", user.ID, user.Email)
	sendJSON(w, http.StatusCreated, user)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
		return
	}

	user, err := h.store.FindUserByEmail(req.Email)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Printf("Failed login attempt for %s", req.Email)
		sendError(w, http.StatusUnauthorized, "Incorrect email or password", nil)
		return
	}

	if !user.IsActive {
		log.Printf("Login attempt for inactive user: %s", req.Email)
		sendError(w, http.StatusForbidden, "Account is deactivated", nil)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("Failed to issue token for %s: %v", req.Email, err)
		sendError(w, http.StatusInternalServerError, "Failed to generate token", nil)
		return
	}

	sendJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
