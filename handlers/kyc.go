package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"smartbank-go/middleware"
	"smartbank-go/models"
	"smartbank-go/utils"
)

// Intake limits for uploaded documents. Bytes are validated then discarded;
// only the filename is persisted.
const maxDocumentBytes = 2 << 20

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

func (h *Handlers) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		sendError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid multipart request", nil)
		return
	}

	documentType := utils.SanitizeString(r.FormValue("document_type"))
	documentNumber := utils.SanitizeString(r.FormValue("document_number"))
	issuedDate := utils.SanitizeString(r.FormValue("document_issued_date"))
	expiryDate := utils.SanitizeString(r.FormValue("document_expiry_date"))

	if violations := validateKYCFields(documentType, documentNumber, issuedDate, expiryDate); len(violations) > 0 {
		sendError(w, http.StatusBadRequest, "Validation failed", violations)
		return
	}

	front, frontHeader, err := r.FormFile("document_front")
	if err != nil {
		sendError(w, http.StatusBadRequest, "Front document is required", nil)
		return
	}
	defer front.Close()

	if err := checkDocumentFile(frontHeader, "Front"); err != nil {
		sendError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	backFilename := ""
	back, backHeader, err := r.FormFile("document_back")
	if err == nil {
		defer back.Close()
		if err := checkDocumentFile(backHeader, "Back"); err != nil {
			sendError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		backFilename = backHeader.Filename
	}

	doc := models.KYCDocument{
		UserID:         user.ID,
		DocumentType:   documentType,
		DocumentNumber: documentNumber,
		IssuedDate:     issuedDate,
		ExpiryDate:     expiryDate,
		FrontFilename:  frontHeader.Filename,
		BackFilename:   backFilename,
	}

	if err := h.store.CreateKYCSubmission(&doc); err != nil {
		if errors.Is(err, models.ErrDuplicateSubmission) {
			sendError(w, http.StatusBadRequest, "KYC already submitted", nil)
			return
		}
		log.Printf("Failed to create KYC submission for user %s: %v", user.ID, err)
		sendError(w, http.StatusInternalServerError, "Failed to submit KYC", nil)
		return
	}

	log.Printf("KYC submitted: user=%s document_type=%s", user.ID, doc.DocumentType)
	sendJSON(w, http.StatusCreated, doc)
}

func (h *Handlers) GetKYCStatus(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r)
	if user == nil {
		sendError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	doc, err := h.store.FindLatestKYCForUser(user.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			sendJSON(w, http.StatusOK, models.KYCStatusResponse{
				KYCStatus: models.KYCStatusNotSubmitted,
			})
			return
		}
		sendError(w, http.StatusInternalServerError, "Database error", nil)
		return
	}

	masked := models.MaskDocumentNumber(doc.DocumentNumber)
	sendJSON(w, http.StatusOK, models.KYCStatusResponse{
		KYCStatus:      doc.Status,
		SubmittedAt:    &doc.SubmittedAt,
		VerifiedAt:     doc.VerifiedAt,
		DocumentType:   &doc.DocumentType,
		DocumentNumber: &masked,
	})
}

func validateKYCFields(documentType, documentNumber, issuedDate, expiryDate string) models.ValidationErrors {
	var violations models.ValidationErrors

	if !models.ValidDocumentType(documentType) {
		violations = append(violations, "Document type must be passport, driving_license, or national_id")
	}
	if documentNumber == "" {
		violations = append(violations, "Document number is required")
	}

	issued, issuedErr := utils.ParseISODate(issuedDate)
	if issuedErr != nil {
		violations = append(violations, "Issued date must be an ISO date (YYYY-MM-DD)")
	}
	expiry, expiryErr := utils.ParseISODate(expiryDate)
	if expiryErr != nil {
		violations = append(violations, "Expiry date must be an ISO date (YYYY-MM-DD)")
	}
	if issuedErr == nil && expiryErr == nil {
		if !expiry.After(issued) {
			violations = append(violations, "Expiry date must be after issue date")
		}
		today := time.Now().Truncate(24 * time.Hour)
		if !expiry.After(today) {
			violations = append(violations, "Document has expired")
		}
	}

	return violations
}

func checkDocumentFile(header *multipart.FileHeader, side string) error {
	if !allowedContentTypes[header.Header.Get("Content-Type")] {
		return errors.New(side + " document must be JPG, PNG, or PDF")
	}
	if header.Size > maxDocumentBytes {
		return errors.New(side + " document too large (max 2MB)")
	}
	return nil
}
