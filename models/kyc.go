package models

import "strings"

// KYC review statuses. "not_submitted" is virtual: it is reported when no
// record exists for the user and is never stored.
const (
	KYCStatusNotSubmitted = "not_submitted"
	KYCStatusPending      = "pending"
	KYCStatusVerified     = "verified"
	KYCStatusRejected     = "rejected"
)

const (
	DocumentTypePassport       = "passport"
	DocumentTypeDrivingLicense = "driving_license"
	DocumentTypeNationalID     = "national_id"
)

// KYCDocument is a single identity-document submission. Status is mutated
// only by an external review process. Uploaded bytes are validated and
// discarded; only the client-supplied filenames persist.
type KYCDocument struct {
	ID              string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID          string  `json:"user_id" gorm:"type:varchar(36);index;not null"`
	DocumentType    string  `json:"document_type" gorm:"type:varchar(20);not null"`
	DocumentNumber  string  `json:"document_number" gorm:"not null"`
	IssuedDate      string  `json:"document_issued_date" gorm:"type:varchar(10);not null"`
	ExpiryDate      string  `json:"document_expiry_date" gorm:"type:varchar(10);not null"`
	Status          string  `json:"status" gorm:"type:varchar(20);default:pending"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	SubmittedAt     string  `json:"submitted_at" gorm:"type:varchar(30)"`
	VerifiedAt      *string `json:"verified_at,omitempty" gorm:"type:varchar(30)"`
	FrontFilename   string  `json:"front_filename,omitempty"`
	BackFilename    string  `json:"back_filename,omitempty"`
}

// KYCStatusResponse is the masked summary returned by the status endpoint.
// All pointer fields are null when no submission exists.
type KYCStatusResponse struct {
	KYCStatus      string  `json:"kyc_status"`
	SubmittedAt    *string `json:"submitted_at"`
	VerifiedAt     *string `json:"verified_at"`
	DocumentType   *string `json:"document_type"`
	DocumentNumber *string `json:"document_number"`
}

func ValidDocumentType(t string) bool {
	switch t {
	case DocumentTypePassport, DocumentTypeDrivingLicense, DocumentTypeNationalID:
		return true
	}
	return false
}

// MaskDocumentNumber hides the interior of a document number for display.
// Numbers of 4 characters or fewer are fully masked.
func MaskDocumentNumber(number string) string {
	if len(number) <= 4 {
		return "****"
	}
	return number[:2] + strings.Repeat("*", len(number)-4) + number[len(number)-2:]
}
