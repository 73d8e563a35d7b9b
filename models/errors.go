package models

import (
	"errors"
	"strings"
)

// Request-local error kinds. Handlers map these to HTTP statuses; none are
// retried and none are fatal to the process.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateResource   = errors.New("resource already exists")
	ErrDuplicateSubmission = errors.New("KYC already submitted")
	ErrAuthentication      = errors.New("authentication failed")
	ErrInvalidDocument     = errors.New("invalid document upload")
)

// ValidationErrors collects independent rule violations for one request.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}
