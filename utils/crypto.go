package utils

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const passwordSpecialSet = "!@#$%^&*"

// ValidatePasswordStrength checks every policy rule independently and
// returns one message per violated rule. An empty slice means the password
// is acceptable.
func ValidatePasswordStrength(password string) []string {
	var violations []string

	if len(password) < 8 {
		violations = append(violations, "Password must be at least 8 characters")
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		violations = append(violations, "Password must contain at least one digit")
	}
	if !strings.ContainsAny(password, passwordSpecialSet) {
		violations = append(violations, "Password must contain at least one special character (!@#$%^&*)")
	}

	return violations
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
