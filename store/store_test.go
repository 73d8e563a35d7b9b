package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"smartbank-go/database"
	"smartbank-go/models"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "smartbank.db"))
	require.NoError(t, err)
	return New(db), db
}

func testUser(email, phone string) *models.User {
	return &models.User{
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		FirstName:    "John",
		LastName:     "Doe",
		DateOfBirth:  "1990-01-01",
		Address:      "123 Main St",
		City:         "New York",
		State:        "NY",
		ZipCode:      "10001",
	}
}

func TestCreateAndFindUser(t *testing.T) {
	st, _ := newTestStore(t)

	user := testUser("test@example.com", "+1234567890")
	require.NoError(t, st.CreateUser(user))
	require.NotEmpty(t, user.ID)
	require.NotEmpty(t, user.CreatedAt)
	require.Equal(t, "US", user.Country)
	require.True(t, user.IsActive)
	require.False(t, user.IsVerified)

	byEmail, err := st.FindUserByEmail("test@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	byPhone, err := st.FindUserByPhone("+1234567890")
	require.NoError(t, err)
	require.Equal(t, user.ID, byPhone.ID)

	byID, err := st.FindUserByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "test@example.com", byID.Email)

	_, err = st.FindUserByEmail("missing@example.com")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateUserUniqueness(t *testing.T) {
	st, _ := newTestStore(t)

	require.NoError(t, st.CreateUser(testUser("test@example.com", "+1234567890")))

	err := st.CreateUser(testUser("test@example.com", "+1999999999"))
	require.ErrorIs(t, err, models.ErrDuplicateResource)

	err = st.CreateUser(testUser("other@example.com", "+1234567890"))
	require.ErrorIs(t, err, models.ErrDuplicateResource)
}

func testKYC(userID string) *models.KYCDocument {
	return &models.KYCDocument{
		UserID:         userID,
		DocumentType:   models.DocumentTypePassport,
		DocumentNumber: "AB1234567",
		IssuedDate:     "2020-01-01",
		ExpiryDate:     "2030-01-01",
		FrontFilename:  "front.jpg",
	}
}

func TestCreateKYCSubmissionDuplicateGuard(t *testing.T) {
	st, db := newTestStore(t)

	user := testUser("test@example.com", "+1234567890")
	require.NoError(t, st.CreateUser(user))

	first := testKYC(user.ID)
	require.NoError(t, st.CreateKYCSubmission(first))
	require.NotEmpty(t, first.ID)
	require.Equal(t, models.KYCStatusPending, first.Status)
	require.NotEmpty(t, first.SubmittedAt)

	// Second submission blocked while the first is pending.
	err := st.CreateKYCSubmission(testKYC(user.ID))
	require.ErrorIs(t, err, models.ErrDuplicateSubmission)

	// Still blocked once verified.
	require.NoError(t, db.Model(&models.KYCDocument{}).
		Where("id = ?", first.ID).
		Update("status", models.KYCStatusVerified).Error)
	err = st.CreateKYCSubmission(testKYC(user.ID))
	require.ErrorIs(t, err, models.ErrDuplicateSubmission)

	// A rejected submission does not block a fresh one.
	require.NoError(t, db.Model(&models.KYCDocument{}).
		Where("id = ?", first.ID).
		Update("status", models.KYCStatusRejected).Error)
	second := testKYC(user.ID)
	require.NoError(t, st.CreateKYCSubmission(second))
	require.NotEqual(t, first.ID, second.ID)
}

func TestFindLatestKYCForUser(t *testing.T) {
	st, db := newTestStore(t)

	user := testUser("test@example.com", "+1234567890")
	require.NoError(t, st.CreateUser(user))

	_, err := st.FindLatestKYCForUser(user.ID)
	require.ErrorIs(t, err, models.ErrNotFound)

	first := testKYC(user.ID)
	require.NoError(t, st.CreateKYCSubmission(first))

	// Reject the first and backdate it so ordering is unambiguous.
	require.NoError(t, db.Model(&models.KYCDocument{}).
		Where("id = ?", first.ID).
		Updates(map[string]interface{}{
			"status":       models.KYCStatusRejected,
			"submitted_at": "2020-01-01T00:00:00Z",
		}).Error)

	second := testKYC(user.ID)
	second.DocumentNumber = "CD7654321"
	require.NoError(t, st.CreateKYCSubmission(second))

	latest, err := st.FindLatestKYCForUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)
	require.Equal(t, "CD7654321", latest.DocumentNumber)
}

func TestFindLatestKYCReportsTerminalStates(t *testing.T) {
	st, db := newTestStore(t)

	user := testUser("test@example.com", "+1234567890")
	require.NoError(t, st.CreateUser(user))

	doc := testKYC(user.ID)
	require.NoError(t, st.CreateKYCSubmission(doc))

	require.NoError(t, db.Model(&models.KYCDocument{}).
		Where("id = ?", doc.ID).
		Updates(map[string]interface{}{
			"status":           models.KYCStatusRejected,
			"rejection_reason": "blurry scan",
		}).Error)

	latest, err := st.FindLatestKYCForUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, models.KYCStatusRejected, latest.Status)
	require.Equal(t, "blurry scan", latest.RejectionReason)
}
