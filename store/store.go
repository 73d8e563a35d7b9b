package store

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartbank-go/models"
)

// Store is the durable record keeper for users and KYC submissions. It is
// constructed explicitly and passed to whatever needs it; there is no
// package-level handle.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("phone_number = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser assigns the record id and creation timestamp, then inserts.
// A unique-index collision on email or phone surfaces as
// models.ErrDuplicateResource; the unique indexes are the authority even
// when callers pre-check.
func (s *Store) CreateUser(user *models.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if user.Country == "" {
		user.Country = "US"
	}
	user.IsActive = true

	if err := s.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateResource
		}
		return err
	}
	return nil
}

// CreateKYCSubmission inserts a new pending submission. The duplicate check
// and the insert run in one transaction so two concurrent submissions from
// the same user cannot both pass the check.
func (s *Store) CreateKYCSubmission(doc *models.KYCDocument) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var active int64
		err := tx.Model(&models.KYCDocument{}).
			Where("user_id = ? AND status IN ?", doc.UserID,
				[]string{models.KYCStatusPending, models.KYCStatusVerified}).
			Count(&active).Error
		if err != nil {
			return err
		}
		if active > 0 {
			return models.ErrDuplicateSubmission
		}

		doc.ID = uuid.NewString()
		doc.Status = models.KYCStatusPending
		doc.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
		return tx.Create(doc).Error
	})
}

// FindLatestKYCForUser returns the most recent submission by submission
// time, terminal states included, so the status endpoint can report
// rejected submissions too.
func (s *Store) FindLatestKYCForUser(userID string) (*models.KYCDocument, error) {
	var doc models.KYCDocument
	err := s.db.Where("user_id = ?", userID).
		Order("submitted_at DESC").
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
