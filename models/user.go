package models

// User is an onboarded customer. IDs are opaque UUID strings assigned by the
// store; date_of_birth and created_at are kept as ISO strings end to end.
type User struct {
	ID           string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PhoneNumber  string `json:"phone_number" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	FirstName    string `json:"first_name" gorm:"not null"`
	LastName     string `json:"last_name" gorm:"not null"`
	DateOfBirth  string `json:"date_of_birth" gorm:"type:varchar(10);not null"`
	Address      string `json:"address" gorm:"not null"`
	City         string `json:"city" gorm:"not null"`
	State        string `json:"state" gorm:"not null"`
	ZipCode      string `json:"zip_code" gorm:"not null"`
	Country      string `json:"country" gorm:"default:US"`
	IsVerified   bool   `json:"is_verified" gorm:"default:false"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	CreatedAt    string `json:"created_at" gorm:"type:varchar(30)"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=20"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	ZipCode     string `json:"zip_code" validate:"required"`
	Country     string `json:"country"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
