package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

type User struct {
	ID                      uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName               string     `json:"firstName" gorm:"not null"`
	Email                   string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash            string     `json:"-" gorm:"not null"`
	VerificationCode        *string    `json:"verificationCode,omitempty"`
	VerificationCodeExpires *time.Time `json:"verificationCodeExpires,omitempty"`
	IsVerified              bool       `json:"isVerified" gorm:"not null;default:false"`
	RefreshToken            *string    `json:"-"`
	CreatedAt               time.Time  `json:"createdAt"`
	UpdatedAt               time.Time  `json:"updatedAt"`
}

// NormalizeEmail is applied to every email before it is stored or looked up,
// so the unique index on users.email covers case variants.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateNewUser checks registration input before the password is hashed.
// The password policy requires at least 8 characters with an upper-case
// letter, a lower-case letter, a digit and a special character.
func ValidateNewUser(firstName, email, password string) error {
	if strings.TrimSpace(firstName) == "" {
		return fmt.Errorf("%w: first name must not be empty", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("%w: password must contain at least one uppercase letter, one lowercase letter, one number and one special character", ErrValidation)
	}
	return nil
}
