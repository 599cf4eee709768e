package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/devprince/ecommerce-api/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	firstName   string
	email       string
	password    string
	verified    bool
	code        *string
	codeExpires *time.Time
	createdAt   time.Time
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		firstName: "Test",
		email:     fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password:  "Testpassword1!",
		createdAt: time.Now(),
	}
}

// WithFirstName sets the first name
func (b *UserBuilder) WithFirstName(name string) *UserBuilder {
	b.firstName = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Verified marks the account as having completed email verification
func (b *UserBuilder) Verified() *UserBuilder {
	b.verified = true
	return b
}

// WithVerificationCode sets a pending verification code and its expiry
func (b *UserBuilder) WithVerificationCode(code string, expires time.Time) *UserBuilder {
	b.code = &code
	b.codeExpires = &expires
	return b
}

// CreatedAt overrides the account creation timestamp
func (b *UserBuilder) CreatedAt(createdAt time.Time) *UserBuilder {
	b.createdAt = createdAt
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:                      uuid.New(),
		FirstName:               b.firstName,
		Email:                   domain.NormalizeEmail(b.email),
		PasswordHash:            string(hashedPassword),
		VerificationCode:        b.code,
		VerificationCodeExpires: b.codeExpires,
		IsVerified:              b.verified,
		CreatedAt:               b.createdAt,
		UpdatedAt:               b.createdAt,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user, b.password
}

// CategoryBuilder creates test categories
type CategoryBuilder struct {
	name string
	slug string
}

func NewCategoryBuilder() *CategoryBuilder {
	suffix := uuid.New().String()[:8]
	return &CategoryBuilder{
		name: fmt.Sprintf("Category %s", suffix),
		slug: fmt.Sprintf("category-%s", suffix),
	}
}

func (b *CategoryBuilder) WithName(name string) *CategoryBuilder {
	b.name = name
	return b
}

func (b *CategoryBuilder) WithSlug(slug string) *CategoryBuilder {
	b.slug = slug
	return b
}

func (b *CategoryBuilder) Build(t *testing.T, db *gorm.DB) *domain.Category {
	t.Helper()

	category := &domain.Category{
		ID:       uuid.New(),
		Name:     b.name,
		Slug:     b.slug,
		IsActive: true,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}
