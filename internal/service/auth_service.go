package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/devprince/ecommerce-api/internal/config"
	"github.com/devprince/ecommerce-api/internal/domain"
	"github.com/devprince/ecommerce-api/internal/mail"
	"github.com/devprince/ecommerce-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyVerified    = errors.New("user already verified")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrCodeExpired        = errors.New("verification code expired")
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
	mailer   mail.Mailer
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenService, mailer mail.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		cfg:      cfg,
	}
}

type RegisterInput struct {
	FirstName string
	Email     string
	Password  string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	email := domain.NormalizeEmail(input.Email)
	firstName := strings.TrimSpace(input.FirstName)

	if err := domain.ValidateNewUser(firstName, email, input.Password); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	code := uuid.NewString()
	expires := time.Now().Add(s.cfg.VerificationTTL)

	user := &domain.User{
		ID:                      uuid.New(),
		FirstName:               firstName,
		Email:                   email,
		PasswordHash:            hashed,
		VerificationCode:        &code,
		VerificationCodeExpires: &expires,
		CreatedAt:               time.Now(),
		UpdatedAt:               time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	// Fire-and-forget: a mail failure is logged but never rolls back the
	// already-persisted account or delays the response.
	go func(to, code string, ttl time.Duration) {
		if err := s.mailer.SendVerificationEmail(to, code, ttl); err != nil {
			log.Printf("ERROR [auth.Register] send verification email to=%s: %v", to, err)
		}
	}(user.Email, code, s.cfg.VerificationTTL)

	return user, nil
}

// VerifyEmail confirms a verification code. The checks run strictly in order
// existence, already-verified, code match, expiry, so an expired-but-matching
// code reports expiry rather than mismatch.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.IsVerified {
		return nil, ErrAlreadyVerified
	}

	if user.VerificationCode == nil || *user.VerificationCode != code {
		return nil, ErrInvalidCode
	}

	if user.VerificationCodeExpires == nil || time.Now().After(*user.VerificationCodeExpires) {
		return nil, ErrCodeExpired
	}

	// Code is single-use: cleared together with its expiry.
	user.IsVerified = true
	user.VerificationCode = nil
	user.VerificationCodeExpires = nil
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// Refresh validates a refresh token against both its signature and the value
// persisted on the account, then rotates the pair. Logout clears the
// persisted value, which is the only revocation mechanism.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.tokens.Verify(refreshToken, TokenRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, ErrTokenInvalid
	}

	return s.issueSession(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	user.RefreshToken = nil
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}

// Tokens exposes the token service for transport-level verification.
func (s *AuthService) Tokens() *TokenService {
	return s.tokens
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}

	// Only the latest refresh token stays valid.
	user.RefreshToken = &pair.RefreshToken
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &AuthResult{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// isUniqueViolation pattern-matches the driver error instead of pre-checking
// for duplicates, so concurrent registrations race on the index, not on a
// read-then-write.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
