package domain_test

import (
	"testing"

	"github.com/devprince/ecommerce-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "already normalized", email: "ann@x.com", want: "ann@x.com"},
		{name: "mixed case", email: "Ann@X.Com", want: "ann@x.com"},
		{name: "surrounding whitespace", email: "  ann@x.com \n", want: "ann@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeEmail(tt.email))
		})
	}
}

func TestValidateNewUser(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		email     string
		password  string
		wantErr   bool
	}{
		{
			name:      "valid input",
			firstName: "Ann",
			email:     "ann@x.com",
			password:  "Secret1!",
		},
		{
			name:      "blank first name",
			firstName: "   ",
			email:     "ann@x.com",
			password:  "Secret1!",
			wantErr:   true,
		},
		{
			name:      "malformed email",
			firstName: "Ann",
			email:     "not-an-email",
			password:  "Secret1!",
			wantErr:   true,
		},
		{
			name:      "too short",
			firstName: "Ann",
			email:     "ann@x.com",
			password:  "Ab1!",
			wantErr:   true,
		},
		{
			name:      "missing uppercase",
			firstName: "Ann",
			email:     "ann@x.com",
			password:  "secret1!",
			wantErr:   true,
		},
		{
			name:      "missing digit",
			firstName: "Ann",
			email:     "ann@x.com",
			password:  "Secrets!",
			wantErr:   true,
		},
		{
			name:      "missing special character",
			firstName: "Ann",
			email:     "ann@x.com",
			password:  "Secret12",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateNewUser(tt.firstName, tt.email, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
