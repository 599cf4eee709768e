package service_test

import (
	"testing"

	"github.com/devprince/ecommerce-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash1, err := service.HashPassword("Secret1!")
	require.NoError(t, err)
	hash2, err := service.HashPassword("Secret1!")
	require.NoError(t, err)

	// Salt is randomized per call
	assert.NotEqual(t, hash1, hash2)
	assert.NotEqual(t, "Secret1!", hash1)
}

func TestCheckPassword(t *testing.T) {
	hash, err := service.HashPassword("Secret1!")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "matching password", password: "Secret1!", hash: hash, want: true},
		{name: "wrong password", password: "Secret2!", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: "Secret1!", hash: "not-a-bcrypt-hash", want: false},
		{name: "empty hash", password: "Secret1!", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.CheckPassword(tt.password, tt.hash))
		})
	}
}
