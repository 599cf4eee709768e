package service_test

import (
	"testing"
	"time"

	"github.com/devprince/ecommerce-api/internal/service"
	"github.com/devprince/ecommerce-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := service.NewTokenService(testutil.TestConfig())
	userID := uuid.New()

	access, err := tokens.IssueAccess(userID)
	require.NoError(t, err)
	refresh, err := tokens.IssueRefresh(userID)
	require.NoError(t, err)

	gotID, err := tokens.Verify(access, service.TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)

	gotID, err = tokens.Verify(refresh, service.TokenRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestTokenService_KindsDoNotCross(t *testing.T) {
	tokens := service.NewTokenService(testutil.TestConfig())
	userID := uuid.New()

	access, err := tokens.IssueAccess(userID)
	require.NoError(t, err)
	refresh, err := tokens.IssueRefresh(userID)
	require.NoError(t, err)

	// An access token must not verify as a refresh token, and vice versa.
	_, err = tokens.Verify(access, service.TokenRefresh)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	_, err = tokens.Verify(refresh, service.TokenAccess)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestTokenService_Expired(t *testing.T) {
	cfg := testutil.TestConfig()
	// Issue tokens that are already past their expiry.
	cfg.AccessTokenTTL = -time.Minute
	tokens := service.NewTokenService(cfg)

	access, err := tokens.IssueAccess(uuid.New())
	require.NoError(t, err)

	_, err = tokens.Verify(access, service.TokenAccess)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestTokenService_Invalid(t *testing.T) {
	tokens := service.NewTokenService(testutil.TestConfig())

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "not a jwt", token: "notavalidjwt"},
		{name: "garbage segments", token: "invalid.token.here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(tt.token, service.TokenAccess)
			assert.ErrorIs(t, err, service.ErrTokenInvalid)
		})
	}
}

func TestTokenService_DistinctPerIssue(t *testing.T) {
	tokens := service.NewTokenService(testutil.TestConfig())
	userID := uuid.New()

	first, err := tokens.IssuePair(userID)
	require.NoError(t, err)
	second, err := tokens.IssuePair(userID)
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}
