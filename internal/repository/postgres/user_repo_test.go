package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/devprince/ecommerce-api/internal/domain"
	"github.com/devprince/ecommerce-api/internal/repository/postgres"
	"github.com/devprince/ecommerce-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr bool
	}{
		{
			name: "successful creation",
			user: &domain.User{
				ID:           uuid.New(),
				FirstName:    "Ann",
				Email:        "ann@x.com",
				PasswordHash: "hashedpassword",
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			user: &domain.User{
				ID:           uuid.New(),
				FirstName:    "Other Ann",
				Email:        "ann@x.com", // Same as above
				PasswordHash: "hashedpassword2",
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("findme@x.com").
		Build(t, testDB.DB)

	got, err := repo.GetByEmail(ctx, "findme@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "missing@x.com")
	assert.Error(t, err)
}

func TestUserRepository_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("update@x.com").
		WithVerificationCode("code", time.Now().Add(2*time.Minute)).
		Build(t, testDB.DB)

	user.IsVerified = true
	user.VerificationCode = nil
	user.VerificationCodeExpires = nil
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsVerified)
	assert.Nil(t, got.VerificationCode)
	assert.Nil(t, got.VerificationCodeExpires)
}

func TestUserRepository_DeleteUnverifiedCreatedBefore(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	testutil.NewUserBuilder().
		WithEmail("old-unverified@x.com").
		CreatedAt(time.Now().Add(-72 * time.Hour)).
		Build(t, testDB.DB)
	testutil.NewUserBuilder().
		WithEmail("old-verified@x.com").
		CreatedAt(time.Now().Add(-72 * time.Hour)).
		Verified().
		Build(t, testDB.DB)
	testutil.NewUserBuilder().
		WithEmail("new-unverified@x.com").
		Build(t, testDB.DB)

	removed, err := repo.DeleteUnverifiedCreatedBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	remaining, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}
