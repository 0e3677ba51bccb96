//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gembank/internal/pkg/errs"
	"gembank/internal/pkg/jwt"
	"gembank/internal/pkg/password"
	"gembank/internal/usecase/commands"
	"gembank/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profile *readmodel.ProfileRM
	err     error
}

func (r *fakeProfileRepo) FindByEmail(_ context.Context, _ string) (*readmodel.ProfileRM, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.profile, nil
}

func TestLogin(t *testing.T) {
	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)

	stored := &readmodel.ProfileRM{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: hash,
		Role:         "user",
	}
	tokens := jwt.NewService("test-secret", time.Hour)

	t.Run("valid credentials return a token", func(t *testing.T) {
		uc := commands.NewAuthUseCase(&fakeProfileRepo{profile: stored}, tokens)

		result, err := uc.Login(context.Background(), "user@example.com", "correct-horse")
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "user@example.com", result.Email)
		assert.Equal(t, "user", result.Role)

		claims, err := tokens.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, claims.UserID)
		assert.Equal(t, stored.Email, claims.Email)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		uc := commands.NewAuthUseCase(&fakeProfileRepo{profile: stored}, tokens)

		_, err := uc.Login(context.Background(), "user@example.com", "wrong")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown account is indistinguishable from wrong password", func(t *testing.T) {
		uc := commands.NewAuthUseCase(&fakeProfileRepo{err: errs.New("not found")}, tokens)

		_, err := uc.Login(context.Background(), "ghost@example.com", "correct-horse")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
