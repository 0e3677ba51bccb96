package commands

import (
	"context"

	"gembank/internal/domain/profile"
	"gembank/internal/pkg/errs"
	"gembank/internal/pkg/jwt"
	"gembank/internal/pkg/password"
	"gembank/internal/usecase/shared"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

type LoginResult struct {
	Token string
	Email string
	Role  string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	profiles shared.ProfileRepository
	tokens   *jwt.Service
}

func NewAuthUseCase(profiles shared.ProfileRepository, tokens *jwt.Service) AuthCommands {
	return &authUseCaseImpl{profiles: profiles, tokens: tokens}
}

func (uc *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	rm, err := uc.profiles.FindByEmail(ctx, email)
	if err != nil {
		// Do not leak whether the account exists.
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(rm.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := profile.NewRole(rm.Role)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.GenerateToken(rm.ID, rm.Email, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, Email: rm.Email, Role: rm.Role}, nil
}
