package repository

import (
	"context"
	"time"

	"gembank/internal/domain/profile"
	"gembank/internal/infra"
	"gembank/internal/usecase/readmodel"
)

type ProfileRepository struct {
	db DB
}

func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, tx DB, p *profile.Profile, now time.Time) error {
	const query = `
		INSERT INTO profiles (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING`

	_, err := tx.Exec(ctx, query, p.ID(), p.Email().Value(), p.PasswordHash(), p.Role().String(), now)
	if err != nil {
		return infra.WrapRepoErr("failed to create profile", err)
	}

	return nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*readmodel.ProfileRM, error) {
	const query = `
		SELECT id, email, password_hash, role, created_at
		FROM profiles
		WHERE email = $1`

	rm := &readmodel.ProfileRM{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&rm.ID, &rm.Email, &rm.PasswordHash, &rm.Role, &rm.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get profile", err)
	}

	return rm, nil
}
