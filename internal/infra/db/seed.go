package db

import (
	"context"
	"log/slog"
	"time"

	"gembank/internal/domain/profile"
	"gembank/internal/infra/repository"
	"gembank/internal/pkg/errs"
	"gembank/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
)

// demoPassword is shared by both demo accounts. Seeding is refused in
// production by config validation, so this never guards real data.
const demoPassword = "gematr-demo"

var demoProfiles = []struct {
	email string
	role  profile.Role
}{
	{email: "user@gematr.local", role: profile.RoleUser},
	{email: "admin@gematr.local", role: profile.RoleAdmin},
}

// SeedDemoProfiles inserts the demo accounts, skipping ones that already
// exist.
func SeedDemoProfiles(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := password.HashPassword(demoPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash demo password")
	}

	profiles := repository.NewProfileRepository(pool)
	now := time.Now().UTC()

	for _, seed := range demoProfiles {
		email, err := profile.NewEmail(seed.email)
		if err != nil {
			return err
		}
		p := profile.NewProfile(email, hash, seed.role)
		if err := profiles.Create(ctx, pool, p, now); err != nil {
			return errs.Wrapf(err, "failed to seed profile %s", seed.email)
		}
		slog.Info("demo profile ready", "email", seed.email, "role", seed.role.String())
	}

	return nil
}
