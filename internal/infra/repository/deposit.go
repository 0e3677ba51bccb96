package repository

import (
	"context"
	"time"

	"gembank/internal/domain/deposit"
	"gembank/internal/infra"
	"gembank/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type DepositRepository struct {
	db DB
}

func NewDepositRepository(db DB) *DepositRepository {
	return &DepositRepository{db: db}
}

// Create inserts a new deposit. The UNIQUE constraint on idempotency_key
// surfaces as KindDuplicateKey, which the command layer resolves into an
// idempotent replay.
func (r *DepositRepository) Create(ctx context.Context, tx DB, d *deposit.Deposit, now time.Time) error {
	const query = `
		INSERT INTO deposits (id, user_id, amount, currency, status, idempotency_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

	_, err := tx.Exec(ctx, query,
		d.ID(), d.UserID(), d.Amount().Value(), d.Currency().Value(),
		d.Status().String(), d.IdempotencyKey().Value(), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create deposit", err)
	}

	return nil
}

func (r *DepositRepository) FindByIdempotencyKey(ctx context.Context, key string) (*readmodel.DepositRM, error) {
	const query = `
		SELECT id, user_id, amount, currency, status, idempotency_key, created_at, updated_at
		FROM deposits
		WHERE idempotency_key = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, key))
}

func (r *DepositRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.DepositRM, error) {
	const query = `
		SELECT id, user_id, amount, currency, status, idempotency_key, created_at, updated_at
		FROM deposits
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deposits", err)
	}
	defer rows.Close()

	var result []*readmodel.DepositRM
	for rows.Next() {
		rm := &readmodel.DepositRM{}
		if err := rows.Scan(
			&rm.ID, &rm.UserID, &rm.Amount, &rm.Currency, &rm.Status,
			&rm.IdempotencyKey, &rm.CreatedAt, &rm.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deposit", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read deposits", err)
	}

	return result, nil
}

func (r *DepositRepository) scanOne(row interface{ Scan(dest ...any) error }) (*readmodel.DepositRM, error) {
	rm := &readmodel.DepositRM{}
	err := row.Scan(
		&rm.ID, &rm.UserID, &rm.Amount, &rm.Currency, &rm.Status,
		&rm.IdempotencyKey, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get deposit", err)
	}
	return rm, nil
}
