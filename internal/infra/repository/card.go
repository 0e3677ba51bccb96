package repository

import (
	"context"
	"time"

	"gembank/internal/domain/card"
	"gembank/internal/infra"
	"gembank/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CardRepository struct {
	db DB
}

func NewCardRepository(db DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, tx DB, c *card.Card, key string, now time.Time) error {
	const query = `
		INSERT INTO bitcoin_cards (id, user_id, nickname, status, idempotency_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`

	_, err := tx.Exec(ctx, query, c.ID(), c.UserID(), c.Nickname(), c.Status().String(), key, now)
	if err != nil {
		return infra.WrapRepoErr("failed to create card", err)
	}

	return nil
}

func (r *CardRepository) FindByIdempotencyKey(ctx context.Context, key string) (*readmodel.CardRM, error) {
	const query = `
		SELECT id, user_id, nickname, status, created_at, updated_at
		FROM bitcoin_cards
		WHERE idempotency_key = $1`

	rm := &readmodel.CardRM{}
	err := r.db.QueryRow(ctx, query, key).Scan(
		&rm.ID, &rm.UserID, &rm.Nickname, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get card", err)
	}

	return rm, nil
}

// HasActiveCard reports whether the user already has a requested or issued
// card. Evaluated inside the card-request transaction.
func (r *CardRepository) HasActiveCard(ctx context.Context, tx DB, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bitcoin_cards
			WHERE user_id = $1 AND status IN ('requested', 'issued')
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active card", err)
	}

	return exists, nil
}

func (r *CardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.CardRM, error) {
	const query = `
		SELECT id, user_id, nickname, status, created_at, updated_at
		FROM bitcoin_cards
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cards", err)
	}
	defer rows.Close()

	var result []*readmodel.CardRM
	for rows.Next() {
		rm := &readmodel.CardRM{}
		if err := rows.Scan(&rm.ID, &rm.UserID, &rm.Nickname, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan card", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cards", err)
	}

	return result, nil
}
