// Package queries holds the read side: list views backed directly by the
// repositories.
package queries

import (
	"context"

	"gembank/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type DepositReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.DepositRM, error)
}

type DepositQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.DepositRM, error)
}

type depositQueriesImpl struct {
	store DepositReadStore
}

func NewDepositQueries(store DepositReadStore) DepositQueries {
	return &depositQueriesImpl{store: store}
}

func (q *depositQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.DepositRM, error) {
	return q.store.ListByUser(ctx, userID)
}
