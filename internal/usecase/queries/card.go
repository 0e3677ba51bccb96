package queries

import (
	"context"

	"gembank/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CardReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.CardRM, error)
}

type CardQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.CardRM, error)
}

type cardQueriesImpl struct {
	store CardReadStore
}

func NewCardQueries(store CardReadStore) CardQueries {
	return &cardQueriesImpl{store: store}
}

func (q *cardQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.CardRM, error) {
	return q.store.ListByUser(ctx, userID)
}
