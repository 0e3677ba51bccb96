package queries

import (
	"context"

	"gembank/internal/usecase/readmodel"
)

// DefaultOperationsLimit caps the admin operations view.
const DefaultOperationsLimit = 25

type OperationsReadStore interface {
	ListRecent(ctx context.Context, limit int) ([]*readmodel.OperationRM, error)
}

type OperationsQueries interface {
	ListRecent(ctx context.Context, limit int) ([]*readmodel.OperationRM, error)
}

type operationsQueriesImpl struct {
	store OperationsReadStore
}

func NewOperationsQueries(store OperationsReadStore) OperationsQueries {
	return &operationsQueriesImpl{store: store}
}

func (q *operationsQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*readmodel.OperationRM, error) {
	if limit <= 0 || limit > DefaultOperationsLimit {
		limit = DefaultOperationsLimit
	}
	return q.store.ListRecent(ctx, limit)
}
