package repository

import (
	"context"

	"gembank/internal/infra"
	"gembank/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OperationsRepository struct {
	db DB
}

func NewOperationsRepository(db DB) *OperationsRepository {
	return &OperationsRepository{db: db}
}

func (r *OperationsRepository) Append(ctx context.Context, tx DB, operation string, actorID *uuid.UUID) error {
	const query = `INSERT INTO operations_log (operation, actor_id) VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, query, operation, actorID); err != nil {
		return infra.WrapRepoErr("failed to append operation", err)
	}

	return nil
}

func (r *OperationsRepository) ListRecent(ctx context.Context, limit int) ([]*readmodel.OperationRM, error) {
	const query = `
		SELECT id, operation, actor_id, created_at
		FROM operations_log
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list operations", err)
	}
	defer rows.Close()

	var result []*readmodel.OperationRM
	for rows.Next() {
		rm := &readmodel.OperationRM{}
		if err := rows.Scan(&rm.ID, &rm.Operation, &rm.ActorID, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan operation", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read operations", err)
	}

	return result, nil
}
