package repository

import (
	"context"
	"time"

	"gembank/internal/domain/notification"
	"gembank/internal/infra"
)

type OutboxRepository struct {
	db DB
}

func NewOutboxRepository(db DB) *OutboxRepository {
	return &OutboxRepository{db: db}
}

// Enqueue inserts a pending job. Called inside the same transaction as the
// business write that triggers the notification.
func (r *OutboxRepository) Enqueue(ctx context.Context, tx DB, recipient, subject, body string) error {
	const query = `
		INSERT INTO notification_outbox (recipient, subject, body, status)
		VALUES ($1, $2, $3, 'pending')`

	if _, err := tx.Exec(ctx, query, recipient, subject, body); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}

	return nil
}

// SelectDue returns up to limit pending jobs whose next attempt is due,
// oldest first. Rows are locked with SKIP LOCKED so overlapping worker
// invocations never claim the same job.
func (r *OutboxRepository) SelectDue(ctx context.Context, tx DB, now time.Time, limit int) ([]*notification.Job, error) {
	const query = `
		SELECT id, recipient, subject, body, status, attempts, next_attempt_at, last_error, created_at, updated_at
		FROM notification_outbox
		WHERE status = 'pending' AND (next_attempt_at IS NULL OR next_attempt_at <= $1)
		ORDER BY created_at ASC
		LIMIT $2
		FOR UPDATE SKIP LOCKED`

	rows, err := tx.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to select due notification jobs", err)
	}
	defer rows.Close()

	var jobs []*notification.Job
	for rows.Next() {
		job := &notification.Job{}
		if err := rows.Scan(
			&job.ID, &job.Recipient, &job.Subject, &job.Body, &job.Status,
			&job.Attempts, &job.NextAttemptAt, &job.LastError, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read due notification jobs", err)
	}

	return jobs, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx DB, id int64, now time.Time) error {
	const query = `
		UPDATE notification_outbox
		SET status = 'sent', attempts = attempts + 1, next_attempt_at = NULL, last_error = NULL, updated_at = $1
		WHERE id = $2`

	if _, err := tx.Exec(ctx, query, now, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}

	return nil
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, tx DB, id int64, nextAttemptAt, now time.Time, errorMessage string) error {
	const query = `
		UPDATE notification_outbox
		SET attempts = attempts + 1, next_attempt_at = $1, last_error = $2, updated_at = $3
		WHERE id = $4`

	if _, err := tx.Exec(ctx, query, nextAttemptAt, errorMessage, now, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job for retry", err)
	}

	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx DB, id int64, now time.Time, errorMessage string) error {
	const query = `
		UPDATE notification_outbox
		SET status = 'failed', attempts = attempts + 1, next_attempt_at = NULL, last_error = $1, updated_at = $2
		WHERE id = $3`

	if _, err := tx.Exec(ctx, query, errorMessage, now, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}

	return nil
}

func (r *OutboxRepository) GetByID(ctx context.Context, id int64) (*notification.Job, error) {
	const query = `
		SELECT id, recipient, subject, body, status, attempts, next_attempt_at, last_error, created_at, updated_at
		FROM notification_outbox
		WHERE id = $1`

	job := &notification.Job{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Recipient, &job.Subject, &job.Body, &job.Status,
		&job.Attempts, &job.NextAttemptAt, &job.LastError, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get notification job", err)
	}

	return job, nil
}
