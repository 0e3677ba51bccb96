package repository

import (
	"context"

	"gembank/internal/domain/webhook"
	"gembank/internal/infra"
)

type WebhookEventRepository struct {
	db DB
}

func NewWebhookEventRepository(db DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

// Record inserts a new event row. When (provider, eventID) already exists the
// unique violation is the replay signal: the existing row gets replay = TRUE
// and raw_body / signature_valid keep the first delivery's values. With two
// concurrent inserts for a new key exactly one succeeds; the other lands on
// the duplicate branch.
func (r *WebhookEventRepository) Record(ctx context.Context, provider, eventID, rawBody string, signatureValid bool) (bool, error) {
	const insertQuery = `
		INSERT INTO webhook_events (provider, event_id, raw_body, signature_valid, replay)
		VALUES ($1, $2, $3, $4, FALSE)`

	_, err := r.db.Exec(ctx, insertQuery, provider, eventID, rawBody, signatureValid)
	if err == nil {
		return false, nil
	}

	wrapped := infra.WrapRepoErr("failed to record webhook event", err)
	if !infra.IsKind(wrapped, infra.KindDuplicateKey) {
		return false, wrapped
	}

	const replayQuery = `
		UPDATE webhook_events SET replay = TRUE WHERE provider = $1 AND event_id = $2`

	if _, err := r.db.Exec(ctx, replayQuery, provider, eventID); err != nil {
		return true, infra.WrapRepoErr("failed to flag webhook event replay", err)
	}

	return true, nil
}

func (r *WebhookEventRepository) Get(ctx context.Context, provider, eventID string) (*webhook.Event, error) {
	const query = `
		SELECT id, provider, event_id, raw_body, signature_valid, replay, created_at
		FROM webhook_events
		WHERE provider = $1 AND event_id = $2`

	event := &webhook.Event{}
	err := r.db.QueryRow(ctx, query, provider, eventID).Scan(
		&event.ID, &event.Provider, &event.EventID, &event.RawBody,
		&event.SignatureValid, &event.Replay, &event.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get webhook event", err)
	}

	return event, nil
}
