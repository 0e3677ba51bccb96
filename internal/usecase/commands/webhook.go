package commands

import (
	"context"

	"gembank/internal/pkg/signature"
	"gembank/internal/usecase/shared"
)

type IngestWebhookRequest struct {
	Provider        string
	EventID         string
	RawBody         []byte
	SignatureHeader string
}

type IngestWebhookResult struct {
	SignatureValid bool
	Replay         bool
}

type WebhookCommands interface {
	IngestBankingEvent(ctx context.Context, req IngestWebhookRequest) (*IngestWebhookResult, error)
}

type webhookUseCaseImpl struct {
	events shared.WebhookEventRepository
	secret string
}

func NewWebhookUseCase(events shared.WebhookEventRepository, secret string) WebhookCommands {
	return &webhookUseCaseImpl{events: events, secret: secret}
}

// IngestBankingEvent verifies the signature and records the event either
// way: invalid deliveries are kept for audit, duplicates come back with the
// replay flag set. Only a storage failure is an error.
func (uc *webhookUseCaseImpl) IngestBankingEvent(ctx context.Context, req IngestWebhookRequest) (*IngestWebhookResult, error) {
	valid := signature.Verify(uc.secret, req.RawBody, req.SignatureHeader)

	replay, err := uc.events.Record(ctx, req.Provider, req.EventID, string(req.RawBody), valid)
	if err != nil {
		return nil, err
	}

	return &IngestWebhookResult{SignatureValid: valid, Replay: replay}, nil
}
