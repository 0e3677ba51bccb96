package shared

import (
	"context"
	"time"

	"gembank/internal/domain/card"
	"gembank/internal/domain/deposit"
	"gembank/internal/domain/notification"
	"gembank/internal/infra/repository"
	"gembank/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Deposits() DepositRepository
	Cards() CardRepository
	Outbox() OutboxRepository
	Operations() OperationsRepository
	DB() repository.DB
}

type DepositRepository interface {
	Create(ctx context.Context, tx repository.DB, d *deposit.Deposit, now time.Time) error
	FindByIdempotencyKey(ctx context.Context, key string) (*readmodel.DepositRM, error)
}

type CardRepository interface {
	Create(ctx context.Context, tx repository.DB, c *card.Card, key string, now time.Time) error
	FindByIdempotencyKey(ctx context.Context, key string) (*readmodel.CardRM, error)
	HasActiveCard(ctx context.Context, tx repository.DB, userID uuid.UUID) (bool, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx repository.DB, recipient, subject, body string) error
	SelectDue(ctx context.Context, tx repository.DB, now time.Time, limit int) ([]*notification.Job, error)
	MarkSent(ctx context.Context, tx repository.DB, id int64, now time.Time) error
	MarkRetry(ctx context.Context, tx repository.DB, id int64, nextAttemptAt, now time.Time, errorMessage string) error
	MarkFailed(ctx context.Context, tx repository.DB, id int64, now time.Time, errorMessage string) error
}

type OperationsRepository interface {
	Append(ctx context.Context, tx repository.DB, operation string, actorID *uuid.UUID) error
}

type WebhookEventRepository interface {
	Record(ctx context.Context, provider, eventID, rawBody string, signatureValid bool) (replay bool, err error)
}

type ProfileRepository interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.ProfileRM, error)
}
