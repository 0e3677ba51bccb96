package deposit

import (
	"time"

	"gembank/internal/domain/idempotency"

	"github.com/google/uuid"
)

type Deposit struct {
	id             uuid.UUID
	userID         uuid.UUID
	amount         Amount
	currency       Currency
	status         Status
	idempotencyKey idempotency.Key
	createdAt      time.Time
	updatedAt      time.Time
}

func NewDeposit(userID uuid.UUID, amount Amount, currency Currency, key idempotency.Key) *Deposit {
	return &Deposit{
		id:             uuid.New(),
		userID:         userID,
		amount:         amount,
		currency:       currency,
		status:         StatusCreated,
		idempotencyKey: key,
	}
}

func Reconstruct(id, userID uuid.UUID, amount Amount, currency Currency, status Status, key idempotency.Key, createdAt, updatedAt time.Time) *Deposit {
	return &Deposit{
		id:             id,
		userID:         userID,
		amount:         amount,
		currency:       currency,
		status:         status,
		idempotencyKey: key,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (d *Deposit) ID() uuid.UUID                   { return d.id }
func (d *Deposit) UserID() uuid.UUID               { return d.userID }
func (d *Deposit) Amount() Amount                  { return d.amount }
func (d *Deposit) Currency() Currency              { return d.currency }
func (d *Deposit) Status() Status                  { return d.status }
func (d *Deposit) IdempotencyKey() idempotency.Key { return d.idempotencyKey }
func (d *Deposit) CreatedAt() time.Time            { return d.createdAt }
func (d *Deposit) UpdatedAt() time.Time            { return d.updatedAt }
