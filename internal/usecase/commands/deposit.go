package commands

import (
	"context"
	"fmt"

	domdeposit "gembank/internal/domain/deposit"
	"gembank/internal/domain/idempotency"
	"gembank/internal/infra"
	"gembank/internal/pkg/clock"
	"gembank/internal/usecase/readmodel"
	"gembank/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateDepositRequest struct {
	Amount         float64
	Currency       string
	IdempotencyKey string
}

type CreateDepositResult struct {
	Deposit    *readmodel.DepositRM
	Idempotent bool
}

type DepositCommands interface {
	CreateDeposit(ctx context.Context, req CreateDepositRequest, userID uuid.UUID, email string) (*CreateDepositResult, error)
}

type depositUseCaseImpl struct {
	uow      shared.UnitOfWork
	deposits shared.DepositRepository
	clock    clock.Clock
}

func NewDepositUseCase(uow shared.UnitOfWork, deposits shared.DepositRepository, clk clock.Clock) DepositCommands {
	return &depositUseCaseImpl{uow: uow, deposits: deposits, clock: clk}
}

// CreateDeposit creates a deposit, the audit entry and the confirmation
// email job in one transaction. A replayed idempotency key resolves to the
// original deposit instead of an error.
func (uc *depositUseCaseImpl) CreateDeposit(ctx context.Context, req CreateDepositRequest, userID uuid.UUID, email string) (*CreateDepositResult, error) {
	amount, err := domdeposit.NewAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	currency, err := domdeposit.NewCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	key, err := idempotency.NewKey(req.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	d := domdeposit.NewDeposit(userID, amount, currency, key)
	now := uc.clock.Now()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Deposits().Create(ctx, tx.DB(), d, now); err != nil {
			return err
		}
		if err := tx.Operations().Append(ctx, tx.DB(), fmt.Sprintf("deposit_created:%s", d.ID()), &userID); err != nil {
			return err
		}
		subject := fmt.Sprintf("Deposit received: %.2f %s", amount.Value(), currency.Value())
		body := fmt.Sprintf("Your deposit %s of %.2f %s was created.", d.ID(), amount.Value(), currency.Value())
		return tx.Outbox().Enqueue(ctx, tx.DB(), email, subject, body)
	})
	if err != nil {
		// The unique idempotency key already holds a deposit: idempotent replay.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			existing, findErr := uc.deposits.FindByIdempotencyKey(ctx, key.Value())
			if findErr != nil {
				return nil, findErr
			}
			return &CreateDepositResult{Deposit: existing, Idempotent: true}, nil
		}
		return nil, err
	}

	created, err := uc.deposits.FindByIdempotencyKey(ctx, key.Value())
	if err != nil {
		return nil, err
	}

	return &CreateDepositResult{Deposit: created, Idempotent: false}, nil
}
