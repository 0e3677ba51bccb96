//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gembank/internal/domain/deposit"
	"gembank/internal/domain/idempotency"
	"gembank/internal/infra"
	"gembank/internal/infra/repository"
	"gembank/internal/pkg/clock"
	"gembank/internal/pkg/errs"
	"gembank/internal/usecase/commands"
	"gembank/internal/usecase/readmodel"
	"gembank/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDepositRepo struct {
	createErr error
	created   int
	stored    *readmodel.DepositRM
}

func (r *fakeDepositRepo) Create(_ context.Context, _ repository.DB, d *deposit.Deposit, _ time.Time) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created++
	r.stored = &readmodel.DepositRM{
		ID:       d.ID(),
		UserID:   d.UserID(),
		Amount:   d.Amount().Value(),
		Currency: d.Currency().Value(),
		Status:   d.Status().String(),
	}
	return nil
}

func (r *fakeDepositRepo) FindByIdempotencyKey(_ context.Context, _ string) (*readmodel.DepositRM, error) {
	if r.stored == nil {
		return nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	}
	return r.stored, nil
}

type fakeOpsRepo struct {
	appended []string
}

func (r *fakeOpsRepo) Append(_ context.Context, _ repository.DB, operation string, _ *uuid.UUID) error {
	r.appended = append(r.appended, operation)
	return nil
}

type enqueuedMail struct {
	recipient string
	subject   string
}

type fakeDepositOutbox struct {
	fakeOutboxRepo
	enqueued []enqueuedMail
}

func (r *fakeDepositOutbox) Enqueue(_ context.Context, _ repository.DB, recipient, subject, _ string) error {
	r.enqueued = append(r.enqueued, enqueuedMail{recipient: recipient, subject: subject})
	return nil
}

type depositTx struct {
	deposits *fakeDepositRepo
	outbox   *fakeDepositOutbox
	ops      *fakeOpsRepo
}

func (t *depositTx) Deposits() shared.DepositRepository      { return t.deposits }
func (t *depositTx) Cards() shared.CardRepository            { return nil }
func (t *depositTx) Outbox() shared.OutboxRepository         { return t.outbox }
func (t *depositTx) Operations() shared.OperationsRepository { return t.ops }
func (t *depositTx) DB() repository.DB                       { return nil }

type depositUoW struct {
	tx *depositTx
}

func (u *depositUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func newDepositFixture(createErr error) (commands.DepositCommands, *depositTx) {
	tx := &depositTx{
		deposits: &fakeDepositRepo{createErr: createErr},
		outbox:   &fakeDepositOutbox{},
		ops:      &fakeOpsRepo{},
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := commands.NewDepositUseCase(&depositUoW{tx: tx}, tx.deposits, clock.NewMockClock(now))
	return uc, tx
}

func TestCreateDeposit(t *testing.T) {
	userID := uuid.New()
	validReq := commands.CreateDepositRequest{
		Amount:         150.25,
		Currency:       "usd",
		IdempotencyKey: "dep-1",
	}

	t.Run("creates deposit with audit entry and outbox email", func(t *testing.T) {
		uc, tx := newDepositFixture(nil)

		result, err := uc.CreateDeposit(context.Background(), validReq, userID, "user@example.com")
		require.NoError(t, err)

		assert.False(t, result.Idempotent)
		assert.Equal(t, "created", result.Deposit.Status)
		assert.Equal(t, "USD", result.Deposit.Currency)
		assert.InDelta(t, 150.25, result.Deposit.Amount, 1e-9)

		assert.Equal(t, 1, tx.deposits.created)
		require.Len(t, tx.ops.appended, 1)
		assert.Contains(t, tx.ops.appended[0], "deposit_created:")
		require.Len(t, tx.outbox.enqueued, 1)
		assert.Equal(t, "user@example.com", tx.outbox.enqueued[0].recipient)
	})

	t.Run("duplicate idempotency key replays the original deposit", func(t *testing.T) {
		existing := &readmodel.DepositRM{ID: uuid.New(), Amount: 150.25, Currency: "USD", Status: "created"}
		uc, tx := newDepositFixture(infra.WrapRepoErr("duplicate", errs.New("23505"), infra.KindDuplicateKey))
		tx.deposits.stored = existing

		result, err := uc.CreateDeposit(context.Background(), validReq, userID, "user@example.com")
		require.NoError(t, err)

		assert.True(t, result.Idempotent)
		assert.Equal(t, existing.ID, result.Deposit.ID)
	})

	t.Run("invalid amount is rejected before any write", func(t *testing.T) {
		uc, tx := newDepositFixture(nil)

		req := validReq
		req.Amount = -1
		_, err := uc.CreateDeposit(context.Background(), req, userID, "user@example.com")
		assert.ErrorIs(t, err, deposit.ErrInvalidAmount)
		assert.Equal(t, 0, tx.deposits.created)
	})

	t.Run("invalid currency is rejected", func(t *testing.T) {
		uc, _ := newDepositFixture(nil)

		req := validReq
		req.Currency = "US"
		_, err := uc.CreateDeposit(context.Background(), req, userID, "user@example.com")
		assert.ErrorIs(t, err, deposit.ErrInvalidCurrency)
	})

	t.Run("invalid idempotency key is rejected", func(t *testing.T) {
		uc, _ := newDepositFixture(nil)

		req := validReq
		req.IdempotencyKey = ""
		_, err := uc.CreateDeposit(context.Background(), req, userID, "user@example.com")
		assert.ErrorIs(t, err, idempotency.ErrInvalidKey)
	})

	t.Run("unrelated storage failure surfaces as error", func(t *testing.T) {
		uc, _ := newDepositFixture(infra.WrapRepoErr("boom", errs.New("connection reset"), infra.KindDBFailure))

		_, err := uc.CreateDeposit(context.Background(), validReq, userID, "user@example.com")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
