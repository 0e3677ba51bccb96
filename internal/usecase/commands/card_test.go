//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domcard "gembank/internal/domain/card"
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

type fakeCardRepo struct {
	hasActive bool
	createErr error
	created   int
	stored    *readmodel.CardRM
}

func (r *fakeCardRepo) Create(_ context.Context, _ repository.DB, c *domcard.Card, _ string, _ time.Time) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created++
	r.stored = &readmodel.CardRM{
		ID:       c.ID(),
		UserID:   c.UserID(),
		Nickname: c.Nickname(),
		Status:   c.Status().String(),
	}
	return nil
}

func (r *fakeCardRepo) FindByIdempotencyKey(_ context.Context, _ string) (*readmodel.CardRM, error) {
	if r.stored == nil {
		return nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	}
	return r.stored, nil
}

func (r *fakeCardRepo) HasActiveCard(_ context.Context, _ repository.DB, _ uuid.UUID) (bool, error) {
	return r.hasActive, nil
}

type cardTx struct {
	cards  *fakeCardRepo
	outbox *fakeDepositOutbox
	ops    *fakeOpsRepo
}

func (t *cardTx) Deposits() shared.DepositRepository      { return nil }
func (t *cardTx) Cards() shared.CardRepository            { return t.cards }
func (t *cardTx) Outbox() shared.OutboxRepository         { return t.outbox }
func (t *cardTx) Operations() shared.OperationsRepository { return t.ops }
func (t *cardTx) DB() repository.DB                       { return nil }

type cardUoW struct {
	tx *cardTx
}

func (u *cardUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func newCardFixture(hasActive bool, createErr error) (commands.CardCommands, *cardTx) {
	tx := &cardTx{
		cards:  &fakeCardRepo{hasActive: hasActive, createErr: createErr},
		outbox: &fakeDepositOutbox{},
		ops:    &fakeOpsRepo{},
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := commands.NewCardUseCase(&cardUoW{tx: tx}, tx.cards, clock.NewMockClock(now))
	return uc, tx
}

func TestRequestCard(t *testing.T) {
	userID := uuid.New()
	validReq := commands.RequestCardRequest{
		Nickname:       "Travel card",
		IdempotencyKey: "card-1",
	}

	t.Run("requests a card with audit entry and outbox email", func(t *testing.T) {
		uc, tx := newCardFixture(false, nil)

		result, err := uc.RequestCard(context.Background(), validReq, userID, "user@example.com")
		require.NoError(t, err)

		assert.False(t, result.Idempotent)
		assert.Equal(t, "requested", result.Card.Status)
		assert.Equal(t, "Travel card", result.Card.Nickname)

		assert.Equal(t, 1, tx.cards.created)
		require.Len(t, tx.ops.appended, 1)
		assert.Contains(t, tx.ops.appended[0], "card_requested:")
		require.Len(t, tx.outbox.enqueued, 1)
		assert.Equal(t, "user@example.com", tx.outbox.enqueued[0].recipient)
	})

	t.Run("empty nickname falls back to the default", func(t *testing.T) {
		uc, _ := newCardFixture(false, nil)

		req := validReq
		req.Nickname = ""
		result, err := uc.RequestCard(context.Background(), req, userID, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, domcard.DefaultNickname, result.Card.Nickname)
	})

	t.Run("active card blocks a new request", func(t *testing.T) {
		uc, tx := newCardFixture(true, nil)

		_, err := uc.RequestCard(context.Background(), validReq, userID, "user@example.com")
		assert.ErrorIs(t, err, domcard.ErrActiveCardExists)
		assert.Equal(t, 0, tx.cards.created)
		assert.Empty(t, tx.outbox.enqueued)
	})

	t.Run("duplicate idempotency key replays the original card", func(t *testing.T) {
		existing := &readmodel.CardRM{ID: uuid.New(), Nickname: "Travel card", Status: "requested"}
		uc, tx := newCardFixture(false, infra.WrapRepoErr("duplicate", errs.New("23505"), infra.KindDuplicateKey))
		tx.cards.stored = existing

		result, err := uc.RequestCard(context.Background(), validReq, userID, "user@example.com")
		require.NoError(t, err)

		assert.True(t, result.Idempotent)
		assert.Equal(t, existing.ID, result.Card.ID)
	})
}
