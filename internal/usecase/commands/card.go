package commands

import (
	"context"
	"fmt"

	domcard "gembank/internal/domain/card"
	"gembank/internal/domain/idempotency"
	"gembank/internal/infra"
	"gembank/internal/pkg/clock"
	"gembank/internal/usecase/readmodel"
	"gembank/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestCardRequest struct {
	Nickname       string
	IdempotencyKey string
}

type RequestCardResult struct {
	Card       *readmodel.CardRM
	Idempotent bool
}

type CardCommands interface {
	RequestCard(ctx context.Context, req RequestCardRequest, userID uuid.UUID, email string) (*RequestCardResult, error)
}

type cardUseCaseImpl struct {
	uow   shared.UnitOfWork
	cards shared.CardRepository
	clock clock.Clock
}

func NewCardUseCase(uow shared.UnitOfWork, cards shared.CardRepository, clk clock.Clock) CardCommands {
	return &cardUseCaseImpl{uow: uow, cards: cards, clock: clk}
}

// RequestCard issues a card request. One active (requested or issued) card
// per user; a replayed idempotency key returns the original card.
func (uc *cardUseCaseImpl) RequestCard(ctx context.Context, req RequestCardRequest, userID uuid.UUID, email string) (*RequestCardResult, error) {
	key, err := idempotency.NewKey(req.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	c := domcard.NewCard(userID, req.Nickname)
	now := uc.clock.Now()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		active, err := tx.Cards().HasActiveCard(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}
		if active {
			return domcard.ErrActiveCardExists
		}

		if err := tx.Cards().Create(ctx, tx.DB(), c, key.Value(), now); err != nil {
			return err
		}
		if err := tx.Operations().Append(ctx, tx.DB(), fmt.Sprintf("card_requested:%s", c.ID()), &userID); err != nil {
			return err
		}
		body := fmt.Sprintf("Your bitcoin card %q was requested.", c.Nickname())
		return tx.Outbox().Enqueue(ctx, tx.DB(), email, "Card request received", body)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			existing, findErr := uc.cards.FindByIdempotencyKey(ctx, key.Value())
			if findErr != nil {
				return nil, findErr
			}
			return &RequestCardResult{Card: existing, Idempotent: true}, nil
		}
		return nil, err
	}

	created, err := uc.cards.FindByIdempotencyKey(ctx, key.Value())
	if err != nil {
		return nil, err
	}

	return &RequestCardResult{Card: created, Idempotent: false}, nil
}
