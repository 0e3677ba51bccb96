//go:build unit

package card_test

import (
	"testing"

	"gembank/internal/domain/card"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatusIsActive(t *testing.T) {
	assert.True(t, card.StatusRequested.IsActive())
	assert.True(t, card.StatusIssued.IsActive())
	assert.False(t, card.StatusFrozen.IsActive())
}

func TestNewCard(t *testing.T) {
	userID := uuid.New()

	t.Run("starts in requested status", func(t *testing.T) {
		c := card.NewCard(userID, "Travel card")
		assert.Equal(t, card.StatusRequested, c.Status())
		assert.Equal(t, userID, c.UserID())
		assert.Equal(t, "Travel card", c.Nickname())
	})

	t.Run("empty nickname falls back to default", func(t *testing.T) {
		c := card.NewCard(userID, "")
		assert.Equal(t, card.DefaultNickname, c.Nickname())
	})

	t.Run("whitespace nickname falls back to default", func(t *testing.T) {
		c := card.NewCard(userID, "   ")
		assert.Equal(t, card.DefaultNickname, c.Nickname())
	})
}
