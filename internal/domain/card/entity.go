package card

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrActiveCardExists = errors.New("an active or requested card already exists")

const DefaultNickname = "GEM ATR Card"

type Status string

const (
	StatusRequested Status = "requested"
	StatusIssued    Status = "issued"
	StatusFrozen    Status = "frozen"
)

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the card blocks further card requests by the
// same user.
func (s Status) IsActive() bool {
	return s == StatusRequested || s == StatusIssued
}

type Card struct {
	id        uuid.UUID
	userID    uuid.UUID
	nickname  string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewCard(userID uuid.UUID, nickname string) *Card {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		nickname = DefaultNickname
	}
	return &Card{
		id:       uuid.New(),
		userID:   userID,
		nickname: nickname,
		status:   StatusRequested,
	}
}

func Reconstruct(id, userID uuid.UUID, nickname string, status Status, createdAt, updatedAt time.Time) *Card {
	return &Card{
		id:        id,
		userID:    userID,
		nickname:  nickname,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Card) ID() uuid.UUID        { return c.id }
func (c *Card) UserID() uuid.UUID    { return c.userID }
func (c *Card) Nickname() string     { return c.nickname }
func (c *Card) Status() Status       { return c.status }
func (c *Card) CreatedAt() time.Time { return c.createdAt }
func (c *Card) UpdatedAt() time.Time { return c.updatedAt }
