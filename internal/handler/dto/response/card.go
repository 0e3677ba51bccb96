package response

import (
	"time"

	"gembank/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CardResponse struct {
	ID        uuid.UUID `json:"id"`
	Nickname  string    `json:"nickname"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromCardRM(rm *readmodel.CardRM) CardResponse {
	return CardResponse{
		ID:        rm.ID,
		Nickname:  rm.Nickname,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
	}
}

func FromCardList(rms []*readmodel.CardRM) []CardResponse {
	result := make([]CardResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromCardRM(rm)
	}
	return result
}
