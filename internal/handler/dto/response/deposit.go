package response

import (
	"time"

	"gembank/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type DepositResponse struct {
	ID        uuid.UUID `json:"id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDepositRM(rm *readmodel.DepositRM) DepositResponse {
	return DepositResponse{
		ID:        rm.ID,
		Amount:    rm.Amount,
		Currency:  rm.Currency,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
	}
}

func FromDepositList(rms []*readmodel.DepositRM) []DepositResponse {
	result := make([]DepositResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromDepositRM(rm)
	}
	return result
}
