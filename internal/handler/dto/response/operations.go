package response

import (
	"time"

	"gembank/internal/usecase/readmodel"
)

type OperationResponse struct {
	ID        int64     `json:"id"`
	Operation string    `json:"operation"`
	ActorID   string    `json:"actor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromOperationList(rms []*readmodel.OperationRM) []OperationResponse {
	result := make([]OperationResponse, len(rms))
	for i, rm := range rms {
		resp := OperationResponse{
			ID:        rm.ID,
			Operation: rm.Operation,
			CreatedAt: rm.CreatedAt,
		}
		if rm.ActorID != nil {
			resp.ActorID = rm.ActorID.String()
		}
		result[i] = resp
	}
	return result
}
