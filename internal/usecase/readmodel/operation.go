package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// OperationRM is one audit-trail row for the admin view.
type OperationRM struct {
	ID        int64      `json:"id"`
	Operation string     `json:"operation"`
	ActorID   *uuid.UUID `json:"actor_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
