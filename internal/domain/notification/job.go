// Package notification defines the outbox job model drained by the email
// worker.
package notification

import "time"

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// Job is one row of the notification outbox. Once Status is sent or failed
// the job is terminal and never selected again.
type Job struct {
	ID            int64
	Recipient     string
	Subject       string
	Body          string
	Status        Status
	Attempts      int32
	NextAttemptAt *time.Time
	LastError     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
