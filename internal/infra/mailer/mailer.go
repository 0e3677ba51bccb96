// Package mailer provides the email-delivery port used by the outbox worker
// and its demo implementation.
package mailer

import (
	"context"
	"strings"

	"gembank/internal/pkg/errs"
)

// Mailer is the fallible send operation the outbox worker drives. A non-nil
// error means the job should be retried or terminally failed; the worker
// never propagates it.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// SimulatedMailer pretends to deliver email. Recipients whose address
// contains "fail" error out, which exercises the retry and dead-letter
// paths end to end.
type SimulatedMailer struct{}

func NewSimulatedMailer() *SimulatedMailer {
	return &SimulatedMailer{}
}

func (m *SimulatedMailer) Send(_ context.Context, recipient, _, _ string) error {
	if strings.Contains(strings.ToLower(recipient), "fail") {
		return errs.New("simulated email provider error")
	}
	return nil
}
