package commands

import (
	"context"
	"sync"
	"time"

	"gembank/internal/infra/mailer"
	"gembank/internal/pkg/clock"
	"gembank/internal/usecase/shared"
)

const (
	// OutboxBatchSize caps how many due jobs one worker invocation drains.
	OutboxBatchSize = 25
	// MaxAttempts is the terminal-failure threshold per job.
	MaxAttempts = 5

	maxBackoffMinutes = 60
)

// WorkerSummary is the per-invocation result returned to the cron caller.
type WorkerSummary struct {
	Processed  int       `json:"processed"`
	Sent       int       `json:"sent"`
	Deferred   int       `json:"deferred"`
	Failed     int       `json:"failed"`
	At         time.Time `json:"at"`
	Idempotent bool      `json:"idempotent"`
}

type OutboxWorker interface {
	Run(ctx context.Context, idempotencyKey string) (*WorkerSummary, error)
}

type outboxWorkerImpl struct {
	uow    shared.UnitOfWork
	mailer mailer.Mailer
	clock  clock.Clock

	// Invocation idempotency cache. Process-wide, unbounded, no eviction:
	// acceptable for a single-process demo deployment only.
	mu    sync.Mutex
	cache map[string]WorkerSummary
}

func NewOutboxWorker(uow shared.UnitOfWork, m mailer.Mailer, clk clock.Clock) OutboxWorker {
	return &outboxWorkerImpl{
		uow:    uow,
		mailer: m,
		clock:  clk,
		cache:  make(map[string]WorkerSummary),
	}
}

// Run drains one batch of due notification jobs. Selection and every status
// transition of the batch happen inside a single transaction, so an
// overlapping invocation cannot double-process a job and a crash leaves no
// partially-applied batch behind. A repeated invocation with the same
// idempotency key returns the cached summary without touching any job.
func (w *outboxWorkerImpl) Run(ctx context.Context, idempotencyKey string) (*WorkerSummary, error) {
	if idempotencyKey != "" {
		w.mu.Lock()
		previous, ok := w.cache[idempotencyKey]
		w.mu.Unlock()
		if ok {
			previous.Idempotent = true
			return &previous, nil
		}
	}

	now := w.clock.Now()
	summary := WorkerSummary{At: now}

	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Outbox().SelectDue(ctx, tx.DB(), now, OutboxBatchSize)
		if err != nil {
			return err
		}

		summary.Processed = len(jobs)

		for _, job := range jobs {
			sendErr := w.mailer.Send(ctx, job.Recipient, job.Subject, job.Body)
			if sendErr == nil {
				if err := tx.Outbox().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
					return err
				}
				summary.Sent++
				continue
			}

			nextAttempts := job.Attempts + 1
			if nextAttempts >= MaxAttempts {
				if err := tx.Outbox().MarkFailed(ctx, tx.DB(), job.ID, now, sendErr.Error()); err != nil {
					return err
				}
				summary.Failed++
				continue
			}

			nextAttemptAt := now.Add(time.Duration(BackoffMinutes(nextAttempts)) * time.Minute)
			if err := tx.Outbox().MarkRetry(ctx, tx.DB(), job.ID, nextAttemptAt, now, sendErr.Error()); err != nil {
				return err
			}
			summary.Deferred++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if idempotencyKey != "" {
		w.mu.Lock()
		w.cache[idempotencyKey] = summary
		w.mu.Unlock()
	}

	return &summary, nil
}

// BackoffMinutes returns min(60, 2^max(1, attempts)): 2, 4, 8, 16, 32, then
// capped at 60. The max(1, _) floor keeps a zero exponent out of the policy.
func BackoffMinutes(attempts int32) int64 {
	exp := attempts
	if exp < 1 {
		exp = 1
	}
	if exp > 6 {
		exp = 6
	}

	minutes := int64(1) << exp
	if minutes > maxBackoffMinutes {
		minutes = maxBackoffMinutes
	}
	return minutes
}
