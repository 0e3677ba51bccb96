package request

// RunWorkerRequest carries the optional idempotency key when the scheduler
// sends it in the body instead of the X-Idempotency-Key header.
type RunWorkerRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
}
