package request

type RequestCardRequest struct {
	Nickname       string `json:"nickname"`
	IdempotencyKey string `json:"idempotency_key" binding:"required"`
}
