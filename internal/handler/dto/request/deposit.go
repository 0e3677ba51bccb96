package request

type CreateDepositRequest struct {
	Amount         float64 `json:"amount" binding:"required"`
	Currency       string  `json:"currency"`
	IdempotencyKey string  `json:"idempotency_key" binding:"required"`
}
