// Package webhook defines the inbound webhook event model.
package webhook

import "time"

// ProviderBanking is the fixed provider identifier of the banking webhook
// endpoint.
const ProviderBanking = "banking"

// Event is one recorded webhook delivery. (Provider, EventID) is unique at
// the row; a duplicate delivery flips Replay on the original row instead of
// creating a new one, and the original RawBody is preserved.
type Event struct {
	ID             int64
	Provider       string
	EventID        string
	RawBody        string
	SignatureValid bool
	Replay         bool
	CreatedAt      time.Time
}
