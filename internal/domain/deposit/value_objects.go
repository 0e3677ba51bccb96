package deposit

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
)

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

type Amount struct {
	value float64
}

// NewAmount accepts positive finite amounts and rounds to 2 decimal places.
func NewAmount(v float64) (Amount, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: math.Round(v*100) / 100}, nil
}

func (a Amount) Value() float64 {
	return a.value
}

type Currency struct {
	value string
}

func NewCurrency(s string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !currencyRegex.MatchString(normalized) {
		return Currency{}, ErrInvalidCurrency
	}
	return Currency{value: normalized}, nil
}

func (c Currency) Value() string {
	return c.value
}
