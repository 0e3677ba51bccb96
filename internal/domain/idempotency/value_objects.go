// Package idempotency holds the caller-supplied idempotency key value object
// shared by deposit and card requests.
package idempotency

import (
	"errors"
	"strings"
)

var ErrInvalidKey = errors.New("invalid idempotency key")

const maxKeyLength = 128

type Key struct {
	value string
}

func NewKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxKeyLength {
		return Key{}, ErrInvalidKey
	}
	return Key{value: s}, nil
}

func (k Key) Value() string {
	return k.value
}
