package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// NewOrderID returns a new globally unique order identifier.
func NewOrderID() string {
	return "ord-" + uuid.NewString()
}

// NewCommandID returns a new command identifier.
func NewCommandID() string {
	return "cmd-" + uuid.NewString()
}

// NewPaymentID returns a new payment identifier with a short suffix,
// readable enough for demo output.
func NewPaymentID() string {
	u := uuid.New()
	return fmt.Sprintf("pay-%x", u[:8])
}

// NewAccountID returns a new account identifier.
func NewAccountID() string {
	return "acc-" + uuid.NewString()
}
