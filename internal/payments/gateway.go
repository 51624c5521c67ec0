package payments

import (
	"context"
	"errors"
	"fmt"
)

// ErrChargeDeclined wraps failures originating at the payment gateway so the
// API layer can report them apart from backend errors.
var ErrChargeDeclined = errors.New("charge declined by payment gateway")

// Gateway captures a charge against a tokenized payment method and returns
// the gateway's transaction id. The raw card never passes through here; the
// client tokenizes it and sends only the payment-method id.
type Gateway interface {
	Charge(ctx context.Context, amountCents int64, currency, paymentMethodID, description string) (string, error)
}

func declined(err error) error {
	return fmt.Errorf("%w: %v", ErrChargeDeclined, err)
}
