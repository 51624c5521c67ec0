package payments

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type stripeGateway struct {
	currency string
}

// NewStripeGateway configures the global stripe client with the secret key
// and returns a Gateway that confirms PaymentIntents immediately.
func NewStripeGateway(secretKey, currency string) Gateway {
	stripe.Key = secretKey
	return &stripeGateway{currency: currency}
}

func (g *stripeGateway) Charge(ctx context.Context, amountCents int64, currency, paymentMethodID, description string) (string, error) {
	if currency == "" {
		currency = g.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethodID),
		Description:   stripe.String(description),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", declined(err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return pi.ID, declined(errDeclinedStatus(pi.Status))
	}
	return pi.ID, nil
}

type errDeclinedStatus stripe.PaymentIntentStatus

func (e errDeclinedStatus) Error() string {
	return "payment intent status " + string(e)
}
