package domain

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Payment records a checkout against an approved booking. TransactionID is
// the payment gateway's reference; the raw card never reaches this service.
type Payment struct {
	ID                 int32         `json:"id"`
	BookingID          int32         `json:"booking_id"`
	UserUID            string        `json:"user_uid"`
	OriginalPriceCents int32         `json:"original_price_cents"`
	CouponCode         string        `json:"coupon_code,omitempty"`
	DiscountPercent    int32         `json:"discount_percent"`
	DiscountCents      int32         `json:"discount_cents"`
	FinalPriceCents    int32         `json:"final_price_cents"`
	Status             PaymentStatus `json:"status"`
	TransactionID      string        `json:"transaction_id,omitempty"`
	CreatedOn          string        `json:"created_on"`
}
