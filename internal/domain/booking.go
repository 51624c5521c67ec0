package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
)

// Booking is a user's request for one or more slots on a court for a single
// date. Cancellation removes the row instead of adding a status, which is why
// there is no CANCELLED constant.
type Booking struct {
	ID              int32         `json:"id"`
	CourtID         int32         `json:"court_id"`
	CourtName       string        `json:"court_name,omitempty"`
	UserUID         string        `json:"user_uid"`
	UserEmail       string        `json:"user_email"`
	Date            string        `json:"date"` // YYYY-MM-DD
	Slots           []string      `json:"slots"`
	TotalPriceCents int32         `json:"total_price_cents"`
	Status          BookingStatus `json:"status"`
	CreatedOn       string        `json:"created_on"`
	UpdatedOn       string        `json:"updated_on"`
}

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected, BookingStatusConfirmed:
		return true
	}
	return false
}
