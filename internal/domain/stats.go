package domain

// AdminStats backs the admin dashboard summary tiles.
type AdminStats struct {
	TotalCourts       int32 `json:"total_courts"`
	TotalUsers        int32 `json:"total_users"`
	TotalMembers      int32 `json:"total_members"`
	TotalBookings     int32 `json:"total_bookings"`
	PendingBookings   int32 `json:"pending_bookings"`
	ApprovedBookings  int32 `json:"approved_bookings"`
	ConfirmedBookings int32 `json:"confirmed_bookings"`
	CompletedPayments int32 `json:"completed_payments"`
	RevenueCents      int64 `json:"revenue_cents"`
}
