package service

// TotalPriceCents is the price of a booking: number of selected slots times
// the court's per-session price.
func TotalPriceCents(slotCount int, pricePerSessionCents int32) int32 {
	return int32(slotCount) * pricePerSessionCents
}

// DiscountCents applies a percentage discount to a cent amount, rounding
// half-up to the nearest cent so the result matches two-decimal currency
// display.
func DiscountCents(originalCents, percent int32) int32 {
	if percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return originalCents
	}
	return int32((int64(originalCents)*int64(percent) + 50) / 100)
}

// FinalPriceCents is the amount actually charged after the coupon.
func FinalPriceCents(originalCents, percent int32) int32 {
	return originalCents - DiscountCents(originalCents, percent)
}
