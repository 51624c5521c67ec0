package domain

import "time"

// Coupon is a percentage discount code. ValidFrom/ValidTo bound the window it
// can be applied in; a nil bound is open-ended.
type Coupon struct {
	ID              int32      `json:"id"`
	Code            string     `json:"code"`
	DiscountPercent int32      `json:"discount_percent"`
	Description     string     `json:"description,omitempty"`
	ValidFrom       *time.Time `json:"valid_from,omitempty"`
	ValidTo         *time.Time `json:"valid_to,omitempty"`
	Active          bool       `json:"active"`
	CreatedOn       string     `json:"created_on"`
	UpdatedOn       string     `json:"updated_on"`
}

// Usable reports whether the coupon can be applied at the given instant.
func (c *Coupon) Usable(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidTo != nil && now.After(*c.ValidTo) {
		return false
	}
	return true
}
