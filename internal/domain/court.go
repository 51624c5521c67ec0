package domain

// Court is an admin-owned bookable resource. AvailableSlots is the ordered
// list of time-slot labels offered per day (e.g. "10:00 AM - 11:00 AM").
type Court struct {
	ID                   int32    `json:"id"`
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	PricePerSessionCents int32    `json:"price_per_session_cents"`
	Capacity             int32    `json:"capacity"`
	Location             string   `json:"location"`
	ImageURL             string   `json:"image_url"`
	AvailableSlots       []string `json:"available_slots"`
	CreatedOn            string   `json:"created_on"`
	UpdatedOn            string   `json:"updated_on"`
}

func (c *Court) HasSlot(slot string) bool {
	for _, s := range c.AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}
