package domain

// Notification is an in-app message for a single user, written as a side
// effect of booking and payment transitions.
type Notification struct {
	ID         int32             `json:"id"`
	UserUID    string            `json:"user_uid"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Read       bool              `json:"read"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedOn  string            `json:"created_on"`
}
