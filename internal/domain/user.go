package domain

type Role string

const (
	RoleUser   Role = "user"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User mirrors the identity provider's profile plus the backend-owned role.
// The UID comes from the identity provider and is the primary key; users are
// upserted on first sign-in and never deleted.
type User struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	PhotoURL  string `json:"photo_url,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Role      Role   `json:"role"`
	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleMember, RoleAdmin:
		return true
	}
	return false
}
