package domain

type AnnouncementPriority string

const (
	AnnouncementPriorityLow    AnnouncementPriority = "LOW"
	AnnouncementPriorityMedium AnnouncementPriority = "MEDIUM"
	AnnouncementPriorityHigh   AnnouncementPriority = "HIGH"
)

type AnnouncementAudience string

const (
	AudienceAll     AnnouncementAudience = "ALL"
	AudienceMembers AnnouncementAudience = "MEMBERS"
	AudienceUsers   AnnouncementAudience = "USERS"
)

type Announcement struct {
	ID        int32                `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Priority  AnnouncementPriority `json:"priority"`
	Audience  AnnouncementAudience `json:"audience"`
	CreatedOn string               `json:"created_on"`
	UpdatedOn string               `json:"updated_on"`
}

func ValidAnnouncementPriority(p AnnouncementPriority) bool {
	switch p {
	case AnnouncementPriorityLow, AnnouncementPriorityMedium, AnnouncementPriorityHigh:
		return true
	}
	return false
}

func ValidAnnouncementAudience(a AnnouncementAudience) bool {
	switch a {
	case AudienceAll, AudienceMembers, AudienceUsers:
		return true
	}
	return false
}

// VisibleTo reports whether a reader with the given role should see the
// announcement. Admins see everything.
func (a *Announcement) VisibleTo(role Role) bool {
	if role == RoleAdmin {
		return true
	}
	switch a.Audience {
	case AudienceAll:
		return true
	case AudienceMembers:
		return role == RoleMember
	case AudienceUsers:
		return role == RoleUser
	}
	return false
}
