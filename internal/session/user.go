package session

import "github.com/google/uuid"

// Role is the canonical client-side role. The backend is inconsistent about
// the field name (`role` on /auth/me, `user_type` on login) and about the
// care-home value (`care_home` at registration, `care_home_admin` afterwards);
// ParseRole folds all of it into one enum.
type Role string

const (
	RoleWorker        Role = "worker"
	RoleCareHomeAdmin Role = "care_home_admin"
	RoleCareHomeStaff Role = "care_home_staff"
	RoleUnknown       Role = "unknown"
)

// ParseRole maps a wire role value onto the canonical Role. Unrecognized
// values become RoleUnknown rather than an error: routing has a fallback
// for them.
func ParseRole(wire string) Role {
	switch wire {
	case "worker":
		return RoleWorker
	case "care_home_admin", "care_home":
		return RoleCareHomeAdmin
	case "care_home_staff":
		return RoleCareHomeStaff
	default:
		return RoleUnknown
	}
}

// IsCareHome reports whether the role belongs to a care home account.
func (r Role) IsCareHome() bool {
	return r == RoleCareHomeAdmin || r == RoleCareHomeStaff
}

// User is the identity the client holds for the authenticated account.
// It is owned exclusively by the session Store; flows receive copies for
// display only.
type User struct {
	ID                          uuid.UUID
	Email                       string
	Role                        Role
	EmailVerified               bool
	ProfileCompletionPercentage int
}
