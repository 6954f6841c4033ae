package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbridge/careconnect-cli/internal/session"
)

func TestDecide_NoUser(t *testing.T) {
	assert.Equal(t, RouteLogin, Decide(nil))
}

func TestDecide_Unverified(t *testing.T) {
	for _, role := range []session.Role{session.RoleWorker, session.RoleCareHomeAdmin, session.RoleUnknown} {
		u := &session.User{Role: role, EmailVerified: false}
		assert.Equal(t, RouteVerifyEmail, Decide(u), "role %s", role)
	}
}

func TestDecide_Worker(t *testing.T) {
	incomplete := &session.User{Role: session.RoleWorker, EmailVerified: true, ProfileCompletionPercentage: 40}
	assert.Equal(t, RouteCompleteProfile, Decide(incomplete))

	complete := &session.User{Role: session.RoleWorker, EmailVerified: true, ProfileCompletionPercentage: 100}
	assert.Equal(t, RouteWorkerDashboard, Decide(complete))
}

func TestDecide_CareHomeRoles(t *testing.T) {
	for _, role := range []session.Role{session.RoleCareHomeAdmin, session.RoleCareHomeStaff} {
		u := &session.User{Role: role, EmailVerified: true}
		assert.Equal(t, RouteCareHomeDashboard, Decide(u), "role %s", role)
	}
}

func TestDecide_UnknownRoleFallsBack(t *testing.T) {
	u := &session.User{Role: session.RoleUnknown, EmailVerified: true, ProfileCompletionPercentage: 100}
	assert.Equal(t, RouteDashboard, Decide(u))
}

// TestDecide_TotalOverGrid walks the full {user presence} x {verified} x
// {role} x {completion} grid and checks every combination lands on exactly
// one documented route.
func TestDecide_TotalOverGrid(t *testing.T) {
	known := map[Route]struct{}{
		RouteLogin:             {},
		RouteVerifyEmail:       {},
		RouteCompleteProfile:   {},
		RouteWorkerDashboard:   {},
		RouteCareHomeDashboard: {},
		RouteDashboard:         {},
	}

	roles := []session.Role{session.RoleWorker, session.RoleCareHomeAdmin, session.RoleCareHomeStaff, session.RoleUnknown, session.Role("gibberish")}
	completions := []int{0, 40, 99, 100}

	require.Contains(t, known, Decide(nil))

	for _, role := range roles {
		for _, verified := range []bool{true, false} {
			for _, pct := range completions {
				u := &session.User{Role: role, EmailVerified: verified, ProfileCompletionPercentage: pct}
				first := Decide(u)
				require.Contains(t, known, first, "user %+v", u)
				// Deterministic: same input, same route.
				require.Equal(t, first, Decide(u))
			}
		}
	}
}
