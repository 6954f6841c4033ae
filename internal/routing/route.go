// Package routing maps the current session snapshot onto the next screen.
// Decide is total and performs no I/O: every user state, including absent
// and unrecognized ones, yields exactly one route.
package routing

import "github.com/hbridge/careconnect-cli/internal/session"

// Route names a destination screen.
type Route string

const (
	RouteLogin             Route = "/login"
	RouteVerifyEmail       Route = "/verify-email"
	RouteCompleteProfile   Route = "/complete-profile"
	RouteWorkerDashboard   Route = "/dashboard/worker"
	RouteCareHomeDashboard Route = "/dashboard/care-home"
	RouteDashboard         Route = "/dashboard"
)

// Decide chooses the next screen from the session state:
//
//	no user                                  -> login
//	unverified email                         -> verification
//	verified worker, incomplete profile      -> profile completion
//	verified worker, complete profile        -> worker dashboard
//	verified care home (admin or staff)      -> care home dashboard
//	anything else                            -> generic dashboard
func Decide(user *session.User) Route {
	switch {
	case user == nil:
		return RouteLogin
	case !user.EmailVerified:
		return RouteVerifyEmail
	case user.Role == session.RoleWorker && user.ProfileCompletionPercentage < 100:
		return RouteCompleteProfile
	case user.Role == session.RoleWorker:
		return RouteWorkerDashboard
	case user.Role.IsCareHome():
		return RouteCareHomeDashboard
	default:
		return RouteDashboard
	}
}
