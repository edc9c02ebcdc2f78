package authgate

import "pracd-client/internal/model"

// Route names a navigation target in the client.
type Route string

const (
	RouteHome         Route = "home"
	RouteDoctors      Route = "doctors"
	RouteDoctorDetail Route = "doctor-details"
	RouteContact      Route = "contact"
	RouteBooking      Route = "book-appointment"
	RouteDashboard    Route = "dashboard"
	RouteAdminLogin   Route = "admin-login"
)

// no session needed for these
var open = map[Route]bool{
	RouteHome:         true,
	RouteDoctors:      true,
	RouteDoctorDetail: true,
	RouteContact:      true,
	RouteBooking:      true,
	RouteAdminLogin:   true,
}

type DenyReason string

const (
	// ReasonLoginRequired tells the caller to render the "please log in"
	// placeholder with an action opening the login surface.
	ReasonLoginRequired DenyReason = "login required"
	// ReasonAdminOnly rejects a post-login redirect for non-admin roles.
	ReasonAdminOnly DenyReason = "admin role required"
)

// Decision is a value, never an error: denial is rendered, not thrown.
type Decision struct {
	Allow  bool
	Reason DenyReason
}

var allow = Decision{Allow: true}

// CanAccess decides whether the identity may render the target route.
// A nil identity means no (or expired, or undecodable) session.
func CanAccess(route Route, id *model.Identity) Decision {
	if open[route] {
		return allow
	}
	if id == nil {
		return Decision{Reason: ReasonLoginRequired}
	}
	return allow
}

// AdminRedirect gates the redirect after the admin login surface: the
// surface itself is public, but only a resolved admin role may proceed.
func AdminRedirect(id *model.Identity) Decision {
	if id == nil {
		return Decision{Reason: ReasonLoginRequired}
	}
	if id.Role != model.RoleAdmin {
		return Decision{Reason: ReasonAdminOnly}
	}
	return allow
}
