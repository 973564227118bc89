package access

import (
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
)

// Decision is the outcome of an access check for a navigation attempt.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectUnauthorized:
		return "redirect-unauthorized"
	default:
		return "unknown"
	}
}

// Feature tags the pages of the dashboard. Each role maps to the set of
// features it may use; both the route guard and the navigation menu
// consult this one table instead of re-deriving role flags per page.
type Feature string

const (
	FeatureDashboard     Feature = "dashboard"
	FeatureAppointments  Feature = "appointments"
	FeaturePatients      Feature = "patients"
	FeaturePrescriptions Feature = "prescriptions"
	FeatureBilling       Feature = "billing"
	FeatureSummary       Feature = "summary"
	FeatureSettings      Feature = "settings"
)

// menuOrder fixes the sidebar ordering for every role.
var menuOrder = []Feature{
	FeatureDashboard,
	FeatureAppointments,
	FeaturePatients,
	FeaturePrescriptions,
	FeatureBilling,
	FeatureSummary,
	FeatureSettings,
}

var capabilities = map[domain.Role]map[Feature]bool{
	domain.RoleDoctor: {
		FeatureDashboard:     true,
		FeatureAppointments:  true,
		FeaturePatients:      true,
		FeaturePrescriptions: true,
		FeatureBilling:       true,
		FeatureSummary:       true,
		FeatureSettings:      true,
	},
	domain.RoleReceptionist: {
		FeatureAppointments: true,
		FeaturePatients:     true,
		FeatureBilling:      true,
		FeatureSummary:      true,
		FeatureSettings:     true,
	},
	domain.RolePatient: {
		FeaturePatients: true,
		FeatureSettings: true,
	},
}

// Can reports whether the role may use the feature. Unknown roles have no
// capabilities.
func Can(role domain.Role, feature Feature) bool {
	return capabilities[role][feature]
}

// AllowedRoles returns every role permitted to use the feature, in a
// stable order.
func AllowedRoles(feature Feature) []domain.Role {
	var roles []domain.Role
	for _, role := range []domain.Role{domain.RoleDoctor, domain.RoleReceptionist, domain.RolePatient} {
		if capabilities[role][feature] {
			roles = append(roles, role)
		}
	}
	return roles
}

// Menu returns the features the role may navigate to, in sidebar order.
func Menu(role domain.Role) []Feature {
	var features []Feature
	for _, feature := range menuOrder {
		if capabilities[role][feature] {
			features = append(features, feature)
		}
	}
	return features
}

// Decide is the route guard. It is a pure function of its inputs: a
// missing token always redirects to login, regardless of role; a present
// token with a role outside the allowed set redirects to the unauthorized
// view; everything else is allowed. It never fails — absent data is the
// unauthenticated case, not an error.
func Decide(hasToken bool, role domain.Role, allowed []domain.Role) Decision {
	if !hasToken {
		return RedirectLogin
	}
	for _, r := range allowed {
		if role == r {
			return Allow
		}
	}
	return RedirectUnauthorized
}

// Authorize guards a feature-tagged route using the capability table.
func Authorize(hasToken bool, role domain.Role, feature Feature) Decision {
	return Decide(hasToken, role, AllowedRoles(feature))
}

// Routes of the dashboard shell.
const (
	RouteDashboard    = "/dashboard"
	RouteAppointments = "/appointments"
	RoutePatients     = "/patients"
	RouteLogin        = "/login"
	RouteUnauthorized = "/unauthorized"
)

// LandingRoute resolves the default route for the root path. It must be
// consulted on every navigation to root, never cached: the stored role can
// change between logins within the same browser session.
func LandingRoute(role domain.Role) string {
	switch role {
	case domain.RoleDoctor:
		return RouteDashboard
	case domain.RoleReceptionist:
		return RouteAppointments
	default:
		return RoutePatients
	}
}
