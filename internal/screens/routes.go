package screens

import "github.com/CamiMaidana/FamilyMed/internal/session"

// RouteName 页面标识
type RouteName string

const (
	RouteLogin     RouteName = "login"
	RoutePatients  RouteName = "patients"
	RouteDashboard RouteName = "dashboard"
)

// Route 导航目标（dashboard 需要 PatientID）
type Route struct {
	Name      RouteName
	PatientID string
}

// Resolve applies the navigation guard. Authentication is discriminated solely
// by the presence of a credential at navigation time, never cached: guarded
// routes fall back to the login screen, the login screen is always reachable,
// and anything unknown lands on the patient list.
func Resolve(r Route, sessions session.Store) Route {
	if r.Name == RouteLogin {
		return r
	}
	if _, ok := sessions.Get(); !ok {
		return Route{Name: RouteLogin}
	}
	switch r.Name {
	case RoutePatients, RouteDashboard:
		return r
	default:
		return Route{Name: RoutePatients}
	}
}

// Logout 清除凭证并跳转到登录页
func Logout(sessions session.Store) Route {
	sessions.Clear()
	return Route{Name: RouteLogin}
}
