package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Pages
	RouteHome  = "/"
	RouteLogin = "/login"

	// Auth API
	RouteAPILogin  = "/api/auth/login"
	RouteAPILogout = "/api/auth/logout"
	RouteAPIProxy  = "/api/auth/proxy"

	// Portal API
	RouteAPINav = "/api/nav"

	// Operations
	RouteMetrics = "/metrics"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
	RouteStaticJS  = "/js/{file}"
)
