package server

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initRoutes() {
	// Pages
	s.RegisterRouteHandler("GET "+RouteHome, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteFunc("GET "+RouteLogin, s.LoginPageHandler())

	// Auth API
	s.RegisterRouteHandler("POST "+RouteAPILogin, ChainMiddleware(s.LoginHandler(), append(s.APIMiddleware(), s.loginLimit.Middleware)...))
	s.RegisterRouteHandler("GET "+RouteAPILogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIProxy, ChainMiddleware(s.ProxyHandler(), s.APIMiddleware()...))

	// Portal API
	s.RegisterRouteHandler("GET "+RouteAPINav, ChainMiddleware(s.NavHandler(), append(s.APIMiddleware(), s.RequireSession())...))

	// Operations
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.Handler())

	// Static assets
	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteStaticJS, ChainMiddleware(s.serveFileHandler(), s.HTMLMiddleware()...))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		if err := StreamFile(w, r, filePath); err != nil {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}
