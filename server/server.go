package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/gisportal/go-portal-gateway/internal/config"
	"github.com/gisportal/go-portal-gateway/portal"
	"github.com/gisportal/go-portal-gateway/scope"
)

type Server struct {
	env        string // Environment (e.g., "DEV", "production")
	mux        *http.ServeMux
	routes     []string
	fileServer http.Handler
	config     config.Config
	portal     *portal.Service
	scope      *scope.Resolver
	loginLimit *RateLimiter
}

func New(cfg config.Config, portalService *portal.Service, resolver *scope.Resolver) (*Server, error) {
	if portalService == nil {
		return nil, errors.New("[Server New] portal service is required")
	}
	if resolver == nil {
		return nil, errors.New("[Server New] scope resolver is required")
	}

	s := &Server{
		mux:        http.NewServeMux(),
		config:     cfg,
		portal:     portalService,
		scope:      resolver,
		loginLimit: NewRateLimiter(cfg.GetLoginRatePerMinute()/60.0, cfg.GetLoginBurst()),
	}
	s.env = cfg.GetEnv()
	s.fileServer = FileServerHandler()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}

// secureCookies reports whether session cookies should carry the Secure
// attribute for this request.
func secureCookies(r *http.Request) bool {
	return getScheme(r) == "https"
}
