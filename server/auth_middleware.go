package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gisportal/go-portal-gateway/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySession stores the authenticated session
	ContextKeySession ContextKey = "session"
)

// RequireSession guards protected routes. An absent or expired session is
// cleared and the request is redirected to the login page before any
// protected content is written.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			store := session.NewCookieStore(w, r, secureCookies(r))

			if !session.RequireAuth(store, time.Now(), RouteLogin, func(loginPath string) {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
			}) {
				return
			}

			sess, _ := store.Get()
			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next(w, r.WithContext(ctx))
		}
	}
}

// SessionFromContext returns the session placed by RequireSession.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(ContextKeySession).(session.Session)
	return sess, ok
}
