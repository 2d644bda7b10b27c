package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	errs "github.com/gisportal/go-portal-gateway/internal/errors"
	"github.com/gisportal/go-portal-gateway/portal"
	"github.com/gisportal/go-portal-gateway/session"
	"github.com/gisportal/go-portal-gateway/urlauth"
)

const contentTypeJSON = "application/json; charset=utf-8"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string          `json:"token"`
	Expires   int64           `json:"expires,omitempty"`
	User      json.RawMessage `json:"user,omitempty"`
	PortalURL string          `json:"portalUrl"`
	District  string          `json:"district,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
}

// LoginHandler exchanges credentials for a portal token and persists the
// session in cookies. The provider's rejection is passed through
// verbatim; transport failures collapse into one generic message. One
// attempt per submit, no retry.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
			writeJSONError(w, http.StatusBadRequest, errorBody{Message: "Username and password are required"})
			return
		}

		referer := r.Header.Get("Origin")
		if referer == "" {
			referer = r.Header.Get("Referer")
		}
		if referer == "" {
			referer = s.config.GetRefererFallback()
		}

		store := session.NewCookieStore(w, r, secureCookies(r))
		sess, err := s.portal.Login(r.Context(), store, req.Username, req.Password, referer)
		if err != nil {
			s.writeLoginFailure(w, req.Username, err)
			return
		}

		loginAttemptsTotal.WithLabelValues("success").Inc()
		writeJSON(w, http.StatusOK, loginResponse{
			Token:     sess.Token,
			Expires:   sess.ExpiresAt,
			User:      sess.UserInfo,
			PortalURL: sess.PortalURL,
			District:  s.scope.DistrictFor(sess.Username),
		})
	}
}

func (s *Server) writeLoginFailure(w http.ResponseWriter, username string, err error) {
	var providerErr *portal.ProviderError
	switch {
	case errs.As(err, &providerErr):
		loginAttemptsTotal.WithLabelValues("rejected").Inc()
		log.Warn().Str("username", username).Int("code", providerErr.Code).Msg("login rejected by portal")
		writeJSONError(w, http.StatusUnauthorized, errorBody{Code: providerErr.Code, Message: providerErr.Message})
	case errs.Is(err, errs.ErrInvalidCredentials):
		loginAttemptsTotal.WithLabelValues("rejected").Inc()
		log.Warn().Str("username", username).Msg("login rejected by portal")
		writeJSONError(w, http.StatusUnauthorized, errorBody{Message: "Authentication failed"})
	default:
		loginAttemptsTotal.WithLabelValues("network_error").Inc()
		log.Err(err).Str("username", username).Msg("login failed to reach portal")
		writeJSONError(w, http.StatusInternalServerError, errorBody{Message: "Network error. Please try again."})
	}
}

// LogoutHandler removes every session cookie and sends the user back to
// the login page. Safe without a session.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := session.NewCookieStore(w, r, secureCookies(r))
		if err := s.portal.Logout(store); err != nil {
			log.Err(err).Msg("logout failed to clear session")
		}
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

// ProxyHandler is the server-side redirect helper: it merges token (and
// portalUrl) into the target's query string and redirects, for flows that
// need a full page navigation rather than an iframe.
func (s *Server) ProxyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		targetURL := query.Get("url")
		token := query.Get("token")
		portalURL := query.Get("portalUrl")

		if targetURL == "" {
			writeJSONError(w, http.StatusBadRequest, errorBody{Message: "Missing target URL"})
			return
		}
		if token == "" {
			writeJSONError(w, http.StatusUnauthorized, errorBody{Message: "Missing authentication token"})
			return
		}

		http.Redirect(w, r, urlauth.MergeToken(targetURL, token, portalURL), http.StatusFound)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("failed to encode JSON response")
	}
}

func writeJSONError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, errorEnvelope{Error: body})
}
