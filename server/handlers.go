package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gisportal/go-portal-gateway/urlauth"
)

// NavItem is one entry in the top navigation.
type NavItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Src   string `json:"src"` // authorized URL, ready for the iframe
}

var navItems = []NavItem{
	{Label: "Detected Constructions", URL: "https://gh.space.gov.rw/portal/apps/dashboards/b3e95d36ef1d4b618974da7ee0a2b6df"},
	{Label: "Inspection Performance", URL: "https://gh.space.gov.rw/portal/apps/dashboards/cec79918f7e4435a82f203acb25af4ca"},
	{Label: "Revenue Compliance", URL: "https://gh.space.gov.rw/portal/apps/dashboards/2fbe0208d1e4410da15ff26609b53e6f"},
	{Label: "Permit Compliance", URL: "https://gh.space.gov.rw/portal/apps/dashboards/3baea36026ac432f854c0e28b65884b4"},
	{Label: "Inspection Field Checklist", URL: "https://survey123.arcgis.com/share/994ae914aafb40008f3f48cf8e10c722?portalUrl=https://gh.space.gov.rw/portal"},
}

// visibleNavItems filters the navigation for a district and authorizes
// each surviving URL. A user with no resolvable district sees every item
// here even though the allow-list gives them no dashboards; both defaults
// are long-standing observed behaviour.
func (s *Server) visibleNavItems(district string, authorize func(string) string) []NavItem {
	items := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		if district != "" && !s.scope.IsAllowed(item.URL, district) {
			continue
		}
		item.Src = authorize(item.URL)
		items = append(items, item)
	}
	return items
}

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	Error   string
}

// LoginPageHandler serves the login form.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("login.html")
	if err != nil {
		panic("Failed to parse login template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render login template")
		}
	}
}

// DashboardPageData contains data for rendering the dashboard shell
type DashboardPageData struct {
	AppName    string
	Username   string
	District   string
	NavItems   []NavItem
	DefaultSrc string
	Token      string
	PortalURL  string
}

// DashboardHandler renders the shell page: navigation plus the iframe
// pointed at the district's landing dashboard, already authorized.
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("dashboard.html")
	if err != nil {
		panic("Failed to parse dashboard template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			return
		}

		district := s.scope.DistrictFor(sess.Username)
		filters := s.scope.URLFilters(district)
		authorize := func(raw string) string {
			return urlauth.Authorize(raw, sess, filters)
		}

		var defaultSrc string
		if allowed := s.scope.AllowedURLs(district); len(allowed) > 0 {
			defaultSrc = authorize(allowed[0])
		}

		data := DashboardPageData{
			AppName:    s.config.GetAppName(),
			Username:   sess.Username,
			District:   district,
			NavItems:   s.visibleNavItems(district, authorize),
			DefaultSrc: defaultSrc,
			Token:      sess.Token,
			PortalURL:  sess.PortalURL,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render dashboard template")
		}
	}
}

type navResponse struct {
	District   string    `json:"district,omitempty"`
	Items      []NavItem `json:"items"`
	DefaultSrc string    `json:"defaultSrc,omitempty"`
}

// NavHandler returns the navigation for the authenticated user as JSON.
func (s *Server) NavHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, errorBody{Message: "Not authenticated"})
			return
		}

		district := s.scope.DistrictFor(sess.Username)
		filters := s.scope.URLFilters(district)
		authorize := func(raw string) string {
			return urlauth.Authorize(raw, sess, filters)
		}

		resp := navResponse{
			District: district,
			Items:    s.visibleNavItems(district, authorize),
		}
		if allowed := s.scope.AllowedURLs(district); len(allowed) > 0 {
			resp.DefaultSrc = authorize(allowed[0])
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
