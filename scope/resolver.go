// Package scope maps an authenticated username to its district access
// scope: the dashboards the district may open and the filter values that
// must ride on every dashboard URL.
package scope

import (
	"net/url"
	"strings"
)

// Resolver answers district and allow-list questions against a fixed
// directory. Lookups never hit the network.
type Resolver struct {
	byUsername map[string]User
	users      []User
	districts  []DistrictDashboards
}

func NewResolver(users []User, districts []DistrictDashboards) *Resolver {
	byUsername := make(map[string]User, len(users))
	for _, u := range users {
		byUsername[u.Username] = u
	}
	return &Resolver{byUsername: byUsername, users: users, districts: districts}
}

// NewDefaultResolver returns a resolver over the built-in user directory
// and district dashboard configuration.
func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultUsers, DefaultDistricts)
}

// DistrictFor resolves a username to its district code. Directory lookup
// is exact and case-sensitive; unknown usernames fall back to the
// name_district convention, taking the final underscore segment
// lower-cased. Returns "" when neither yields a district.
func (r *Resolver) DistrictFor(username string) string {
	if username == "" {
		return ""
	}
	if u, ok := r.byUsername[username]; ok {
		return u.District
	}
	parts := strings.Split(username, "_")
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower(parts[len(parts)-1])
}

// UserFor returns the directory entry for a username, if any.
func (r *Resolver) UserFor(username string) (User, bool) {
	u, ok := r.byUsername[username]
	return u, ok
}

// AllowedURLs returns the ordered dashboard list for a district. The
// first entry is the landing dashboard. Unknown or absent districts get
// nothing.
func (r *Resolver) AllowedURLs(district string) []string {
	if d, ok := r.district(district); ok {
		return d.AllowedURLs
	}
	return nil
}

// URLFilters returns the query parameters stamped onto every dashboard
// URL for a district.
func (r *Resolver) URLFilters(district string) map[string]string {
	if d, ok := r.district(district); ok {
		return d.URLFilters
	}
	return map[string]string{}
}

// AllURLs returns every configured dashboard URL across districts, in
// configuration order, deduplicated. The navigation component shows this
// full set when a user has no resolvable district, while AllowedURLs
// yields nothing for the same user. The two defaults disagree on purpose:
// this mirrors the behaviour the field teams rely on.
func (r *Resolver) AllURLs() []string {
	seen := map[string]struct{}{}
	var urls []string
	for _, d := range r.districts {
		for _, u := range d.AllowedURLs {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
		}
	}
	return urls
}

// IsAllowed reports whether the URL names a dashboard on the district's
// allow-list. Only scheme, host, and path identify the resource: the same
// dashboard is linked with varying embedded filters, so query and
// fragment are ignored on both sides.
func (r *Resolver) IsAllowed(rawURL, district string) bool {
	if district == "" {
		return false
	}
	target, ok := baseForm(rawURL)
	if !ok {
		return false
	}
	for _, allowed := range r.AllowedURLs(district) {
		base, ok := baseForm(allowed)
		if !ok {
			continue
		}
		if base == target {
			return true
		}
	}
	return false
}

func (r *Resolver) district(district string) (DistrictDashboards, bool) {
	for _, d := range r.districts {
		if strings.EqualFold(d.District, district) {
			return d, true
		}
	}
	return DistrictDashboards{}, false
}

func baseForm(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + strings.ToLower(u.Host) + u.Path, true
}
