// Package urlauth builds authorized dashboard URLs: the session token and
// the district filters are injected into both the query string and the
// hash fragment, since embedded apps differ on which of the two they read.
package urlauth

import (
	"net/url"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gisportal/go-portal-gateway/session"
)

// Managed keys. Each authorization pass supersedes any earlier value for
// these, so re-authorizing an already authorized URL never duplicates them.
const (
	TokenKey     = "token"
	PortalURLKey = "portalUrl"
)

// Authorize rewrites a dashboard URL so it carries the session token and
// the district filters. Filters are applied before the token, and both
// land in the query string and the hash fragment. A missing token returns
// the URL unchanged; a URL that will not parse takes the plain append
// fallback. Pure given its inputs, no I/O.
func Authorize(rawURL string, sess session.Session, filters map[string]string) string {
	if sess.Token == "" {
		log.Warn().Str("url", rawURL).Msg("no token available for dashboard URL")
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		log.Debug().Str("url", rawURL).Msg("dashboard URL did not parse, appending token directly")
		return fallbackAppend(rawURL, sess)
	}

	query := ParseParams(u.RawQuery)
	fragment := ParseParams(u.Fragment)

	// District filters first, into both representations.
	for _, key := range sortedKeys(filters) {
		escaped := url.QueryEscape(filters[key])
		query.Set(key, escaped)
		fragment.Set(key, escaped)
	}

	// Token next. Delete-then-set moves a stale token to the end rather
	// than leaving two copies behind.
	query.Delete(TokenKey)
	query.Set(TokenKey, url.QueryEscape(sess.Token))

	withPortalURL := IsPortalApp(rawURL) && sess.PortalURL != ""
	if withPortalURL {
		query.Set(PortalURLKey, url.QueryEscape(sess.PortalURL))
	}

	fragment.Delete(TokenKey)
	fragment.Delete(PortalURLKey)
	fragment.Set(TokenKey, sess.Token)
	if withPortalURL {
		fragment.Set(PortalURLKey, url.QueryEscape(sess.PortalURL))
	}

	return u.Scheme + "://" + u.Host + u.Path + "?" + query.Encode() + "#" + fragment.Encode()
}

// MergeToken is the server-side half of token injection, used by the
// redirect helper: token and portal URL go into the query string only.
func MergeToken(rawURL, token, portalURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		sess := session.Session{Token: token, PortalURL: portalURL}
		return fallbackAppend(rawURL, sess)
	}
	q := u.Query()
	q.Set(TokenKey, token)
	if portalURL != "" {
		q.Set(PortalURLKey, portalURL)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// IsPortalApp reports whether the URL targets an app that needs to know
// which portal issued its token: hosted app/dashboard paths, ArcGIS
// Online, or Survey123.
func IsPortalApp(rawURL string) bool {
	return strings.Contains(rawURL, "/apps/") ||
		strings.Contains(rawURL, "arcgis.com") ||
		strings.Contains(rawURL, "survey123")
}

// fallbackAppend is the degraded path for URLs the parser rejects: choose
// the separator by the presence of "?" and append. No fragment merging is
// attempted here.
func fallbackAppend(rawURL string, sess session.Session) string {
	separator := "?"
	if strings.Contains(rawURL, "?") {
		separator = "&"
	}
	out := rawURL + separator + TokenKey + "=" + sess.Token
	if sess.PortalURL != "" {
		out += "&" + PortalURLKey + "=" + url.QueryEscape(sess.PortalURL)
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
