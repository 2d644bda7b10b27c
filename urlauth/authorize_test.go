package urlauth_test

import (
	"strings"
	"testing"

	"github.com/gisportal/go-portal-gateway/session"
	"github.com/gisportal/go-portal-gateway/urlauth"
	"github.com/stretchr/testify/require"
)

var bugeseraFilters = map[string]string{"District": "Bugesera"}

func testSession() session.Session {
	return session.Session{
		Token:     "TOK123",
		PortalURL: "https://gh.space.gov.rw/portal",
		Username:  "claudine_bugesera",
	}
}

// splitURL breaks an authorized URL into base, query and fragment.
func splitURL(t *testing.T, u string) (base, query, fragment string) {
	t.Helper()
	rest := u
	if i := strings.Index(rest, "#"); i >= 0 {
		fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.Index(rest, "?"); i >= 0 {
		query = rest[i+1:]
		rest = rest[:i]
	}
	return rest, query, fragment
}

func TestAuthorize_FiltersBeforeToken(t *testing.T) {
	got := urlauth.Authorize("https://x/y?a=1#b=2", testSession(), bugeseraFilters)

	base, query, fragment := splitURL(t, got)
	require.Equal(t, "https://x/y", base)
	require.Equal(t, "a=1&District=Bugesera&token=TOK123", query)
	require.Equal(t, "b=2&District=Bugesera&token=TOK123", fragment)
}

func TestAuthorize_PortalURLForApps(t *testing.T) {
	sess := testSession()

	t.Run("dashboard app gets portalUrl", func(t *testing.T) {
		got := urlauth.Authorize("https://gh.space.gov.rw/portal/apps/dashboards/abc", sess, nil)
		_, query, fragment := splitURL(t, got)
		require.Contains(t, query, "token=TOK123")
		require.Contains(t, query, "portalUrl=https%3A%2F%2Fgh.space.gov.rw%2Fportal")
		require.Contains(t, fragment, "portalUrl=https%3A%2F%2Fgh.space.gov.rw%2Fportal")
	})

	t.Run("survey123 gets portalUrl", func(t *testing.T) {
		got := urlauth.Authorize("https://survey123.arcgis.com/share/abc", sess, nil)
		require.Contains(t, got, "portalUrl=")
	})

	t.Run("plain URL does not", func(t *testing.T) {
		got := urlauth.Authorize("https://x/y", sess, nil)
		require.NotContains(t, got, "portalUrl=")
		require.Contains(t, got, "token=TOK123")
	})
}

func TestAuthorize_MissingTokenReturnsInputUnchanged(t *testing.T) {
	in := "https://x/y?a=1#b=2"
	got := urlauth.Authorize(in, session.Session{PortalURL: "https://p/portal"}, bugeseraFilters)
	require.Equal(t, in, got)
}

func TestAuthorize_Idempotent(t *testing.T) {
	in := "https://gh.space.gov.rw/portal/apps/dashboards/abc?a=1#District=Kigali&b=2"
	sess := testSession()

	once := urlauth.Authorize(in, sess, bugeseraFilters)
	twice := urlauth.Authorize(once, sess, bugeseraFilters)

	_, query, fragment := splitURL(t, twice)
	require.Equal(t, 1, urlauth.ParseParams(query).Count("token"))
	require.Equal(t, 1, urlauth.ParseParams(query).Count("portalUrl"))
	require.Equal(t, 1, urlauth.ParseParams(query).Count("District"))
	require.Equal(t, 1, urlauth.ParseParams(fragment).Count("token"))
	require.Equal(t, 1, urlauth.ParseParams(fragment).Count("portalUrl"))
	require.Equal(t, 1, urlauth.ParseParams(fragment).Count("District"))
}

func TestAuthorize_ReplacesManagedHashKeys(t *testing.T) {
	got := urlauth.Authorize("https://x/y#District=Kigali&view=map", testSession(), bugeseraFilters)

	_, _, fragment := splitURL(t, got)
	pairs := urlauth.ParseParams(fragment)
	district, ok := pairs.Get("District")
	require.True(t, ok)
	require.Equal(t, "Bugesera", district)
	require.Equal(t, 1, pairs.Count("District"))

	// Unmanaged hash state survives in place.
	view, ok := pairs.Get("view")
	require.True(t, ok)
	require.Equal(t, "map", view)
}

func TestAuthorize_ReplacesExistingTokenParam(t *testing.T) {
	got := urlauth.Authorize("https://x/y?token=stale", testSession(), nil)

	_, query, _ := splitURL(t, got)
	pairs := urlauth.ParseParams(query)
	require.Equal(t, 1, pairs.Count("token"))
	tok, _ := pairs.Get("token")
	require.Equal(t, "TOK123", tok)
}

func TestAuthorize_StripsStaleHashCredentials(t *testing.T) {
	got := urlauth.Authorize("https://x/y#token=old&portalUrl=old&b=2", testSession(), nil)

	_, _, fragment := splitURL(t, got)
	pairs := urlauth.ParseParams(fragment)
	require.Equal(t, 1, pairs.Count("token"))
	tok, _ := pairs.Get("token")
	require.Equal(t, "TOK123", tok)
	// Plain URL: no portalUrl re-added after the stale one is dropped.
	require.Equal(t, 0, pairs.Count("portalUrl"))
}

func TestAuthorize_FallbackOnMalformedURL(t *testing.T) {
	sess := testSession()

	t.Run("no query yet", func(t *testing.T) {
		got := urlauth.Authorize("not a url", sess, bugeseraFilters)
		require.Equal(t, "not a url?token=TOK123&portalUrl=https%3A%2F%2Fgh.space.gov.rw%2Fportal", got)
	})

	t.Run("existing query", func(t *testing.T) {
		got := urlauth.Authorize("relative/path?x=1", sess, nil)
		require.Equal(t, "relative/path?x=1&token=TOK123&portalUrl=https%3A%2F%2Fgh.space.gov.rw%2Fportal", got)
	})

	t.Run("no portal URL recorded", func(t *testing.T) {
		got := urlauth.Authorize("relative/path", session.Session{Token: "T"}, nil)
		require.Equal(t, "relative/path?token=T", got)
	})
}

func TestMergeToken(t *testing.T) {
	t.Run("structured merge", func(t *testing.T) {
		got := urlauth.MergeToken("https://x/y?a=1", "T", "https://p/portal")
		require.Contains(t, got, "a=1")
		require.Contains(t, got, "token=T")
		require.Contains(t, got, "portalUrl=https%3A%2F%2Fp%2Fportal")
	})

	t.Run("existing token superseded", func(t *testing.T) {
		got := urlauth.MergeToken("https://x/y?token=old", "T", "")
		require.NotContains(t, got, "old")
		require.Equal(t, 1, strings.Count(got, "token="))
	})

	t.Run("fallback append", func(t *testing.T) {
		got := urlauth.MergeToken("no scheme here", "T", "")
		require.Equal(t, "no scheme here?token=T", got)
	})
}
