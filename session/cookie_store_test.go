package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gisportal/go-portal-gateway/session"
	"github.com/stretchr/testify/require"
)

// roundTrip writes the session through one store and reads it back through
// a second, the way two successive requests would.
func roundTrip(t *testing.T, write func(*session.CookieStore)) (*session.CookieStore, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	write(session.NewCookieStore(w, r, false))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 {
			next.AddCookie(c)
		}
	}
	return session.NewCookieStore(httptest.NewRecorder(), next, false), w
}

func TestCookieStore_SetGet(t *testing.T) {
	s := session.Session{
		Token:     "tok-123",
		PortalURL: "https://gh.space.gov.rw/portal",
		Username:  "claudine_bugesera",
		ExpiresAt: 1_700_000_000_000,
		UserInfo:  []byte(`{"username":"claudine_bugesera","role":"org_user"}`),
	}

	store, _ := roundTrip(t, func(cs *session.CookieStore) {
		require.NoError(t, cs.Set(s))
	})

	got, ok := store.Get()
	require.True(t, ok)
	require.Equal(t, s.Token, got.Token)
	require.Equal(t, s.PortalURL, got.PortalURL)
	require.Equal(t, s.Username, got.Username)
	require.Equal(t, s.ExpiresAt, got.ExpiresAt)
	require.JSONEq(t, string(s.UserInfo), string(got.UserInfo))
}

func TestCookieStore_RejectsPartialWrite(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	cs := session.NewCookieStore(w, r, false)

	err := cs.Set(session.Session{Token: "only-a-token"})
	require.Error(t, err)
	require.Empty(t, w.Result().Cookies())
}

func TestCookieStore_PartialCookiesAreAbsent(t *testing.T) {
	// Only the token cookie survives, e.g. after a failed write. "dG9r" is
	// the encoded form of "tok".
	partial := httptest.NewRequest(http.MethodGet, "/", nil)
	partial.AddCookie(&http.Cookie{Name: session.KeyToken, Value: "dG9r"})

	_, ok := session.NewCookieStore(httptest.NewRecorder(), partial, false).Get()
	require.False(t, ok)
}

func TestCookieStore_ClearExpiresEveryKey(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	cs := session.NewCookieStore(w, r, false)

	require.NoError(t, cs.Clear())

	expired := map[string]bool{}
	for _, c := range w.Result().Cookies() {
		require.Negative(t, c.MaxAge)
		expired[c.Name] = true
	}
	for _, key := range []string{
		session.KeyToken, session.KeyPortalURL, session.KeyUsername,
		session.KeyExpires, session.KeyUser, "authToken",
	} {
		require.True(t, expired[key], "expected %s to be cleared", key)
	}

	// Clearing again is harmless.
	require.NoError(t, cs.Clear())
}

func TestCookieStore_MangledExpiryIsAbsent(t *testing.T) {
	w := httptest.NewRecorder()
	good := session.NewCookieStore(w, httptest.NewRequest(http.MethodGet, "/", nil), false)
	require.NoError(t, good.Set(session.Session{Token: "tok", PortalURL: "https://p/portal", Username: "u"}))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge >= 0 && c.Name != session.KeyExpires {
			next.AddCookie(c)
		}
	}
	// tokenExpires carrying encoded non-numeric text ("not-a-number").
	next.AddCookie(&http.Cookie{Name: session.KeyExpires, Value: "bm90LWEtbnVtYmVy"})

	_, ok := session.NewCookieStore(httptest.NewRecorder(), next, false).Get()
	require.False(t, ok)
}
