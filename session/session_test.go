package session_test

import (
	"testing"
	"time"

	"github.com/gisportal/go-portal-gateway/session"
	"github.com/gisportal/go-portal-gateway/session/storefake"
	"github.com/stretchr/testify/require"
)

func TestSession_Valid(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	t.Run("no token", func(t *testing.T) {
		s := session.Session{PortalURL: "https://portal.example/portal", Username: "claudine_bugesera"}
		require.False(t, s.Valid(now))
	})

	t.Run("token without expiry is trusted", func(t *testing.T) {
		s := session.Session{Token: "abc", PortalURL: "https://portal.example/portal", Username: "claudine_bugesera"}
		require.True(t, s.Valid(now))
	})

	t.Run("valid until five minutes before expiry", func(t *testing.T) {
		s := session.Session{Token: "abc", ExpiresAt: now.Add(10 * time.Minute).UnixMilli()}
		require.True(t, s.Valid(now))
	})

	t.Run("invalid inside the safety margin", func(t *testing.T) {
		s := session.Session{Token: "abc", ExpiresAt: now.Add(4 * time.Minute).UnixMilli()}
		require.False(t, s.Valid(now))
	})

	t.Run("boundary is exclusive", func(t *testing.T) {
		s := session.Session{Token: "abc", ExpiresAt: now.Add(session.ValidityMargin).UnixMilli()}
		require.False(t, s.Valid(now))
	})

	t.Run("expired", func(t *testing.T) {
		s := session.Session{Token: "abc", ExpiresAt: now.Add(-time.Minute).UnixMilli()}
		require.False(t, s.Valid(now))
	})
}

func TestSession_Complete(t *testing.T) {
	full := session.Session{Token: "t", PortalURL: "https://p/portal", Username: "u"}
	require.True(t, full.Complete())

	partials := []session.Session{
		{PortalURL: "https://p/portal", Username: "u"},
		{Token: "t", Username: "u"},
		{Token: "t", PortalURL: "https://p/portal"},
		{},
	}
	for _, p := range partials {
		require.False(t, p.Complete())
	}
}

func TestRequireAuth(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	valid := session.Session{Token: "t", PortalURL: "https://p/portal", Username: "u"}

	t.Run("valid session passes with no side effects", func(t *testing.T) {
		store := storefake.NewWith(valid)
		redirected := ""
		ok := session.RequireAuth(store, now, "/login", func(path string) { redirected = path })
		require.True(t, ok)
		require.Empty(t, redirected)
		require.Zero(t, store.ClearCalls)
	})

	t.Run("missing session clears and redirects", func(t *testing.T) {
		store := storefake.New()
		redirected := ""
		ok := session.RequireAuth(store, now, "/login", func(path string) { redirected = path })
		require.False(t, ok)
		require.Equal(t, "/login", redirected)
		require.Equal(t, 1, store.ClearCalls)
	})

	t.Run("expired session clears and redirects", func(t *testing.T) {
		expired := valid
		expired.ExpiresAt = now.Add(-time.Hour).UnixMilli()
		store := storefake.NewWith(expired)
		ok := session.RequireAuth(store, now, "/login", func(string) {})
		require.False(t, ok)
		require.Equal(t, 1, store.ClearCalls)

		_, present := store.Get()
		require.False(t, present)
	})

	t.Run("clear then valid is always false", func(t *testing.T) {
		store := storefake.NewWith(valid)
		require.NoError(t, store.Clear())
		s, ok := store.Get()
		require.False(t, ok)
		require.False(t, s.Valid(now))
	})
}
