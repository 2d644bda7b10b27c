// Package session holds the authenticated portal session: the bearer token
// issued by the portal, its expiry, and the identity it was issued to.
// State is persisted in browser-scoped cookies so a session survives page
// reloads but never outlives the browser profile.
package session

import (
	"encoding/json"
	"time"
)

// Persisted key names. These are part of the contract with the embedded
// dashboards and the relay script and must not change.
const (
	KeyToken     = "portalToken"
	KeyPortalURL = "portalUrl"
	KeyUsername  = "username"
	KeyExpires   = "tokenExpires"
	KeyUser      = "portalUser"

	// Written by an earlier portal build. Cleared on logout, never written.
	keyLegacyToken = "authToken"
)

// ValidityMargin is subtracted from the recorded expiry when checking
// validity, so a dashboard is never handed a token about to lapse.
const ValidityMargin = 5 * time.Minute

// Session is the full authenticated state. It is written atomically on
// login and removed atomically on logout; a partially persisted session is
// treated as absent.
type Session struct {
	Token     string
	PortalURL string
	Username  string
	ExpiresAt int64           // epoch milliseconds, 0 when the provider reported none
	UserInfo  json.RawMessage // opaque provider user record, may be nil
}

// Complete reports whether every required field is present.
func (s Session) Complete() bool {
	return s.Token != "" && s.PortalURL != "" && s.Username != ""
}

// Valid reports whether the token can still be used at the given time.
// A session without a recorded expiry is trusted: the provider issues
// long-lived tokens by default and re-checking server side would cost a
// round trip per page load.
func (s Session) Valid(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	if s.ExpiresAt == 0 {
		return true
	}
	return now.UnixMilli() < s.ExpiresAt-ValidityMargin.Milliseconds()
}
