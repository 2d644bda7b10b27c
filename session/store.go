package session

import "time"

// Store is the single access path to persisted session state. Login and
// logout are the only writers; both replace the whole record, never
// individual fields.
type Store interface {
	// Get returns the stored session. ok is false when no session is
	// persisted or when only part of one is (a partial write is never a
	// valid session).
	Get() (session Session, ok bool)
	// Set persists every field of the session in one pass.
	Set(session Session) error
	// Clear removes all persisted session fields, including the legacy
	// token key. Idempotent.
	Clear() error
}

// RequireAuth is the guard run before any protected page renders. When the
// stored session is missing or expired it clears the remnants and invokes
// redirect with the login path, returning false. A valid session passes
// through with no side effects.
func RequireAuth(store Store, now time.Time, loginPath string, redirect func(string)) bool {
	s, ok := store.Get()
	if !ok || !s.Valid(now) {
		_ = store.Clear()
		redirect(loginPath)
		return false
	}
	return true
}
