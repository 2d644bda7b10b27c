package session

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
)

// CookieStore persists the session in per-profile browser cookies. One
// store is created per request; reads come from the request's cookies and
// writes go to the response.
type CookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool
}

var _ Store = (*CookieStore)(nil)

func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{w: w, r: r, secure: secure}
}

func (cs *CookieStore) Get() (Session, bool) {
	s := Session{
		Token:     cs.cookieValue(KeyToken),
		PortalURL: cs.cookieValue(KeyPortalURL),
		Username:  cs.cookieValue(KeyUsername),
	}
	if !s.Complete() {
		return Session{}, false
	}
	if raw := cs.cookieValue(KeyExpires); raw != "" {
		expires, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			// A mangled expiry makes the record partial, not lenient.
			return Session{}, false
		}
		s.ExpiresAt = expires
	}
	if raw := cs.cookieValue(KeyUser); raw != "" {
		s.UserInfo = []byte(raw)
	}
	return s, true
}

func (cs *CookieStore) Set(s Session) error {
	if !s.Complete() {
		return errors.New("[CookieStore.Set] refusing to persist a partial session")
	}
	cs.setCookie(KeyToken, s.Token)
	cs.setCookie(KeyPortalURL, s.PortalURL)
	cs.setCookie(KeyUsername, s.Username)
	if s.ExpiresAt != 0 {
		cs.setCookie(KeyExpires, strconv.FormatInt(s.ExpiresAt, 10))
	} else {
		cs.expireCookie(KeyExpires)
	}
	if len(s.UserInfo) > 0 {
		cs.setCookie(KeyUser, string(s.UserInfo))
	} else {
		cs.expireCookie(KeyUser)
	}
	return nil
}

func (cs *CookieStore) Clear() error {
	for _, key := range []string{KeyToken, KeyPortalURL, KeyUsername, KeyExpires, KeyUser, keyLegacyToken} {
		cs.expireCookie(key)
	}
	return nil
}

func (cs *CookieStore) cookieValue(name string) string {
	c, err := cs.r.Cookie(name)
	if err != nil {
		return ""
	}
	value, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return ""
	}
	return string(value)
}

func (cs *CookieStore) setCookie(name, value string) {
	http.SetCookie(cs.w, &http.Cookie{
		Name:     name,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(value)),
		Path:     "/",
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (cs *CookieStore) expireCookie(name string) {
	http.SetCookie(cs.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cs.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
