package relay

import (
	"github.com/gisportal/go-portal-gateway/session"
)

// Strategy is one way of making the token available to the embedded
// document. Strategies are tried in a fixed order and do not depend on
// each other's outcome.
type Strategy interface {
	Name() string
	Deliver(frame Frame, sess session.Session) error
}

// Strategies returns the fixed delivery order: message passing first (the
// only one that works cross-origin), then direct storage writes, then the
// identity-registration API, then script injection.
func Strategies() []Strategy {
	return []Strategy{
		postMessageStrategy{},
		storageStrategy{},
		registerTokenStrategy{},
		injectScriptStrategy{},
	}
}

// postMessageStrategy sends the token as structured messages. Both
// message types are sent because embedded apps differ on which one they
// listen for. No target-origin restriction: the operator configures which
// hosts appear in the allow-list, and the token is already visible in the
// frame's URL.
type postMessageStrategy struct{}

func (postMessageStrategy) Name() string { return "post-message" }

func (postMessageStrategy) Deliver(frame Frame, sess session.Session) error {
	for _, msgType := range []string{TypeAuth, TypeSetToken} {
		if err := frame.PostMessage(Message{
			Type:      msgType,
			Token:     sess.Token,
			PortalURL: sess.PortalURL,
		}); err != nil {
			return err
		}
	}
	return nil
}

// storageStrategy writes the token into the embedded document's storage
// under the same keys the host page persists, so a same-origin dashboard
// finds its session where it expects it.
type storageStrategy struct{}

func (storageStrategy) Name() string { return "storage-write" }

func (storageStrategy) Deliver(frame Frame, sess session.Session) error {
	storage, err := frame.Storage()
	if err != nil {
		return err
	}
	if err := storage.Set(session.KeyToken, sess.Token); err != nil {
		return err
	}
	return storage.Set(session.KeyPortalURL, sess.PortalURL)
}

// registerTokenStrategy calls the identity-registration API some embedded
// apps expose on their global object.
type registerTokenStrategy struct{}

func (registerTokenStrategy) Name() string { return "register-token" }

func (registerTokenStrategy) Deliver(frame Frame, sess session.Session) error {
	return frame.RegisterToken(sess.PortalURL, sess.Token)
}

// injectScriptStrategy plants a snippet that registers the token with the
// ArcGIS JS API identity manager once that library finishes loading.
type injectScriptStrategy struct{}

func (injectScriptStrategy) Name() string { return "inject-script" }

func (injectScriptStrategy) Deliver(frame Frame, sess session.Session) error {
	return frame.InjectScript(InjectionScript(sess.PortalURL, sess.Token))
}
