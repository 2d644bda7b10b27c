// Package relay hands the session token to an embedded dashboard document
// that may live on another origin. Nothing here assumes any strategy will
// work: cross-origin restrictions are the normal case, and every failure
// of that class degrades silently.
package relay

// Storage is the embedded document's persisted key/value storage,
// reachable only when the document is same-origin with the host page.
type Storage interface {
	Set(key, value string) error
}

// Frame abstracts the embedded window. Implementations bridge to a real
// browsing context; fakes stand in for tests.
//
// PostMessage never fails for origin reasons (message passing is allowed
// across origins). The other capabilities return ErrCrossOrigin when the
// document is foreign, or ErrFrameDetached when the frame's content has
// been replaced under a stale attempt.
type Frame interface {
	PostMessage(msg Message) error
	Storage() (Storage, error)
	RegisterToken(server, token string) error
	InjectScript(src string) error
}

// Opener performs a top-level navigation outside the frame. Used to honor
// link-click and navigation requests escaping a sandboxed frame.
type Opener interface {
	Open(url string) error
}
