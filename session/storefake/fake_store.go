package storefake

import (
	"sync"

	"github.com/gisportal/go-portal-gateway/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory Store for tests.
type FakeStore struct {
	lock       sync.RWMutex
	current    session.Session
	present    bool
	SetCalls   int
	ClearCalls int
}

func New() *FakeStore {
	return &FakeStore{}
}

// NewWith returns a store pre-populated with the given session.
func NewWith(s session.Session) *FakeStore {
	return &FakeStore{current: s, present: true}
}

func (fs *FakeStore) Get() (session.Session, bool) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	if !fs.present || !fs.current.Complete() {
		return session.Session{}, false
	}
	return fs.current, true
}

func (fs *FakeStore) Set(s session.Session) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.current = s
	fs.present = true
	fs.SetCalls++
	return nil
}

func (fs *FakeStore) Clear() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.current = session.Session{}
	fs.present = false
	fs.ClearCalls++
	return nil
}
