package framefake

import (
	"sync"

	errs "github.com/gisportal/go-portal-gateway/internal/errors"
	"github.com/gisportal/go-portal-gateway/relay"
)

var _ relay.Frame = (*FakeFrame)(nil)

// Registration records one RegisterToken call.
type Registration struct {
	Server string
	Token  string
}

// FakeFrame is an in-memory Frame for tests. CrossOrigin makes every
// capability except message passing fail the way a foreign document
// would; Detached makes all of them fail the way a replaced frame would.
type FakeFrame struct {
	lock sync.RWMutex

	CrossOrigin bool
	Detached    bool
	RegisterErr error // overrides the origin checks when set

	messages      []relay.Message
	storageItems  map[string]string
	registrations []Registration
	scripts       []string
}

func New() *FakeFrame {
	return &FakeFrame{storageItems: map[string]string{}}
}

func NewCrossOrigin() *FakeFrame {
	f := New()
	f.CrossOrigin = true
	return f
}

func (f *FakeFrame) PostMessage(msg relay.Message) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.Detached {
		return errs.ErrFrameDetached
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *FakeFrame) Storage() (relay.Storage, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()

	if f.Detached {
		return nil, errs.ErrFrameDetached
	}
	if f.CrossOrigin {
		return nil, errs.ErrCrossOrigin
	}
	return fakeStorage{frame: f}, nil
}

func (f *FakeFrame) RegisterToken(server, token string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.RegisterErr != nil {
		return f.RegisterErr
	}
	if f.Detached {
		return errs.ErrFrameDetached
	}
	if f.CrossOrigin {
		return errs.ErrCrossOrigin
	}
	f.registrations = append(f.registrations, Registration{Server: server, Token: token})
	return nil
}

func (f *FakeFrame) InjectScript(src string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	if f.Detached {
		return errs.ErrFrameDetached
	}
	if f.CrossOrigin {
		return errs.ErrCrossOrigin
	}
	f.scripts = append(f.scripts, src)
	return nil
}

func (f *FakeFrame) Messages() []relay.Message {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return append([]relay.Message(nil), f.messages...)
}

func (f *FakeFrame) StorageItem(key string) string {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.storageItems[key]
}

func (f *FakeFrame) Registrations() []Registration {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return append([]Registration(nil), f.registrations...)
}

func (f *FakeFrame) Scripts() []string {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return append([]string(nil), f.scripts...)
}

type fakeStorage struct {
	frame *FakeFrame
}

func (s fakeStorage) Set(key, value string) error {
	s.frame.lock.Lock()
	defer s.frame.lock.Unlock()

	if s.frame.Detached {
		return errs.ErrFrameDetached
	}
	s.frame.storageItems[key] = value
	return nil
}

var _ relay.Opener = (*FakeOpener)(nil)

// FakeOpener records top-level navigations.
type FakeOpener struct {
	lock sync.Mutex
	urls []string
	Err  error
}

func (o *FakeOpener) Open(url string) error {
	o.lock.Lock()
	defer o.lock.Unlock()

	if o.Err != nil {
		return o.Err
	}
	o.urls = append(o.urls, url)
	return nil
}

func (o *FakeOpener) Opened() []string {
	o.lock.Lock()
	defer o.lock.Unlock()
	return append([]string(nil), o.urls...)
}
