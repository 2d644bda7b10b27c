package portal

import (
	"context"

	"github.com/pkg/errors"

	"github.com/gisportal/go-portal-gateway/session"
)

// Service owns the two session transitions: login writes a whole session,
// logout removes one. No other code path mutates session state.
type Service struct {
	client *Client
}

func NewService(client *Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("[NewService] client is required")
	}
	return &Service{client: client}, nil
}

// Login exchanges credentials for a token and persists the resulting
// session atomically through the store. The error is either a provider
// rejection (invalid credentials, surfaced verbatim) or a transport
// failure; neither is retried here.
func (s *Service) Login(ctx context.Context, store session.Store, username, password, referer string) (session.Session, error) {
	reply, err := s.client.GenerateToken(ctx, username, password, referer)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "[Service.Login] generateToken")
	}

	sess := session.Session{
		Token:     reply.Token,
		PortalURL: s.client.PortalURL(),
		Username:  username,
		ExpiresAt: reply.Expires,
		UserInfo:  reply.User,
	}
	if err := store.Set(sess); err != nil {
		return session.Session{}, errors.Wrap(err, "[Service.Login] persist session")
	}
	return sess, nil
}

// Logout removes every persisted session field. Safe to call without a
// session.
func (s *Service) Logout(store session.Store) error {
	return errors.Wrap(store.Clear(), "[Service.Logout] clear session")
}
