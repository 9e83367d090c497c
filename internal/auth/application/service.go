package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/bloomshop/storefront/internal/auth/domain"
	"github.com/bloomshop/storefront/internal/kv"
)

// Session credentials stay server-side; only the session cookie crosses
// to the client. Token and profile expire together.
const sessionTTL = 24 * time.Hour

// Authenticator is the remote identity port.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	Register(ctx context.Context, username, email, password string) (domain.User, string, error)
}

type Service struct {
	log   *slog.Logger
	store kv.Store
	auth  Authenticator
}

func NewService(log *slog.Logger, store kv.Store, auth Authenticator) *Service {
	return &Service{log: log, store: store, auth: auth}
}

func tokenKey(sessionID string) string { return "token:" + sessionID }
func userKey(sessionID string) string  { return "user:" + sessionID }

func (s *Service) Login(ctx context.Context, sessionID, email, password string) (domain.User, error) {
	user, token, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}
	return user, s.remember(ctx, sessionID, user, token)
}

func (s *Service) Register(ctx context.Context, sessionID, username, email, password string) (domain.User, error) {
	user, token, err := s.auth.Register(ctx, username, email, password)
	if err != nil {
		return domain.User{}, err
	}
	return user, s.remember(ctx, sessionID, user, token)
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, tokenKey(sessionID)); err != nil {
		return err
	}
	return s.store.Delete(ctx, userKey(sessionID))
}

// Current returns the cached profile, or nil when the session is not
// authenticated. A corrupt cached profile reads as unauthenticated.
func (s *Service) Current(ctx context.Context, sessionID string) (*domain.User, error) {
	var user domain.User
	ok, err := kv.GetJSON(ctx, s.store, userKey(sessionID), &user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Token returns the backend bearer token for the session.
func (s *Service) Token(ctx context.Context, sessionID string) (string, bool, error) {
	data, ok, err := s.store.Get(ctx, tokenKey(sessionID))
	if err != nil || !ok {
		return "", false, err
	}
	return string(data), true, nil
}

func (s *Service) remember(ctx context.Context, sessionID string, user domain.User, token string) error {
	if err := s.store.Set(ctx, tokenKey(sessionID), []byte(token), sessionTTL); err != nil {
		return err
	}
	return kv.SetJSON(ctx, s.store, userKey(sessionID), user, sessionTTL)
}
