package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bloomshop/storefront/internal/auth/domain"
)

// MockAuthenticator stands in for the backend in dev mode. It accepts one
// fixed credential pair after a fixed delay, mirroring what the shop's
// demo build does.
type MockAuthenticator struct {
	Delay time.Duration
}

func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{Delay: 800 * time.Millisecond}
}

var errInvalidCredentials = errors.New("invalid email or password")

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	if err := m.wait(ctx); err != nil {
		return domain.User{}, "", err
	}
	if email != "user@example.com" || password != "password123" {
		return domain.User{}, "", errInvalidCredentials
	}
	user := domain.User{ID: uuid.NewString(), Username: "BloomUser", Email: email}
	return user, "mock-token-" + user.ID, nil
}

func (m *MockAuthenticator) Register(ctx context.Context, username, email, _ string) (domain.User, string, error) {
	if err := m.wait(ctx); err != nil {
		return domain.User{}, "", err
	}
	user := domain.User{ID: uuid.NewString(), Username: username, Email: email}
	return user, "mock-token-" + user.ID, nil
}

func (m *MockAuthenticator) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.Delay):
		return nil
	}
}
