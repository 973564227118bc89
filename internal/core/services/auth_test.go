package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/test/mocks"
)

func TestLoginStoresSession(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewMockGateway()
	gw.LoginToken = "token-xyz"
	kv := mocks.NewMockKeyValueStore()
	session := NewSessionStore(kv)
	c := NewAuthController(gw, session, zerolog.Nop())

	if err := c.Login(ctx, "doc@clinic.test", "secret", domain.RoleReceptionist); err != nil {
		t.Fatalf("Login() = %v", err)
	}
	token, ok := session.Token(ctx)
	if !ok || token != "token-xyz" {
		t.Errorf("Token() = (%q, %v)", token, ok)
	}
	// The role comes from the login form, not the token.
	if role := session.Role(ctx); role != domain.RoleReceptionist {
		t.Errorf("Role() = %q", role)
	}
}

func TestLoginFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewMockGateway()
	gw.LoginErr = errors.New("401")
	kv := mocks.NewMockKeyValueStore()
	session := NewSessionStore(kv)
	c := NewAuthController(gw, session, zerolog.Nop())

	if err := c.Login(ctx, "doc@clinic.test", "wrong", domain.RoleDoctor); err == nil {
		t.Fatal("Login() succeeded with bad credentials")
	}
	if _, ok := session.Token(ctx); ok {
		t.Error("token stored despite failed login")
	}
	if c.Banner() != "Invalid credentials." {
		t.Errorf("banner = %q", c.Banner())
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewMockGateway()
	c := NewAuthController(gw, NewSessionStore(mocks.NewMockKeyValueStore()), zerolog.Nop())

	if err := c.Login(ctx, "", "secret", domain.RoleDoctor); !errors.Is(err, ErrMissingFields) {
		t.Errorf("Login with empty email = %v, want ErrMissingFields", err)
	}
	if err := c.Login(ctx, "doc@clinic.test", "", domain.RoleDoctor); !errors.Is(err, ErrMissingFields) {
		t.Errorf("Login with empty password = %v, want ErrMissingFields", err)
	}
	if gw.LoginCalls != 0 {
		t.Errorf("gateway called %d times on incomplete form", gw.LoginCalls)
	}
}
