package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// AuthController drives the login page: exchange credentials for a token,
// then persist the session the access guard reads on every navigation.
// The selected role is part of the login form, not of the token — the
// token stays opaque.
type AuthController struct {
	auth    ports.AuthGateway
	session *SessionStore
	logger  zerolog.Logger

	mu     sync.RWMutex
	banner string
}

func NewAuthController(auth ports.AuthGateway, session *SessionStore, logger zerolog.Logger) *AuthController {
	return &AuthController{
		auth:    auth,
		session: session,
		logger:  logger.With().Str("controller", "auth").Logger(),
	}
}

// Login authenticates and stores the session. On failure no session state
// is written.
func (c *AuthController) Login(ctx context.Context, email, password string, role domain.Role) error {
	if email == "" || password == "" {
		c.setBanner("Please enter email and password.")
		return ErrMissingFields
	}

	token, err := c.auth.Login(ctx, email, password)
	if err != nil {
		c.setBanner("Invalid credentials.")
		return err
	}

	c.session.SetSession(ctx, token, role)
	c.mu.Lock()
	c.banner = ""
	c.mu.Unlock()
	c.logger.Info().Str("role", string(role)).Msg("logged in")
	return nil
}

func (c *AuthController) Banner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.banner
}

func (c *AuthController) setBanner(message string) {
	c.mu.Lock()
	c.banner = message
	c.mu.Unlock()
}
