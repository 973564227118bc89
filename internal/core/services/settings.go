package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// SettingsController owns the settings page: availability, appearance and
// the session-teardown actions. It is stateless; everything it touches
// lives in the shared stores.
type SettingsController struct {
	session *SessionStore
	prefs   *PreferenceStore
	kv      ports.KeyValueStore
	logger  zerolog.Logger
}

func NewSettingsController(session *SessionStore, prefs *PreferenceStore, kv ports.KeyValueStore, logger zerolog.Logger) *SettingsController {
	return &SettingsController{
		session: session,
		prefs:   prefs,
		kv:      kv,
		logger:  logger.With().Str("controller", "settings").Logger(),
	}
}

func (c *SettingsController) Role(ctx context.Context) domain.Role {
	return c.session.Role(ctx)
}

func (c *SettingsController) SetOnLeave(ctx context.Context, onLeave bool) {
	c.prefs.SetOnLeave(ctx, onLeave)
}

func (c *SettingsController) OnLeave(ctx context.Context) bool {
	return c.prefs.OnLeave(ctx)
}

func (c *SettingsController) SetTheme(ctx context.Context, theme string) {
	c.prefs.SetTheme(ctx, theme)
}

func (c *SettingsController) Theme(ctx context.Context) string {
	return c.prefs.Theme(ctx)
}

func (c *SettingsController) SetNotifications(ctx context.Context, enabled bool) {
	c.prefs.SetNotifications(ctx, enabled)
}

func (c *SettingsController) Notifications(ctx context.Context) bool {
	return c.prefs.Notifications(ctx)
}

// Logout destroys the session. Preferences survive a logout.
func (c *SettingsController) Logout(ctx context.Context) {
	c.session.ClearSession(ctx)
	c.logger.Info().Msg("session cleared")
}

// ClearLocalData wipes every managed key in one atomic delete: token,
// role, leave flag and UI preferences all revert to their defaults
// together, with no reader able to observe a partially-cleared state.
func (c *SettingsController) ClearLocalData(ctx context.Context) {
	c.kv.Delete(ctx, managedKeys...)
	c.logger.Info().Msg("local state cleared")
}
