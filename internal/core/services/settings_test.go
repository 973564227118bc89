package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/test/mocks"
)

func newSettings(kv *mocks.MockKeyValueStore) *SettingsController {
	session := NewSessionStore(kv)
	prefs := NewPreferenceStore(kv)
	return NewSettingsController(session, prefs, kv, zerolog.Nop())
}

func TestLogoutKeepsPreferences(t *testing.T) {
	ctx := context.Background()
	kv := mocks.NewMockKeyValueStore()
	settings := newSettings(kv)

	NewSessionStore(kv).SetSession(ctx, "abc123", domain.RoleDoctor)
	settings.SetTheme(ctx, "dark")
	settings.SetOnLeave(ctx, true)

	settings.Logout(ctx)

	if _, ok := NewSessionStore(kv).Token(ctx); ok {
		t.Error("token survived logout")
	}
	if theme := settings.Theme(ctx); theme != "dark" {
		t.Errorf("theme reset by logout: got %q", theme)
	}
	if !settings.OnLeave(ctx) {
		t.Error("leave flag reset by logout")
	}
}

func TestClearLocalDataWipesEverythingAtomically(t *testing.T) {
	ctx := context.Background()
	kv := mocks.NewMockKeyValueStore()
	settings := newSettings(kv)
	session := NewSessionStore(kv)

	session.SetSession(ctx, "abc123", domain.RoleReceptionist)
	settings.SetOnLeave(ctx, true)
	settings.SetTheme(ctx, "dark")
	settings.SetNotifications(ctx, true)

	settings.ClearLocalData(ctx)

	if kv.Len() != 0 {
		t.Errorf("expected empty store, %d keys remain", kv.Len())
	}
	// One delete covering every managed key, so no reader can observe a
	// half-cleared state.
	if len(kv.DeleteCalls) != 1 {
		t.Fatalf("expected a single delete call, got %d", len(kv.DeleteCalls))
	}
	if len(kv.DeleteCalls[0]) != 5 {
		t.Errorf("delete covered %d keys, want 5", len(kv.DeleteCalls[0]))
	}

	// Readers see the documented defaults afterward.
	if _, ok := session.Token(ctx); ok {
		t.Error("token present after clear")
	}
	if role := session.Role(ctx); role != domain.RoleDoctor {
		t.Errorf("Role() = %q after clear, want the Doctor default", role)
	}
	if settings.OnLeave(ctx) {
		t.Error("leave flag still set after clear")
	}
	if theme := settings.Theme(ctx); theme != DefaultTheme {
		t.Errorf("Theme() = %q after clear, want %q", theme, DefaultTheme)
	}
	if settings.Notifications(ctx) {
		t.Error("notifications still on after clear")
	}
}
