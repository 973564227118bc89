package services

import (
	"context"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// Preference defaults.
const (
	DefaultTheme = "light"

	notificationsOn  = "on"
	notificationsOff = "off"
)

// PreferenceStore holds the doctor-on-leave business flag and the UI
// preferences. Writes are immediately durable and visible to every other
// controller reading the store; there is no caching layer in front of it.
type PreferenceStore struct {
	kv ports.KeyValueStore
}

func NewPreferenceStore(kv ports.KeyValueStore) *PreferenceStore {
	return &PreferenceStore{kv: kv}
}

// SetOnLeave flips the single global leave flag. The flag gates new
// appointment creation on the appointments page.
func (p *PreferenceStore) SetOnLeave(ctx context.Context, onLeave bool) {
	if onLeave {
		p.kv.Set(ctx, keyDoctorOnLeave, "true")
	} else {
		p.kv.Set(ctx, keyDoctorOnLeave, "false")
	}
}

// OnLeave reads the leave flag. Anything other than a stored "true" is
// treated as available.
func (p *PreferenceStore) OnLeave(ctx context.Context) bool {
	value, _ := p.kv.Get(ctx, keyDoctorOnLeave)
	return value == "true"
}

func (p *PreferenceStore) SetTheme(ctx context.Context, theme string) {
	p.kv.Set(ctx, keyTheme, theme)
}

func (p *PreferenceStore) Theme(ctx context.Context) string {
	theme, ok := p.kv.Get(ctx, keyTheme)
	if !ok || theme == "" {
		return DefaultTheme
	}
	return theme
}

func (p *PreferenceStore) SetNotifications(ctx context.Context, enabled bool) {
	if enabled {
		p.kv.Set(ctx, keyNotifications, notificationsOn)
	} else {
		p.kv.Set(ctx, keyNotifications, notificationsOff)
	}
}

func (p *PreferenceStore) Notifications(ctx context.Context) bool {
	value, _ := p.kv.Get(ctx, keyNotifications)
	return value == notificationsOn
}

// ClearAll resets every preference, including the leave flag, in one
// atomic delete. Readers then observe the defaults: light theme,
// notifications off, doctor available.
func (p *PreferenceStore) ClearAll(ctx context.Context) {
	p.kv.Delete(ctx, keyDoctorOnLeave, keyTheme, keyNotifications)
}
