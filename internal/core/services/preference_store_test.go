package services

import (
	"context"
	"testing"

	"github.com/luminacare/clinic-dashboard/dashboard-client/test/mocks"
)

func TestPreferenceDefaults(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferenceStore(mocks.NewMockKeyValueStore())

	if prefs.OnLeave(ctx) {
		t.Error("OnLeave should default to false")
	}
	if theme := prefs.Theme(ctx); theme != DefaultTheme {
		t.Errorf("Theme() = %q, want %q", theme, DefaultTheme)
	}
	if prefs.Notifications(ctx) {
		t.Error("Notifications should default to false")
	}
}

func TestOnLeaveOnlyExactTrueCounts(t *testing.T) {
	ctx := context.Background()
	kv := mocks.NewMockKeyValueStore()
	prefs := NewPreferenceStore(kv)

	for _, value := range []string{"false", "TRUE", "1", "yes", ""} {
		kv.Set(ctx, "doctor_on_leave", value)
		if prefs.OnLeave(ctx) {
			t.Errorf("stored %q should read as available", value)
		}
	}

	prefs.SetOnLeave(ctx, true)
	if !prefs.OnLeave(ctx) {
		t.Error("SetOnLeave(true) not visible")
	}
	prefs.SetOnLeave(ctx, false)
	if prefs.OnLeave(ctx) {
		t.Error("SetOnLeave(false) not visible")
	}
}

func TestLeaveFlagSharedAcrossStoreInstances(t *testing.T) {
	// Two stores over the same backing KV see each other's writes
	// immediately. This is how the settings and appointments pages share
	// the flag without talking to each other.
	ctx := context.Background()
	kv := mocks.NewMockKeyValueStore()
	settings := NewPreferenceStore(kv)
	appointments := NewPreferenceStore(kv)

	settings.SetOnLeave(ctx, true)
	if !appointments.OnLeave(ctx) {
		t.Error("leave flag write not visible through a second store")
	}
}

func TestPreferenceRoundTrips(t *testing.T) {
	ctx := context.Background()
	prefs := NewPreferenceStore(mocks.NewMockKeyValueStore())

	prefs.SetTheme(ctx, "dark")
	if theme := prefs.Theme(ctx); theme != "dark" {
		t.Errorf("Theme() = %q, want dark", theme)
	}

	prefs.SetNotifications(ctx, true)
	if !prefs.Notifications(ctx) {
		t.Error("Notifications(true) not visible")
	}
	prefs.SetNotifications(ctx, false)
	if prefs.Notifications(ctx) {
		t.Error("Notifications(false) not visible")
	}
}

func TestClearAllRestoresDefaults(t *testing.T) {
	ctx := context.Background()
	kv := mocks.NewMockKeyValueStore()
	prefs := NewPreferenceStore(kv)

	prefs.SetOnLeave(ctx, true)
	prefs.SetTheme(ctx, "dark")
	prefs.SetNotifications(ctx, true)

	prefs.ClearAll(ctx)

	if prefs.OnLeave(ctx) {
		t.Error("OnLeave should be false after ClearAll")
	}
	if theme := prefs.Theme(ctx); theme != DefaultTheme {
		t.Errorf("Theme() = %q after ClearAll, want %q", theme, DefaultTheme)
	}
	if prefs.Notifications(ctx) {
		t.Error("Notifications should be false after ClearAll")
	}
	if len(kv.DeleteCalls) != 1 {
		t.Errorf("ClearAll should issue a single delete, got %d", len(kv.DeleteCalls))
	}
}
