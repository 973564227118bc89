package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/test/mocks"
)

func newDashboardController(gw *mocks.MockGateway, kv *mocks.MockKeyValueStore) *DashboardController {
	prefs := NewPreferenceStore(kv)
	return NewDashboardController(gw, gw, gw, prefs, time.Hour, zerolog.Nop())
}

func TestDashboardLoadBuildsNotifications(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	c := newDashboardController(gw, mocks.NewMockKeyValueStore())

	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load() = %v", err)
	}

	snap := c.Snapshot()
	if len(snap.Notifications) != 3 {
		t.Fatalf("got %d notifications, want 3", len(snap.Notifications))
	}
	if snap.Notifications[0].Message != "You have 2 appointments scheduled" {
		t.Errorf("appointments notification = %q", snap.Notifications[0].Message)
	}
	if snap.Notifications[1].Message != "Queue active: 1 patients waiting" {
		t.Errorf("queue notification = %q", snap.Notifications[1].Message)
	}
}

func TestDashboardLoadEmptyStateHasNoNotifications(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewMockGateway()
	c := newDashboardController(gw, mocks.NewMockKeyValueStore())

	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if notes := c.Snapshot().Notifications; len(notes) != 0 {
		t.Errorf("empty clinic produced %d notifications", len(notes))
	}
}

func TestDashboardLoadAllOrNothing(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	c := newDashboardController(gw, mocks.NewMockKeyValueStore())
	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load() = %v", err)
	}

	gw.ListAppointmentsErr = errors.New("backend down")
	if err := c.Load(ctx); err == nil {
		t.Fatal("Load() succeeded with a failing fetch")
	}
	snap := c.Snapshot()
	if len(snap.Appointments) != 2 || len(snap.Notifications) != 3 {
		t.Error("partial failure replaced the dashboard snapshot")
	}
	if c.Banner() == "" {
		t.Error("expected a banner after failed load")
	}
}

func TestDashboardWaitingCount(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	gw.SetQueue([]domain.QueueToken{
		{TokenID: 1, Status: domain.QueueWaiting},
		{TokenID: 2, Status: domain.QueueServing},
		{TokenID: 3, Status: domain.QueueWaiting},
	})
	c := newDashboardController(gw, mocks.NewMockKeyValueStore())
	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got := c.WaitingCount(); got != 2 {
		t.Errorf("WaitingCount() = %d, want 2", got)
	}
}

func TestDashboardLeaveToggleSharedWithAppointments(t *testing.T) {
	// The dashboard toggle and the appointments guard read the same flag.
	ctx := context.Background()
	kv := mocks.NewMockKeyValueStore()
	gw := seedGateway()
	dashboard := newDashboardController(gw, kv)
	appointments := newAppointmentsController(gw, kv)

	dashboard.SetOnLeave(ctx, true)

	appointments.SetForm(completeForm())
	if err := appointments.Submit(ctx); !errors.Is(err, ErrDoctorOnLeave) {
		t.Errorf("Submit() = %v, want ErrDoctorOnLeave after dashboard toggle", err)
	}

	dashboard.SetOnLeave(ctx, false)
	if err := appointments.Submit(ctx); err != nil {
		t.Errorf("Submit() = %v after leave cleared", err)
	}
}
