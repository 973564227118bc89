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

func newAppointmentsController(gw *mocks.MockGateway, kv *mocks.MockKeyValueStore) *AppointmentsController {
	prefs := NewPreferenceStore(kv)
	return NewAppointmentsController(gw, gw, gw, prefs, time.Hour, zerolog.Nop())
}

func seedGateway() *mocks.MockGateway {
	gw := mocks.NewMockGateway()
	gw.Patients = []domain.Patient{{ID: 1, Name: "Asha Rao"}, {ID: 2, Name: "Vikram Shah"}}
	gw.Appointments = []domain.Appointment{
		{ID: 1, PatientID: 1, Status: domain.AppointmentScheduled},
		{ID: 2, PatientID: 2, Status: domain.AppointmentInQueue},
	}
	gw.Queue = []domain.QueueToken{{TokenID: 1, TokenNumber: 1, AppointmentID: 2, Status: domain.QueueWaiting}}
	return gw
}

func completeForm() AppointmentForm {
	return AppointmentForm{PatientID: 1, Reason: "Follow-up", Date: "2026-09-01", Time: "10:30"}
}

func TestLoadReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	c := newAppointmentsController(gw, mocks.NewMockKeyValueStore())

	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load() = %v", err)
	}

	snap := c.Snapshot()
	if len(snap.Appointments) != 2 || len(snap.Patients) != 2 || len(snap.Queue) != 1 {
		t.Errorf("snapshot = %d appointments, %d patients, %d queue", len(snap.Appointments), len(snap.Patients), len(snap.Queue))
	}
	if c.Banner() != "" {
		t.Errorf("banner = %q after successful load", c.Banner())
	}
	if c.ScheduledCount() != 1 || c.InQueueCount() != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", c.ScheduledCount(), c.InQueueCount())
	}
}

func TestLoadIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	c := newAppointmentsController(gw, mocks.NewMockKeyValueStore())

	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load() = %v", err)
	}

	// Two of three fetches would succeed; the snapshot must still be the
	// previous one, in full.
	gw.ListPatientsErr = errors.New("backend down")
	gw.SetQueue(nil)
	if err := c.Load(ctx); err == nil {
		t.Fatal("Load() succeeded with a failing fetch")
	}

	snap := c.Snapshot()
	if len(snap.Patients) != 2 {
		t.Errorf("partial failure replaced patients: %d", len(snap.Patients))
	}
	if len(snap.Queue) != 1 {
		t.Errorf("partial failure replaced queue: %d", len(snap.Queue))
	}
	if c.Banner() == "" {
		t.Error("expected a banner after a failed load")
	}

	// Recovery clears the banner.
	gw.ListPatientsErr = nil
	if err := c.Load(ctx); err != nil {
		t.Fatalf("recovery Load() = %v", err)
	}
	if c.Banner() != "" {
		t.Errorf("banner = %q after recovery", c.Banner())
	}
}

func TestSubmitBooksAndClearsForm(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	c := newAppointmentsController(gw, mocks.NewMockKeyValueStore())

	c.SetForm(completeForm())
	if err := c.Submit(ctx); err != nil {
		t.Fatalf("Submit() = %v", err)
	}
	if gw.CreateAppointmentCalls != 1 {
		t.Errorf("CreateAppointment called %d times, want 1", gw.CreateAppointmentCalls)
	}
	if form := c.Form(); form != (AppointmentForm{}) {
		t.Errorf("form not cleared after success: %+v", form)
	}
	// Submit reloads, so the new appointment is visible.
	if len(c.Snapshot().Appointments) != 3 {
		t.Errorf("snapshot has %d appointments after booking, want 3", len(c.Snapshot().Appointments))
	}
}

func TestSubmitRejectedLocallyWhenDoctorOnLeave(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	kv := mocks.NewMockKeyValueStore()
	c := newAppointmentsController(gw, kv)

	NewPreferenceStore(kv).SetOnLeave(ctx, true)
	c.SetForm(completeForm())

	err := c.Submit(ctx)
	if !errors.Is(err, ErrDoctorOnLeave) {
		t.Fatalf("Submit() = %v, want ErrDoctorOnLeave", err)
	}
	// The rejection is local: the gateway must never see the request.
	if gw.CreateAppointmentCalls != 0 {
		t.Errorf("gateway called %d times while on leave", gw.CreateAppointmentCalls)
	}
	if c.Banner() == "" {
		t.Error("expected an on-leave banner")
	}
	if form := c.Form(); form != completeForm() {
		t.Errorf("form lost on local rejection: %+v", form)
	}
}

func TestSubmitRequiresAllFields(t *testing.T) {
	ctx := context.Background()
	c := newAppointmentsController(seedGateway(), mocks.NewMockKeyValueStore())

	forms := []AppointmentForm{
		{},
		{PatientID: 1, Reason: "Follow-up", Date: "2026-09-01"},
		{PatientID: 1, Reason: "Follow-up", Time: "10:30"},
		{PatientID: 1, Date: "2026-09-01", Time: "10:30"},
		{Reason: "Follow-up", Date: "2026-09-01", Time: "10:30"},
	}
	for _, form := range forms {
		c.SetForm(form)
		if err := c.Submit(ctx); !errors.Is(err, ErrMissingFields) {
			t.Errorf("Submit(%+v) = %v, want ErrMissingFields", form, err)
		}
	}
}

func TestSubmitRejectsBadTimestamp(t *testing.T) {
	ctx := context.Background()
	c := newAppointmentsController(seedGateway(), mocks.NewMockKeyValueStore())

	c.SetForm(AppointmentForm{PatientID: 1, Reason: "x", Date: "01-09-2026", Time: "10:30"})
	if err := c.Submit(ctx); !errors.Is(err, ErrBadTime) {
		t.Errorf("Submit() = %v, want ErrBadTime", err)
	}
}

func TestSubmitPreservesFormOnBackendFailure(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	gw.CreateAppointmentErr = errors.New("503")
	c := newAppointmentsController(gw, mocks.NewMockKeyValueStore())

	c.SetForm(completeForm())
	if err := c.Submit(ctx); err == nil {
		t.Fatal("Submit() succeeded with a failing backend")
	}
	if form := c.Form(); form != completeForm() {
		t.Errorf("form lost on backend failure: %+v", form)
	}

	// Retry without re-entering anything.
	gw.CreateAppointmentErr = nil
	if err := c.Submit(ctx); err != nil {
		t.Fatalf("retry Submit() = %v", err)
	}
	if form := c.Form(); form != (AppointmentForm{}) {
		t.Errorf("form not cleared after successful retry: %+v", form)
	}
}

func TestQueueMutationsTriggerRefresh(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	c := newAppointmentsController(gw, mocks.NewMockKeyValueStore())
	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	before := gw.QueueStatusCalls

	if err := c.AddToQueue(ctx, 1); err != nil {
		t.Fatalf("AddToQueue() = %v", err)
	}
	if gw.QueueStatusCalls != before+1 {
		t.Errorf("AddToQueue did not refresh the queue")
	}
	if len(c.Snapshot().Queue) != 2 {
		t.Errorf("snapshot queue has %d tokens after add, want 2", len(c.Snapshot().Queue))
	}

	if err := c.UpdateQueue(ctx, 1, domain.QueueServing); err != nil {
		t.Fatalf("UpdateQueue() = %v", err)
	}
	if gw.QueueStatusCalls != before+2 {
		t.Errorf("UpdateQueue did not refresh the queue")
	}

	if err := c.RemoveFromQueue(ctx, 1); err != nil {
		t.Fatalf("RemoveFromQueue() = %v", err)
	}
	if len(c.Snapshot().Queue) != 1 {
		t.Errorf("snapshot queue has %d tokens after remove, want 1", len(c.Snapshot().Queue))
	}
}

func TestQueueMutationFailureSetsBannerOnly(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	gw.CreateQueueTokenErr = errors.New("409")
	c := newAppointmentsController(gw, mocks.NewMockKeyValueStore())
	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if err := c.AddToQueue(ctx, 1); err == nil {
		t.Fatal("AddToQueue() succeeded with a failing backend")
	}
	if c.Banner() == "" {
		t.Error("expected a banner after failed queue add")
	}
	if len(c.Snapshot().Queue) != 1 {
		t.Errorf("queue snapshot changed on failed add: %d tokens", len(c.Snapshot().Queue))
	}
}

func TestMountUnmountLifecycle(t *testing.T) {
	ctx := context.Background()
	gw := seedGateway()
	c := newAppointmentsController(gw, mocks.NewMockKeyValueStore())

	if err := c.Mount(ctx); err != nil {
		t.Fatalf("Mount() = %v", err)
	}
	c.Unmount()
	// A second Unmount is a no-op, not a deadlock or panic.
	c.Unmount()

	calls := gw.QueueStatusCalls
	time.Sleep(20 * time.Millisecond)
	if gw.QueueStatusCalls != calls {
		t.Error("poller still fetching after Unmount")
	}
}
