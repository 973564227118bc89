package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// Notification is a derived feed entry on the dashboard, computed from the
// loaded snapshot rather than fetched.
type Notification struct {
	ID      string
	Message string
	Date    string
	Icon    string
}

type DashboardSnapshot struct {
	Appointments  []domain.Appointment
	Patients      []domain.Patient
	Queue         []domain.QueueToken
	Notifications []Notification
}

// DashboardController owns the doctor's landing page: today's
// appointments, the live queue and the availability toggle.
type DashboardController struct {
	appointments ports.AppointmentGateway
	patients     ports.PatientGateway
	queue        ports.QueueGateway
	prefs        *PreferenceStore
	poller       *QueuePoller
	logger       zerolog.Logger

	mu     sync.RWMutex
	snap   DashboardSnapshot
	banner string
	handle *PollHandle
}

func NewDashboardController(
	appointments ports.AppointmentGateway,
	patients ports.PatientGateway,
	queue ports.QueueGateway,
	prefs *PreferenceStore,
	pollInterval time.Duration,
	logger zerolog.Logger,
) *DashboardController {
	c := &DashboardController{
		appointments: appointments,
		patients:     patients,
		queue:        queue,
		prefs:        prefs,
		logger:       logger.With().Str("controller", "dashboard").Logger(),
	}
	c.poller = NewQueuePoller(queue, pollInterval, c.replaceQueue, logger)
	return c
}

func (c *DashboardController) Mount(ctx context.Context) error {
	err := c.Load(ctx)
	c.mu.Lock()
	if c.handle == nil {
		c.handle = c.poller.Start(ctx)
	}
	c.mu.Unlock()
	return err
}

func (c *DashboardController) Unmount() {
	c.mu.Lock()
	handle := c.handle
	c.handle = nil
	c.mu.Unlock()
	if handle != nil {
		handle.Cancel()
	}
}

// Load fetches appointments, patients and the queue in parallel,
// all-or-nothing, then rebuilds the notification feed from the result.
func (c *DashboardController) Load(ctx context.Context) error {
	var (
		appointments []domain.Appointment
		patients     []domain.Patient
		queue        []domain.QueueToken
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appointments, err = c.appointments.ListAppointments(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		patients, err = c.patients.ListPatients(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		queue, err = c.queue.QueueStatus(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.setBanner("Could not load dashboard data.")
		c.logger.Warn().Err(err).Msg("load failed")
		return err
	}

	c.mu.Lock()
	c.snap = DashboardSnapshot{
		Appointments:  appointments,
		Patients:      patients,
		Queue:         queue,
		Notifications: buildNotifications(appointments, patients, queue),
	}
	c.banner = ""
	c.mu.Unlock()
	return nil
}

func buildNotifications(appointments []domain.Appointment, patients []domain.Patient, queue []domain.QueueToken) []Notification {
	var notes []Notification
	if len(appointments) > 0 {
		notes = append(notes, Notification{
			ID:      "apt",
			Message: fmt.Sprintf("You have %d appointments scheduled", len(appointments)),
			Date:    "Today",
			Icon:    "📅",
		})
	}
	if len(queue) > 0 {
		notes = append(notes, Notification{
			ID:      "queue",
			Message: fmt.Sprintf("Queue active: %d patients waiting", len(queue)),
			Date:    "Live",
			Icon:    "⏱️",
		})
	}
	if len(patients) > 0 {
		notes = append(notes, Notification{
			ID:      "patients",
			Message: fmt.Sprintf("%d patients in records", len(patients)),
			Date:    "Today",
			Icon:    "🧑‍⚕️",
		})
	}
	return notes
}

// SetOnLeave flips the availability toggle. Other pages see the new value
// immediately through the shared preference store.
func (c *DashboardController) SetOnLeave(ctx context.Context, onLeave bool) {
	c.prefs.SetOnLeave(ctx, onLeave)
}

func (c *DashboardController) OnLeave(ctx context.Context) bool {
	return c.prefs.OnLeave(ctx)
}

// WaitingCount counts tokens still waiting to be served.
func (c *DashboardController) WaitingCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, t := range c.snap.Queue {
		if t.Status == domain.QueueWaiting {
			n++
		}
	}
	return n
}

func (c *DashboardController) Snapshot() DashboardSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return DashboardSnapshot{
		Appointments:  append([]domain.Appointment(nil), c.snap.Appointments...),
		Patients:      append([]domain.Patient(nil), c.snap.Patients...),
		Queue:         append([]domain.QueueToken(nil), c.snap.Queue...),
		Notifications: append([]Notification(nil), c.snap.Notifications...),
	}
}

func (c *DashboardController) Banner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.banner
}

func (c *DashboardController) replaceQueue(tokens []domain.QueueToken) {
	c.mu.Lock()
	c.snap.Queue = tokens
	c.mu.Unlock()
}

func (c *DashboardController) setBanner(message string) {
	c.mu.Lock()
	c.banner = message
	c.mu.Unlock()
}
