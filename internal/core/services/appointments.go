package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// AppointmentsSnapshot is the page's local copy of backend state. It is
// replaced wholesale on every successful load; the client never treats it
// as authoritative for writes.
type AppointmentsSnapshot struct {
	Appointments []domain.Appointment
	Patients     []domain.Patient
	Queue        []domain.QueueToken
}

// AppointmentForm is the booking form. Date is "2006-01-02", Time is
// "15:04"; the two are combined into one timestamp on submit.
type AppointmentForm struct {
	PatientID int64
	Reason    string
	Date      string
	Time      string
}

func (f AppointmentForm) complete() bool {
	return f.PatientID != 0 && f.Reason != "" && f.Date != "" && f.Time != ""
}

// AppointmentsController owns the appointments page: the booking form,
// the appointment and patient lists, and the live visit queue kept fresh
// by its poller.
type AppointmentsController struct {
	appointments ports.AppointmentGateway
	patients     ports.PatientGateway
	queue        ports.QueueGateway
	prefs        *PreferenceStore
	poller       *QueuePoller
	logger       zerolog.Logger

	mu     sync.RWMutex
	snap   AppointmentsSnapshot
	form   AppointmentForm
	banner string
	handle *PollHandle
}

func NewAppointmentsController(
	appointments ports.AppointmentGateway,
	patients ports.PatientGateway,
	queue ports.QueueGateway,
	prefs *PreferenceStore,
	pollInterval time.Duration,
	logger zerolog.Logger,
) *AppointmentsController {
	c := &AppointmentsController{
		appointments: appointments,
		patients:     patients,
		queue:        queue,
		prefs:        prefs,
		logger:       logger.With().Str("controller", "appointments").Logger(),
	}
	c.poller = NewQueuePoller(queue, pollInterval, c.replaceQueue, logger)
	return c
}

// Mount loads the page and starts the background queue refresh.
func (c *AppointmentsController) Mount(ctx context.Context) error {
	err := c.Load(ctx)
	c.mu.Lock()
	if c.handle == nil {
		c.handle = c.poller.Start(ctx)
	}
	c.mu.Unlock()
	return err
}

// Unmount stops the queue refresh. No poll fires after it returns.
func (c *AppointmentsController) Unmount() {
	c.mu.Lock()
	handle := c.handle
	c.handle = nil
	c.mu.Unlock()
	if handle != nil {
		handle.Cancel()
	}
}

// Load fetches appointments, patients and the queue in parallel and
// replaces the snapshot only if every fetch succeeded. A partial failure
// leaves the previous snapshot untouched and surfaces a banner.
func (c *AppointmentsController) Load(ctx context.Context) error {
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
		c.setBanner("Could not load appointments. Please try again.")
		c.logger.Warn().Err(err).Msg("load failed")
		return err
	}

	c.mu.Lock()
	c.snap = AppointmentsSnapshot{Appointments: appointments, Patients: patients, Queue: queue}
	c.banner = ""
	c.mu.Unlock()
	return nil
}

// SetForm replaces the booking form input.
func (c *AppointmentsController) SetForm(form AppointmentForm) {
	c.mu.Lock()
	c.form = form
	c.mu.Unlock()
}

func (c *AppointmentsController) Form() AppointmentForm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.form
}

// Submit books an appointment from the current form. The leave flag is a
// purely local guard: when the doctor is on leave the gateway is never
// called. On any failure the form is preserved so the user can retry
// without re-entering data; it is cleared on success only.
func (c *AppointmentsController) Submit(ctx context.Context) error {
	if c.prefs.OnLeave(ctx) {
		c.setBanner("Doctor is on leave today. Cannot book new appointments.")
		return ErrDoctorOnLeave
	}

	form := c.Form()
	if !form.complete() {
		c.setBanner("Please fill all fields.")
		return ErrMissingFields
	}

	when, err := time.Parse("2006-01-02T15:04", form.Date+"T"+form.Time)
	if err != nil {
		c.setBanner("Invalid date or time.")
		return ErrBadTime
	}

	_, err = c.appointments.CreateAppointment(ctx, ports.CreateAppointmentInput{
		PatientID:       form.PatientID,
		AppointmentTime: when,
		Reason:          form.Reason,
	})
	if err != nil {
		c.setBanner("Failed to create appointment.")
		return err
	}

	c.mu.Lock()
	c.form = AppointmentForm{}
	c.banner = ""
	c.mu.Unlock()
	return c.Load(ctx)
}

// RemoveAppointment deletes an appointment and reloads the page.
func (c *AppointmentsController) RemoveAppointment(ctx context.Context, appointmentID int64) error {
	if err := c.appointments.DeleteAppointment(ctx, appointmentID); err != nil {
		c.setBanner("Failed to delete appointment.")
		return err
	}
	return c.Load(ctx)
}

// AddToQueue issues a token for an appointment, then refreshes the queue
// out of band. The refresh outcome is separate from the mutation's.
func (c *AppointmentsController) AddToQueue(ctx context.Context, appointmentID int64) error {
	if _, err := c.queue.CreateQueueToken(ctx, appointmentID); err != nil {
		c.setBanner("Failed to add to queue.")
		return err
	}
	c.poller.Refresh(ctx)
	return nil
}

// UpdateQueue moves a token to a new status (waiting, serving, done).
func (c *AppointmentsController) UpdateQueue(ctx context.Context, tokenID int64, status string) error {
	if _, err := c.queue.UpdateQueueToken(ctx, tokenID, status); err != nil {
		c.setBanner("Failed to update queue.")
		return err
	}
	c.poller.Refresh(ctx)
	return nil
}

// RemoveFromQueue deletes a token when the visit is over.
func (c *AppointmentsController) RemoveFromQueue(ctx context.Context, tokenID int64) error {
	if err := c.queue.DeleteQueueToken(ctx, tokenID); err != nil {
		c.setBanner("Failed to remove from queue.")
		return err
	}
	c.poller.Refresh(ctx)
	return nil
}

func (c *AppointmentsController) Snapshot() AppointmentsSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return AppointmentsSnapshot{
		Appointments: append([]domain.Appointment(nil), c.snap.Appointments...),
		Patients:     append([]domain.Patient(nil), c.snap.Patients...),
		Queue:        append([]domain.QueueToken(nil), c.snap.Queue...),
	}
}

func (c *AppointmentsController) Banner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.banner
}

// ScheduledCount derives the header badge counts from the snapshot.
func (c *AppointmentsController) ScheduledCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, a := range c.snap.Appointments {
		if a.Status == domain.AppointmentScheduled {
			n++
		}
	}
	return n
}

func (c *AppointmentsController) InQueueCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, a := range c.snap.Appointments {
		if a.Status == domain.AppointmentInQueue {
			n++
		}
	}
	return n
}

func (c *AppointmentsController) replaceQueue(tokens []domain.QueueToken) {
	c.mu.Lock()
	c.snap.Queue = tokens
	c.mu.Unlock()
}

func (c *AppointmentsController) setBanner(message string) {
	c.mu.Lock()
	c.banner = message
	c.mu.Unlock()
}
