package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

type PatientForm struct {
	Name   string
	Age    int
	Gender string
	Phone  string
}

// PatientsController owns the patient records page.
type PatientsController struct {
	patients ports.PatientGateway
	logger   zerolog.Logger

	mu     sync.RWMutex
	list   []domain.Patient
	form   PatientForm
	banner string
}

func NewPatientsController(patients ports.PatientGateway, logger zerolog.Logger) *PatientsController {
	return &PatientsController{
		patients: patients,
		logger:   logger.With().Str("controller", "patients").Logger(),
	}
}

func (c *PatientsController) Load(ctx context.Context) error {
	patients, err := c.patients.ListPatients(ctx)
	if err != nil {
		c.setBanner("Could not load patients.")
		return err
	}
	c.mu.Lock()
	c.list = patients
	c.banner = ""
	c.mu.Unlock()
	return nil
}

func (c *PatientsController) SetForm(form PatientForm) {
	c.mu.Lock()
	c.form = form
	c.mu.Unlock()
}

func (c *PatientsController) Form() PatientForm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.form
}

// Submit creates a patient record. Only the name is required. The form is
// cleared on success and preserved on failure.
func (c *PatientsController) Submit(ctx context.Context) error {
	form := c.Form()
	if form.Name == "" {
		c.setBanner("Name is required.")
		return ErrMissingFields
	}

	_, err := c.patients.CreatePatient(ctx, ports.CreatePatientInput{
		Name:   form.Name,
		Age:    form.Age,
		Gender: form.Gender,
		Phone:  form.Phone,
	})
	if err != nil {
		c.setBanner("Failed to save patient.")
		return err
	}

	c.mu.Lock()
	c.form = PatientForm{}
	c.banner = ""
	c.mu.Unlock()
	return c.Load(ctx)
}

func (c *PatientsController) Remove(ctx context.Context, patientID int64) error {
	if err := c.patients.DeletePatient(ctx, patientID); err != nil {
		c.setBanner("Failed to delete patient.")
		return err
	}
	return c.Load(ctx)
}

func (c *PatientsController) Patients() []domain.Patient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Patient(nil), c.list...)
}

func (c *PatientsController) Banner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.banner
}

func (c *PatientsController) setBanner(message string) {
	c.mu.Lock()
	c.banner = message
	c.mu.Unlock()
}
