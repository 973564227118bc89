package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// SummaryController owns the patient summary page: pick a patient, fetch
// their combined appointments, prescriptions and bills.
type SummaryController struct {
	patients ports.PatientGateway
	logger   zerolog.Logger

	mu      sync.RWMutex
	list    []domain.Patient
	summary *domain.PatientSummary
	banner  string
}

func NewSummaryController(patients ports.PatientGateway, logger zerolog.Logger) *SummaryController {
	return &SummaryController{
		patients: patients,
		logger:   logger.With().Str("controller", "summary").Logger(),
	}
}

func (c *SummaryController) Load(ctx context.Context) error {
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

// LoadSummary fetches the combined view for one patient. On failure the
// previously loaded summary is preserved alongside the banner.
func (c *SummaryController) LoadSummary(ctx context.Context, patientID int64) error {
	summary, err := c.patients.PatientSummary(ctx, patientID)
	if err != nil {
		c.setBanner("Failed to load summary.")
		return err
	}
	c.mu.Lock()
	c.summary = &summary
	c.banner = ""
	c.mu.Unlock()
	return nil
}

func (c *SummaryController) Patients() []domain.Patient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Patient(nil), c.list...)
}

// Summary returns the loaded combined view, or nil before the first
// successful load.
func (c *SummaryController) Summary() *domain.PatientSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.summary == nil {
		return nil
	}
	summary := *c.summary
	return &summary
}

func (c *SummaryController) Banner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.banner
}

func (c *SummaryController) setBanner(message string) {
	c.mu.Lock()
	c.banner = message
	c.mu.Unlock()
}
