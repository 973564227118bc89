package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

type BillForm struct {
	PatientID int64
	Amount    float64
	Status    string
}

// BillingController owns the billing page: the bill form and the preview
// of the most recently generated bill.
type BillingController struct {
	patients ports.PatientGateway
	billing  ports.BillingGateway
	logger   zerolog.Logger

	mu       sync.RWMutex
	list     []domain.Patient
	form     BillForm
	lastBill *domain.Bill
	summary  string
	banner   string
}

func NewBillingController(patients ports.PatientGateway, billing ports.BillingGateway, logger zerolog.Logger) *BillingController {
	return &BillingController{
		patients: patients,
		billing:  billing,
		form:     BillForm{Status: domain.BillUnpaid},
		logger:   logger.With().Str("controller", "billing").Logger(),
	}
}

func (c *BillingController) Load(ctx context.Context) error {
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

func (c *BillingController) SetForm(form BillForm) {
	c.mu.Lock()
	c.form = form
	c.mu.Unlock()
}

func (c *BillingController) Form() BillForm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.form
}

// Submit generates a bill. Patient and a positive amount are required. On
// success the preview and its one-line summary are replaced and the form
// reset; on failure the form is preserved for retry.
func (c *BillingController) Submit(ctx context.Context) error {
	form := c.Form()
	if form.PatientID == 0 || form.Amount <= 0 {
		c.setBanner("Please select patient and amount.")
		return ErrMissingFields
	}

	status := form.Status
	if status == "" {
		status = domain.BillUnpaid
	}

	bill, err := c.billing.CreateBill(ctx, ports.CreateBillInput{
		PatientID: form.PatientID,
		Amount:    form.Amount,
		Status:    status,
	})
	if err != nil {
		c.setBanner("Failed to create bill.")
		return err
	}

	c.mu.Lock()
	c.lastBill = &bill
	c.summary = fmt.Sprintf("Bill #%d | Patient #%d | Amount ₹%.2f | Status: %s",
		bill.ID, bill.PatientID, bill.Amount, bill.Status)
	c.form = BillForm{Status: domain.BillUnpaid}
	c.banner = ""
	c.mu.Unlock()
	return nil
}

func (c *BillingController) Patients() []domain.Patient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Patient(nil), c.list...)
}

// LastBill returns the most recently generated bill, or nil.
func (c *BillingController) LastBill() *domain.Bill {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastBill == nil {
		return nil
	}
	bill := *c.lastBill
	return &bill
}

func (c *BillingController) Summary() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.summary
}

func (c *BillingController) Banner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.banner
}

func (c *BillingController) setBanner(message string) {
	c.mu.Lock()
	c.banner = message
	c.mu.Unlock()
}
