package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// PrescriptionForm holds the e-prescription input. Medicines is free text,
// one medicine per line.
type PrescriptionForm struct {
	PatientID int64
	Diagnosis string
	Medicines string
	Notes     string
}

// PrescriptionController owns the e-prescription page: the form, the
// AI-assist and voice-transcription helpers, and the selected patient's
// recent prescriptions.
type PrescriptionController struct {
	patients      ports.PatientGateway
	prescriptions ports.PrescriptionGateway
	assistant     ports.AssistantGateway
	logger        zerolog.Logger

	mu       sync.RWMutex
	list     []domain.Patient
	recent   []domain.Prescription
	form     PrescriptionForm
	symptoms string
	banner   string
	notice   string
}

func NewPrescriptionController(
	patients ports.PatientGateway,
	prescriptions ports.PrescriptionGateway,
	assistant ports.AssistantGateway,
	logger zerolog.Logger,
) *PrescriptionController {
	return &PrescriptionController{
		patients:      patients,
		prescriptions: prescriptions,
		assistant:     assistant,
		logger:        logger.With().Str("controller", "prescription").Logger(),
	}
}

// Load fetches the patient list. A single fetch, so all-or-nothing holds
// trivially.
func (c *PrescriptionController) Load(ctx context.Context) error {
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

// SelectPatient points the form at a patient and loads their recent
// prescriptions. A failed history fetch degrades to an empty list rather
// than an error, matching the page's soft treatment of the side panel.
func (c *PrescriptionController) SelectPatient(ctx context.Context, patientID int64) {
	c.mu.Lock()
	c.form.PatientID = patientID
	c.mu.Unlock()
	c.reloadRecent(ctx, patientID)
}

func (c *PrescriptionController) reloadRecent(ctx context.Context, patientID int64) {
	if patientID == 0 {
		c.mu.Lock()
		c.recent = nil
		c.mu.Unlock()
		return
	}
	recent, err := c.prescriptions.PrescriptionsByPatient(ctx, patientID)
	if err != nil {
		c.logger.Debug().Err(err).Int64("patient_id", patientID).Msg("recent prescriptions fetch failed")
		recent = nil
	}
	c.mu.Lock()
	c.recent = recent
	c.mu.Unlock()
}

// SetForm replaces the form input, keeping the selected patient's recent
// list in sync when the patient changed.
func (c *PrescriptionController) SetForm(form PrescriptionForm) {
	c.mu.Lock()
	c.form = form
	c.mu.Unlock()
}

func (c *PrescriptionController) Form() PrescriptionForm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.form
}

func (c *PrescriptionController) SetSymptoms(symptoms string) {
	c.mu.Lock()
	c.symptoms = symptoms
	c.mu.Unlock()
}

func (c *PrescriptionController) Symptoms() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.symptoms
}

// Submit saves the prescription. Patient, diagnosis and medicines are
// required; medicines are split one per line. The form survives a failed
// save untouched and is cleared only on success.
func (c *PrescriptionController) Submit(ctx context.Context) error {
	form := c.Form()
	if form.PatientID == 0 || form.Diagnosis == "" || strings.TrimSpace(form.Medicines) == "" {
		c.setBanner("Please fill patient, diagnosis and medicines.")
		return ErrMissingFields
	}

	var medicines []string
	for _, line := range strings.Split(form.Medicines, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			medicines = append(medicines, line)
		}
	}

	_, err := c.prescriptions.CreatePrescription(ctx, ports.CreatePrescriptionInput{
		PatientID: form.PatientID,
		Diagnosis: form.Diagnosis,
		Medicines: medicines,
		Notes:     form.Notes,
	})
	if err != nil {
		c.setBanner("Failed to save prescription.")
		return err
	}

	c.mu.Lock()
	c.form = PrescriptionForm{}
	c.symptoms = ""
	c.banner = ""
	c.notice = "Prescription saved."
	c.mu.Unlock()
	c.reloadRecent(ctx, form.PatientID)
	return nil
}

// GenerateSuggestion asks the AI assistant for medicines matching the
// diagnosis and current symptoms, and fills them into the form for review.
func (c *PrescriptionController) GenerateSuggestion(ctx context.Context) error {
	form := c.Form()
	if form.Diagnosis == "" {
		c.setBanner("Enter a diagnosis first.")
		return ErrMissingFields
	}

	suggestion, err := c.assistant.SuggestPrescription(ctx, ports.SuggestPrescriptionInput{
		Diagnosis: form.Diagnosis,
		Symptoms:  c.Symptoms(),
	})
	if err != nil {
		c.setBanner("Failed to generate with AI.")
		return err
	}

	lines := make([]string, 0, len(suggestion.Medicines))
	for _, m := range suggestion.Medicines {
		lines = append(lines, fmt.Sprintf("%s – %s – %s", m.Name, m.Dosage, m.Duration))
	}

	c.mu.Lock()
	c.form.Medicines = strings.Join(lines, "\n")
	if suggestion.Notes != "" {
		c.form.Notes = suggestion.Notes
	}
	c.banner = ""
	c.notice = "AI-generated medicines filled in. Please review."
	c.mu.Unlock()
	return nil
}

// Transcribe sends an audio recording to the assistant and appends the
// transcript to the symptoms field.
func (c *PrescriptionController) Transcribe(ctx context.Context, filename string, audio io.Reader) error {
	transcript, err := c.assistant.Transcribe(ctx, filename, audio)
	if err != nil {
		c.setBanner("Transcription failed.")
		return err
	}

	c.mu.Lock()
	if c.symptoms != "" {
		c.symptoms += "\n" + transcript.Text
	} else {
		c.symptoms = transcript.Text
	}
	c.banner = ""
	c.notice = "Transcript added to symptoms."
	c.mu.Unlock()
	return nil
}

// DeleteRecent removes a prescription from the selected patient's history.
func (c *PrescriptionController) DeleteRecent(ctx context.Context, prescriptionID int64) error {
	if err := c.prescriptions.DeletePrescription(ctx, prescriptionID); err != nil {
		c.setBanner("Failed to delete prescription.")
		return err
	}
	c.reloadRecent(ctx, c.Form().PatientID)
	return nil
}

// LoadIntoForm copies a recent prescription back into the form so it can
// be edited and saved as a duplicate.
func (c *PrescriptionController) LoadIntoForm(p domain.Prescription) {
	c.mu.Lock()
	c.form.Diagnosis = p.Diagnosis
	c.form.Medicines = strings.Join(p.Medicines, "\n")
	c.form.Notes = p.Notes
	c.notice = "Loaded prescription into form. Edit and save to duplicate."
	c.mu.Unlock()
}

func (c *PrescriptionController) Patients() []domain.Patient {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Patient(nil), c.list...)
}

func (c *PrescriptionController) Recent() []domain.Prescription {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Prescription(nil), c.recent...)
}

func (c *PrescriptionController) Banner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.banner
}

func (c *PrescriptionController) Notice() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notice
}

func (c *PrescriptionController) setBanner(message string) {
	c.mu.Lock()
	c.banner = message
	c.notice = ""
	c.mu.Unlock()
}
