package ports

import (
	"context"
	"io"
	"time"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
)

type CreatePatientInput struct {
	Name   string `json:"name"`
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

type CreateAppointmentInput struct {
	PatientID       int64     `json:"patient_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Reason          string    `json:"reason,omitempty"`
}

type CreatePrescriptionInput struct {
	PatientID int64    `json:"patient_id"`
	Diagnosis string   `json:"diagnosis"`
	Medicines []string `json:"medicines"`
	Notes     string   `json:"notes,omitempty"`
}

type CreateBillInput struct {
	PatientID int64   `json:"patient_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

type SuggestPrescriptionInput struct {
	Diagnosis string `json:"diagnosis"`
	Symptoms  string `json:"symptoms,omitempty"`
}

// AuthGateway exchanges credentials for an opaque session token. The token
// is never inspected client-side.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type PatientGateway interface {
	ListPatients(ctx context.Context) ([]domain.Patient, error)
	GetPatient(ctx context.Context, patientID int64) (domain.Patient, error)
	CreatePatient(ctx context.Context, input CreatePatientInput) (domain.Patient, error)
	DeletePatient(ctx context.Context, patientID int64) error
	PatientSummary(ctx context.Context, patientID int64) (domain.PatientSummary, error)
	PatientAppointments(ctx context.Context, patientID int64) ([]domain.Appointment, error)
}

type AppointmentGateway interface {
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID int64) (domain.Appointment, error)
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (domain.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID int64) error
}

type PrescriptionGateway interface {
	CreatePrescription(ctx context.Context, input CreatePrescriptionInput) (domain.Prescription, error)
	PrescriptionsByAppointment(ctx context.Context, appointmentID int64) ([]domain.Prescription, error)
	PrescriptionsByPatient(ctx context.Context, patientID int64) ([]domain.Prescription, error)
	DeletePrescription(ctx context.Context, prescriptionID int64) error
}

type BillingGateway interface {
	CreateBill(ctx context.Context, input CreateBillInput) (domain.Bill, error)
	BillsByAppointment(ctx context.Context, appointmentID int64) ([]domain.Bill, error)
	BillsByPatient(ctx context.Context, patientID int64) ([]domain.Bill, error)
	DeleteBill(ctx context.Context, billID int64) error
}

type QueueGateway interface {
	QueueStatus(ctx context.Context) ([]domain.QueueToken, error)
	CreateQueueToken(ctx context.Context, appointmentID int64) (domain.QueueToken, error)
	UpdateQueueToken(ctx context.Context, tokenID int64, status string) (domain.QueueToken, error)
	DeleteQueueToken(ctx context.Context, tokenID int64) error
}

// AssistantGateway wraps the backend's AI endpoints. Both calls are slow
// remote operations and may be rejected fast by a circuit breaker.
type AssistantGateway interface {
	SuggestPrescription(ctx context.Context, input SuggestPrescriptionInput) (domain.PrescriptionSuggestion, error)
	Transcribe(ctx context.Context, filename string, audio io.Reader) (domain.Transcript, error)
}
