package domain

import "time"

type Role string

const (
	RoleDoctor       Role = "Doctor"
	RoleReceptionist Role = "Receptionist"
	RolePatient      Role = "Patient"
)

// Appointment statuses as the backend reports them.
const (
	AppointmentScheduled = "scheduled"
	AppointmentInQueue   = "in-queue"
)

// Queue token statuses. A token moves waiting -> serving -> done and is
// deleted when the visit is over.
const (
	QueueWaiting = "waiting"
	QueueServing = "serving"
	QueueDone    = "done"
)

type Patient struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Age       int        `json:"age,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type Appointment struct {
	ID              int64      `json:"id"`
	PatientID       int64      `json:"patient_id"`
	AppointmentTime time.Time  `json:"appointment_time"`
	Reason          string     `json:"reason,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// QueueToken is the ephemeral ticket for a walk-in visit, unrelated to the
// session token. AppointmentID may reference an appointment that no longer
// exists; readers must render a placeholder instead of failing.
type QueueToken struct {
	TokenID       int64  `json:"token_id"`
	TokenNumber   int    `json:"token_number"`
	AppointmentID int64  `json:"appointment_id"`
	Status        string `json:"status"`
}

type Prescription struct {
	ID        int64      `json:"id"`
	PatientID int64      `json:"patient_id"`
	Diagnosis string     `json:"diagnosis"`
	Medicines []string   `json:"medicines"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type Bill struct {
	ID        int64      `json:"id"`
	PatientID int64      `json:"patient_id"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

const (
	BillUnpaid = "unpaid"
	BillPaid   = "paid"
)

type PatientSummary struct {
	Patient       *Patient       `json:"patient"`
	Appointments  []Appointment  `json:"appointments"`
	Prescriptions []Prescription `json:"prescriptions"`
	Bills         []Bill         `json:"bills"`
}

// SuggestedMedicine is one line of an AI-generated prescription.
type SuggestedMedicine struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration"`
}

type PrescriptionSuggestion struct {
	Diagnosis string              `json:"diagnosis"`
	Medicines []SuggestedMedicine `json:"medicines"`
	Notes     string              `json:"notes,omitempty"`
}

type Transcript struct {
	Text string `json:"text"`
}
