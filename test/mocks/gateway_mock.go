package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// MockGateway implements every gateway port in memory, with per-operation
// error injection and call counting. Tests seed the data fields, flip an
// error field to simulate a failing backend, and assert on the counters.
type MockGateway struct {
	mu sync.Mutex

	// Seeded backend state
	Patients      []domain.Patient
	Appointments  []domain.Appointment
	Queue         []domain.QueueToken
	Prescriptions []domain.Prescription
	Bills         []domain.Bill
	Summary       domain.PatientSummary
	Suggestion    domain.PrescriptionSuggestion
	Transcript    domain.Transcript
	LoginToken    string

	// QueueStatusFn, when set, overrides the seeded Queue response. Used
	// to block or vary responses across polls.
	QueueStatusFn func(ctx context.Context) ([]domain.QueueToken, error)

	// Error injection
	ListPatientsErr       error
	ListAppointmentsErr   error
	QueueStatusErr        error
	CreatePatientErr      error
	CreateAppointmentErr  error
	CreatePrescriptionErr error
	CreateBillErr         error
	CreateQueueTokenErr   error
	UpdateQueueTokenErr   error
	DeleteQueueTokenErr   error
	PrescByPatientErr     error
	SummaryErr            error
	SuggestErr            error
	TranscribeErr         error
	LoginErr              error

	// Call tracking
	ListPatientsCalls      int
	ListAppointmentsCalls  int
	QueueStatusCalls       int
	CreateAppointmentCalls int
	CreateQueueTokenCalls  int
	UpdateQueueTokenCalls  int
	DeleteQueueTokenCalls  int
	CreatePrescCalls       int
	CreateBillCalls        int
	SuggestCalls           int
	LoginCalls             int
}

var (
	_ ports.AuthGateway         = (*MockGateway)(nil)
	_ ports.PatientGateway      = (*MockGateway)(nil)
	_ ports.AppointmentGateway  = (*MockGateway)(nil)
	_ ports.PrescriptionGateway = (*MockGateway)(nil)
	_ ports.BillingGateway      = (*MockGateway)(nil)
	_ ports.QueueGateway        = (*MockGateway)(nil)
	_ ports.AssistantGateway    = (*MockGateway)(nil)
)

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) Login(ctx context.Context, email, password string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoginCalls++
	if m.LoginErr != nil {
		return "", m.LoginErr
	}
	return m.LoginToken, nil
}

func (m *MockGateway) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListPatientsCalls++
	if m.ListPatientsErr != nil {
		return nil, m.ListPatientsErr
	}
	return append([]domain.Patient(nil), m.Patients...), nil
}

func (m *MockGateway) GetPatient(ctx context.Context, patientID int64) (domain.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.Patients {
		if p.ID == patientID {
			return p, nil
		}
	}
	return domain.Patient{}, m.ListPatientsErr
}

func (m *MockGateway) CreatePatient(ctx context.Context, input ports.CreatePatientInput) (domain.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreatePatientErr != nil {
		return domain.Patient{}, m.CreatePatientErr
	}
	patient := domain.Patient{
		ID:     int64(len(m.Patients) + 1),
		Name:   input.Name,
		Age:    input.Age,
		Gender: input.Gender,
		Phone:  input.Phone,
	}
	m.Patients = append(m.Patients, patient)
	return patient, nil
}

func (m *MockGateway) DeletePatient(ctx context.Context, patientID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.Patients {
		if p.ID == patientID {
			m.Patients = append(m.Patients[:i], m.Patients[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockGateway) PatientSummary(ctx context.Context, patientID int64) (domain.PatientSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SummaryErr != nil {
		return domain.PatientSummary{}, m.SummaryErr
	}
	return m.Summary, nil
}

func (m *MockGateway) PatientAppointments(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Appointment
	for _, a := range m.Appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockGateway) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListAppointmentsCalls++
	if m.ListAppointmentsErr != nil {
		return nil, m.ListAppointmentsErr
	}
	return append([]domain.Appointment(nil), m.Appointments...), nil
}

func (m *MockGateway) GetAppointment(ctx context.Context, appointmentID int64) (domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Appointments {
		if a.ID == appointmentID {
			return a, nil
		}
	}
	return domain.Appointment{}, m.ListAppointmentsErr
}

func (m *MockGateway) CreateAppointment(ctx context.Context, input ports.CreateAppointmentInput) (domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateAppointmentCalls++
	if m.CreateAppointmentErr != nil {
		return domain.Appointment{}, m.CreateAppointmentErr
	}
	appointment := domain.Appointment{
		ID:              int64(len(m.Appointments) + 1),
		PatientID:       input.PatientID,
		AppointmentTime: input.AppointmentTime,
		Reason:          input.Reason,
		Status:          domain.AppointmentScheduled,
	}
	m.Appointments = append(m.Appointments, appointment)
	return appointment, nil
}

func (m *MockGateway) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.Appointments {
		if a.ID == appointmentID {
			m.Appointments = append(m.Appointments[:i], m.Appointments[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockGateway) CreatePrescription(ctx context.Context, input ports.CreatePrescriptionInput) (domain.Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePrescCalls++
	if m.CreatePrescriptionErr != nil {
		return domain.Prescription{}, m.CreatePrescriptionErr
	}
	prescription := domain.Prescription{
		ID:        int64(len(m.Prescriptions) + 1),
		PatientID: input.PatientID,
		Diagnosis: input.Diagnosis,
		Medicines: input.Medicines,
		Notes:     input.Notes,
	}
	m.Prescriptions = append(m.Prescriptions, prescription)
	return prescription, nil
}

func (m *MockGateway) PrescriptionsByAppointment(ctx context.Context, appointmentID int64) ([]domain.Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Prescription(nil), m.Prescriptions...), nil
}

func (m *MockGateway) PrescriptionsByPatient(ctx context.Context, patientID int64) ([]domain.Prescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PrescByPatientErr != nil {
		return nil, m.PrescByPatientErr
	}
	var out []domain.Prescription
	for _, p := range m.Prescriptions {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockGateway) DeletePrescription(ctx context.Context, prescriptionID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.Prescriptions {
		if p.ID == prescriptionID {
			m.Prescriptions = append(m.Prescriptions[:i], m.Prescriptions[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockGateway) CreateBill(ctx context.Context, input ports.CreateBillInput) (domain.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateBillCalls++
	if m.CreateBillErr != nil {
		return domain.Bill{}, m.CreateBillErr
	}
	bill := domain.Bill{
		ID:        int64(len(m.Bills) + 1),
		PatientID: input.PatientID,
		Amount:    input.Amount,
		Status:    input.Status,
	}
	m.Bills = append(m.Bills, bill)
	return bill, nil
}

func (m *MockGateway) BillsByAppointment(ctx context.Context, appointmentID int64) ([]domain.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Bill(nil), m.Bills...), nil
}

func (m *MockGateway) BillsByPatient(ctx context.Context, patientID int64) ([]domain.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Bill
	for _, b := range m.Bills {
		if b.PatientID == patientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *MockGateway) DeleteBill(ctx context.Context, billID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.Bills {
		if b.ID == billID {
			m.Bills = append(m.Bills[:i], m.Bills[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockGateway) QueueStatus(ctx context.Context) ([]domain.QueueToken, error) {
	m.mu.Lock()
	m.QueueStatusCalls++
	fn := m.QueueStatusFn
	err := m.QueueStatusErr
	queue := append([]domain.QueueToken(nil), m.Queue...)
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	if err != nil {
		return nil, err
	}
	return queue, nil
}

func (m *MockGateway) CreateQueueToken(ctx context.Context, appointmentID int64) (domain.QueueToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateQueueTokenCalls++
	if m.CreateQueueTokenErr != nil {
		return domain.QueueToken{}, m.CreateQueueTokenErr
	}
	token := domain.QueueToken{
		TokenID:       int64(len(m.Queue) + 1),
		TokenNumber:   len(m.Queue) + 1,
		AppointmentID: appointmentID,
		Status:        domain.QueueWaiting,
	}
	m.Queue = append(m.Queue, token)
	return token, nil
}

func (m *MockGateway) UpdateQueueToken(ctx context.Context, tokenID int64, status string) (domain.QueueToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateQueueTokenCalls++
	if m.UpdateQueueTokenErr != nil {
		return domain.QueueToken{}, m.UpdateQueueTokenErr
	}
	for i, t := range m.Queue {
		if t.TokenID == tokenID {
			m.Queue[i].Status = status
			return m.Queue[i], nil
		}
	}
	return domain.QueueToken{}, nil
}

func (m *MockGateway) DeleteQueueToken(ctx context.Context, tokenID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteQueueTokenCalls++
	if m.DeleteQueueTokenErr != nil {
		return m.DeleteQueueTokenErr
	}
	for i, t := range m.Queue {
		if t.TokenID == tokenID {
			m.Queue = append(m.Queue[:i], m.Queue[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockGateway) SuggestPrescription(ctx context.Context, input ports.SuggestPrescriptionInput) (domain.PrescriptionSuggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SuggestCalls++
	if m.SuggestErr != nil {
		return domain.PrescriptionSuggestion{}, m.SuggestErr
	}
	return m.Suggestion, nil
}

func (m *MockGateway) Transcribe(ctx context.Context, filename string, audio io.Reader) (domain.Transcript, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TranscribeErr != nil {
		return domain.Transcript{}, m.TranscribeErr
	}
	return m.Transcript, nil
}

// SetQueue replaces the seeded queue under the mock's lock, for tests
// that change backend state between polls.
func (m *MockGateway) SetQueue(tokens []domain.QueueToken) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queue = tokens
}
