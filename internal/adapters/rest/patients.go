package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

var _ ports.PatientGateway = (*Client)(nil)

func (c *Client) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if err := c.do(ctx, http.MethodGet, "/patients", nil, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *Client) GetPatient(ctx context.Context, patientID int64) (domain.Patient, error) {
	var patient domain.Patient
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/patients/%d", patientID), nil, nil, &patient)
	return patient, err
}

func (c *Client) CreatePatient(ctx context.Context, input ports.CreatePatientInput) (domain.Patient, error) {
	var patient domain.Patient
	err := c.do(ctx, http.MethodPost, "/patients", nil, input, &patient)
	return patient, err
}

func (c *Client) DeletePatient(ctx context.Context, patientID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/patients/%d", patientID), nil, nil, nil)
}

func (c *Client) PatientSummary(ctx context.Context, patientID int64) (domain.PatientSummary, error) {
	var summary domain.PatientSummary
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/patients/%d/summary", patientID), nil, nil, &summary)
	return summary, err
}

func (c *Client) PatientAppointments(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/patients/%d/appointments", patientID), nil, nil, &appointments)
	return appointments, err
}
