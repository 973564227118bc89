package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

var _ ports.PrescriptionGateway = (*Client)(nil)

func (c *Client) CreatePrescription(ctx context.Context, input ports.CreatePrescriptionInput) (domain.Prescription, error) {
	var prescription domain.Prescription
	err := c.do(ctx, http.MethodPost, "/prescriptions", nil, input, &prescription)
	return prescription, err
}

func (c *Client) PrescriptionsByAppointment(ctx context.Context, appointmentID int64) ([]domain.Prescription, error) {
	var prescriptions []domain.Prescription
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/prescriptions/appointment/%d", appointmentID), nil, nil, &prescriptions)
	return prescriptions, err
}

func (c *Client) PrescriptionsByPatient(ctx context.Context, patientID int64) ([]domain.Prescription, error) {
	var prescriptions []domain.Prescription
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/prescriptions/patient/%d", patientID), nil, nil, &prescriptions)
	return prescriptions, err
}

func (c *Client) DeletePrescription(ctx context.Context, prescriptionID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/prescriptions/%d", prescriptionID), nil, nil, nil)
}
