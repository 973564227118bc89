package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

var _ ports.AppointmentGateway = (*Client)(nil)

func (c *Client) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *Client) GetAppointment(ctx context.Context, appointmentID int64) (domain.Appointment, error) {
	var appointment domain.Appointment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/appointments/%d", appointmentID), nil, nil, &appointment)
	return appointment, err
}

func (c *Client) CreateAppointment(ctx context.Context, input ports.CreateAppointmentInput) (domain.Appointment, error) {
	var appointment domain.Appointment
	err := c.do(ctx, http.MethodPost, "/appointments", nil, input, &appointment)
	return appointment, err
}

func (c *Client) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", appointmentID), nil, nil, nil)
}
