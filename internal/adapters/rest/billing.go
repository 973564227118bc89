package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

var _ ports.BillingGateway = (*Client)(nil)

func (c *Client) CreateBill(ctx context.Context, input ports.CreateBillInput) (domain.Bill, error) {
	var bill domain.Bill
	err := c.do(ctx, http.MethodPost, "/billing", nil, input, &bill)
	return bill, err
}

func (c *Client) BillsByAppointment(ctx context.Context, appointmentID int64) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/billing/appointment/%d", appointmentID), nil, nil, &bills)
	return bills, err
}

func (c *Client) BillsByPatient(ctx context.Context, patientID int64) ([]domain.Bill, error) {
	var bills []domain.Bill
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/billing/patient/%d", patientID), nil, nil, &bills)
	return bills, err
}

func (c *Client) DeleteBill(ctx context.Context, billID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/billing/%d", billID), nil, nil, nil)
}
