package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

var _ ports.QueueGateway = (*Client)(nil)

func (c *Client) QueueStatus(ctx context.Context) ([]domain.QueueToken, error) {
	var tokens []domain.QueueToken
	if err := c.do(ctx, http.MethodGet, "/queue", nil, nil, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// CreateQueueToken passes the appointment id as a query parameter, the
// way the backend expects it.
func (c *Client) CreateQueueToken(ctx context.Context, appointmentID int64) (domain.QueueToken, error) {
	query := url.Values{"appointment_id": {strconv.FormatInt(appointmentID, 10)}}
	var token domain.QueueToken
	err := c.do(ctx, http.MethodPost, "/queue", query, nil, &token)
	return token, err
}

func (c *Client) UpdateQueueToken(ctx context.Context, tokenID int64, status string) (domain.QueueToken, error) {
	query := url.Values{"status": {status}}
	var token domain.QueueToken
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/queue/%d", tokenID), query, nil, &token)
	return token, err
}

func (c *Client) DeleteQueueToken(ctx context.Context, tokenID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/queue/%d", tokenID), nil, nil, nil)
}
