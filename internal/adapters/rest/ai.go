package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

var _ ports.AssistantGateway = (*Client)(nil)

// The AI endpoints sit behind a circuit breaker: they are the slowest
// calls the client makes, and a struggling assistant should fail fast
// rather than hold the prescription form hostage.

func (c *Client) SuggestPrescription(ctx context.Context, input ports.SuggestPrescriptionInput) (domain.PrescriptionSuggestion, error) {
	result, err := c.aiBreaker.Execute(func() (interface{}, error) {
		var suggestion domain.PrescriptionSuggestion
		if err := c.do(ctx, http.MethodPost, "/ai/prescription", nil, input, &suggestion); err != nil {
			return nil, err
		}
		return suggestion, nil
	})
	if err != nil {
		return domain.PrescriptionSuggestion{}, err
	}
	return result.(domain.PrescriptionSuggestion), nil
}

// Transcribe uploads an audio recording as multipart form data. It does
// not go through do: the content type and body handling differ from the
// JSON calls.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader) (domain.Transcript, error) {
	result, err := c.aiBreaker.Execute(func() (interface{}, error) {
		return c.transcribe(ctx, filename, audio)
	})
	if err != nil {
		return domain.Transcript{}, err
	}
	return result.(domain.Transcript), nil
}

func (c *Client) transcribe(ctx context.Context, filename string, audio io.Reader) (domain.Transcript, error) {
	const op = "POST /ai/transcribe"
	start := time.Now()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return domain.Transcript{}, &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	if _, err := io.Copy(part, audio); err != nil {
		return domain.Transcript{}, &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	if err := writer.Close(); err != nil {
		return domain.Transcript{}, &Error{Kind: KindNetwork, Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ai/transcribe", &buf)
	if err != nil {
		return domain.Transcript{}, &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe("/ai/transcribe", "network", start)
		return domain.Transcript{}, &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, resp.Body)
		c.observe("/ai/transcribe", "server", start)
		return domain.Transcript{}, &Error{Kind: KindServer, Status: resp.StatusCode, Op: op}
	}

	var transcript domain.Transcript
	if err := json.NewDecoder(resp.Body).Decode(&transcript); err != nil {
		c.observe("/ai/transcribe", "decode", start)
		return domain.Transcript{}, &Error{Kind: KindDecode, Op: op, Err: err}
	}

	c.observe("/ai/transcribe", "ok", start)
	return transcript, nil
}
