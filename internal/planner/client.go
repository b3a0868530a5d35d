// Package planner is the HTTP client for the trip-planning service. It owns
// the only network boundary of the application: one JSON POST that turns a
// free-form prompt into a trip.Plan, plus a health probe.
//
// The client performs the single normalization pass on the response; callers
// always receive a normalized *trip.Plan and never see raw JSON.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/wayfarer-cli/wayfarer/internal/errors"
	"github.com/wayfarer-cli/wayfarer/internal/logging"
	"github.com/wayfarer-cli/wayfarer/internal/trip"
)

const (
	planEndpoint   = "/plan-trip"
	healthEndpoint = "/health"
)

// Client talks to the planning service. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logging.Logger
}

// planRequest is the wire format of a submission.
type planRequest struct {
	Prompt string `json:"prompt"`
}

// New creates a Client for the service at baseURL. A zero timeout leaves the
// request unbounded except by the caller's context; planning calls routinely
// run for minutes.
func New(baseURL string, timeout time.Duration, log *logging.Logger) *Client {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// PlanTrip submits a prompt and returns the normalized plan. Any non-2xx
// status is a uniform *apperrors.PlanError wrapping ErrPlanRequestFailed; the
// status code is retained for diagnostics only and never branches behavior.
func (c *Client) PlanTrip(ctx context.Context, prompt string) (*trip.Plan, error) {
	body, err := json.Marshal(planRequest{Prompt: prompt})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode plan request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+planEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to build plan request")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("plan request failed", "err", err)
		return nil, apperrors.NewPlanError("request did not complete", apperrors.ErrServiceUnavailable).
			WithEndpoint(planEndpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.log.Error("plan request rejected", "status", resp.StatusCode)
		return nil, apperrors.NewPlanError("service returned non-success status", apperrors.ErrPlanRequestFailed).
			WithStatus(resp.StatusCode).
			WithEndpoint(planEndpoint)
	}

	var plan trip.Plan
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		c.log.Error("plan response undecodable", "err", err)
		return nil, apperrors.NewPlanError("could not decode response body", apperrors.ErrMalformedResponse).
			WithStatus(resp.StatusCode).
			WithEndpoint(planEndpoint)
	}
	plan.Normalize()

	c.log.Info("plan received",
		"destination", plan.Destination,
		"elapsed", time.Since(start).Round(time.Millisecond).String())
	return &plan, nil
}

// Health probes the service's health endpoint. It returns nil when the
// service answers with a 2xx status.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthEndpoint, nil)
	if err != nil {
		return apperrors.Wrap(err, "failed to build health request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NewPlanError("health probe did not complete", apperrors.ErrServiceUnavailable).
			WithEndpoint(healthEndpoint)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewPlanError(fmt.Sprintf("service unhealthy (%s)", resp.Status), apperrors.ErrPlanRequestFailed).
			WithStatus(resp.StatusCode).
			WithEndpoint(healthEndpoint)
	}
	return nil
}
