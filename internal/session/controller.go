// Package session owns the lifecycle of a single trip-plan request: the
// Idle → Submitting → Success state machine, the generation guard that keeps
// stale responses from clobbering newer state, and the failure value the
// presentation layer decides how to surface.
//
// The controller is engine-free on purpose: it knows nothing about
// bubbletea, HTTP, or rendering, so every transition is unit-testable in
// isolation.
package session

import (
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/trip"
)

// State identifies where the controller is in the request lifecycle.
type State int

const (
	// Idle means no request is in flight and no plan is held.
	Idle State = iota
	// Submitting means a request is in flight.
	Submitting
	// Success means a plan has been received and is held for rendering.
	Success
)

// String returns the state name for logs and tests.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// Controller is the request lifecycle state machine. It is exclusively owned
// by the UI loop and is not safe for concurrent mutation; resolutions from
// other goroutines must be funneled through that loop (bubbletea messages do
// exactly that).
type Controller struct {
	state State
	plan  *trip.Plan
	err   error

	// generation increases on every accepted submission and on reset. A
	// resolution carrying any other generation is stale and dropped.
	generation uint64
}

// NewController creates a Controller in the Idle state.
func NewController() *Controller {
	return &Controller{state: Idle}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Loading reports whether a request is in flight. True exactly while the
// controller is Submitting.
func (c *Controller) Loading() bool { return c.state == Submitting }

// Plan returns the held plan, or nil outside Success.
func (c *Controller) Plan() *trip.Plan { return c.plan }

// Err returns the failure from the most recent resolved submission, or nil.
// It is cleared by the next accepted submission and by Reset.
func (c *Controller) Err() error { return c.err }

// Generation returns the identifier of the current in-flight request.
func (c *Controller) Generation() uint64 { return c.generation }

// Submit attempts to start a request for prompt. It returns the generation
// the eventual resolution must carry and whether the submission was
// accepted. Blank prompts and submissions while already Submitting are
// no-ops: state, plan, and error are untouched.
func (c *Controller) Submit(prompt string) (gen uint64, ok bool) {
	if strings.TrimSpace(prompt) == "" {
		return c.generation, false
	}
	if c.state == Submitting {
		return c.generation, false
	}

	c.generation++
	c.state = Submitting
	c.plan = nil
	c.err = nil
	return c.generation, true
}

// Resolve completes the request identified by gen. Resolutions are dropped
// unless gen matches the current generation and the controller is still
// Submitting; this is what keeps a late response from overwriting a newer
// submission or resurrecting state after Reset. It reports whether the
// resolution was applied.
//
// On success the controller holds the plan; on failure it returns to Idle
// holding only the error value.
func (c *Controller) Resolve(gen uint64, plan *trip.Plan, err error) bool {
	if gen != c.generation || c.state != Submitting {
		return false
	}

	if err != nil {
		c.state = Idle
		c.plan = nil
		c.err = err
		return true
	}

	c.state = Success
	c.plan = plan
	c.err = nil
	return true
}

// Reset unconditionally returns the controller to Idle, discarding any held
// plan and failure. The generation is bumped so an in-flight request that
// resolves later is ignored.
func (c *Controller) Reset() {
	c.generation++
	c.state = Idle
	c.plan = nil
	c.err = nil
}
