package session

import (
	"testing"

	apperrors "github.com/wayfarer-cli/wayfarer/internal/errors"
	"github.com/wayfarer-cli/wayfarer/internal/trip"
)

func TestBlankPromptIsNoOp(t *testing.T) {
	for _, prompt := range []string{"", "   ", "\n\t  \n"} {
		c := NewController()
		gen := c.Generation()

		if _, ok := c.Submit(prompt); ok {
			t.Errorf("Submit(%q) accepted, want rejected", prompt)
		}
		if c.State() != Idle {
			t.Errorf("Submit(%q) state = %v, want Idle", prompt, c.State())
		}
		if c.Generation() != gen {
			t.Errorf("Submit(%q) bumped generation", prompt)
		}
		if c.Loading() {
			t.Errorf("Submit(%q) set loading", prompt)
		}
	}
}

func TestSuccessfulLifecycle(t *testing.T) {
	c := NewController()

	gen, ok := c.Submit("4 days in Rome")
	if !ok {
		t.Fatal("Submit rejected a valid prompt")
	}
	if c.State() != Submitting || !c.Loading() {
		t.Fatalf("after Submit: state = %v, loading = %v", c.State(), c.Loading())
	}

	plan := &trip.Plan{Destination: "Rome"}
	if !c.Resolve(gen, plan, nil) {
		t.Fatal("Resolve dropped a matching resolution")
	}
	if c.State() != Success {
		t.Errorf("state = %v, want Success", c.State())
	}
	if c.Loading() {
		t.Error("loading must be false outside Submitting")
	}
	if c.Plan() != plan {
		t.Errorf("Plan() = %v, want the resolved plan", c.Plan())
	}
	if c.Err() != nil {
		t.Errorf("Err() = %v, want nil", c.Err())
	}
}

func TestFailedLifecycle(t *testing.T) {
	c := NewController()
	gen, _ := c.Submit("4 days in Rome")

	failure := apperrors.NewPlanError("rejected", apperrors.ErrPlanRequestFailed)
	if !c.Resolve(gen, nil, failure) {
		t.Fatal("Resolve dropped a matching failure")
	}

	if c.State() != Idle {
		t.Errorf("state = %v, want Idle", c.State())
	}
	if c.Plan() != nil {
		t.Error("no plan may be retained after failure")
	}
	if c.Loading() {
		t.Error("loading must clear on failure")
	}
	// Failure is a value the presentation layer can surface.
	if !apperrors.Is(c.Err(), apperrors.ErrPlanRequestFailed) {
		t.Errorf("Err() = %v, want the failure", c.Err())
	}
}

func TestResetFromSuccess(t *testing.T) {
	c := NewController()
	gen, _ := c.Submit("Tokyo in spring")
	c.Resolve(gen, &trip.Plan{Destination: "Tokyo", Hotels: []trip.Hotel{{Name: "X"}}}, nil)

	c.Reset()

	if c.State() != Idle {
		t.Errorf("state = %v, want Idle", c.State())
	}
	if c.Plan() != nil || c.Err() != nil {
		t.Error("Reset must discard plan and error")
	}
}

func TestSubmitWhileSubmittingIsNoOp(t *testing.T) {
	c := NewController()
	gen, _ := c.Submit("first")

	if _, ok := c.Submit("second"); ok {
		t.Error("Submit during Submitting should be rejected")
	}
	if c.Generation() != gen {
		t.Error("rejected Submit must not bump the generation")
	}
}

func TestStaleResolutionDropped(t *testing.T) {
	c := NewController()
	staleGen, _ := c.Submit("first")

	// The first request fails; the user submits again.
	c.Resolve(staleGen, nil, apperrors.ErrServiceUnavailable)
	freshGen, _ := c.Submit("second")

	// The stale response finally arrives and must be ignored.
	if c.Resolve(staleGen, &trip.Plan{Destination: "Stale"}, nil) {
		t.Error("stale resolution was applied")
	}
	if c.State() != Submitting {
		t.Errorf("state = %v, want still Submitting", c.State())
	}

	// The fresh response lands normally.
	if !c.Resolve(freshGen, &trip.Plan{Destination: "Fresh"}, nil) {
		t.Error("fresh resolution was dropped")
	}
	if c.Plan().Destination != "Fresh" {
		t.Errorf("Plan().Destination = %q, want Fresh", c.Plan().Destination)
	}
}

func TestLateResolutionAfterResetDropped(t *testing.T) {
	c := NewController()
	gen, _ := c.Submit("somewhere far")
	c.Reset()

	if c.Resolve(gen, &trip.Plan{Destination: "Ghost"}, nil) {
		t.Error("resolution after Reset was applied")
	}
	if c.State() != Idle || c.Plan() != nil {
		t.Errorf("late resolution resurrected state: %v %v", c.State(), c.Plan())
	}
}

func TestResubmitAfterFailureClearsError(t *testing.T) {
	c := NewController()
	gen, _ := c.Submit("first")
	c.Resolve(gen, nil, apperrors.ErrServiceUnavailable)

	if _, ok := c.Submit("second"); !ok {
		t.Fatal("Submit after failure should be accepted")
	}
	if c.Err() != nil {
		t.Error("accepted Submit must clear the previous failure")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "idle"},
		{Submitting, "submitting"},
		{Success, "success"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
