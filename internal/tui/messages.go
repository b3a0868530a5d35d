package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer-cli/wayfarer/internal/planner"
	"github.com/wayfarer-cli/wayfarer/internal/trip"
)

// planResultMsg carries a successful plan back to the UI along with the
// generation of the request that produced it.
type planResultMsg struct {
	generation uint64
	plan       *trip.Plan
}

// planErrMsg carries a failed request back to the UI.
type planErrMsg struct {
	generation uint64
	err        error
}

// Commands

// submitPlan returns a command that sends the prompt to the planning service.
// The generation is threaded through so stale responses can be dropped after
// a reset or a newer submission.
func submitPlan(client *planner.Client, prompt string, generation uint64) tea.Cmd {
	return func() tea.Msg {
		plan, err := client.PlanTrip(context.Background(), prompt)
		if err != nil {
			return planErrMsg{generation: generation, err: err}
		}
		return planResultMsg{generation: generation, plan: plan}
	}
}
