package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wayfarer-cli/wayfarer/internal/session"
	"github.com/wayfarer-cli/wayfarer/internal/tui/view"
)

// Init starts the cursor blink for the prompt input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.contentWidth() - 8

		viewportHeight := msg.Height - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.contentWidth(), viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.contentWidth()
			m.viewport.Height = viewportHeight
		}
		if m.controller.State() == session.Success {
			m.viewport.SetContent(m.planView.Render(m.controller.Plan(), m.contentWidth()))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.controller.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case planResultMsg:
		if !m.controller.Resolve(msg.generation, msg.plan, nil) {
			m.log.Debug("dropped stale plan result", "generation", msg.generation)
			return m, nil
		}
		m.log.Info("plan received",
			"generation", msg.generation,
			"destination", msg.plan.Destination)
		m.viewport.SetContent(m.planView.Render(msg.plan, m.contentWidth()))
		m.viewport.GotoTop()
		return m, nil

	case planErrMsg:
		if !m.controller.Resolve(msg.generation, nil, msg.err) {
			m.log.Debug("dropped stale plan failure", "generation", msg.generation)
			return m, nil
		}
		m.log.Warn("plan request failed",
			"generation", msg.generation,
			"error", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey routes keys by lifecycle state: the welcome screen owns the text
// input, the result screen owns the viewport, and a request in flight only
// listens for quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.controller.State() {
	case session.Submitting:
		return m, nil

	case session.Success:
		switch msg.String() {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.controller.Reset()
			m.input.SetValue("")
			m.input.Focus()
			m.notice = ""
			m.log.Info("session reset", "generation", m.controller.Generation())
			return m, textinput.Blink
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	default: // Idle
		switch msg.String() {
		case "enter":
			return m.submit()
		case "1", "2", "3", "4":
			// Example shortcuts only fire on an empty prompt so digits can
			// still be typed into a trip description.
			if m.input.Value() == "" {
				idx := int(msg.String()[0] - '1')
				if idx < len(view.ExamplePrompts) {
					m.input.SetValue(view.ExamplePrompts[idx])
					m.input.CursorEnd()
					m.notice = ""
					return m, nil
				}
			}
		}

		m.notice = ""
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	prompt := m.input.Value()

	gen, ok := m.controller.Submit(prompt)
	if !ok {
		m.notice = "Enter a trip description first."
		return m, nil
	}

	m.notice = ""
	m.log.WithRequest(gen).Info("submitting trip request", "prompt_len", len(prompt))
	return m, tea.Batch(m.spin.Tick, submitPlan(m.client, prompt, gen))
}
