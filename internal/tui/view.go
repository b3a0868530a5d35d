package tui

import (
	"strings"

	apperrors "github.com/wayfarer-cli/wayfarer/internal/errors"
	"github.com/wayfarer-cli/wayfarer/internal/session"
	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
)

// View renders the screen for the current lifecycle state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.controller.State() {
	case session.Submitting:
		return m.renderLoading()
	case session.Success:
		return m.renderResult()
	default:
		return m.welcomeView.Render(m.input.View(), m.errLine(), m.renderWidth())
	}
}

func (m Model) renderLoading() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(m.spin.View())
	b.WriteString(styles.Title.Render("Planning your trip..."))
	b.WriteString("\n\n  ")
	b.WriteString(styles.Muted.Render("Gathering hotels, attractions, flights, and weather. This can take a minute."))
	return b.String()
}

func (m Model) renderResult() string {
	if !m.ready {
		return m.planView.Render(m.controller.Plan(), m.renderWidth())
	}

	help := styles.HelpBar.Render(
		styles.HelpKey.Render("↑/↓") + " scroll  " +
			styles.HelpKey.Render("r") + " new trip  " +
			styles.HelpKey.Render("q") + " quit")
	return m.viewport.View() + "\n" + help
}

// errLine is the transient failure line on the welcome screen: a local
// notice (blank prompt) wins, otherwise the last resolved failure.
func (m Model) errLine() string {
	if m.notice != "" {
		return m.notice
	}
	if err := m.controller.Err(); err != nil {
		return errText(err)
	}
	return ""
}

// renderWidth falls back to a sane default before the first resize message.
func (m Model) renderWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.contentWidth()
}

// errText maps a request failure to a short user-facing line. Detail stays
// in the log; the screen gets one sentence.
func errText(err error) string {
	switch {
	case apperrors.Is(err, apperrors.ErrServiceUnavailable):
		return "Could not reach the planning service. Is it running?"
	case apperrors.Is(err, apperrors.ErrMalformedResponse):
		return "The planning service returned an unreadable response. Please try again."
	default:
		return "Trip planning failed. Please try again."
	}
}
