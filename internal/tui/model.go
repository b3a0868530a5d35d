package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/wayfarer-cli/wayfarer/internal/config"
	"github.com/wayfarer-cli/wayfarer/internal/logging"
	"github.com/wayfarer-cli/wayfarer/internal/planner"
	"github.com/wayfarer-cli/wayfarer/internal/session"
	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
	"github.com/wayfarer-cli/wayfarer/internal/tui/view"
)

// Model holds the TUI application state
type Model struct {
	// Core components
	controller *session.Controller
	client     *planner.Client
	log        *logging.Logger

	// Input and display widgets
	input    textinput.Model
	spin     spinner.Model
	viewport viewport.Model

	// Section renderers
	welcomeView *view.WelcomeView
	planView    *view.PlanView

	// UI state
	width    int
	height   int
	maxWidth int
	ready    bool
	quitting bool
	notice   string
}

// NewModel creates a new TUI model
func NewModel(client *planner.Client, cfg *config.Config, log *logging.Logger) Model {
	if log == nil {
		log = logging.NewDiscard()
	}

	ti := textinput.New()
	ti.Placeholder = "Describe your trip, e.g. a 4-day trip to Rome in October..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Primary

	return Model{
		controller:  session.NewController(),
		client:      client,
		log:         log,
		input:       ti,
		spin:        sp,
		welcomeView: view.NewWelcomeView(),
		planView:    view.NewPlanView(),
		maxWidth:    cfg.TUI.MaxWidth,
	}
}

// contentWidth clamps the render width to the configured maximum so wide
// terminals don't stretch the plan into unreadable lines.
func (m Model) contentWidth() int {
	if m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}
