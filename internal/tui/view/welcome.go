package view

import (
	"fmt"
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
)

// ExamplePrompts is the static catalog of starter prompts shown on the
// welcome screen; keys 1-4 insert them into the prompt input.
var ExamplePrompts = []string{
	"Plan a 4-day trip to Rome in October with budget hotels near Colosseum",
	"Plan a 5-day trip to Paris in November with cheap hotels near Eiffel Tower",
	"Plan a 3-day weekend getaway to Barcelona with luxury hotels",
	"Plan a week-long trip to Tokyo in spring with moderate budget",
}

// WelcomeView renders the prompt screen around the text input.
type WelcomeView struct{}

// NewWelcomeView creates a new WelcomeView instance.
func NewWelcomeView() *WelcomeView {
	return &WelcomeView{}
}

// Render renders the welcome banner, the prompt input, an optional error
// line from the last failed submission, and the example catalog.
func (v *WelcomeView) Render(input string, errLine string, width int) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Plan Your Perfect Trip"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Describe your dream trip and get a complete plan with hotels, attractions, weather, and more."))
	b.WriteString("\n\n")

	b.WriteString(input)
	b.WriteString("\n")

	if errLine != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(errLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderExamples())
	b.WriteString("\n")
	b.WriteString(styles.HelpBar.Render(
		styles.HelpKey.Render("enter") + " plan trip  " +
			styles.HelpKey.Render("1-4") + " use example  " +
			styles.HelpKey.Render("ctrl+c") + " quit"))

	return styles.SectionBox.Width(width - 2).Render(b.String())
}

func (v *WelcomeView) renderExamples() string {
	var b strings.Builder
	b.WriteString(styles.Muted.Render("Need inspiration? Try these examples:"))
	for i, example := range ExamplePrompts {
		b.WriteString("\n  ")
		b.WriteString(styles.HelpKey.Render(fmt.Sprintf("[%d]", i+1)))
		b.WriteString(" ")
		b.WriteString(styles.Muted.Render(example))
	}
	return b.String()
}
