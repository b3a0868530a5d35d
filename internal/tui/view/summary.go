package view

// SummaryView renders the trip summary text.
type SummaryView struct{}

// NewSummaryView creates a new SummaryView instance.
func NewSummaryView() *SummaryView {
	return &SummaryView{}
}

// Render renders the summary verbatim, preserving embedded line breaks.
func (v *SummaryView) Render(summary string, width int) string {
	return section("Trip Summary", summary, width)
}
