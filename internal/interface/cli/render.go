package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yanqian/news-summarizer/internal/domain/session"
)

const panelWidth = 72

var (
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("82")
	mutedColor   = lipgloss.Color("245")

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	busyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			Width(panelWidth)

	noticeStyle = lipgloss.NewStyle().
			Foreground(successColor)
)

// Render draws the error surface or the result surface for s. Nothing is drawn
// for a state that shows neither.
func Render(s session.State) string {
	view := session.ViewOf(s)
	var b strings.Builder
	if view.ShowError {
		b.WriteString(errorStyle.Render(s.LastError))
	}
	if view.ShowResult {
		body := titleStyle.Render("Summary:") + "\n" + s.LastSummary
		b.WriteString(panelStyle.Render(body))
	}
	return b.String()
}

// RenderBusy draws the label shown while a submission is in flight.
func RenderBusy() string {
	return busyStyle.Render(session.SubmitLabelBusy)
}

// RenderNotice draws a confirmation message.
func RenderNotice(message string) string {
	return noticeStyle.Render(message)
}
