package root

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/hiagosil/sistemalevelup/internal/engine"
	"github.com/hiagosil/sistemalevelup/internal/ui"
)

// consoleNotifier prints engine event summaries as themed toast lines,
// after the mutation that produced them has committed.
func consoleNotifier(out io.Writer) engine.Notifier {
	return engine.NotifierFunc(func(title, body string, severity engine.Severity) {
		var style lipgloss.Style
		switch severity {
		case engine.SeveritySuccess:
			style = ui.Good
		case engine.SeverityWarning:
			style = ui.Warn
		case engine.SeverityDanger:
			style = ui.Bad
		default:
			style = ui.Key
		}
		fmt.Fprintf(out, "%s %s\n", style.Render(title), ui.Muted.Render(body))
	})
}
