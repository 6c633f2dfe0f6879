package tui

import (
	"fmt"
	"time"
)

// renderFooter renders the status line: transport stats on the left, the
// latest failure (if any), and key hints on the right. With help toggled on,
// the full binding list replaces the brief hint.
func renderFooter(app *App) string {
	stats := fmt.Sprintf("in-flight: %d", app.stats.InFlight())
	if rec, ok := app.stats.Latest(); ok {
		outcome := "ok"
		if rec.Failed() {
			outcome = "failed"
		}
		stats += fmt.Sprintf("  last: %s %s (%s)",
			rec.Request.String(), outcome, rec.Latency().Round(time.Millisecond))
	}

	line := StyleDim.Render(stats)
	if app.lastFailure != "" {
		line += "  " + StyleError.Render(truncateString(app.lastFailure, 60))
	}

	hint := "? for help"
	if app.showHelp {
		hint = helpText
	}
	if app.nav.lastKey != "" {
		hint += StyleDim.Render("  [" + app.nav.lastKey + "]")
	}

	return line + "\n" + StyleDim.Render(hint)
}

// truncateString shortens s to at most n runes, appending "..." when cut.
func truncateString(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
