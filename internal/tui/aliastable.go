package tui

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// renderAliasTable renders the alias listing for the selected cluster.
func renderAliasTable(app *App) string {
	focused := app.nav.focused == ComponentAliasTable
	title := StylePanelTitle.Render("[a] Aliases")

	rows, ok := app.cache.VisibleAliases(app.selectedCluster(), app.showSystem)
	if !ok {
		return StylePanel(focused).Render(title + "\n" + StyleDim.Render("no data yet"))
	}
	if len(rows) == 0 {
		return StylePanel(focused).Render(title + "\n" + StyleDim.Render("(no aliases)"))
	}

	cursor := app.nav.aliasCursor
	t := ltable.New().
		Headers("Alias", "Index", "Filter", "RoutingIdx", "RoutingSearch", "Write").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(colorGray)
			}
			if row == cursor {
				return StyleCursorRow
			}
			base := lipgloss.NewStyle()
			if row%2 == 0 {
				base = base.Background(colorAlt)
			}
			if col == 0 {
				return base.Bold(true).Foreground(colorWhite)
			}
			return base.Foreground(colorWhite)
		}).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	for _, a := range rows {
		t = t.Row(a.Alias, a.Index, a.Filter, a.RoutingIndex, a.RoutingSearch, a.IsWriteIndex)
	}

	return StylePanel(focused).Render(title + "\n" + t.String())
}
