package tui

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/dm/esdash/internal/format"
)

// renderIndexTable renders the index listing for the selected cluster. The
// cursor row is highlighted; pressing Enter on it opens the detail view.
func renderIndexTable(app *App) string {
	focused := app.nav.focused == ComponentIndexTable
	title := StylePanelTitle.Render("[i] Indices")

	rows, ok := app.cache.VisibleIndices(app.selectedCluster(), app.showSystem)
	if !ok {
		return StylePanel(focused).Render(title + "\n" + StyleDim.Render("no data yet"))
	}
	if len(rows) == 0 {
		return StylePanel(focused).Render(title + "\n" + StyleDim.Render("(no indices)"))
	}

	cursor := app.nav.indexCursor
	t := ltable.New().
		Headers("Index", "Health", "Status", "Pri", "Rep", "Docs", "Deleted", "Store", "PriStore", "UUID").
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
			switch col {
			case 1:
				return base.Foreground(healthColor(rows[row].Health))
			case 5:
				return base.Foreground(colorCyan)
			default:
				return base.Foreground(colorWhite)
			}
		}).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	for _, idx := range rows {
		t = t.Row(
			idx.Index,
			idx.Health,
			idx.Status,
			idx.Pri,
			idx.Rep,
			format.FormatNumberString(idx.DocsCount),
			format.FormatNumberString(idx.DocsDeleted),
			format.FormatBytesString(idx.StoreSize),
			format.FormatBytesString(idx.PriStoreSize),
			idx.UUID,
		)
	}

	return StylePanel(focused).Render(title + "\n" + t.String())
}

// healthColor maps an index/cluster health string to its display color.
func healthColor(health string) lipgloss.Color {
	switch health {
	case "green":
		return colorGreen
	case "yellow":
		return colorYellow
	case "red":
		return colorRed
	default:
		return colorWhite
	}
}
