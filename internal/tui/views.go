package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/esdash/internal/format"
)

// renderResourceTab renders the top-level resource tab bar. The [r] hint
// lights up when the tab bar itself is focused.
func renderResourceTab(app *App) string {
	tabs := make([]string, 0, len(resourceKinds)+1)
	for i, kind := range resourceKinds {
		style := StyleTab
		if i == app.nav.tabCursor {
			style = StyleTabSelected
		}
		tabs = append(tabs, style.Render(kind.String()))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return StylePanel(app.nav.focused == ComponentResourceTab).
		Render(StylePanelTitle.Render("[r] Resource") + " " + bar)
}

// renderElasticsearch renders the Elasticsearch resource view: the left
// column (cluster list + resource list) next to the main area.
func renderElasticsearch(app *App) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		renderList("[c] Cluster", app.clusters, app.nav.clusterCursor,
			app.nav.focused == ComponentClusterList),
		renderList("[e] Elasticsearch", esResourceNames(), app.nav.esResourceCursor,
			app.nav.focused == ComponentResourceList),
	)

	var main string
	if app.nav.entered == ComponentIndexDetail {
		main = renderIndexDetail(app)
	} else {
		switch esResources[app.nav.esResourceCursor] {
		case esResourceCluster:
			main = renderClusterHealth(app)
		case esResourceIndex:
			main = renderIndexTable(app)
		case esResourceAlias:
			main = renderAliasTable(app)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, main)
}

func esResourceNames() []string {
	names := make([]string, len(esResources))
	for i, r := range esResources {
		names[i] = r.String()
	}
	return names
}

// renderList renders a bordered vertical list with a "> " cursor marker.
func renderList(title string, items []string, cursor int, focused bool) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, StylePanelTitle.Render(title))
	for i, item := range items {
		if i == cursor {
			lines = append(lines, StyleCursorRow.Render("> "+item))
		} else {
			lines = append(lines, "  "+item)
		}
	}
	return StylePanel(focused).Render(strings.Join(lines, "\n"))
}

// renderClusterHealth renders the health key/value panel for the selected
// cluster, or a placeholder until a snapshot is cached.
func renderClusterHealth(app *App) string {
	cluster := app.selectedCluster()
	health, ok := app.cache.Health(cluster)
	if !ok {
		return StylePanel(false).Render(StyleDim.Render("no data yet for " + cluster))
	}

	rows := []struct {
		key   string
		value string
	}{
		{"cluster_name", health.ClusterName},
		{"status", StatusStyle(health.Status).Render(health.Status)},
		{"nodes", format.FormatNumber(int64(health.NumberOfNodes))},
		{"data_nodes", format.FormatNumber(int64(health.NumberOfDataNodes))},
		{"active_shards", format.FormatNumber(int64(health.ActiveShards))},
		{"active_primary_shards", format.FormatNumber(int64(health.ActivePrimaryShards))},
		{"initializing_shards", format.FormatNumber(int64(health.InitializingShards))},
		{"relocating_shards", format.FormatNumber(int64(health.RelocatingShards))},
		{"unassigned_shards", format.FormatNumber(int64(health.UnassignedShards))},
		{"delayed_unassigned_shards", format.FormatNumber(int64(health.DelayedUnassignedShards))},
		{"in_flight_fetch", format.FormatNumber(int64(health.NumberOfInFlightFetch))},
		{"pending_tasks", format.FormatNumber(int64(health.NumberOfPendingTasks))},
		{"task_max_waiting_in_queue_millis", format.FormatNumber(health.TaskMaxWaitingInQueueMillis)},
		{"active_shards_percent", fmt.Sprintf("%.1f%%", health.ActiveShardsPercentAsNumber)},
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, StylePanelTitle.Render("Cluster Health"))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s",
			StyleKey.Render(fmt.Sprintf("%-34s", row.key)), row.value))
	}
	return StylePanel(false).Render(strings.Join(lines, "\n"))
}

// renderIndexDetail renders the drill-down view for the entered index.
func renderIndexDetail(app *App) string {
	cluster := app.selectedCluster()
	name := app.nav.enteredIndex

	title := StylePanelTitle.Render("Index " + name)
	detail, ok := app.cache.Detail(cluster, name)
	if !ok {
		return StylePanel(true).Render(title + "\n" + StyleDim.Render("loading..."))
	}

	aliases := make([]string, 0, len(detail.Aliases))
	for alias := range detail.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	aliasValue := strings.Join(aliases, ", ")
	if aliasValue == "" {
		aliasValue = "-"
	}

	settings := detail.Settings.Index
	rows := []struct {
		key   string
		value string
	}{
		{"provided_name", settings.ProvidedName},
		{"uuid", settings.UUID},
		{"number_of_shards", settings.NumberOfShards},
		{"number_of_replicas", settings.NumberOfReplicas},
		{"creation_date", format.FormatEpochMillis(settings.CreationDate)},
		{"aliases", aliasValue},
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, title)
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s",
			StyleKey.Render(fmt.Sprintf("%-20s", row.key)), StyleValue.Render(row.value)))
	}
	lines = append(lines, StyleDim.Render("esc: back to index list"))
	return StylePanel(true).Render(strings.Join(lines, "\n"))
}

// renderPlaceholder is shown for resource tabs with no implementation.
func renderPlaceholder(app *App) string {
	return StylePanel(false).Render(
		StyleDim.Render(app.nav.selectedResource.String() + " is not supported yet"))
}
