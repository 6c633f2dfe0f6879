package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/esdash/internal/api"
	"github.com/dm/esdash/internal/transport"
)

// App is the root Bubble Tea model: it owns the navigation state and the
// data cache, and is the only writer of either. Backend responses arrive as
// messages through a re-armed await command, so every consumed input or
// response triggers exactly one re-render.
type App struct {
	controller *transport.Controller
	stats      *transport.Stats
	clusters   []string // configured cluster names, in config order
	log        *slog.Logger

	nav   navState
	cache *resourceCache

	showSystem bool
	showHelp   bool
	quitting   bool

	// Most recent backend failure, shown in the status area until any
	// successful response arrives.
	lastFailure string

	width, height int
}

// NewApp creates the App over an already-started transport controller.
func NewApp(controller *transport.Controller, clusters []string, log *slog.Logger) *App {
	return &App{
		controller: controller,
		stats:      controller.Stats(),
		clusters:   clusters,
		log:        log,
		nav:        newNavState(),
		cache:      newResourceCache(),
	}
}

// Init implements tea.Model. It issues the initial fetch plan before the
// first render and arms the response wait.
func (app *App) Init() tea.Cmd {
	app.sendRequests(fetchPlan(app.nav, app.clusters))
	return awaitResponse(app.controller)
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case responseMsg:
		app.applyResponse(msg.env)
		return app, awaitResponse(app.controller)

	case transportClosedMsg:
		// Dispatcher gone; nothing further will arrive. Keep rendering
		// whatever is cached.
		app.log.Error("transport closed", "error", msg.err)

	case tea.KeyMsg:
		app.nav.lastKey = msg.String()

		switch {
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
			return app, nil
		case key.Matches(msg, keys.System):
			if app.nav.focused == ComponentIndexTable || app.nav.focused == ComponentAliasTable {
				app.showSystem = !app.showSystem
				return app, nil
			}
		}

		cmd, ok := decodeCommand(msg, app.nav)
		if !ok {
			return app, nil
		}
		return app, app.applyCommand(cmd)
	}

	return app, nil
}

// applyCommand applies one abstract input command to the navigation state
// and issues any refresh the transition calls for.
func (app *App) applyCommand(cmd command) tea.Cmd {
	switch cmd := cmd.(type) {

	case quitCommand:
		app.quitting = true
		return tea.Quit

	case unfocusCommand:
		app.nav.unfocus()

	case focusCommand:
		app.nav.focus(cmd.target)

	case navigateCommand:
		if app.applyNavigate(cmd.target, cmd.dir) {
			app.sendRequests(fetchPlan(app.nav, app.clusters))
		}

	case enterCommand:
		name, ok := app.selectedIndexName()
		if !ok {
			return nil
		}
		app.nav.enter(cmd.target, name)
		app.sendRequests(fetchPlan(app.nav, app.clusters))

	case leaveCommand:
		app.nav.leave()
		app.sendRequests(fetchPlan(app.nav, app.clusters))
	}

	return nil
}

// applyNavigate moves the cursor of the target component and reports whether
// the move changed the effective query parameters (and therefore needs a
// data refresh). Moving a data table's cursor never does.
func (app *App) applyNavigate(target Component, dir Direction) bool {
	switch target {

	case ComponentResourceTab:
		prev := app.nav.tabCursor
		app.nav.tabCursor = moveCursorH(prev, len(resourceKinds), dir)
		if app.nav.tabCursor == prev {
			return false
		}
		app.nav.selectedResource = resourceKinds[app.nav.tabCursor]
		// Selecting a different resource invalidates component-local state
		// tied to the old one: drill-down and table cursors. Cached data
		// stays.
		app.nav.leave()
		app.nav.indexCursor = -1
		app.nav.aliasCursor = -1
		return true

	case ComponentClusterList:
		prev := app.nav.clusterCursor
		app.nav.clusterCursor = moveCursor(prev, len(app.clusters), dir)
		return app.nav.clusterCursor != prev

	case ComponentResourceList:
		prev := app.nav.esResourceCursor
		app.nav.esResourceCursor = moveCursor(prev, len(esResources), dir)
		return app.nav.esResourceCursor != prev

	case ComponentIndexTable:
		rows, _ := app.cache.VisibleIndices(app.selectedCluster(), app.showSystem)
		app.nav.indexCursor = moveCursor(app.nav.indexCursor, len(rows), dir)
		return false

	case ComponentAliasTable:
		rows, _ := app.cache.VisibleAliases(app.selectedCluster(), app.showSystem)
		app.nav.aliasCursor = moveCursor(app.nav.aliasCursor, len(rows), dir)
		return false
	}

	return false
}

// applyResponse routes a correlated response into the cache. Failures are
// surfaced in the status area and recorded in transport history; they never
// overwrite the last known good snapshot.
func (app *App) applyResponse(env api.ResponseEnvelope) {
	if env.Err != nil {
		app.lastFailure = env.Err.Error()
		return
	}
	app.lastFailure = ""

	switch res := env.Response.(type) {
	case api.ClusterHealthResponse:
		app.cache.SetHealth(res.Cluster, res.Health)
	case api.IndicesResponse:
		app.cache.SetIndices(res.Cluster, res.Indices)
	case api.AliasesResponse:
		app.cache.SetAliases(res.Cluster, res.Aliases)
	case api.IndexDetailResponse:
		app.cache.SetDetail(res.Cluster, res.Index, res.Detail)
	default:
		app.log.Error("response of unhandled type", "type", env.Response)
	}
}

// sendRequests pushes the plan to the transport controller. Send blocks on
// the bounded request channel when the dispatcher falls behind; that is the
// admission-control point, so the call is made from the update path on
// purpose.
func (app *App) sendRequests(reqs []api.Request) {
	for _, req := range reqs {
		if _, err := app.controller.Send(context.Background(), req); err != nil {
			app.log.Error("send request", "request", req.String(), "error", err)
		}
	}
}

// selectedCluster returns the name of the cluster the cursor is on.
func (app *App) selectedCluster() string {
	if app.nav.clusterCursor < 0 || app.nav.clusterCursor >= len(app.clusters) {
		return ""
	}
	return app.clusters[app.nav.clusterCursor]
}

// selectedIndexName returns the name of the index row under the table cursor.
func (app *App) selectedIndexName() (string, bool) {
	rows, cached := app.cache.VisibleIndices(app.selectedCluster(), app.showSystem)
	if !cached || app.nav.indexCursor < 0 || app.nav.indexCursor >= len(rows) {
		return "", false
	}
	return rows[app.nav.indexCursor].Index, true
}

// View implements tea.Model. Renders the full dashboard.
func (app *App) View() string {
	if app.quitting {
		return ""
	}

	var parts []string
	parts = append(parts, renderResourceTab(app))

	switch app.nav.selectedResource {
	case ResourceElasticsearch:
		parts = append(parts, renderElasticsearch(app))
	default:
		parts = append(parts, renderPlaceholder(app))
	}

	parts = append(parts, renderFooter(app))
	return strings.Join(parts, "\n")
}

// awaitResponse waits for the next correlated response from the controller
// and forwards it into the program. Re-armed after every delivery so at most
// one wait is outstanding.
func awaitResponse(c *transport.Controller) tea.Cmd {
	return func() tea.Msg {
		env, err := c.Recv(context.Background())
		if err != nil {
			return transportClosedMsg{err: err}
		}
		return responseMsg{env: env}
	}
}
