package tui

// Component identifies a focusable widget in the dashboard.
type Component int

const (
	ComponentNone Component = iota
	ComponentResourceTab
	ComponentClusterList
	ComponentResourceList
	ComponentIndexTable
	ComponentAliasTable
	ComponentIndexDetail
)

// String returns the display name of the component.
func (c Component) String() string {
	switch c {
	case ComponentResourceTab:
		return "resource tab"
	case ComponentClusterList:
		return "cluster list"
	case ComponentResourceList:
		return "resource list"
	case ComponentIndexTable:
		return "index table"
	case ComponentAliasTable:
		return "alias table"
	case ComponentIndexDetail:
		return "index detail"
	default:
		return "none"
	}
}

// ResourceKind is a top-level resource tab. Only Elasticsearch has an
// implementation behind it; the other tabs render a placeholder.
type ResourceKind int

const (
	ResourceElasticsearch ResourceKind = iota
	ResourceMongo
	ResourceRabbitMQ
)

var resourceKinds = []ResourceKind{ResourceElasticsearch, ResourceMongo, ResourceRabbitMQ}

func (r ResourceKind) String() string {
	switch r {
	case ResourceElasticsearch:
		return "Elasticsearch"
	case ResourceMongo:
		return "Mongo"
	case ResourceRabbitMQ:
		return "RabbitMQ"
	default:
		return "unknown"
	}
}

// esResource is an entry of the Elasticsearch resource list.
type esResource int

const (
	esResourceCluster esResource = iota
	esResourceIndex
	esResourceAlias
)

var esResources = []esResource{esResourceCluster, esResourceIndex, esResourceAlias}

func (r esResource) String() string {
	switch r {
	case esResourceCluster:
		return "Cluster"
	case esResourceIndex:
		return "Index"
	case esResourceAlias:
		return "Alias"
	default:
		return "unknown"
	}
}

// Direction is a navigation direction within a component.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// command is the abstract input command set decoded from raw key events.
type command interface{ isCommand() }

type quitCommand struct{}
type unfocusCommand struct{}
type focusCommand struct{ target Component }

type navigateCommand struct {
	target Component
	dir    Direction
}

type enterCommand struct{ target Component }
type leaveCommand struct{ target Component }

func (quitCommand) isCommand()     {}
func (unfocusCommand) isCommand()  {}
func (focusCommand) isCommand()    {}
func (navigateCommand) isCommand() {}
func (enterCommand) isCommand()    {}
func (leaveCommand) isCommand()    {}

// navState tracks focus, drill-down, and per-component cursor positions.
// It is owned and mutated exclusively by the App update path.
type navState struct {
	focused Component
	entered Component

	selectedResource ResourceKind

	tabCursor        int
	clusterCursor    int
	esResourceCursor int
	indexCursor      int // -1 = no row selected
	aliasCursor      int // -1 = no row selected

	enteredIndex string // drill-down key, set iff entered == ComponentIndexDetail

	lastKey string // most recent raw key, for help highlighting
}

func newNavState() navState {
	return navState{
		focused:          ComponentNone,
		entered:          ComponentNone,
		selectedResource: resourceKinds[0],
		indexCursor:      -1,
		aliasCursor:      -1,
	}
}

// unfocus clears the focused component. Idempotent.
func (n *navState) unfocus() {
	n.focused = ComponentNone
}

// focus clears any existing focus and focuses target.
func (n *navState) focus(target Component) {
	n.unfocus()
	n.focused = target
}

// enter switches target into drill-down mode, capturing the identifying key
// of the row the cursor is on.
func (n *navState) enter(target Component, key string) {
	n.entered = target
	n.enteredIndex = key
}

// leave clears drill-down state, reverting to the list view. Idempotent.
func (n *navState) leave() {
	n.entered = ComponentNone
	n.enteredIndex = ""
}

// moveCursor applies Up/Down to a vertical cursor over n items, wrapping
// cyclically. cur == -1 means no selection: Down selects the first item, Up
// the last. With zero items the cursor is returned unchanged.
func moveCursor(cur, n int, dir Direction) int {
	if n == 0 {
		return cur
	}
	switch dir {
	case DirUp:
		if cur <= 0 {
			return n - 1
		}
		return cur - 1
	case DirDown:
		if cur < 0 {
			return 0
		}
		return (cur + 1) % n
	}
	return cur
}

// moveCursorH is moveCursor for horizontal components (tabs).
func moveCursorH(cur, n int, dir Direction) int {
	if n == 0 {
		return cur
	}
	switch dir {
	case DirLeft:
		if cur <= 0 {
			return n - 1
		}
		return cur - 1
	case DirRight:
		if cur < 0 {
			return 0
		}
		return (cur + 1) % n
	}
	return cur
}
