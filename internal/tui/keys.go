package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the stable key bindings.
type keyMap struct {
	Quit   key.Binding
	Escape key.Binding
	Enter  key.Binding
	Help   key.Binding
	System key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "ctrl+d"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back/unfocus"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open detail"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	System: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle system indices"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
}

// helpText is the expanded footer help.
const helpText = "q: quit  esc: back  r: resource tab  c: clusters  e: resources  " +
	"i: indices  a: aliases  hjkl/arrows: move  enter: index detail  s: system indices  ?: help"

// decodeCommand maps a raw key event to an abstract command given the
// current navigation state. Focus targets are contextual: with nothing
// focused, letter keys pick a component belonging to the selected resource.
// Escape triggers Leave before Unfocus, so drill-down always unwinds first.
func decodeCommand(msg tea.KeyMsg, nav navState) (command, bool) {
	if key.Matches(msg, keys.Quit) {
		return quitCommand{}, true
	}

	if nav.focused == ComponentNone {
		if nav.selectedResource == ResourceElasticsearch {
			switch msg.String() {
			case "c":
				return focusCommand{target: ComponentClusterList}, true
			case "e":
				return focusCommand{target: ComponentResourceList}, true
			case "i":
				return focusCommand{target: ComponentIndexTable}, true
			case "a":
				return focusCommand{target: ComponentAliasTable}, true
			}
		}
		if msg.String() == "r" {
			return focusCommand{target: ComponentResourceTab}, true
		}
	} else {
		if dir, ok := decodeDirection(msg); ok {
			return navigateCommand{target: nav.focused, dir: dir}, true
		}
		if nav.focused == ComponentIndexTable && key.Matches(msg, keys.Enter) {
			return enterCommand{target: ComponentIndexDetail}, true
		}
	}

	if key.Matches(msg, keys.Escape) {
		if nav.entered != ComponentNone {
			return leaveCommand{target: nav.entered}, true
		}
		return unfocusCommand{}, true
	}

	return nil, false
}

// decodeDirection maps arrow and vim movement keys to a Direction.
func decodeDirection(msg tea.KeyMsg) (Direction, bool) {
	switch {
	case key.Matches(msg, keys.Left):
		return DirLeft, true
	case key.Matches(msg, keys.Right):
		return DirRight, true
	case key.Matches(msg, keys.Up):
		return DirUp, true
	case key.Matches(msg, keys.Down):
		return DirDown, true
	}
	return 0, false
}
