package tui

import "github.com/dm/esdash/internal/api"

// responseMsg delivers one correlated transport response to the App.
type responseMsg struct {
	env api.ResponseEnvelope
}

// transportClosedMsg signals that the transport receive path has shut down.
type transportClosedMsg struct {
	err error
}
