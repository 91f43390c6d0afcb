// Package action carries popup results back to the editor model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result emitted by a popup.
type Action interface {
	// ActionType names the result for logs, e.g. "confirm.result".
	ActionType() string
}

// Msg is the message a popup command produces.
type Msg struct {
	Source string // "textinput" or "confirm"
	Action Action
}

var _ tea.Msg = Msg{}
