package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component shown inside a Box. Results are sent back as
// action.Msg values from the command returned by Update.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content only; callers wrap it with Box and Overlay.
	View() string
	SetSize(width, height int)
}
