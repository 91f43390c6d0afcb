package ui

// Layout constants for the editor view.
const (
	// ScrollMargin is the number of lines kept visible above/below the selection.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the space for the title and track lines.
	HeaderHeight = 2

	// FooterHeight is the space for the status and help lines.
	FooterHeight = 2

	// PanelOverhead is the vertical space around the lines list.
	PanelOverhead = BorderHeight + HeaderHeight + FooterHeight
)
