package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	AuthMode           Mode = iota // Login / register screen, shown while logged out
	NormalMode                     // Task table navigation
	TaskFormMode                   // Create or edit task modal
	FilterFormMode                 // Status / deadline filter modal
	SearchMode                     // Typing into the search bar
	StatusPickerMode               // Inline status change popup
	PageSizePickerMode             // Page size popup
	DeleteConfirmMode              // Confirming task deletion
	LogoutConfirmMode              // Confirming logout
	DetailMode                     // Read-only task detail with rendered description
	HelpMode                       // Key binding reference
)

// UIState manages terminal dimensions and the current interaction mode.
type UIState struct {
	width  int
	height int
	mode   Mode
}

// NewUIState creates a new UIState starting in mode.
func NewUIState(mode Mode) *UIState {
	return &UIState{mode: mode}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the rows left for the table body.
// Header, search bar, table header, pagination line and status bar are subtracted.
func (s *UIState) ContentHeight() int {
	const chrome = 8
	return max(s.height-chrome, 3)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// IsModal reports whether the mode draws an overlay on top of the task table
func (s *UIState) IsModal() bool {
	switch s.mode {
	case AuthMode, NormalMode, SearchMode:
		return false
	}
	return true
}
