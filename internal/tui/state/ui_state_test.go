package state

import "testing"

// TestContentHeight_SmallTerminal ensures the table always gets a few rows.
// Edge case: terminal shorter than the surrounding chrome.
func TestContentHeight_SmallTerminal(t *testing.T) {
	s := NewUIState(NormalMode)
	s.SetHeight(4)

	if got := s.ContentHeight(); got != 3 {
		t.Errorf("ContentHeight() with height=4 = %d, want 3", got)
	}
}

func TestContentHeight_SubtractsChrome(t *testing.T) {
	s := NewUIState(NormalMode)
	s.SetHeight(40)

	if got := s.ContentHeight(); got != 32 {
		t.Errorf("ContentHeight() with height=40 = %d, want 32", got)
	}
}

func TestIsModal(t *testing.T) {
	tests := []struct {
		mode Mode
		want bool
	}{
		{NormalMode, false},
		{SearchMode, false},
		{AuthMode, false},
		{TaskFormMode, true},
		{FilterFormMode, true},
		{StatusPickerMode, true},
		{DeleteConfirmMode, true},
		{HelpMode, true},
	}

	for _, tt := range tests {
		s := NewUIState(tt.mode)
		if got := s.IsModal(); got != tt.want {
			t.Errorf("IsModal() in mode %d = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
