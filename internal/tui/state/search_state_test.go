package state

import "testing"

func TestSearchState_LatestEditWins(t *testing.T) {
	s := NewSearchState()
	first := s.Touch()
	second := s.Touch()

	if s.IsLatest(first) {
		t.Error("IsLatest(first) = true after a newer edit")
	}
	if !s.IsLatest(second) {
		t.Error("IsLatest(second) = false, want true")
	}
}

// TestSearchState_ClearInvalidatesPending ensures a debounce tick queued
// before Clear does not search for the old text.
func TestSearchState_ClearInvalidatesPending(t *testing.T) {
	s := NewSearchState()
	s.Input.SetValue("milk")
	seq := s.Touch()

	s.Clear()

	if s.Value() != "" {
		t.Errorf("Value() after Clear = %q, want empty", s.Value())
	}
	if s.IsLatest(seq) {
		t.Error("IsLatest(seq) = true after Clear, want false")
	}
}
