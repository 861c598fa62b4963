package state

import "testing"

func TestNotificationState_AddRemove(t *testing.T) {
	s := NewNotificationState()
	first := s.Add(LevelInfo, "one")
	second := s.Add(LevelError, "two")

	if first == second {
		t.Fatal("Add() returned the same ID twice")
	}
	if last := s.Last(); last == nil || last.Message != "two" {
		t.Errorf("Last() = %v, want two", last)
	}

	s.Remove(first)
	if len(s.All()) != 1 || s.All()[0].ID != second {
		t.Errorf("All() after Remove = %v, want only %d", s.All(), second)
	}

	// Removing an expired ID is a no-op
	s.Remove(first)
	if len(s.All()) != 1 {
		t.Errorf("len(All()) = %d, want 1", len(s.All()))
	}

	s.Clear()
	if s.HasAny() {
		t.Error("HasAny() after Clear = true")
	}
}

func TestNotificationState_GetLayers(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelInfo, "one")
	s.Add(LevelInfo, "two")

	render := func(n Notification) string { return n.Message }

	if layers := s.GetLayers(render); len(layers) != 0 {
		t.Errorf("GetLayers() before sizing = %d layers, want 0", len(layers))
	}

	s.SetWindowSize(80, 24)
	if layers := s.GetLayers(render); len(layers) != 2 {
		t.Errorf("GetLayers() = %d layers, want 2", len(layers))
	}

	// Toasts that do not fit are not drawn
	s.SetWindowSize(80, 2)
	if layers := s.GetLayers(render); len(layers) != 1 {
		t.Errorf("GetLayers() in a 2-row window = %d layers, want 1", len(layers))
	}
}
