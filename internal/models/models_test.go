package models

import (
	"testing"
	"time"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusNew, true},
		{StatusInProgress, true},
		{StatusCompleted, true},
		{"", false},
		{"done", false},
		{"NEW", false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("Status(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStatus_Label(t *testing.T) {
	if StatusInProgress.Label() != "In progress" {
		t.Errorf("unexpected label %q", StatusInProgress.Label())
	}
	if Status("weird").Label() != "weird" {
		t.Errorf("unknown status should fall back to its raw value")
	}
}

func TestStatuses_Order(t *testing.T) {
	if len(Statuses) != 3 || Statuses[0] != StatusNew || Statuses[2] != StatusCompleted {
		t.Errorf("unexpected status order: %v", Statuses)
	}
}

// ============================================================================
// Pagination Tests
// ============================================================================

func TestTaskPage_TotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"empty", 0, 10, 1},
		{"exact", 20, 10, 2},
		{"remainder", 21, 10, 3},
		{"single partial", 3, 10, 1},
		{"zero limit", 5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TaskPage{Total: tt.total}.TotalPages(tt.limit)
			if got != tt.want {
				t.Errorf("TotalPages(%d) with total %d = %d, want %d", tt.limit, tt.total, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Query Tests
// ============================================================================

func TestTaskQuery_ChangesResetPage(t *testing.T) {
	q := DefaultTaskQuery(20)
	q.Page = 4

	if got := q.WithSearch("milk"); got.Page != 1 || got.Search != "milk" {
		t.Errorf("WithSearch should reset page, got %+v", got)
	}

	deadline := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got := q.WithFilters(TaskFilters{Status: StatusCompleted, Deadline: deadline})
	if got.Page != 1 || got.Status != StatusCompleted || !got.Deadline.Equal(deadline) {
		t.Errorf("WithFilters should apply filters and reset page, got %+v", got)
	}

	if got := q.WithLimit(30); got.Page != 1 || got.Limit != 30 {
		t.Errorf("WithLimit should reset page, got %+v", got)
	}

	// Original query is untouched
	if q.Page != 4 {
		t.Errorf("query modified in place: %+v", q)
	}
}

func TestDefaultTaskQuery(t *testing.T) {
	q := DefaultTaskQuery(0)
	if q.Page != 1 || q.Limit != DefaultPageSize {
		t.Errorf("unexpected default query %+v", q)
	}
	if !q.Filters().IsZero() {
		t.Errorf("default query should have no filters")
	}
}

func TestTask_Input(t *testing.T) {
	task := Task{ID: 7, Title: "a", Description: "b", Status: StatusNew, Deadline: time.Unix(0, 0)}
	in := task.Input()
	if in.Title != "a" || in.Description != "b" || in.Status != StatusNew || !in.Deadline.Equal(task.Deadline) {
		t.Errorf("Input() lost fields: %+v", in)
	}
	if task.GetID() != 7 {
		t.Errorf("GetID() = %d", task.GetID())
	}
}
