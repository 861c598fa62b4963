package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Status is the lifecycle state of a task
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every valid status in display order
var Statuses = []Status{StatusNew, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label returns the human-readable name of the status
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// ============================================================================
// PAGINATION CONSTANTS
// ============================================================================

// DefaultPageSize is the page size used when none is configured
const DefaultPageSize = 10

// PageSizes are the page sizes a user can pick from
var PageSizes = []int{10, 20, 30}

// DeadlineLayout is the date format used for deadline input and display
const DeadlineLayout = "2006-01-02"
