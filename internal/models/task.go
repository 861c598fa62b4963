package models

import "time"

// Task represents a single task as served by the tasks API
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Deadline    time.Time `json:"deadline"`
}

// GetID lets output formatters print the bare ID in quiet mode
func (t *Task) GetID() int {
	return t.ID
}

// TaskInput is the body of create and full-update requests
type TaskInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Deadline    time.Time `json:"deadline"`
}

// Input returns the editable fields of t, used to pre-fill edit forms
func (t *Task) Input() TaskInput {
	return TaskInput{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Deadline:    t.Deadline,
	}
}

// TaskPage is one page of a task listing plus the total number of matches
type TaskPage struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

// TotalPages returns the number of pages for the given page size, never less than 1
func (p TaskPage) TotalPages(limit int) int {
	if limit <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + limit - 1) / limit
}

// DeadlineDate returns the deadline as a local YYYY-MM-DD date
func (t *Task) DeadlineDate() string {
	if t.Deadline.IsZero() {
		return ""
	}
	return t.Deadline.Local().Format(DeadlineLayout)
}
