package models

import "time"

// TaskQuery holds the parameters of a task listing request.
// A zero Deadline and an empty Status mean "no filter".
type TaskQuery struct {
	Search   string
	Page     int
	Limit    int
	Status   Status
	Deadline time.Time
}

// DefaultTaskQuery returns the first page with the given page size and no filters
func DefaultTaskQuery(limit int) TaskQuery {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return TaskQuery{Page: 1, Limit: limit}
}

// TaskFilters is the filter bar state
type TaskFilters struct {
	Status   Status
	Deadline time.Time
}

// IsZero reports whether no filter is active
func (f TaskFilters) IsZero() bool {
	return f.Status == "" && f.Deadline.IsZero()
}

// WithSearch returns q searching for text, back on the first page
func (q TaskQuery) WithSearch(text string) TaskQuery {
	q.Search = text
	q.Page = 1
	return q
}

// WithFilters returns q with the filters applied, back on the first page
func (q TaskQuery) WithFilters(f TaskFilters) TaskQuery {
	q.Status = f.Status
	q.Deadline = f.Deadline
	q.Page = 1
	return q
}

// WithLimit returns q with a new page size, back on the first page
func (q TaskQuery) WithLimit(limit int) TaskQuery {
	q.Limit = limit
	q.Page = 1
	return q
}

// Filters returns the filter part of q
func (q TaskQuery) Filters() TaskFilters {
	return TaskFilters{Status: q.Status, Deadline: q.Deadline}
}
