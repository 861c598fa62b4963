package state

import "github.com/thenoetrevino/taskdesk/internal/models"

// ListState holds the task listing: the active query, the last page the
// server returned and the row cursor.
type ListState struct {
	query    models.TaskQuery
	page     models.TaskPage
	selected int

	// requestSeq numbers list requests so a slow, older response cannot
	// overwrite a newer one
	requestSeq int
	loading    bool
	loaded     bool
}

// NewListState creates a ListState on the first page with the given page size.
func NewListState(pageSize int) *ListState {
	return &ListState{query: models.DefaultTaskQuery(pageSize)}
}

// Query returns the query the next fetch will send.
func (s *ListState) Query() models.TaskQuery {
	return s.query
}

// SetQuery replaces the query.
func (s *ListState) SetQuery(q models.TaskQuery) {
	s.query = q
}

// Tasks returns the tasks of the current page.
func (s *ListState) Tasks() []models.Task {
	return s.page.Tasks
}

// Total returns the number of tasks matching the query across all pages.
func (s *ListState) Total() int {
	return s.page.Total
}

// TotalPages returns ceil(total/limit), never less than 1.
func (s *ListState) TotalPages() int {
	return s.page.TotalPages(s.query.Limit)
}

// BeginRequest marks a fetch as in flight and returns its sequence number.
func (s *ListState) BeginRequest() int {
	s.requestSeq++
	s.loading = true
	return s.requestSeq
}

// IsCurrent reports whether seq belongs to the latest request.
func (s *ListState) IsCurrent(seq int) bool {
	return seq == s.requestSeq
}

// Loading reports whether the latest request is still in flight.
func (s *ListState) Loading() bool {
	return s.loading
}

// Loaded reports whether any page has arrived yet.
func (s *ListState) Loaded() bool {
	return s.loaded
}

// FinishRequest clears the loading flag without changing the page, used on errors.
func (s *ListState) FinishRequest() {
	s.loading = false
}

// SetPage stores a fetched page and keeps the cursor inside it.
func (s *ListState) SetPage(page models.TaskPage) {
	s.page = page
	s.loading = false
	s.loaded = true
	s.clampSelection()
}

// Selected returns the index of the highlighted row.
func (s *ListState) Selected() int {
	return s.selected
}

// SelectedTask returns the highlighted task, or nil when the page is empty.
func (s *ListState) SelectedTask() *models.Task {
	if s.selected < 0 || s.selected >= len(s.page.Tasks) {
		return nil
	}
	return &s.page.Tasks[s.selected]
}

// MoveUp moves the cursor up one row if possible.
func (s *ListState) MoveUp() bool {
	if s.selected > 0 {
		s.selected--
		return true
	}
	return false
}

// MoveDown moves the cursor down one row if possible.
func (s *ListState) MoveDown() bool {
	if s.selected < len(s.page.Tasks)-1 {
		s.selected++
		return true
	}
	return false
}

// NextPage advances the query one page. Returns false on the last page.
func (s *ListState) NextPage() bool {
	if s.query.Page >= s.TotalPages() {
		return false
	}
	s.query.Page++
	s.selected = 0
	return true
}

// PrevPage moves the query back one page. Returns false on the first page.
func (s *ListState) PrevPage() bool {
	if s.query.Page <= 1 {
		return false
	}
	s.query.Page--
	s.selected = 0
	return true
}

// Reset drops the loaded page and returns to the first page with no search
// or filters, keeping the page size. Used on logout.
func (s *ListState) Reset() {
	s.query = models.DefaultTaskQuery(s.query.Limit)
	s.page = models.TaskPage{}
	s.selected = 0
	s.loading = false
	s.loaded = false
}

func (s *ListState) clampSelection() {
	s.selected = min(s.selected, len(s.page.Tasks)-1)
	s.selected = max(s.selected, 0)
}
