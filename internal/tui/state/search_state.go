package state

import "charm.land/bubbles/v2/textinput"

// maxQueryLength bounds the search text sent to the server
const maxQueryLength = 100

// SearchState manages the search bar. The input is edited in SearchMode;
// the query is only sent once typing pauses (see Debounce).
type SearchState struct {
	Input textinput.Model

	// seq increments on every edit; a debounce tick only fires the search
	// when no newer edit happened in between
	seq int
}

// NewSearchState creates a blurred, empty search bar.
func NewSearchState() *SearchState {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search title or description"
	input.CharLimit = maxQueryLength
	return &SearchState{Input: input}
}

// Value returns the text currently in the search bar.
func (s *SearchState) Value() string {
	return s.Input.Value()
}

// Touch records an edit and returns its sequence number.
func (s *SearchState) Touch() int {
	s.seq++
	return s.seq
}

// IsLatest reports whether seq is the most recent edit.
func (s *SearchState) IsLatest(seq int) bool {
	return seq == s.seq
}

// Clear empties the search bar and invalidates pending debounce ticks.
func (s *SearchState) Clear() {
	s.Input.SetValue("")
	s.seq++
}
