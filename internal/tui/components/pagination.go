package components

import (
	"fmt"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

type PaginationProps struct {
	Page    int
	Pages   int
	Total   int
	Limit   int
	Filters models.TaskFilters
	Search  string
}

// RenderPagination renders "Page X of N · T tasks" followed by the page size
// and any active search or filters
func RenderPagination(props PaginationProps) string {
	text := fmt.Sprintf("Page %d of %d · %d tasks · %d per page", props.Page, props.Pages, props.Total, props.Limit)
	if props.Search != "" {
		text += fmt.Sprintf(" · search %q", props.Search)
	}
	if props.Filters.Status != "" {
		text += " · status " + props.Filters.Status.Label()
	}
	if !props.Filters.Deadline.IsZero() {
		text += " · due by " + props.Filters.Deadline.Local().Format(models.DeadlineLayout)
	}
	return SubtleStyle.Render(text)
}
