package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/tui/theme"
)

// Fixed column widths; title and description share what is left
const (
	idColumnWidth       = 5
	statusColumnWidth   = 12
	deadlineColumnWidth = 11
	columnGap           = 2
)

type TaskTableProps struct {
	Tasks    []models.Task
	Selected int
	Width    int
	Height   int // rows available for task lines
}

type columnWidths struct {
	title, description int
}

func computeWidths(total int) columnWidths {
	fixed := idColumnWidth + statusColumnWidth + deadlineColumnWidth + 4*columnGap
	flexible := max(total-fixed, 20)
	title := flexible * 2 / 5
	return columnWidths{title: title, description: flexible - title}
}

// cell truncates s to width with an ellipsis and pads it to exactly width
func cell(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = truncate.StringWithTail(s, uint(width), "…")
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// RenderTaskTable renders the task table. The selected row is highlighted and
// the visible window scrolls to keep it on screen.
func RenderTaskTable(props TaskTableProps) string {
	widths := computeWidths(props.Width)
	gap := strings.Repeat(" ", columnGap)

	header := HeaderCellStyle.Render(strings.Join([]string{
		cell("ID", idColumnWidth),
		cell("Title", widths.title),
		cell("Description", widths.description),
		cell("Status", statusColumnWidth),
		cell("Deadline", deadlineColumnWidth),
	}, gap))

	rule := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.TableBorder)).
		Render(strings.Repeat("─", lipgloss.Width(header)))

	lines := []string{header, rule}

	start, end := visibleWindow(len(props.Tasks), props.Selected, max(props.Height, 1))
	for i := start; i < end; i++ {
		task := props.Tasks[i]
		status := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.StatusColor(task.Status))).
			Render(cell(task.Status.Label(), statusColumnWidth))

		row := strings.Join([]string{
			cell(fmt.Sprintf("#%d", task.ID), idColumnWidth),
			cell(task.Title, widths.title),
			cell(task.Description, widths.description),
			status,
			cell(task.DeadlineDate(), deadlineColumnWidth),
		}, gap)

		if i == props.Selected {
			row = SelectedRow.Render(row)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

// visibleWindow returns the [start, end) rows to draw so selected stays visible
func visibleWindow(count, selected, height int) (int, int) {
	if count <= height {
		return 0, count
	}
	start := max(selected-height+1, 0)
	return start, min(start+height, count)
}
