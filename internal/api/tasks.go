package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/thenoetrevino/taskdesk/internal/models"
)

const tasksPath = "/api/tasks"

// ISOLayout matches JavaScript's Date.toISOString, the format the API expects for timestamps
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// EncodeTaskQuery renders q in the fixed order search, page, limit, status, deadline.
// Every parameter is always present, empty filters included.
func EncodeTaskQuery(q models.TaskQuery) string {
	deadline := ""
	if !q.Deadline.IsZero() {
		deadline = q.Deadline.UTC().Format(ISOLayout)
	}

	params := [][2]string{
		{"search", q.Search},
		{"page", strconv.Itoa(q.Page)},
		{"limit", strconv.Itoa(q.Limit)},
		{"status", string(q.Status)},
		{"deadline", deadline},
	}

	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}

// taskBody is the wire form of TaskInput, with the deadline as an ISO string
type taskBody struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
	Deadline    string        `json:"deadline"`
}

func newTaskBody(in models.TaskInput) taskBody {
	return taskBody{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Deadline:    in.Deadline.UTC().Format(ISOLayout),
	}
}

type statusBody struct {
	Status models.Status `json:"status"`
}

func taskPath(id int) string {
	return fmt.Sprintf("%s/%d", tasksPath, id)
}

// ListTasks fetches one page of tasks
func (c *Client) ListTasks(ctx context.Context, q models.TaskQuery) (*models.TaskPage, error) {
	var page models.TaskPage
	if err := c.do(ctx, listTasksEndpoint, tasksPath, EncodeTaskQuery(q), nil, &page); err != nil {
		return nil, err
	}
	if page.Tasks == nil {
		page.Tasks = []models.Task{}
	}
	return &page, nil
}

// CreateTask creates a task and returns it as stored by the server
func (c *Client) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, createTaskEndpoint, tasksPath, "", newTaskBody(in), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces every editable field of task id
func (c *Client) UpdateTask(ctx context.Context, id int, in models.TaskInput) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, updateTaskEndpoint, taskPath(id), "", newTaskBody(in), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes task id
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, deleteTaskEndpoint, taskPath(id), "", nil, nil)
}

// UpdateTaskStatus changes only the status of task id
func (c *Client) UpdateTaskStatus(ctx context.Context, id int, status models.Status) error {
	return c.do(ctx, updateStatusEndpoint, taskPath(id)+"/updateStatus", "", statusBody{Status: status}, nil)
}
