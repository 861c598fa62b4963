package server

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/thenoetrevino/taskdesk/internal/database"
	"github.com/thenoetrevino/taskdesk/internal/models"
	"github.com/thenoetrevino/taskdesk/internal/validation"
)

// MaxPageSize caps the limit query parameter
const MaxPageSize = 100

type taskListResponse struct {
	Tasks []models.Task `json:"tasks"`
	Total int           `json:"total"`
}

// parseTaskQuery reads search, page, limit, status and deadline.
// Empty values mean "no filter" or the default.
func parseTaskQuery(values url.Values) (models.TaskQuery, error) {
	q := models.TaskQuery{
		Search: strings.TrimSpace(values.Get("search")),
		Page:   1,
		Limit:  models.DefaultPageSize,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, errors.New("page must be a positive integer")
		}
		q.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxPageSize {
			return q, errors.New("limit must be between 1 and " + strconv.Itoa(MaxPageSize))
		}
		q.Limit = limit
	}

	status, err := validation.OptionalStatus(values.Get("status"))
	if err != nil {
		return q, err
	}
	q.Status = status

	deadline, err := validation.OptionalDeadline(values.Get("deadline"))
	if err != nil {
		return q, err
	}
	q.Deadline = deadline

	return q, nil
}

func taskIDFromRequest(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["taskID"])
	return id, err == nil && id > 0
}

// storeError maps repository errors onto responses
func storeError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, database.ErrTaskNotFound) {
		writeError(w, newNotFoundError("task not found"))
		return
	}
	slog.Error("task store failure", "op", op, "error", err)
	writeError(w, newStatusTextError(http.StatusInternalServerError))
}

// handleListTasks handles GET /api/tasks
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	q, err := parseTaskQuery(r.URL.Query())
	if err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}

	tasks, total, err := s.store.ListTasks(r.Context(), userIDFromContext(r.Context()), q)
	if err != nil {
		storeError(w, err, "list")
		return
	}

	writeJSON(w, http.StatusOK, taskListResponse{Tasks: tasks, Total: total})
}

// handleCreateTask handles POST /api/tasks
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}

	task, err := s.store.CreateTask(r.Context(), userIDFromContext(r.Context()), in)
	if err != nil {
		storeError(w, err, "create")
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// handleUpdateTask handles PUT /api/tasks/{taskID}
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := taskIDFromRequest(r)
	if !ok {
		writeError(w, newNotFoundError("task not found"))
		return
	}

	var req taskRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}

	task, err := s.store.UpdateTask(r.Context(), userIDFromContext(r.Context()), taskID, in)
	if err != nil {
		storeError(w, err, "update")
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// handleDeleteTask handles DELETE /api/tasks/{taskID}
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := taskIDFromRequest(r)
	if !ok {
		writeError(w, newNotFoundError("task not found"))
		return
	}

	if err := s.store.DeleteTask(r.Context(), userIDFromContext(r.Context()), taskID); err != nil {
		storeError(w, err, "delete")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateStatus handles PATCH /api/tasks/{taskID}/updateStatus
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	taskID, ok := taskIDFromRequest(r)
	if !ok {
		writeError(w, newNotFoundError("task not found"))
		return
	}

	var req statusRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}
	status, err := req.status()
	if err != nil {
		writeError(w, newBadRequestError(err.Error()))
		return
	}

	if err := s.store.UpdateTaskStatus(r.Context(), userIDFromContext(r.Context()), taskID, status); err != nil {
		storeError(w, err, "update_status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": taskID, "status": status, "updatedAt": time.Now().UTC()})
}
