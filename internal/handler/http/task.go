package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/task"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	AdminTasks(w http.ResponseWriter, r *http.Request)
	MyTasks(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// Create implements TaskHandler.
func (t *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq task.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := t.taskService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", created)
}

// AdminTasks implements TaskHandler.
func (t *TaskHandlerImpl) AdminTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := t.taskService.AdminTasks(r.Context())
	if err != nil {
		slog.Error("AdminTasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// MyTasks implements TaskHandler.
func (t *TaskHandlerImpl) MyTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := t.taskService.MyTasks(r.Context())
	if err != nil {
		slog.Error("MyTasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// UpdateStatus implements TaskHandler.
func (t *TaskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	var statusReq task.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("UpdateStatus task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := t.taskService.UpdateStatus(r.Context(), taskID, statusReq)
	if err != nil {
		slog.Error("UpdateStatus task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", updated)
}
