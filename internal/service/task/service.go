package task

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/task"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

type TaskServiceImpl struct {
	db *database.DB
	task.TaskRepository
	user.UserRepository
}

func NewTaskService(db *database.DB, taskRepo task.TaskRepository, userRepo user.UserRepository) task.TaskService {
	return &TaskServiceImpl{
		db:             db,
		TaskRepository: taskRepo,
		UserRepository: userRepo,
	}
}

// Create implements task.TaskService. The task fans out to every employee
// currently linked to the calling admin.
func (t *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	employees, err := t.UserRepository.ListEmployees(ctx, principal.UserID)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) == 0 {
		return task.TaskResponse{}, task.ErrNoEmployees
	}

	assignedTo := make([]string, 0, len(employees))
	for _, e := range employees {
		assignedTo = append(assignedTo, e.ID)
	}

	priority := task.Priority(req.Priority)
	if req.Priority == "" {
		priority = task.PriorityMedium
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		due, _ := time.Parse("2006-01-02", req.DueDate)
		dueDate = &due
	}

	created, err := t.TaskRepository.Create(ctx, task.Task{
		AdminID:     principal.UserID,
		AssignedTo:  assignedTo,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     dueDate,
		Status:      task.StatusPending,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task.ToResponse(created), nil
}

// MyTasks implements task.TaskService.
func (t *TaskServiceImpl) MyTasks(ctx context.Context) ([]task.TaskResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := t.TaskRepository.ListByAssignee(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return task.ToResponses(tasks), nil
}

// AdminTasks implements task.TaskService.
func (t *TaskServiceImpl) AdminTasks(ctx context.Context) ([]task.TaskResponse, error) {
	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := t.TaskRepository.ListByAdmin(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return task.ToResponses(tasks), nil
}

// UpdateStatus implements task.TaskService. The repository enforces that the
// caller is among the task's assignees.
func (t *TaskServiceImpl) UpdateStatus(ctx context.Context, taskID string, req task.UpdateTaskStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	principal, err := jwt.PrincipalFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	updated, err := t.TaskRepository.UpdateStatus(ctx, taskID, principal.UserID, task.Status(req.Status))
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}
