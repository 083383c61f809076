package task

import (
	"context"
)

type TaskService interface {
	// Create assigns a new task to every employee of the calling admin.
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)

	// MyTasks returns tasks assigned to the authenticated employee.
	MyTasks(ctx context.Context) ([]TaskResponse, error)

	// AdminTasks returns tasks created by the calling admin.
	AdminTasks(ctx context.Context) ([]TaskResponse, error)

	// UpdateStatus lets an assigned employee move a task between states.
	UpdateStatus(ctx context.Context, taskID string, req UpdateTaskStatusRequest) (TaskResponse, error)
}
