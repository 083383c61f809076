package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/task"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/user"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

func authedContext(t *testing.T, userID string, role user.Role, adminID *string) context.Context {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	tokenString, _, err := jwtService.GenerateAccessToken(userID, role, adminID)
	require.NoError(t, err)

	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

// employeeLister stubs just the employee lookup the task service needs.
type employeeLister struct {
	user.UserRepository
	employees map[string][]user.User
}

func (e *employeeLister) ListEmployees(_ context.Context, adminID string) ([]user.User, error) {
	return e.employees[adminID], nil
}

type memoryTaskRepo struct {
	tasks  []task.Task
	nextID int
}

func (m *memoryTaskRepo) Create(_ context.Context, t task.Task) (task.Task, error) {
	m.nextID++
	t.ID = fmt.Sprintf("task-%d", m.nextID)
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *memoryTaskRepo) ListByAdmin(_ context.Context, adminID string) ([]task.Task, error) {
	var out []task.Task
	for _, t := range m.tasks {
		if t.AdminID == adminID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memoryTaskRepo) ListByAssignee(_ context.Context, userID string) ([]task.Task, error) {
	var out []task.Task
	for _, t := range m.tasks {
		for _, assignee := range t.AssignedTo {
			if assignee == userID {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (m *memoryTaskRepo) UpdateStatus(_ context.Context, taskID string, userID string, status task.Status) (task.Task, error) {
	for i := range m.tasks {
		if m.tasks[i].ID != taskID {
			continue
		}
		for _, assignee := range m.tasks[i].AssignedTo {
			if assignee == userID {
				m.tasks[i].Status = status
				return m.tasks[i], nil
			}
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (m *memoryTaskRepo) CountByStatusForAdmin(_ context.Context, adminID string) (map[task.Status]int64, error) {
	counts := make(map[task.Status]int64)
	for _, t := range m.tasks {
		if t.AdminID == adminID {
			counts[t.Status]++
		}
	}
	return counts, nil
}

func (m *memoryTaskRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.tasks)), nil
}

func testEmployees(adminID string, ids ...string) *employeeLister {
	employees := make([]user.User, 0, len(ids))
	for _, id := range ids {
		employees = append(employees, user.User{ID: id, Role: user.RoleEmployee, AdminID: &adminID})
	}
	return &employeeLister{employees: map[string][]user.User{adminID: employees}}
}

func TestCreateFansOutToAllEmployees(t *testing.T) {
	repo := &memoryTaskRepo{}
	service := NewTaskService(nil, repo, testEmployees("admin-1", "emp-1", "emp-2", "emp-3"))
	ctx := authedContext(t, "admin-1", user.RoleAdmin, nil)

	resp, err := service.Create(ctx, task.CreateTaskRequest{
		Title:       "Quarterly report",
		Description: "Compile Q1 numbers",
		Priority:    string(task.PriorityHigh),
		DueDate:     "2026-03-31",
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"emp-1", "emp-2", "emp-3"}, resp.AssignedTo)
	assert.Equal(t, task.StatusPending, resp.Status)
	assert.Equal(t, task.PriorityHigh, resp.Priority)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, "2026-03-31", *resp.DueDate)
}

func TestCreateDefaultsToMediumPriority(t *testing.T) {
	repo := &memoryTaskRepo{}
	service := NewTaskService(nil, repo, testEmployees("admin-1", "emp-1"))
	ctx := authedContext(t, "admin-1", user.RoleAdmin, nil)

	resp, err := service.Create(ctx, task.CreateTaskRequest{Title: "Standup notes"})

	require.NoError(t, err)
	assert.Equal(t, task.PriorityMedium, resp.Priority)
	assert.Nil(t, resp.DueDate)
}

func TestCreateWithoutEmployees(t *testing.T) {
	repo := &memoryTaskRepo{}
	service := NewTaskService(nil, repo, &employeeLister{employees: map[string][]user.User{}})
	ctx := authedContext(t, "admin-1", user.RoleAdmin, nil)

	_, err := service.Create(ctx, task.CreateTaskRequest{Title: "Quarterly report"})
	assert.ErrorIs(t, err, task.ErrNoEmployees)
}

func TestUpdateStatusByAssignee(t *testing.T) {
	repo := &memoryTaskRepo{}
	service := NewTaskService(nil, repo, testEmployees("admin-1", "emp-1"))
	adminCtx := authedContext(t, "admin-1", user.RoleAdmin, nil)

	created, err := service.Create(adminCtx, task.CreateTaskRequest{Title: "Quarterly report"})
	require.NoError(t, err)

	adminID := "admin-1"
	empCtx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)
	updated, err := service.UpdateStatus(empCtx, created.ID, task.UpdateTaskStatusRequest{Status: string(task.StatusInProgress)})

	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, updated.Status)
}

func TestUpdateStatusByNonAssignee(t *testing.T) {
	repo := &memoryTaskRepo{}
	service := NewTaskService(nil, repo, testEmployees("admin-1", "emp-1"))
	adminCtx := authedContext(t, "admin-1", user.RoleAdmin, nil)

	created, err := service.Create(adminCtx, task.CreateTaskRequest{Title: "Quarterly report"})
	require.NoError(t, err)

	adminID := "admin-1"
	outsiderCtx := authedContext(t, "emp-9", user.RoleEmployee, &adminID)
	_, err = service.UpdateStatus(outsiderCtx, created.ID, task.UpdateTaskStatusRequest{Status: string(task.StatusCompleted)})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := &memoryTaskRepo{}
	service := NewTaskService(nil, repo, testEmployees("admin-1", "emp-1"))
	adminID := "admin-1"
	ctx := authedContext(t, "emp-1", user.RoleEmployee, &adminID)

	_, err := service.UpdateStatus(ctx, "task-1", task.UpdateTaskStatusRequest{Status: "Done"})
	assert.Error(t, err)
}

func TestMyTasksOnlyAssigned(t *testing.T) {
	repo := &memoryTaskRepo{}
	lister := &employeeLister{employees: map[string][]user.User{
		"admin-1": {{ID: "emp-1", Role: user.RoleEmployee}},
		"admin-2": {{ID: "emp-2", Role: user.RoleEmployee}},
	}}
	service := NewTaskService(nil, repo, lister)

	_, err := service.Create(authedContext(t, "admin-1", user.RoleAdmin, nil), task.CreateTaskRequest{Title: "For team one"})
	require.NoError(t, err)
	_, err = service.Create(authedContext(t, "admin-2", user.RoleAdmin, nil), task.CreateTaskRequest{Title: "For team two"})
	require.NoError(t, err)

	adminID := "admin-1"
	mine, err := service.MyTasks(authedContext(t, "emp-1", user.RoleEmployee, &adminID))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "For team one", mine[0].Title)
}
