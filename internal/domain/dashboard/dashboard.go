package dashboard

import (
	"context"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/task"
)

// AdminDashboardResponse aggregates the admin home view.
type AdminDashboardResponse struct {
	OpenPunches   int64                 `json:"open_punches"`
	PendingLeaves int64                 `json:"pending_leaves"`
	Employees     int64                 `json:"employees"`
	TaskStats     map[task.Status]int64 `json:"task_stats"`
}

// OverviewResponse aggregates platform-wide counts for the superadmin.
type OverviewResponse struct {
	Admins    int64 `json:"admins"`
	Employees int64 `json:"employees"`
	Leaves    int64 `json:"leaves"`
	Tasks     int64 `json:"tasks"`
}

type DashboardService interface {
	// AdminDashboard returns the calling admin's aggregates.
	AdminDashboard(ctx context.Context) (AdminDashboardResponse, error)

	// Overview returns platform-wide counts.
	Overview(ctx context.Context) (OverviewResponse, error)
}
