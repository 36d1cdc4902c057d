package renewal_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/renewal"
)

func TestPercent(t *testing.T) {
	require.Equal(t, 0, renewal.Percent(0, 0))
	require.Equal(t, 0, renewal.Percent(5, 0))
	require.Equal(t, 50, renewal.Percent(1, 2))
	require.Equal(t, 33, renewal.Percent(1, 3))
	require.Equal(t, 67, renewal.Percent(2, 3))
	require.Equal(t, 100, renewal.Percent(3, 3))
}

func TestStageBreakdownIncludesZeroCounts(t *testing.T) {
	projects := []renewal.Project{
		{ID: "p1", Stage: renewal.StagePermits},
		{ID: "p2", Stage: renewal.StagePermits},
		{ID: "p3", Stage: renewal.StagePlanning},
	}

	breakdown := renewal.StageBreakdown(projects)
	require.Len(t, breakdown, len(renewal.Stages))

	counts := make(map[renewal.Stage]int)
	total := 0
	for _, entry := range breakdown {
		counts[entry.Stage] = entry.Count
		total += entry.Count
	}
	require.Equal(t, len(projects), total)
	require.Equal(t, 2, counts[renewal.StagePermits])
	require.Equal(t, 1, counts[renewal.StagePlanning])
	require.Equal(t, 0, counts[renewal.StageCompletion])
}

func TestStageBreakdownEmpty(t *testing.T) {
	breakdown := renewal.StageBreakdown(nil)
	require.Len(t, breakdown, len(renewal.Stages))
	for _, entry := range breakdown {
		require.Zero(t, entry.Count)
		require.Zero(t, entry.Percent)
	}
}

func TestGetTenantStats(t *testing.T) {
	tenants := []renewal.Tenant{
		{AgreementStatus: renewal.AgreementSigned},
		{AgreementStatus: renewal.AgreementSigned},
		{AgreementStatus: renewal.AgreementNegotiating},
		{AgreementStatus: renewal.AgreementWaiting},
		{AgreementStatus: renewal.AgreementRefused},
	}

	stats := renewal.GetTenantStats(tenants)
	require.Equal(t, renewal.TenantStats{
		Signed:      2,
		Negotiating: 1,
		Waiting:     1,
		Refused:     1,
		Total:       5,
	}, stats)
}

func TestUpcomingTasksSortedAndCapped(t *testing.T) {
	today := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	projects := []renewal.Project{{ID: "p1", Name: "Herzl 42"}}

	var tasks []renewal.Task
	for i := 9; i >= 1; i-- {
		tasks = append(tasks, renewal.Task{
			ID:        fmt.Sprintf("t%d", i),
			ProjectID: "p1",
			Status:    renewal.TaskOpen,
			DueDate:   fmt.Sprintf("2025-03-%02d", i),
		})
	}
	// Done and dateless tasks never show up.
	tasks = append(tasks,
		renewal.Task{ID: "done", ProjectID: "p1", Status: renewal.TaskDone, DueDate: "2025-03-01"},
		renewal.Task{ID: "nodate", ProjectID: "p1", Status: renewal.TaskOpen},
	)

	upcoming := renewal.UpcomingTasks(projects, tasks, today)
	require.Len(t, upcoming, 7)
	for i, u := range upcoming {
		require.Equal(t, fmt.Sprintf("t%d", i+1), u.Task.ID)
		require.Equal(t, "Herzl 42", u.ProjectName)
	}
}

func TestBuildDashboard(t *testing.T) {
	today := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	projects := []renewal.Project{
		{ID: "p1", Name: "A", Stage: renewal.StagePermits},
		{ID: "p2", Name: "B", Stage: renewal.StageCompletion},
	}
	tenants := []renewal.Tenant{
		{ID: "t1", ProjectID: "p1", AgreementStatus: renewal.AgreementSigned},
		{ID: "t2", ProjectID: "p1", AgreementStatus: renewal.AgreementWaiting},
	}
	tasks := []renewal.Task{
		{ID: "k1", ProjectID: "p1", Status: renewal.TaskOpen, Priority: renewal.PriorityUrgent, DueDate: "2025-02-25"},
		{ID: "k2", ProjectID: "p1", Status: renewal.TaskDone, Priority: renewal.PriorityUrgent},
		{ID: "k3", ProjectID: "p2", Status: renewal.TaskInProgress, Priority: renewal.PriorityLow},
	}

	dash := renewal.BuildDashboard(projects, tenants, tasks, today)

	require.Equal(t, 2, dash.TotalProjects)
	require.Equal(t, 1, dash.ActiveProjects)
	require.Equal(t, 2, dash.TotalTenants)
	require.Equal(t, 50, dash.SignedPercent)
	require.Equal(t, 2, dash.OpenTasks)
	require.Equal(t, 1, dash.UrgentTasks)

	// Only p1 has tenants, so only p1 appears in the agreement panel.
	require.Len(t, dash.Agreements, 1)
	require.Equal(t, "p1", dash.Agreements[0].ProjectID)
	require.Equal(t, 1, dash.Agreements[0].Stats.Signed)

	// Completed projects are excluded from the active rows.
	require.Len(t, dash.ActiveRows, 1)
	require.Equal(t, "p1", dash.ActiveRows[0].Project.ID)
	require.Equal(t, 2, dash.ActiveRows[0].TenantCount)
	require.Equal(t, 1, dash.ActiveRows[0].SignedTenants)
	require.Equal(t, 1, dash.ActiveRows[0].OpenTasks)
	require.Equal(t, 1, dash.ActiveRows[0].UrgentTasks)

	require.Len(t, dash.UpcomingTasks, 1)
	require.Equal(t, "k1", dash.UpcomingTasks[0].Task.ID)
	require.Equal(t, renewal.DueSoon, dash.UpcomingTasks[0].Due.Bucket)
}

func TestBuildDashboardEmpty(t *testing.T) {
	dash := renewal.BuildDashboard(nil, nil, nil, time.Now())
	require.Zero(t, dash.TotalProjects)
	require.Zero(t, dash.SignedPercent)
	require.Len(t, dash.StageBreakdown, len(renewal.Stages))
	require.Empty(t, dash.Agreements)
	require.Empty(t, dash.UpcomingTasks)
}
