package renewal

import (
	"math"
	"sort"
	"time"
)

// StageCount is one entry of the stage breakdown.
type StageCount struct {
	Stage   Stage `json:"stage"`
	Count   int   `json:"count"`
	Percent int   `json:"percent"`
}

// TenantStats counts tenants per agreement status.
type TenantStats struct {
	Signed      int `json:"signed"`
	Negotiating int `json:"negotiating"`
	Waiting     int `json:"waiting"`
	Refused     int `json:"refused"`
	Total       int `json:"total"`
}

// ProjectAgreement pairs a project with its tenant agreement stats.
type ProjectAgreement struct {
	ProjectID   string      `json:"project_id"`
	ProjectName string      `json:"project_name"`
	Stats       TenantStats `json:"stats"`
}

// ProjectRow is a per-project summary line for listings.
type ProjectRow struct {
	Project       Project `json:"project"`
	TenantCount   int     `json:"tenant_count"`
	SignedTenants int     `json:"signed_tenants"`
	OpenTasks     int     `json:"open_tasks"`
	UrgentTasks   int     `json:"urgent_tasks"`
}

// UpcomingTask is a dashboard line for a task sorted by due date.
type UpcomingTask struct {
	Task        Task    `json:"task"`
	ProjectName string  `json:"project_name"`
	Due         DueInfo `json:"due"`
}

// Dashboard is the derived view backing the main screen.
type Dashboard struct {
	TotalProjects  int                `json:"total_projects"`
	ActiveProjects int                `json:"active_projects"`
	TotalTenants   int                `json:"total_tenants"`
	SignedPercent  int                `json:"signed_percent"`
	OpenTasks      int                `json:"open_tasks"`
	UrgentTasks    int                `json:"urgent_tasks"`
	StageBreakdown []StageCount       `json:"stage_breakdown"`
	Agreements     []ProjectAgreement `json:"agreements"`
	UpcomingTasks  []UpcomingTask     `json:"upcoming_tasks"`
	ActiveRows     []ProjectRow       `json:"active_rows"`
}

const upcomingTaskLimit = 7

// Percent returns round(part/total*100), or 0 when total is 0.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// GetTenantStats tallies tenants by agreement status.
func GetTenantStats(tenants []Tenant) TenantStats {
	stats := TenantStats{Total: len(tenants)}
	for _, t := range tenants {
		switch t.AgreementStatus {
		case AgreementSigned:
			stats.Signed++
		case AgreementNegotiating:
			stats.Negotiating++
		case AgreementWaiting:
			stats.Waiting++
		case AgreementRefused:
			stats.Refused++
		}
	}
	return stats
}

// StageBreakdown counts projects per stage. Every stage appears, zero counts included.
func StageBreakdown(projects []Project) []StageCount {
	counts := make([]StageCount, 0, len(Stages))
	for _, stage := range Stages {
		n := 0
		for _, p := range projects {
			if p.Stage == stage {
				n++
			}
		}
		counts = append(counts, StageCount{
			Stage:   stage,
			Count:   n,
			Percent: Percent(n, len(projects)),
		})
	}
	return counts
}

// ProjectRows builds per-project summary lines preserving input order.
func ProjectRows(projects []Project, tenants []Tenant, tasks []Task) []ProjectRow {
	rows := make([]ProjectRow, 0, len(projects))
	for _, p := range projects {
		row := ProjectRow{Project: p}
		for _, t := range tenants {
			if t.ProjectID != p.ID {
				continue
			}
			row.TenantCount++
			if t.AgreementStatus == AgreementSigned {
				row.SignedTenants++
			}
		}
		for _, t := range tasks {
			if t.ProjectID != p.ID || t.Status == TaskDone {
				continue
			}
			row.OpenTasks++
			if t.Priority == PriorityUrgent {
				row.UrgentTasks++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// UpcomingTasks returns open tasks that have a due date, ascending by due date,
// truncated to the dashboard limit.
func UpcomingTasks(projects []Project, tasks []Task, today time.Time) []UpcomingTask {
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	pending := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != TaskDone && t.DueDate != "" {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate < pending[j].DueDate
	})
	if len(pending) > upcomingTaskLimit {
		pending = pending[:upcomingTaskLimit]
	}

	upcoming := make([]UpcomingTask, 0, len(pending))
	for _, t := range pending {
		upcoming = append(upcoming, UpcomingTask{
			Task:        t,
			ProjectName: names[t.ProjectID],
			Due:         ClassifyDue(t.DueDate, today),
		})
	}
	return upcoming
}

// BuildDashboard derives the full dashboard view from the raw collections.
func BuildDashboard(projects []Project, tenants []Tenant, tasks []Task, today time.Time) Dashboard {
	dash := Dashboard{
		TotalProjects:  len(projects),
		TotalTenants:   len(tenants),
		StageBreakdown: StageBreakdown(projects),
		UpcomingTasks:  UpcomingTasks(projects, tasks, today),
	}

	active := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Stage != StageCompletion {
			active = append(active, p)
		}
	}
	dash.ActiveProjects = len(active)
	dash.ActiveRows = ProjectRows(active, tenants, tasks)

	signed := 0
	for _, t := range tenants {
		if t.AgreementStatus == AgreementSigned {
			signed++
		}
	}
	dash.SignedPercent = Percent(signed, len(tenants))

	for _, t := range tasks {
		if t.Status == TaskDone {
			continue
		}
		dash.OpenTasks++
		if t.Priority == PriorityUrgent {
			dash.UrgentTasks++
		}
	}

	// Projects without tenants are omitted from the agreement panel.
	for _, p := range projects {
		var pt []Tenant
		for _, t := range tenants {
			if t.ProjectID == p.ID {
				pt = append(pt, t)
			}
		}
		if len(pt) == 0 {
			continue
		}
		dash.Agreements = append(dash.Agreements, ProjectAgreement{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Stats:       GetTenantStats(pt),
		})
	}

	return dash
}
