package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/renewal"
	"github.com/elrammalachi-lab/booze-bags/internal/store"
)

// ProjectParams carries the full project form.
type ProjectParams struct {
	ID              string `json:"id,omitempty" jsonschema:"project ID (required for update, omit on create)"`
	Name            string `json:"name" jsonschema:"project display name"`
	Address         string `json:"address,omitempty" jsonschema:"street address"`
	City            string `json:"city,omitempty" jsonschema:"city"`
	Type            string `json:"type,omitempty" jsonschema:"project type"`
	Stage           string `json:"stage,omitempty" jsonschema:"pipeline stage (initiation, planning, permits, construction, completion)"`
	StartDate       string `json:"start_date,omitempty" jsonschema:"start date, YYYY-MM-DD"`
	ExpectedEndDate string `json:"expected_end_date,omitempty" jsonschema:"expected end date, YYYY-MM-DD"`
	TotalUnits      int    `json:"total_units,omitempty" jsonschema:"existing housing units"`
	NewUnits        int    `json:"new_units,omitempty" jsonschema:"new housing units"`
	Floors          int    `json:"floors,omitempty" jsonschema:"floor count"`
	Developer       string `json:"developer,omitempty" jsonschema:"developer name"`
	Contractor      string `json:"contractor,omitempty" jsonschema:"contractor name"`
	Description     string `json:"description,omitempty" jsonschema:"free-text description"`
	Notes           string `json:"notes,omitempty" jsonschema:"free-text notes"`
}

// TenantParams carries the full tenant form.
type TenantParams struct {
	ID              string `json:"id,omitempty" jsonschema:"tenant ID (required for update, omit on create)"`
	ProjectID       string `json:"project_id,omitempty" jsonschema:"owning project ID (required on create)"`
	Name            string `json:"name" jsonschema:"tenant name"`
	Phone           string `json:"phone,omitempty" jsonschema:"phone number"`
	Email           string `json:"email,omitempty" jsonschema:"email address"`
	Apartment       string `json:"apartment,omitempty" jsonschema:"apartment identifier"`
	Floor           string `json:"floor,omitempty" jsonschema:"floor identifier"`
	AgreementStatus string `json:"agreement_status,omitempty" jsonschema:"agreement status (waiting, negotiating, signed, refused)"`
	SignedDate      string `json:"signed_date,omitempty" jsonschema:"agreement signed date, YYYY-MM-DD"`
	Notes           string `json:"notes,omitempty" jsonschema:"free-text notes"`
}

// TaskParams carries the full task form.
type TaskParams struct {
	ID          string `json:"id,omitempty" jsonschema:"task ID (required for update, omit on create)"`
	ProjectID   string `json:"project_id,omitempty" jsonschema:"owning project ID (required on create)"`
	Title       string `json:"title" jsonschema:"task title"`
	Description string `json:"description,omitempty" jsonschema:"free-text description"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"due date, YYYY-MM-DD"`
	Status      string `json:"status,omitempty" jsonschema:"task status (open, in-progress, done)"`
	Priority    string `json:"priority,omitempty" jsonschema:"priority (urgent, high, medium, low)"`
	Category    string `json:"category,omitempty" jsonschema:"task category"`
}

// DeleteParams identifies an entity to delete.
type DeleteParams struct {
	ID string `json:"id" jsonschema:"entity ID"`
}

// DeleteResult reports whether the delete removed anything.
type DeleteResult struct {
	Deleted bool `json:"deleted" jsonschema:"false when the ID did not exist"`
}

// ListProjectsParams filters the project listing.
type ListProjectsParams struct {
	Stage string `json:"stage,omitempty" jsonschema:"filter by pipeline stage"`
	Type  string `json:"type,omitempty" jsonschema:"filter by project type"`
	Query string `json:"query,omitempty" jsonschema:"case-insensitive search over name, address, city and developer"`
}

// ListProjectsResult is the filtered project listing with per-project stats.
type ListProjectsResult struct {
	Total    int                  `json:"total" jsonschema:"unfiltered project count"`
	Projects []renewal.ProjectRow `json:"projects" jsonschema:"matching projects in store order"`
}

// GetProjectParams selects the project detail view.
type GetProjectParams struct {
	ID           string `json:"id" jsonschema:"project ID"`
	TaskStatus   string `json:"task_status,omitempty" jsonschema:"filter tasks by status"`
	TaskCategory string `json:"task_category,omitempty" jsonschema:"filter tasks by category"`
}

// TaskView pairs a task with its due-date classification.
type TaskView struct {
	Task renewal.Task    `json:"task"`
	Due  renewal.DueInfo `json:"due"`
}

// ProjectDetail is the full single-project view.
type ProjectDetail struct {
	Project     renewal.Project     `json:"project"`
	Tenants     []renewal.Tenant    `json:"tenants" jsonschema:"tenants sorted by agreement status"`
	TenantStats renewal.TenantStats `json:"tenant_stats"`
	Tasks       []TaskView          `json:"tasks" jsonschema:"tasks sorted by status then priority"`
}

// DashboardParams has no fields; the dashboard is derived from the whole store.
type DashboardParams struct{}

func registerRenewalTools(server *sdkmcp.Server, cfg Config) {
	st := cfg.Renewal

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a renewal project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectParams) (*sdkmcp.CallToolResult, renewal.Project, error) {
		if strings.TrimSpace(in.Name) == "" {
			return nil, renewal.Project{}, fmt.Errorf("%w: name is required", store.ErrInvalidInput)
		}
		proj := st.CreateProject(ctx, projectFromParams(in))
		return nil, proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Update a renewal project in place; identity and creation time are preserved",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectParams) (*sdkmcp.CallToolResult, renewal.Project, error) {
		if in.ID == "" || strings.TrimSpace(in.Name) == "" {
			return nil, renewal.Project{}, fmt.Errorf("%w: id and name are required", store.ErrInvalidInput)
		}
		proj, err := st.UpdateProject(ctx, projectFromParams(in))
		if err != nil {
			return nil, renewal.Project{}, describeNotFound(err, "project", in.ID)
		}
		return nil, proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a renewal project together with all its tenants and tasks",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteParams) (*sdkmcp.CallToolResult, store.CascadeResult, error) {
		return nil, st.DeleteProject(ctx, in.ID), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List renewal projects with tenant and task stats, filtered by stage, type and free text",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
		projects, tenants, tasks := st.Snapshot()
		matched := renewal.FilterProjects(projects, renewal.ProjectFilter{
			Stage: renewal.Stage(in.Stage),
			Type:  in.Type,
			Query: in.Query,
		})
		return nil, ListProjectsResult{
			Total:    len(projects),
			Projects: renewal.ProjectRows(matched, tenants, tasks),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get the full detail view of one renewal project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetProjectParams) (*sdkmcp.CallToolResult, ProjectDetail, error) {
		proj, err := st.GetProject(in.ID)
		if err != nil {
			return nil, ProjectDetail{}, describeNotFound(err, "project", in.ID)
		}

		_, tenants, tasks := st.Snapshot()
		var projectTenants []renewal.Tenant
		for _, t := range tenants {
			if t.ProjectID == proj.ID {
				projectTenants = append(projectTenants, t)
			}
		}
		var projectTasks []renewal.Task
		for _, t := range tasks {
			if t.ProjectID == proj.ID {
				projectTasks = append(projectTasks, t)
			}
		}

		filtered := renewal.FilterTasks(projectTasks, renewal.TaskFilter{
			Status:   renewal.TaskStatus(in.TaskStatus),
			Category: in.TaskCategory,
		})
		today := cfg.Now()
		views := make([]TaskView, 0, len(filtered))
		for _, t := range renewal.SortTasks(filtered) {
			views = append(views, TaskView{Task: t, Due: renewal.ClassifyDue(t.DueDate, today)})
		}

		return nil, ProjectDetail{
			Project:     proj,
			Tenants:     renewal.SortTenants(projectTenants),
			TenantStats: renewal.GetTenantStats(projectTenants),
			Tasks:       views,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_tenant",
		Description: "Add a tenant to an existing project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in TenantParams) (*sdkmcp.CallToolResult, renewal.Tenant, error) {
		if strings.TrimSpace(in.Name) == "" || in.ProjectID == "" {
			return nil, renewal.Tenant{}, fmt.Errorf("%w: project_id and name are required", store.ErrInvalidInput)
		}
		tenant, err := st.CreateTenant(ctx, tenantFromParams(in))
		if err != nil {
			return nil, renewal.Tenant{}, describeNotFound(err, "project", in.ProjectID)
		}
		return nil, tenant, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_tenant",
		Description: "Update a tenant in place",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in TenantParams) (*sdkmcp.CallToolResult, renewal.Tenant, error) {
		if in.ID == "" || strings.TrimSpace(in.Name) == "" {
			return nil, renewal.Tenant{}, fmt.Errorf("%w: id and name are required", store.ErrInvalidInput)
		}
		tenant, err := st.UpdateTenant(ctx, tenantFromParams(in))
		if err != nil {
			return nil, renewal.Tenant{}, describeNotFound(err, "tenant", in.ID)
		}
		return nil, tenant, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_tenant",
		Description: "Delete a tenant; unknown IDs are a no-op",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
		return nil, DeleteResult{Deleted: st.DeleteTenant(ctx, in.ID)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_task",
		Description: "Add a task to an existing project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in TaskParams) (*sdkmcp.CallToolResult, renewal.Task, error) {
		if strings.TrimSpace(in.Title) == "" || in.ProjectID == "" {
			return nil, renewal.Task{}, fmt.Errorf("%w: project_id and title are required", store.ErrInvalidInput)
		}
		task, err := st.CreateTask(ctx, taskFromParams(in))
		if err != nil {
			return nil, renewal.Task{}, describeNotFound(err, "project", in.ProjectID)
		}
		return nil, task, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_task",
		Description: "Update a task in place; identity and creation time are preserved",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in TaskParams) (*sdkmcp.CallToolResult, renewal.Task, error) {
		if in.ID == "" || strings.TrimSpace(in.Title) == "" {
			return nil, renewal.Task{}, fmt.Errorf("%w: id and title are required", store.ErrInvalidInput)
		}
		task, err := st.UpdateTask(ctx, taskFromParams(in))
		if err != nil {
			return nil, renewal.Task{}, describeNotFound(err, "task", in.ID)
		}
		return nil, task, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task; unknown IDs are a no-op",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
		return nil, DeleteResult{Deleted: st.DeleteTask(ctx, in.ID)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard",
		Description: "Get the renewal dashboard: KPIs, stage breakdown, tenant agreements and upcoming tasks",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ DashboardParams) (*sdkmcp.CallToolResult, renewal.Dashboard, error) {
		return nil, st.Dashboard(cfg.Now()), nil
	})
}

func projectFromParams(in ProjectParams) renewal.Project {
	stage := renewal.Stage(in.Stage)
	if stage == "" {
		stage = renewal.StageInitiation
	}
	return renewal.Project{
		ID:              in.ID,
		Name:            in.Name,
		Address:         in.Address,
		City:            in.City,
		Type:            in.Type,
		Stage:           stage,
		StartDate:       in.StartDate,
		ExpectedEndDate: in.ExpectedEndDate,
		TotalUnits:      in.TotalUnits,
		NewUnits:        in.NewUnits,
		Floors:          in.Floors,
		Developer:       in.Developer,
		Contractor:      in.Contractor,
		Description:     in.Description,
		Notes:           in.Notes,
	}
}

func tenantFromParams(in TenantParams) renewal.Tenant {
	status := renewal.AgreementStatus(in.AgreementStatus)
	if status == "" {
		status = renewal.AgreementWaiting
	}
	return renewal.Tenant{
		ID:              in.ID,
		ProjectID:       in.ProjectID,
		Name:            in.Name,
		Phone:           in.Phone,
		Email:           in.Email,
		Apartment:       in.Apartment,
		Floor:           in.Floor,
		AgreementStatus: status,
		SignedDate:      in.SignedDate,
		Notes:           in.Notes,
	}
}

func taskFromParams(in TaskParams) renewal.Task {
	status := renewal.TaskStatus(in.Status)
	if status == "" {
		status = renewal.TaskOpen
	}
	priority := renewal.Priority(in.Priority)
	if priority == "" {
		priority = renewal.PriorityMedium
	}
	return renewal.Task{
		ID:          in.ID,
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      status,
		Priority:    priority,
		Category:    in.Category,
	}
}

func describeNotFound(err error, kind, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s %q: %w", kind, id, store.ErrNotFound)
	}
	return err
}
