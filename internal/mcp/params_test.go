package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/orders"
	"github.com/elrammalachi-lab/booze-bags/internal/domain/renewal"
	"github.com/elrammalachi-lab/booze-bags/internal/store"
)

func TestProjectFromParamsDefaultsStage(t *testing.T) {
	p := projectFromParams(ProjectParams{Name: "New"})
	require.Equal(t, renewal.StageInitiation, p.Stage)

	p = projectFromParams(ProjectParams{Name: "New", Stage: "construction"})
	require.Equal(t, renewal.StageConstruction, p.Stage)
}

func TestTenantFromParamsDefaultsAgreement(t *testing.T) {
	tn := tenantFromParams(TenantParams{Name: "Cohen", ProjectID: "p1"})
	require.Equal(t, renewal.AgreementWaiting, tn.AgreementStatus)
}

func TestTaskFromParamsDefaults(t *testing.T) {
	task := taskFromParams(TaskParams{Title: "Do it", ProjectID: "p1"})
	require.Equal(t, renewal.TaskOpen, task.Status)
	require.Equal(t, renewal.PriorityMedium, task.Priority)
}

func TestOrderFromParamsDefaultsStatus(t *testing.T) {
	o := orderFromParams(OrderParams{CustomerName: "Dana"})
	require.Equal(t, orders.StatusOpen, o.Status)

	o = orderFromParams(OrderParams{CustomerName: "Dana", Status: "closed"})
	require.Equal(t, orders.StatusClosed, o.Status)
}

func TestDescribeNotFound(t *testing.T) {
	err := describeNotFound(store.ErrNotFound, "project", "p1")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Contains(t, err.Error(), `project "p1"`)

	other := describeNotFound(store.ErrInvalidInput, "project", "p1")
	require.ErrorIs(t, other, store.ErrInvalidInput)
}
