package renewal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/renewal"
)

func TestClassifyDue(t *testing.T) {
	today := time.Date(2025, 2, 20, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dueDate  string
		bucket   renewal.DueBucket
		diffDays int
		label    string
	}{
		{name: "overdue", dueDate: "2025-02-10", bucket: renewal.DueOverdue, diffDays: -10, label: "10 days late"},
		{name: "due today", dueDate: "2025-02-20", bucket: renewal.DueToday, label: "today"},
		{name: "due soon", dueDate: "2025-02-25", bucket: renewal.DueSoon, diffDays: 5, label: "5 days"},
		{name: "soon boundary", dueDate: "2025-02-27", bucket: renewal.DueSoon, diffDays: 7, label: "7 days"},
		{name: "normal", dueDate: "2025-06-01", bucket: renewal.DueNormal, diffDays: 101, label: "01/06"},
		{name: "missing", dueDate: "", bucket: renewal.DueNone},
		{name: "unparseable", dueDate: "not-a-date", bucket: renewal.DueNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := renewal.ClassifyDue(tt.dueDate, today)
			require.Equal(t, tt.bucket, info.Bucket)
			require.Equal(t, tt.diffDays, info.DiffDays)
			require.Equal(t, tt.label, info.Label)
		})
	}
}

func TestClassifyDueIgnoresTimeOfDay(t *testing.T) {
	// Late in the evening a task due tomorrow is still one day away.
	today := time.Date(2025, 2, 20, 23, 59, 0, 0, time.UTC)
	info := renewal.ClassifyDue("2025-02-21", today)
	require.Equal(t, renewal.DueSoon, info.Bucket)
	require.Equal(t, 1, info.DiffDays)
}
