package renewal

import (
	"fmt"
	"math"
	"time"
)

// DueBucket classifies a due date relative to today.
type DueBucket string

const (
	DueNone    DueBucket = ""
	DueOverdue DueBucket = "overdue"
	DueToday   DueBucket = "today"
	DueSoon    DueBucket = "soon"
	DueNormal  DueBucket = "normal"
)

// DueInfo describes how urgent a due date is.
type DueInfo struct {
	Bucket   DueBucket `json:"bucket"`
	DiffDays int       `json:"diff_days"`
	Label    string    `json:"label"`
}

const dateLayout = "2006-01-02"

// ClassifyDue buckets a YYYY-MM-DD due date against today at day granularity.
// An empty or unparseable due date yields the neutral DueNone bucket.
func ClassifyDue(dueDate string, today time.Time) DueInfo {
	if dueDate == "" {
		return DueInfo{Bucket: DueNone}
	}
	due, err := time.ParseInLocation(dateLayout, dueDate, today.Location())
	if err != nil {
		return DueInfo{Bucket: DueNone}
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	// Round rather than truncate so DST-shortened days still count as whole days.
	diff := int(math.Round(due.Sub(midnight).Hours() / 24))

	switch {
	case diff < 0:
		return DueInfo{Bucket: DueOverdue, DiffDays: diff, Label: fmt.Sprintf("%d days late", -diff)}
	case diff == 0:
		return DueInfo{Bucket: DueToday, Label: "today"}
	case diff <= 7:
		return DueInfo{Bucket: DueSoon, DiffDays: diff, Label: fmt.Sprintf("%d days", diff)}
	default:
		return DueInfo{Bucket: DueNormal, DiffDays: diff, Label: due.Format("02/01")}
	}
}
