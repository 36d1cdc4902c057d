package renewal

import "time"

// Stage represents a project's position in the renewal pipeline.
type Stage string

const (
	StageInitiation   Stage = "initiation"
	StagePlanning     Stage = "planning"
	StagePermits      Stage = "permits"
	StageConstruction Stage = "construction"
	StageCompletion   Stage = "completion"
)

// Stages lists all project stages in pipeline order.
var Stages = []Stage{StageInitiation, StagePlanning, StagePermits, StageConstruction, StageCompletion}

// AgreementStatus represents a tenant's position in agreement negotiations.
type AgreementStatus string

const (
	AgreementWaiting     AgreementStatus = "waiting"
	AgreementNegotiating AgreementStatus = "negotiating"
	AgreementSigned      AgreementStatus = "signed"
	AgreementRefused     AgreementStatus = "refused"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in-progress"
	TaskDone       TaskStatus = "done"
)

// Priority represents task urgency, highest first.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Project is an urban-renewal construction project.
// Calendar dates are YYYY-MM-DD strings; empty means unset.
type Project struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	Type            string    `json:"type"`
	Stage           Stage     `json:"status"`
	StartDate       string    `json:"startDate"`
	ExpectedEndDate string    `json:"expectedEndDate"`
	TotalUnits      int       `json:"totalUnits"`
	NewUnits        int       `json:"newUnits"`
	Floors          int       `json:"floors"`
	Developer       string    `json:"developer"`
	Contractor      string    `json:"contractor"`
	Description     string    `json:"description"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Tenant is a resident of a project building.
type Tenant struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"projectId"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Apartment       string          `json:"apartment"`
	Floor           string          `json:"floor"`
	AgreementStatus AgreementStatus `json:"agreementStatus"`
	SignedDate      string          `json:"signedDate"`
	Notes           string          `json:"notes"`
}

// Task is a unit of work attached to a project.
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     string     `json:"dueDate"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"createdAt"`
}

var taskStatusRank = map[TaskStatus]int{
	TaskInProgress: 0,
	TaskOpen:       1,
	TaskDone:       2,
}

var priorityRank = map[Priority]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

var agreementRank = map[AgreementStatus]int{
	AgreementSigned:      0,
	AgreementNegotiating: 1,
	AgreementWaiting:     2,
	AgreementRefused:     3,
}
