package orders

import (
	"math"
	"time"
)

// Status represents the workflow state of an order.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusClosed     Status = "closed"
)

// Statuses lists all order statuses in workflow order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusClosed}

// Order is a cocktail-bag event order. EventDate is a YYYY-MM-DD string;
// empty means the event is not scheduled yet. Monetary fields mirror the
// persisted JSON numbers.
type Order struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	Phone          string    `json:"phone"`
	EventDate      string    `json:"eventDate"`
	EventType      string    `json:"eventType"`
	BagCount       int       `json:"bagCount"`
	PackagePrice   float64   `json:"packagePrice"`
	Extras         float64   `json:"extras"`
	ProductionCost float64   `json:"productionCost"`
	Status         Status    `json:"status"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Revenue is the package price plus extras. Derived, never stored.
func (o Order) Revenue() float64 {
	return o.PackagePrice + o.Extras
}

// Profit is revenue minus production cost. Derived, never stored.
func (o Order) Profit() float64 {
	return o.Revenue() - o.ProductionCost
}

// MonthKey is the year-month bucket key of the event date, or "" when the
// order has no event date.
func (o Order) MonthKey() string {
	if len(o.EventDate) < 7 {
		return ""
	}
	return o.EventDate[:7]
}

// MarginPercent returns round(profit/revenue*100), or 0 when revenue is 0.
func MarginPercent(profit, revenue float64) int {
	if revenue == 0 {
		return 0
	}
	return int(math.Round(profit / revenue * 100))
}
