package orders

import (
	"sort"
	"time"
)

// Rollup aggregates money and volume over a set of orders.
type Rollup struct {
	Orders        int     `json:"orders"`
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	Bags          int     `json:"bags"`
	MarginPercent int     `json:"margin_percent"`
}

// MonthGroup is one month's bucket of the monthly breakdown.
type MonthGroup struct {
	Month  string  `json:"month"`
	Rollup Rollup  `json:"rollup"`
	Orders []Order `json:"orders"`
}

// MonthlyBreakdown is the full monthly statistics view.
type MonthlyBreakdown struct {
	Totals Rollup       `json:"totals"`
	Months []MonthGroup `json:"months"`
}

// StatusCount is one entry of the status tally.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}

const (
	upcomingWindowDays = 60
	upcomingEventLimit = 5
)

// ComputeRollup sums revenue, profit and bag counts over the given orders.
func ComputeRollup(list []Order) Rollup {
	r := Rollup{Orders: len(list)}
	for _, o := range list {
		r.Revenue += o.Revenue()
		r.Profit += o.Profit()
		r.Bags += o.BagCount
	}
	r.MarginPercent = MarginPercent(r.Profit, r.Revenue)
	return r
}

// StatusTally counts orders per status. Every status appears, zero counts included.
func StatusTally(list []Order) []StatusCount {
	counts := make([]StatusCount, 0, len(Statuses))
	for _, status := range Statuses {
		n := 0
		for _, o := range list {
			if o.Status == status {
				n++
			}
		}
		counts = append(counts, StatusCount{Status: status, Count: n})
	}
	return counts
}

// ComputeMonthly partitions orders by event month, most recent month first.
// Orders without an event date are excluded. Within a group, orders are
// ascending by event date.
func ComputeMonthly(list []Order) MonthlyBreakdown {
	groups := make(map[string][]Order)
	for _, o := range list {
		key := o.MonthKey()
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], o)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	breakdown := MonthlyBreakdown{Months: make([]MonthGroup, 0, len(keys))}
	for _, key := range keys {
		monthOrders := groups[key]
		sort.SliceStable(monthOrders, func(i, j int) bool {
			return monthOrders[i].EventDate < monthOrders[j].EventDate
		})
		rollup := ComputeRollup(monthOrders)
		breakdown.Months = append(breakdown.Months, MonthGroup{
			Month:  key,
			Rollup: rollup,
			Orders: monthOrders,
		})
		breakdown.Totals.Orders += rollup.Orders
		breakdown.Totals.Revenue += rollup.Revenue
		breakdown.Totals.Profit += rollup.Profit
		breakdown.Totals.Bags += rollup.Bags
	}
	breakdown.Totals.MarginPercent = MarginPercent(breakdown.Totals.Profit, breakdown.Totals.Revenue)
	return breakdown
}

// MonthOptions returns the distinct event months present, most recent first.
func MonthOptions(list []Order) []string {
	seen := make(map[string]bool)
	for _, o := range list {
		if key := o.MonthKey(); key != "" {
			seen[key] = true
		}
	}
	months := make([]string, 0, len(seen))
	for key := range seen {
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// UpcomingEvents returns orders whose event date falls within the next 60 days
// inclusive of today, ascending by event date, truncated to the first 5.
func UpcomingEvents(list []Order, today time.Time) []Order {
	from := today.Format("2006-01-02")
	to := today.AddDate(0, 0, upcomingWindowDays).Format("2006-01-02")

	upcoming := make([]Order, 0, upcomingEventLimit)
	for _, o := range list {
		if o.EventDate == "" || o.EventDate < from || o.EventDate > to {
			continue
		}
		upcoming = append(upcoming, o)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].EventDate < upcoming[j].EventDate
	})
	if len(upcoming) > upcomingEventLimit {
		upcoming = upcoming[:upcomingEventLimit]
	}
	return upcoming
}
