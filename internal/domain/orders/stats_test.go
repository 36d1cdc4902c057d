package orders_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/orders"
)

func TestOrderDerivedValues(t *testing.T) {
	o := orders.Order{PackagePrice: 1200, Extras: 300, ProductionCost: 500}
	require.Equal(t, 1500.0, o.Revenue())
	require.Equal(t, 1000.0, o.Profit())
}

func TestMonthKey(t *testing.T) {
	require.Equal(t, "2026-03", orders.Order{EventDate: "2026-03-15"}.MonthKey())
	require.Equal(t, "", orders.Order{}.MonthKey())
}

func TestMarginPercent(t *testing.T) {
	require.Equal(t, 0, orders.MarginPercent(0, 0))
	require.Equal(t, 0, orders.MarginPercent(500, 0))
	require.Equal(t, 50, orders.MarginPercent(500, 1000))
	require.Equal(t, 67, orders.MarginPercent(1000, 1500))
	require.Equal(t, -20, orders.MarginPercent(-200, 1000))
}

func TestRollupAdditivity(t *testing.T) {
	list := []orders.Order{
		{PackagePrice: 1000, Extras: 200, ProductionCost: 400, BagCount: 30},
		{PackagePrice: 800, ProductionCost: 900, BagCount: 20},
		{PackagePrice: 0, Extras: 0, ProductionCost: 0},
	}

	rollup := orders.ComputeRollup(list)
	require.Equal(t, 3, rollup.Orders)
	require.Equal(t, 2000.0, rollup.Revenue)
	require.Equal(t, 50, rollup.Bags)

	// sum(revenue) - sum(cost) == sum(profit)
	cost := 0.0
	for _, o := range list {
		cost += o.ProductionCost
	}
	require.Equal(t, rollup.Revenue-cost, rollup.Profit)
}

func TestRollupEmptySetHasZeroMargin(t *testing.T) {
	rollup := orders.ComputeRollup(nil)
	require.Zero(t, rollup.MarginPercent)
	require.Zero(t, rollup.Revenue)

	zeroRevenue := orders.ComputeRollup([]orders.Order{{ProductionCost: 100}})
	require.Zero(t, zeroRevenue.MarginPercent)
}

func TestComputeMonthly(t *testing.T) {
	list := []orders.Order{
		{ID: "a", EventDate: "2026-03-15", PackagePrice: 1000, ProductionCost: 400, BagCount: 10},
		{ID: "b", EventDate: "2026-03-02", PackagePrice: 500, BagCount: 5},
		{ID: "c", EventDate: "2026-01-20", PackagePrice: 300, ProductionCost: 100, BagCount: 3},
		{ID: "nodate", PackagePrice: 9999},
	}

	breakdown := orders.ComputeMonthly(list)

	// Most recent month first; dateless orders excluded everywhere.
	require.Len(t, breakdown.Months, 2)
	require.Equal(t, "2026-03", breakdown.Months[0].Month)
	require.Equal(t, "2026-01", breakdown.Months[1].Month)

	grouped := 0
	for _, m := range breakdown.Months {
		grouped += m.Rollup.Orders
		for _, o := range m.Orders {
			require.NotEqual(t, "nodate", o.ID)
		}
	}
	require.Equal(t, 3, grouped)
	require.Equal(t, 3, breakdown.Totals.Orders)

	// Orders within a month are ascending by event date.
	march := breakdown.Months[0]
	require.Equal(t, "b", march.Orders[0].ID)
	require.Equal(t, "a", march.Orders[1].ID)
	require.Equal(t, 1500.0, march.Rollup.Revenue)
	require.Equal(t, 1100.0, march.Rollup.Profit)
	require.Equal(t, 15, march.Rollup.Bags)

	require.Equal(t, 1800.0, breakdown.Totals.Revenue)
	require.Equal(t, 1300.0, breakdown.Totals.Profit)
	require.Equal(t, 72, breakdown.Totals.MarginPercent)
}

func TestComputeMonthlyEmpty(t *testing.T) {
	breakdown := orders.ComputeMonthly(nil)
	require.Empty(t, breakdown.Months)
	require.Zero(t, breakdown.Totals.MarginPercent)
}

func TestStatusTallyIncludesZeroCounts(t *testing.T) {
	list := []orders.Order{
		{Status: orders.StatusOpen},
		{Status: orders.StatusOpen},
		{Status: orders.StatusClosed},
	}

	tally := orders.StatusTally(list)
	require.Len(t, tally, len(orders.Statuses))

	total := 0
	counts := make(map[orders.Status]int)
	for _, entry := range tally {
		counts[entry.Status] = entry.Count
		total += entry.Count
	}
	require.Equal(t, len(list), total)
	require.Equal(t, 2, counts[orders.StatusOpen])
	require.Equal(t, 0, counts[orders.StatusInProgress])
	require.Equal(t, 1, counts[orders.StatusClosed])
}

func TestMonthOptionsDistinctDescending(t *testing.T) {
	list := []orders.Order{
		{EventDate: "2026-01-05"},
		{EventDate: "2026-03-15"},
		{EventDate: "2026-03-20"},
		{EventDate: ""},
	}
	require.Equal(t, []string{"2026-03", "2026-01"}, orders.MonthOptions(list))
}

func TestUpcomingEventsWindowAndCap(t *testing.T) {
	today := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	list := []orders.Order{
		{ID: "past", EventDate: "2026-02-28"},
		{ID: "today", EventDate: "2026-03-01"},
		{ID: "edge", EventDate: "2026-04-30"}, // exactly 60 days out
		{ID: "beyond", EventDate: "2026-05-01"},
		{ID: "nodate"},
	}

	upcoming := orders.UpcomingEvents(list, today)
	require.Len(t, upcoming, 2)
	require.Equal(t, "today", upcoming[0].ID)
	require.Equal(t, "edge", upcoming[1].ID)
}

func TestUpcomingEventsCappedAtFive(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var list []orders.Order
	for i := 8; i >= 2; i-- {
		list = append(list, orders.Order{
			ID:        fmt.Sprintf("o%d", i),
			EventDate: fmt.Sprintf("2026-03-%02d", i),
		})
	}

	upcoming := orders.UpcomingEvents(list, today)
	require.Len(t, upcoming, 5)
	require.Equal(t, "o2", upcoming[0].ID)
	require.Equal(t, "o6", upcoming[4].ID)
}
