package orders_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/orders"
)

var filterOrders = []orders.Order{
	{ID: "o1", CustomerName: "Dana Levi", Phone: "054-1111111", EventDate: "2026-03-15", EventType: "wedding", Status: orders.StatusOpen},
	{ID: "o2", CustomerName: "Yossi Cohen", Phone: "052-2222222", EventDate: "2026-03-20", EventType: "bar mitzvah", Status: orders.StatusClosed, Notes: "pickup only"},
	{ID: "o3", CustomerName: "Rina Mizrahi", Phone: "050-3333333", EventDate: "2026-04-02", EventType: "wedding", Status: orders.StatusOpen},
}

func TestApplyMonthFilter(t *testing.T) {
	matched := orders.Apply(filterOrders, orders.Filter{Month: "2026-03"})
	require.Len(t, matched, 2)
	require.Equal(t, "o1", matched[0].ID)
	require.Equal(t, "o2", matched[1].ID)
}

func TestApplyCombinedFiltersAreANDed(t *testing.T) {
	matched := orders.Apply(filterOrders, orders.Filter{Month: "2026-03", Status: orders.StatusOpen})
	require.Len(t, matched, 1)
	require.Equal(t, "o1", matched[0].ID)
}

func TestApplyQueryIsCaseInsensitiveAcrossFields(t *testing.T) {
	byName := orders.Apply(filterOrders, orders.Filter{Query: "DANA"})
	require.Len(t, byName, 1)
	require.Equal(t, "o1", byName[0].ID)

	byType := orders.Apply(filterOrders, orders.Filter{Query: "wedding"})
	require.Len(t, byType, 2)

	byNotes := orders.Apply(filterOrders, orders.Filter{Query: "pickup"})
	require.Len(t, byNotes, 1)
	require.Equal(t, "o2", byNotes[0].ID)
}

func TestApplyNoMatchReturnsEmpty(t *testing.T) {
	matched := orders.Apply(filterOrders, orders.Filter{Query: "nothing here"})
	require.NotNil(t, matched)
	require.Empty(t, matched)
}

func TestApplyZeroFilterReturnsAllInOrder(t *testing.T) {
	require.Equal(t, filterOrders, orders.Apply(filterOrders, orders.Filter{}))
}
