package mcp

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/orders"
	"github.com/elrammalachi-lab/booze-bags/internal/store"
)

// OrderParams carries the full order form.
type OrderParams struct {
	ID             string  `json:"id,omitempty" jsonschema:"order ID (required for update, omit on create)"`
	CustomerName   string  `json:"customer_name" jsonschema:"customer name"`
	Phone          string  `json:"phone,omitempty" jsonschema:"phone number"`
	EventDate      string  `json:"event_date,omitempty" jsonschema:"event date, YYYY-MM-DD"`
	EventType      string  `json:"event_type,omitempty" jsonschema:"event type"`
	BagCount       int     `json:"bag_count,omitempty" jsonschema:"number of cocktail bags"`
	PackagePrice   float64 `json:"package_price,omitempty" jsonschema:"package price"`
	Extras         float64 `json:"extras,omitempty" jsonschema:"extras amount"`
	ProductionCost float64 `json:"production_cost,omitempty" jsonschema:"production cost"`
	Status         string  `json:"status,omitempty" jsonschema:"order status (open, in-progress, closed)"`
	Notes          string  `json:"notes,omitempty" jsonschema:"free-text notes"`
}

// ListOrdersParams filters the order listing.
type ListOrdersParams struct {
	Month  string `json:"month,omitempty" jsonschema:"filter by event month, YYYY-MM"`
	Status string `json:"status,omitempty" jsonschema:"filter by order status"`
	Query  string `json:"query,omitempty" jsonschema:"case-insensitive search over customer name, phone, event type and notes"`
}

// OrderView pairs an order with its derived money values.
type OrderView struct {
	Order   orders.Order `json:"order"`
	Revenue float64      `json:"revenue"`
	Profit  float64      `json:"profit"`
}

// ListOrdersResult is the filtered order listing with its rollup.
type ListOrdersResult struct {
	Total        int           `json:"total" jsonschema:"unfiltered order count"`
	Orders       []OrderView   `json:"orders" jsonschema:"matching orders in store order"`
	Rollup       orders.Rollup `json:"rollup" jsonschema:"totals over the matching orders"`
	MonthOptions []string      `json:"month_options" jsonschema:"distinct event months across all orders, most recent first"`
}

// OrdersOverview is the order tracker's dashboard view.
type OrdersOverview struct {
	StatusCounts   []orders.StatusCount `json:"status_counts"`
	Rollup         orders.Rollup        `json:"rollup" jsonschema:"totals over all orders"`
	UpcomingEvents []orders.Order       `json:"upcoming_events" jsonschema:"events within the next 60 days, at most 5"`
}

// MonthlyStatsParams has no fields; stats are derived from the whole store.
type MonthlyStatsParams struct{}

// OverviewParams has no fields.
type OverviewParams struct{}

func registerOrderTools(server *sdkmcp.Server, cfg Config) {
	st := cfg.Orders

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_order",
		Description: "Create a cocktail-bag order",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in OrderParams) (*sdkmcp.CallToolResult, orders.Order, error) {
		if strings.TrimSpace(in.CustomerName) == "" {
			return nil, orders.Order{}, fmt.Errorf("%w: customer_name is required", store.ErrInvalidInput)
		}
		return nil, st.Create(ctx, orderFromParams(in)), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_order",
		Description: "Update an order in place; identity and creation time are preserved",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in OrderParams) (*sdkmcp.CallToolResult, orders.Order, error) {
		if in.ID == "" || strings.TrimSpace(in.CustomerName) == "" {
			return nil, orders.Order{}, fmt.Errorf("%w: id and customer_name are required", store.ErrInvalidInput)
		}
		order, err := st.Update(ctx, orderFromParams(in))
		if err != nil {
			return nil, orders.Order{}, describeNotFound(err, "order", in.ID)
		}
		return nil, order, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_order",
		Description: "Delete an order; unknown IDs are a no-op",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
		return nil, DeleteResult{Deleted: st.Delete(ctx, in.ID)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_orders",
		Description: "List orders with derived revenue and profit, filtered by month, status and free text",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListOrdersParams) (*sdkmcp.CallToolResult, ListOrdersResult, error) {
		all := st.Snapshot()
		matched := orders.Apply(all, orders.Filter{
			Month:  in.Month,
			Status: orders.Status(in.Status),
			Query:  in.Query,
		})
		views := make([]OrderView, 0, len(matched))
		for _, o := range matched {
			views = append(views, OrderView{Order: o, Revenue: o.Revenue(), Profit: o.Profit()})
		}
		return nil, ListOrdersResult{
			Total:        len(all),
			Orders:       views,
			Rollup:       orders.ComputeRollup(matched),
			MonthOptions: orders.MonthOptions(all),
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_monthly_stats",
		Description: "Get per-month revenue, profit and bag rollups, most recent month first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ MonthlyStatsParams) (*sdkmcp.CallToolResult, orders.MonthlyBreakdown, error) {
		return nil, st.Monthly(), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_orders_overview",
		Description: "Get order status counts, overall totals and upcoming events",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ OverviewParams) (*sdkmcp.CallToolResult, OrdersOverview, error) {
		all := st.Snapshot()
		return nil, OrdersOverview{
			StatusCounts:   orders.StatusTally(all),
			Rollup:         orders.ComputeRollup(all),
			UpcomingEvents: orders.UpcomingEvents(all, cfg.Now()),
		}, nil
	})
}

func orderFromParams(in OrderParams) orders.Order {
	status := orders.Status(in.Status)
	if status == "" {
		status = orders.StatusOpen
	}
	return orders.Order{
		ID:             in.ID,
		CustomerName:   in.CustomerName,
		Phone:          in.Phone,
		EventDate:      in.EventDate,
		EventType:      in.EventType,
		BagCount:       in.BagCount,
		PackagePrice:   in.PackagePrice,
		Extras:         in.Extras,
		ProductionCost: in.ProductionCost,
		Status:         status,
		Notes:          in.Notes,
	}
}
