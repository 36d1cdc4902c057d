// Package mcp exposes both trackers as MCP tools.
package mcp

import (
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/elrammalachi-lab/booze-bags/internal/store"
)

const serverInstructions = `booze-bags tracks two independent ledgers: urban-renewal
construction projects (with nested tenants and tasks) and cocktail-bag event orders.

Renewal tools: create/update/delete projects, tenants and tasks; list_projects
supports stage/type/free-text filters; get_project returns the full detail view;
get_dashboard returns KPIs, the stage breakdown, tenant agreement stats and
upcoming tasks.

Order tools: create/update/delete orders; list_orders supports month/status/
free-text filters and returns revenue and profit rollups; get_monthly_stats groups
orders by event month; get_orders_overview returns status counts and upcoming events.

Deleting a project also deletes its tenants and tasks. All state is kept locally;
there is no authentication.`

// Config contains server dependencies.
type Config struct {
	Renewal *store.RenewalStore
	Orders  *store.OrderStore
	Logger  *slog.Logger

	// Now overrides the clock used for due-date and upcoming-window views.
	Now func() time.Time
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "booze-bags",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerRenewalTools(server, cfg)
	registerOrderTools(server, cfg)

	return server
}
