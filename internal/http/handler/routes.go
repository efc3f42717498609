package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"friendgrid/internal/node"
	"friendgrid/internal/service"
)

// Dependencies are the collaborators the HTTP routes are built from.
// DB and Gatherer may be nil: health then reports only liveness and
// /metrics is not mounted.
type Dependencies struct {
	DB       *sql.DB
	Node     *node.FriendGrid
	Service  service.ExecutionService
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())
	if deps.Gatherer != nil {
		app.Get("/metrics", Metrics(deps.Gatherer))
	}

	app.Get("/node", DescribeNode(deps.Node))
	app.Post("/test", RunTest(deps.Service))

	app.Get("/executions", ListExecutions(deps.Service))
	app.Get("/executions/:id", GetExecution(deps.Service))
	app.Get("/executions/:id/data", ExecutionData(deps.Service))
}
