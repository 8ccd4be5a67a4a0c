package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studentsdemo/internal/catalog"
	"studentsdemo/internal/service"
)

// Dependencies are the collaborators the routes are bound to.
type Dependencies struct {
	Runner   catalog.Runner
	Students service.StudentService
	Exports  service.ExportService
	Health   Pinger
	// Metrics is served on /metrics when set.
	Metrics prometheus.Gatherer
	// StaticDir holds the UI; "/" serves its index.html. Empty disables static serving.
	StaticDir string
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parsing and status mapping only.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.Health))
	app.Get("/healthz", LivenessProbe())
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	api.Get("/operations", ListOperations())
	api.Post("/run/:operation", RunOperation(deps.Runner))
	api.Post("/run-all", RunAll(deps.Runner))

	api.Get("/stats", Stats(deps.Students))
	api.Get("/students", ListStudents(deps.Students))
	api.Post("/students", CreateStudent(deps.Students))
	api.Delete("/students", DeleteAllStudents(deps.Students))
	api.Post("/students/search", SearchStudents(deps.Students))
	api.Post("/students/export", ExportStudents(deps.Exports))
	api.Put("/students/:id", UpdateStudent(deps.Students))
	api.Delete("/students/:id", DeleteStudent(deps.Students))

	if deps.StaticDir != "" {
		app.Static("/", deps.StaticDir, fiber.Static{Index: "index.html"})
	}
}
