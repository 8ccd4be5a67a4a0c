package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"studentsdemo/internal/catalog"
)

// timestampLayout matches JavaScript's Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// OperationsResponse lists the catalog.
type OperationsResponse struct {
	Operations []string `json:"operations"`
}

// RunResponse is the body of a successful single-operation run.
type RunResponse struct {
	Success   bool   `json:"success"`
	Operation string `json:"operation"`
	Result    any    `json:"result"`
	Timestamp string `json:"timestamp"`
}

// RunFailure is the body of a failed single-operation run.
type RunFailure struct {
	Success   bool   `json:"success"`
	Operation string `json:"operation"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// RunAllResponse is the body of a run-all batch.
type RunAllResponse struct {
	Success         bool             `json:"success"`
	TotalOperations int              `json:"totalOperations"`
	Results         []catalog.Result `json:"results"`
	SetupError      string           `json:"setupError,omitempty"`
}

// ListOperations godoc
// @Summary List catalog operations
// @Tags operations
// @Produce json
// @Success 200 {object} OperationsResponse
// @Router /api/operations [get]
func ListOperations() fiber.Handler {
	names := catalog.Names()
	return func(c *fiber.Ctx) error {
		return c.JSON(OperationsResponse{Operations: names})
	}
}

// RunOperation godoc
// @Summary Run one catalog operation
// @Tags operations
// @Produce json
// @Param operation path string true "Operation name"
// @Success 200 {object} RunResponse
// @Failure 404 {object} errorPayload
// @Failure 500 {object} RunFailure
// @Router /api/run/{operation} [post]
func RunOperation(runner catalog.Runner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("operation")
		op, ok := catalog.Parse(name)
		if !ok {
			return writeError(c, fiber.StatusNotFound, "OPERATION_NOT_FOUND", "Operation not found")
		}

		res, err := runner.Run(c.UserContext(), op)
		ts := time.Now().UTC().Format(timestampLayout)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(RunFailure{
				Success:   false,
				Operation: name,
				Error:     err.Error(),
				Code:      "INTERNAL_ERROR",
				RequestID: requestIDFromCtx(c),
				Timestamp: ts,
			})
		}
		return c.JSON(RunResponse{Success: true, Operation: name, Result: res, Timestamp: ts})
	}
}

// RunAll godoc
// @Summary Run every catalog operation in order
// @Description Always returns one entry per operation; a failing operation does not stop the rest.
// @Tags operations
// @Produce json
// @Success 200 {object} RunAllResponse
// @Router /api/run-all [post]
func RunAll(runner catalog.Runner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rep := runner.RunAll(c.UserContext())
		return c.JSON(RunAllResponse{
			Success:         true,
			TotalOperations: len(rep.Results),
			Results:         rep.Results,
			SetupError:      rep.SetupError,
		})
	}
}
