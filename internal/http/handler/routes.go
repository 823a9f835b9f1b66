package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"brokerdesk/internal/repository"
	"brokerdesk/internal/service"
	"brokerdesk/internal/store"
)

// Dependencies are the collaborators the routes are built from. Audit is nil
// when the audit sink is disabled.
type Dependencies struct {
	Store *store.Store
	Files service.FileService
	Audit repository.AuditRepository
}

// listResponse wraps every collection response.
type listResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func list[T any](c *fiber.Ctx, items []T) error {
	return c.JSON(listResponse[T]{Data: items, Total: len(items)})
}

// RegisterRoutes attaches every HTTP route to app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.Audit))
	app.Get("/healthz", LivenessProbe())

	tx := app.Group("/transactions")
	tx.Get("/", ListTransactions(deps.Store))
	tx.Get("/active", ListActiveTransactions(deps.Store))
	tx.Get("/completed", ListCompletedTransactions(deps.Store))
	tx.Post("/", CreateTransaction(deps.Store))
	tx.Get("/:id", GetTransaction(deps.Store))
	tx.Patch("/:id", UpdateTransaction(deps.Store))
	tx.Delete("/:id", DeleteTransaction(deps.Store))
	tx.Get("/:id/permits", ListTransactionPermits(deps.Store))

	files := app.Group("/files")
	files.Get("/", ListFiles(deps.Store))
	files.Post("/", RegisterFile(deps.Files))
	files.Post("/upload", UploadFile(deps.Files))
	files.Get("/:id", GetFile(deps.Store))
	files.Get("/:id/download", DownloadFile(deps.Files))
	files.Get("/:id/content", FileContent(deps.Files))
	files.Delete("/:id", DeleteFile(deps.Files))

	permits := app.Group("/permits")
	permits.Get("/", ListPermits(deps.Store))
	permits.Get("/pending", ListPendingPermits(deps.Store))
	permits.Post("/", CreatePermit(deps.Store))
	permits.Get("/:id", GetPermit(deps.Store))
	permits.Patch("/:id", UpdatePermit(deps.Store))

	logs := app.Group("/logs")
	logs.Get("/", ListLogs(deps.Store))
	logs.Get("/today", ListTodayLogs(deps.Store))
	logs.Post("/", CreateLog(deps.Store))

	app.Get("/audit/archive", ListAuditArchive(deps.Audit))
}

// pathID reads and validates the :id route parameter. ok is false once an
// error response has been written.
func pathID(c *fiber.Ctx) (string, bool, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	return id, true, nil
}

// HealthCheck godoc
// @Summary Readiness probe
// @Tags health
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(audit repository.AuditRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if audit != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := audit.Ping(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListAuditArchive godoc
// @Summary List audit entries mirrored to PostgreSQL
// @Tags logs
// @Param limit query int false "page size" default(50)
// @Param offset query int false "page offset" default(0)
// @Success 200 {object} repository.PageResult[model.LogEntry]
// @Failure 503 {object} errorPayload
// @Router /audit/archive [get]
func ListAuditArchive(audit repository.AuditRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if audit == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "AUDIT_SINK_DISABLED", "audit sink is not enabled")
		}
		limit, err := strconv.Atoi(c.Query("limit", "50"))
		if err != nil || limit <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil || offset < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := audit.List(c.UserContext(), repository.PageQuery{Limit: limit, Offset: offset})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
