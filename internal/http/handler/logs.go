package handler

import (
	"github.com/gofiber/fiber/v2"

	"brokerdesk/internal/store"
)

type createLogRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ListLogs godoc
// @Summary List the audit trail, oldest first
// @Tags logs
// @Success 200 {object} listResponse[model.LogEntry]
// @Router /logs [get]
func ListLogs(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return list(c, s.Logs())
	}
}

// ListTodayLogs godoc
// @Summary List audit entries from the current local day
// @Tags logs
// @Success 200 {object} listResponse[model.LogEntry]
// @Router /logs/today [get]
func ListTodayLogs(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return list(c, s.TodayLogs())
	}
}

// CreateLog godoc
// @Summary Append an audit entry
// @Tags logs
// @Accept json
// @Param body body createLogRequest true "entry"
// @Success 201 {object} model.LogEntry
// @Router /logs [post]
func CreateLog(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createLogRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		return c.Status(fiber.StatusCreated).JSON(s.AddLog(req.Type, req.Message, req.Data))
	}
}
