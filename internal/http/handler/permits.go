package handler

import (
	"github.com/gofiber/fiber/v2"

	"brokerdesk/internal/model"
	"brokerdesk/internal/store"
)

// ListPermits godoc
// @Summary List every permit
// @Tags permits
// @Success 200 {object} listResponse[model.Permit]
// @Router /permits [get]
func ListPermits(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return list(c, s.Permits())
	}
}

// ListPendingPermits godoc
// @Summary List permits that are pending or in review
// @Tags permits
// @Success 200 {object} listResponse[model.Permit]
// @Router /permits/pending [get]
func ListPendingPermits(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return list(c, s.PendingPermits())
	}
}

// CreatePermit godoc
// @Summary Create a pending permit
// @Tags permits
// @Accept json
// @Param body body model.PermitInput true "permit fields"
// @Success 201 {object} model.Permit
// @Router /permits [post]
func CreatePermit(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.PermitInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		return c.Status(fiber.StatusCreated).JSON(s.AddPermit(in))
	}
}

// GetPermit godoc
// @Summary Get a permit
// @Tags permits
// @Param id path string true "permit id"
// @Success 200 {object} model.Permit
// @Failure 404 {object} errorPayload
// @Router /permits/{id} [get]
func GetPermit(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		p, found := s.Permit(id)
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "permit not found")
		}
		return c.JSON(p)
	}
}

// UpdatePermit godoc
// @Summary Shallow-merge fields into a permit
// @Tags permits
// @Accept json
// @Param id path string true "permit id"
// @Param body body model.PermitPatch true "fields to overwrite"
// @Success 200 {object} model.Permit
// @Failure 404 {object} errorPayload
// @Router /permits/{id} [patch]
func UpdatePermit(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		var patch model.PermitPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, found := s.UpdatePermit(id, patch)
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "permit not found")
		}
		return c.JSON(p)
	}
}
