package handler

import (
	"github.com/gofiber/fiber/v2"

	"brokerdesk/internal/model"
	"brokerdesk/internal/store"
)

// ListTransactions godoc
// @Summary List every transaction in insertion order
// @Tags transactions
// @Success 200 {object} listResponse[model.Transaction]
// @Router /transactions [get]
func ListTransactions(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return list(c, s.Transactions())
	}
}

// ListActiveTransactions godoc
// @Summary List transactions that are neither completed nor cancelled
// @Tags transactions
// @Success 200 {object} listResponse[model.Transaction]
// @Router /transactions/active [get]
func ListActiveTransactions(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return list(c, s.ActiveTransactions())
	}
}

// ListCompletedTransactions godoc
// @Summary List completed transactions
// @Tags transactions
// @Success 200 {object} listResponse[model.Transaction]
// @Router /transactions/completed [get]
func ListCompletedTransactions(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return list(c, s.CompletedTransactions())
	}
}

// CreateTransaction godoc
// @Summary Create a pending transaction
// @Tags transactions
// @Accept json
// @Param body body model.TransactionInput true "transaction fields"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} errorPayload
// @Router /transactions [post]
func CreateTransaction(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.TransactionInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		return c.Status(fiber.StatusCreated).JSON(s.AddTransaction(in))
	}
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Param id path string true "transaction id"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} errorPayload
// @Router /transactions/{id} [get]
func GetTransaction(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		t, found := s.Transaction(id)
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "transaction not found")
		}
		return c.JSON(t)
	}
}

// UpdateTransaction godoc
// @Summary Shallow-merge fields into a transaction
// @Tags transactions
// @Accept json
// @Param id path string true "transaction id"
// @Param body body model.TransactionPatch true "fields to overwrite"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} errorPayload
// @Router /transactions/{id} [patch]
func UpdateTransaction(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		var patch model.TransactionPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		t, found := s.UpdateTransaction(id, patch)
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "transaction not found")
		}
		return c.JSON(t)
	}
}

// DeleteTransaction godoc
// @Summary Delete a transaction; deleting an unknown id succeeds
// @Tags transactions
// @Param id path string true "transaction id"
// @Success 204
// @Router /transactions/{id} [delete]
func DeleteTransaction(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		s.DeleteTransaction(id)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListTransactionPermits godoc
// @Summary List permits referencing a transaction
// @Tags transactions
// @Param id path string true "transaction id"
// @Success 200 {object} listResponse[model.Permit]
// @Router /transactions/{id}/permits [get]
func ListTransactionPermits(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return list(c, s.PermitsForTransaction(c.Params("id")))
	}
}
