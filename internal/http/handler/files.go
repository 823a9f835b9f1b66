package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"brokerdesk/internal/model"
	"brokerdesk/internal/service"
	"brokerdesk/internal/store"
)

// writeFileError maps file service errors to responses.
func writeFileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
	case errors.Is(err, service.ErrNoContent):
		return writeError(c, fiber.StatusNotFound, "NO_CONTENT", "file has no stored content")
	case errors.Is(err, service.ErrStorageDisabled):
		return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_DISABLED", "object storage is not configured")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ListFiles godoc
// @Summary List every file record
// @Tags files
// @Success 200 {object} listResponse[model.File]
// @Router /files [get]
func ListFiles(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return list(c, s.Files())
	}
}

// GetFile godoc
// @Summary Get a file record
// @Tags files
// @Param id path string true "file id"
// @Success 200 {object} model.File
// @Failure 404 {object} errorPayload
// @Router /files/{id} [get]
func GetFile(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		f, found := s.File(id)
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}
		return c.JSON(f)
	}
}

// RegisterFile godoc
// @Summary Register a file record without content
// @Tags files
// @Accept json
// @Param body body model.FileInput true "file fields"
// @Success 201 {object} model.File
// @Router /files [post]
func RegisterFile(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.FileInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		f, err := files.Register(c.UserContext(), in)
		if err != nil {
			return writeFileError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// UploadFile godoc
// @Summary Upload file content (multipart/form-data, field "file")
// @Tags files
// @Accept mpfd
// @Param file formData file true "document"
// @Param attributes formData string false "JSON object of extra fields"
// @Success 201 {object} model.File
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /files/upload [post]
func UploadFile(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		var attrs model.Attributes
		if raw := c.FormValue("attributes"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ATTRIBUTES", "attributes must be a JSON object")
			}
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		rec, err := files.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size, attrs)
		if err != nil {
			return writeFileError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// DownloadFile godoc
// @Summary Get a presigned download URL
// @Tags files
// @Param id path string true "file id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /files/{id}/download [get]
func DownloadFile(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		u, err := files.DownloadURL(c.UserContext(), id)
		if err != nil {
			return writeFileError(c, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

// FileContent godoc
// @Summary Stream file content
// @Tags files
// @Param id path string true "file id"
// @Success 200
// @Failure 404 {object} errorPayload
// @Router /files/{id}/content [get]
func FileContent(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		rc, info, err := files.Open(c.UserContext(), id)
		if err != nil {
			return writeFileError(c, err)
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		// fasthttp closes rc once the body has been written.
		return c.SendStream(rc, int(info.Size))
	}
}

// DeleteFile godoc
// @Summary Delete a file and its content; deleting an unknown id succeeds
// @Tags files
// @Param id path string true "file id"
// @Success 204
// @Router /files/{id} [delete]
func DeleteFile(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := pathID(c)
		if !ok {
			return err
		}
		if err := files.Delete(c.UserContext(), id); err != nil {
			return writeFileError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
