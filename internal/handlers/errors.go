package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
)

func errorResponse(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		code = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, models.ErrExtraction):
		code = fiber.StatusUnprocessableEntity
		message = "Could not read the uploaded file as a PDF"
	case errors.Is(err, models.ErrStorage):
		message = "History is unavailable right now"
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}
