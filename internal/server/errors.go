package server

import (
	"errors"
	"strings"

	"stockroom/internal/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Something went wrong"

		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			msg = fe.Message
		case errors.Is(err, gorm.ErrRecordNotFound):
			code = fiber.StatusNotFound
		}
		if code == fiber.StatusNotFound {
			msg = inventory.NotFoundMessage
		}

		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("request failed")
			msg = "Something went wrong"
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(fiber.Map{"error": msg})
		}

		view, title := "errors/error", "Error"
		if code == fiber.StatusNotFound {
			view, title = "errors/404", "Not found"
		}
		c.Status(code)
		if rerr := c.Render(view, fiber.Map{"Title": title, "Message": msg}, inventory.Layout); rerr != nil {
			log.Error().Err(rerr).Msg("rendering error page")
			return c.Status(code).SendString(msg)
		}
		return nil
	}
}
