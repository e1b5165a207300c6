package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// NotFound renders the dedicated 404 page. Registered after all routes.
func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return handler.renderStatus(c, "404", fiber.Map{"Title": "FoodT | Not Found"}, fiber.StatusNotFound)
}

// InternalError is the fiber error handler: unhandled errors fall through to
// the dedicated 500 page. Open write transactions were already rolled back by
// the repository layer when the failing operation returned.
func (handler *Handler) InternalError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusNotFound {
		return handler.NotFound(c)
	}

	log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
	return handler.renderStatus(c, "500", fiber.Map{"Title": "FoodT | Server Error"}, fiber.StatusInternalServerError)
}
