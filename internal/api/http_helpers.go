package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	return handler.renderStatus(c, name, data, fiber.StatusOK)
}

func (handler *Handler) renderStatus(c *fiber.Ctx, name string, data fiber.Map, status int) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}

	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["Flash"]; !exists {
		payload["Flash"] = popFlashCookie(c)
	}
	if _, exists := payload["User"]; !exists {
		user, _ := currentUser(c)
		payload["User"] = user
	}
	if _, exists := payload["Path"]; !exists {
		payload["Path"] = c.Path()
	}
	if _, exists := payload["CSRFToken"]; !exists {
		token, _ := c.Locals("csrf").(string)
		payload["CSRFToken"] = token
	}
	return payload
}
