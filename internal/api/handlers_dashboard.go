package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	return handler.render(c, "dashboard", fiber.Map{"Title": "FoodT | Dashboard"})
}

// DashboardData returns the category and rating chart series as JSON.
func (handler *Handler) DashboardData(c *fiber.Ctx) error {
	data, err := handler.reportService.DashboardAggregate()
	if err != nil {
		return err
	}
	return c.JSON(data)
}
