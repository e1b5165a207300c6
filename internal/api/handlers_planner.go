package api

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/foodt/internal/services"
)

func (handler *Handler) monthParam(c *fiber.Ctx) string {
	month := strings.TrimSpace(c.FormValue("month"))
	if month == "" {
		month = strings.TrimSpace(c.Query("month"))
	}
	if month == "" {
		month = services.MonthKey(time.Now().In(handler.location))
	}
	return month
}

// ShowPlanner lays the month out on a Sunday-first 7-column grid, with the
// stored plan's meals when one exists for the key.
func (handler *Handler) ShowPlanner(c *fiber.Ctx) error {
	month := handler.monthParam(c)
	monthStart, err := services.ParseMonthKey(month)
	if err != nil {
		return flashAndRedirect(c, FlashPayload{Error: "Invalid month."}, "/dashboard")
	}

	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	plan, found, err := handler.plannerService.PlanForMonth(user.ID, month)
	if err != nil {
		return err
	}

	meals := plan.Days
	if !found {
		meals = nil
	}

	items, err := handler.catalogService.ListItems()
	if err != nil {
		return err
	}
	imagesByName := make(map[string]string, len(items))
	for _, item := range items {
		if item.ImageFilename != "" {
			imagesByName[item.Name] = item.ImageFilename
		}
	}

	year, monthNum := monthStart.Year(), monthStart.Month()
	return handler.render(c, "planner", fiber.Map{
		"Title":    "FoodT | Planner",
		"Month":    month,
		"Days":     services.MonthDayStrings(year, monthNum),
		"FirstDay": services.FirstWeekdayOffset(year, monthNum),
		"Meals":    meals,
		"Images":   imagesByName,
	})
}

// GeneratePlan builds and stores a fresh schedule for the month,
// unconditionally overwriting a plan already held for that key.
func (handler *Handler) GeneratePlan(c *fiber.Ctx) error {
	month := handler.monthParam(c)
	if _, err := services.ParseMonthKey(month); err != nil {
		return flashAndRedirect(c, FlashPayload{Error: "Invalid month."}, "/dashboard")
	}

	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if _, err := handler.plannerService.Generate(user.ID, month); err != nil {
		if errors.Is(err, services.ErrNoPreferences) {
			return flashAndRedirect(c, FlashPayload{Error: "Please select your preferred food items first."}, "/food_items")
		}
		return err
	}

	return flashAndRedirect(c, FlashPayload{Notice: "Meal plan generated!"}, "/planner?month="+url.QueryEscape(month))
}
