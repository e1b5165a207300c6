package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/foodt/internal/models"
	"github.com/terraincognita07/foodt/internal/services"
)

// catalogGuard is the outermost recovery boundary for the catalog pages:
// anything the handlers below did not map to a flash notice is logged and
// degraded to a generic notice on the dashboard instead of an error page.
func catalogGuard(next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := next(c); err != nil {
			log.Printf("food items handler: %v", err)
			return flashAndRedirect(c, FlashPayload{Error: "An error occurred. Please try again."}, "/dashboard")
		}
		return nil
	}
}

func (handler *Handler) ShowFoodItems(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	// Delete link uses a query param.
	if raw := strings.TrimSpace(c.Query("delete_id")); raw != "" {
		deleteID, err := parseIDParam(raw)
		if err != nil {
			return flashAndRedirect(c, FlashPayload{Error: "Food item not found."}, "/food_items")
		}
		return handler.deleteFoodItem(c, deleteID)
	}

	items, err := handler.catalogService.ListItems()
	if err != nil {
		return err
	}

	selectedIDs, err := handler.catalogService.PreferredFoodIDs(user.ID)
	if err != nil {
		return err
	}
	selected := make(map[uint]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}

	var editItem *models.FoodItem
	if raw := strings.TrimSpace(c.Query("edit_id")); raw != "" {
		if editID, err := parseIDParam(raw); err == nil {
			if item, err := handler.catalogService.GetItem(editID); err == nil {
				editItem = &item
			}
		}
	}

	return handler.render(c, "food_items", fiber.Map{
		"Title":       "FoodT | Food Items",
		"FoodItems":   items,
		"SelectedIDs": selected,
		"EditItem":    editItem,
	})
}

func (handler *Handler) FoodItemsAction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	switch c.FormValue("action") {
	case "add":
		return handler.addFoodItem(c)
	case "edit":
		return handler.editFoodItem(c)
	case "select":
		return handler.selectPreferences(c, user.ID)
	}

	// Legacy delete path posts a bare delete_id field.
	if raw := strings.TrimSpace(c.FormValue("delete_id")); raw != "" {
		deleteID, err := parseIDParam(raw)
		if err != nil {
			return flashAndRedirect(c, FlashPayload{Error: "Food item not found."}, "/food_items")
		}
		return handler.deleteFoodItem(c, deleteID)
	}

	return c.Redirect("/food_items", fiber.StatusSeeOther)
}

func (handler *Handler) addFoodItem(c *fiber.Ctx) error {
	input, err := parseAddFoodInput(c)
	if err != nil {
		return flashAndRedirect(c, FlashPayload{Error: "Invalid input."}, "/food_items")
	}

	_, warnings, err := handler.catalogService.AddItem(input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			return flashAndRedirect(c, FlashPayload{Error: "Item exists or invalid."}, "/food_items")
		}
		return err
	}
	return flashAndRedirect(c, FlashPayload{Notice: "Food item added!", Error: strings.Join(warnings, " ")}, "/food_items")
}

func (handler *Handler) editFoodItem(c *fiber.Ctx) error {
	editID, err := parseIDParam(c.Query("edit_id"))
	if err != nil {
		return flashAndRedirect(c, FlashPayload{Error: "Food item not found."}, "/food_items")
	}

	input, err := parseEditFoodInput(c)
	if err != nil {
		return flashAndRedirect(c, FlashPayload{Error: "Calories must be a non-negative number."}, "/food_items")
	}

	_, warnings, err := handler.catalogService.EditItem(editID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return flashAndRedirect(c, FlashPayload{Error: "Food item not found."}, "/food_items")
		case errors.Is(err, services.ErrDuplicateName):
			return flashAndRedirect(c, FlashPayload{Error: "Food item name already exists."}, "/food_items")
		case errors.Is(err, services.ErrInvalidInput):
			return flashAndRedirect(c, FlashPayload{Error: "Calories must be a non-negative number."}, "/food_items")
		}
		return err
	}
	return flashAndRedirect(c, FlashPayload{Notice: "Food item updated!", Error: strings.Join(warnings, " ")}, "/food_items")
}

func (handler *Handler) selectPreferences(c *fiber.Ctx, userID uint) error {
	if err := handler.catalogService.SetPreferences(userID, parseSelectedFoodIDs(c)); err != nil {
		return err
	}
	return flashAndRedirect(c, FlashPayload{Notice: "Preferred food items saved!"}, "/food_items")
}

func (handler *Handler) deleteFoodItem(c *fiber.Ctx, foodID uint) error {
	warnings, err := handler.catalogService.DeleteItem(foodID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return flashAndRedirect(c, FlashPayload{Error: "Food item not found."}, "/food_items")
		}
		return err
	}
	return flashAndRedirect(c, FlashPayload{Notice: "Food item deleted!", Error: strings.Join(warnings, " ")}, "/food_items")
}
