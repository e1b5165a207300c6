package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/foodt/internal/services"
)

func (handler *Handler) ShowFoodDetail(c *fiber.Ctx) error {
	foodID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return handler.NotFound(c)
	}

	food, err := handler.catalogService.GetItem(foodID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return handler.NotFound(c)
		}
		return err
	}

	comments, err := handler.repositories.Comments.ListWithAuthorsByFood(foodID)
	if err != nil {
		return err
	}

	return handler.render(c, "food_detail", fiber.Map{
		"Title":    "FoodT | " + food.Name,
		"Food":     food,
		"Comments": comments,
	})
}

// FoodDetailAction handles the detail form: an attribute edit, a comment
// submission, or both in one request cycle.
func (handler *Handler) FoodDetailAction(c *fiber.Ctx) error {
	foodID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return handler.NotFound(c)
	}
	detailPath := "/food/" + c.Params("id")

	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	flash := FlashPayload{}

	if c.FormValue("action") == "edit" {
		input, err := parseEditFoodInput(c)
		if err != nil {
			return flashAndRedirect(c, FlashPayload{Error: "Calories must be a non-negative number."}, detailPath)
		}

		_, warnings, err := handler.catalogService.EditItem(foodID, input)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				return handler.NotFound(c)
			case errors.Is(err, services.ErrDuplicateName):
				return flashAndRedirect(c, FlashPayload{Error: "Food item name already exists."}, detailPath)
			case errors.Is(err, services.ErrInvalidInput):
				return flashAndRedirect(c, FlashPayload{Error: "Calories must be a non-negative number."}, detailPath)
			}
			return err
		}
		flash.Notice = "Food attributes updated!"
		flash.Error = strings.Join(warnings, " ")
	}

	if comment := c.FormValue("comment"); comment != "" {
		rating := parseOptionalRating(c.FormValue("comment_rating"))
		if _, err := handler.catalogService.AddComment(foodID, user.ID, comment, rating); err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				return handler.NotFound(c)
			case errors.Is(err, services.ErrInvalidInput):
				return flashAndRedirect(c, FlashPayload{Error: "Comment text is required."}, detailPath)
			}
			return err
		}
		flash.Notice = strings.TrimSpace(flash.Notice + " Comment posted!")
	}

	return flashAndRedirect(c, flash, detailPath)
}
