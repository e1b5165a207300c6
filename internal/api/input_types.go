package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/foodt/internal/services"
)

type credentialsInput struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, services.ErrInvalidInput
	}
	input.Username = strings.TrimSpace(input.Username)
	return input, nil
}

// parseAddFoodInput builds the typed add request from the multipart form.
// The image file is optional; a malformed rating fails validation at the
// boundary before any business logic runs.
func parseAddFoodInput(c *fiber.Ctx) (services.AddFoodInput, error) {
	input := services.AddFoodInput{
		Name:     strings.TrimSpace(c.FormValue("food_name")),
		Category: strings.TrimSpace(c.FormValue("category")),
	}

	if raw := strings.TrimSpace(c.FormValue("rating")); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return services.AddFoodInput{}, services.ErrInvalidInput
		}
		input.Rating = rating
	}

	if file, err := c.FormFile("food_image"); err == nil && file != nil && file.Filename != "" {
		input.Image = file
	}
	return input, nil
}

// parseEditFoodInput builds the typed edit request. Calories must parse as a
// non-negative integer; a blank rating keeps the item's current one.
func parseEditFoodInput(c *fiber.Ctx) (services.EditFoodInput, error) {
	calories, err := strconv.Atoi(strings.TrimSpace(c.FormValue("calories")))
	if err != nil || calories < 0 {
		return services.EditFoodInput{}, services.ErrInvalidInput
	}

	input := services.EditFoodInput{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Calories: calories,
		Category: strings.TrimSpace(c.FormValue("category")),
	}

	if raw := strings.TrimSpace(c.FormValue("rating")); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return services.EditFoodInput{}, services.ErrInvalidInput
		}
		input.Rating = &rating
	}

	if file, err := c.FormFile("food_image"); err == nil && file != nil && file.Filename != "" {
		input.Image = file
	}
	return input, nil
}

// parseSelectedFoodIDs reads the repeated checkbox field from either an
// urlencoded or a multipart body.
func parseSelectedFoodIDs(c *fiber.Ctx) []uint {
	values := make([]string, 0)
	if form, err := c.MultipartForm(); err == nil && form != nil {
		values = append(values, form.Value["selected_food_ids"]...)
	}
	if len(values) == 0 {
		for _, raw := range c.Request().PostArgs().PeekMulti("selected_food_ids") {
			values = append(values, string(raw))
		}
	}

	ids := make([]uint, 0, len(values))
	for _, value := range values {
		id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

func parseOptionalRating(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &rating
}

func parseIDParam(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, services.ErrInvalidInput
	}
	return uint(id), nil
}
