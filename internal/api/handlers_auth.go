package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/foodt/internal/services"
)

func (handler *Handler) Index(c *fiber.Ctx) error {
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	return handler.render(c, "login", fiber.Map{"Title": "FoodT | Login"})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	return handler.render(c, "register", fiber.Map{"Title": "FoodT | Register"})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return flashAndRedirect(c, FlashPayload{Error: "Invalid input."}, "/register")
	}

	if _, err := handler.authService.Register(credentials.Username, credentials.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			return flashAndRedirect(c, FlashPayload{Error: "Username already exists."}, "/register")
		}
		if errors.Is(err, services.ErrInvalidInput) {
			return flashAndRedirect(c, FlashPayload{Error: "Invalid input."}, "/register")
		}
		return err
	}

	return flashAndRedirect(c, FlashPayload{Notice: "Registration successful. Please log in."}, "/login")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return flashAndRedirect(c, FlashPayload{Error: "Invalid credentials."}, "/login")
	}

	user, err := handler.authService.Authenticate(credentials.Username, credentials.Password)
	if err != nil {
		return flashAndRedirect(c, FlashPayload{Error: "Invalid credentials."}, "/login")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return err
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Logout clears the session unconditionally and is safe to repeat.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
