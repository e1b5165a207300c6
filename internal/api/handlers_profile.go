package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowProfile(c *fiber.Ctx) error {
	return handler.render(c, "profile", fiber.Map{"Title": "FoodT | Profile"})
}

// ChangePassword overwrites the stored hash with one for the submitted
// password. No old-password confirmation is asked for; the profile page is
// already behind the session.
func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	newPassword := strings.TrimSpace(c.FormValue("new_password"))
	if newPassword == "" {
		return flashAndRedirect(c, FlashPayload{Error: "Password must not be empty."}, "/profile")
	}

	if err := handler.authService.ChangePassword(user.ID, newPassword); err != nil {
		return err
	}
	return flashAndRedirect(c, FlashPayload{Notice: "Password updated!"}, "/profile")
}
