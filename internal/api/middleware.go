package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/foodt/internal/models"
)

const (
	authCookieName  = "foodt_auth"
	flashCookieName = "foodt_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// AuthRequired resolves the session cookie to a user row and stores it in
// request locals; unauthenticated requests are sent to the login page.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}
