package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FlashPayload carries one-shot notices across a redirect as a short-lived
// base64 JSON cookie.
type FlashPayload struct {
	Notice string `json:"notice,omitempty"`
	Error  string `json:"error,omitempty"`
}

func setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload.Notice = strings.TrimSpace(payload.Notice)
	payload.Error = strings.TrimSpace(payload.Error)
	if payload.Notice == "" && payload.Error == "" {
		clearFlashCookie(c)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(serialized),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	clearFlashCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	return payload
}

func clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

// flashAndRedirect is the standard recovery path for validation and
// uniqueness errors: surface a one-shot notice, go back to the origin view.
func flashAndRedirect(c *fiber.Ctx, payload FlashPayload, path string) error {
	setFlashCookie(c, payload)
	return c.Redirect(path, fiber.StatusSeeOther)
}
