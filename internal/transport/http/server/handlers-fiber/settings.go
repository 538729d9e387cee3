package handlers_fiber

import (
	"net/http"

	"tasksphere/internal/api"
	"tasksphere/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetSettings returns the session preferences.
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	s, err := h.uc.Settings(c.UserContext(), sessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISettings(s))
}

// PutSettings replaces the session preferences.
func (h *Handler) PutSettings(c *fiber.Ctx) error {
	var body api.Settings
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	s, err := h.uc.UpdateSettings(c.UserContext(), sessionID(c), mapper.FromAPISettings(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISettings(s))
}
