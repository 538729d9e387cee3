package handlers_fiber

import (
	"net/http"

	"tasksphere/internal/api"

	"github.com/gofiber/fiber/v2"
)

// PostSessions opens a session with its own copy of the sample data.
func (h *Handler) PostSessions(c *fiber.Ctx) error {
	sess, err := h.uc.OpenSession(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to open session", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(api.Session{SessionId: sess.ID, CreatedAt: sess.CreatedAt})
}

// DeleteSessions discards the session named by the session header.
func (h *Handler) DeleteSessions(c *fiber.Ctx) error {
	if err := h.uc.CloseSession(c.UserContext(), sessionID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
