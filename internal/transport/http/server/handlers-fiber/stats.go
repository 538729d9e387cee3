package handlers_fiber

import (
	"net/http"

	"tasksphere/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetStatsSummary returns the headline metrics.
func (h *Handler) GetStatsSummary(c *fiber.Ctx) error {
	res, err := h.uc.Summary(c.UserContext(), sessionID(c))
	if err != nil {
		h.log.Errorw("failed to get summary", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISummary(res))
}

// GetStatsDashboard returns the landing view aggregates.
func (h *Handler) GetStatsDashboard(c *fiber.Ctx) error {
	res, err := h.uc.Dashboard(c.UserContext(), sessionID(c))
	if err != nil {
		h.log.Errorw("failed to get dashboard", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDashboard(res))
}

// GetStatsAnalytics returns chart data of the analytics view.
func (h *Handler) GetStatsAnalytics(c *fiber.Ctx) error {
	res, err := h.uc.Analytics(c.UserContext(), sessionID(c))
	if err != nil {
		h.log.Errorw("failed to get analytics", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIAnalytics(res))
}
