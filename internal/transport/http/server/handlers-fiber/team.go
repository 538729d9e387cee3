package handlers_fiber

import (
	"net/http"

	"tasksphere/internal/api"
	"tasksphere/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetTeam lists team members.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	members, err := h.uc.TeamMembers(c.UserContext(), sessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamMembers(members))
}

// PostTeam adds a team member.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body api.TeamMemberInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	m, err := h.uc.AddTeamMember(c.UserContext(), sessionID(c), mapper.FromAPITeamMemberInput(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeamMember(*m))
}

// GetTeamId returns one team member.
func (h *Handler) GetTeamId(c *fiber.Ctx, id int64) error {
	m, err := h.uc.TeamMember(c.UserContext(), sessionID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamMember(*m))
}

// PostTeamIdRename renames a member; assigned tasks follow the id.
func (h *Handler) PostTeamIdRename(c *fiber.Ctx, id int64) error {
	var body api.TeamMemberRename
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	m, err := h.uc.RenameTeamMember(c.UserContext(), sessionID(c), id, body.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamMember(*m))
}
