package handlers_fiber

import (
	"net/http"

	"tasksphere/internal/api"
	"tasksphere/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists projects, optionally narrowed by status and text query.
func (h *Handler) GetProjects(c *fiber.Ctx, params api.GetProjectsParams) error {
	projects, err := h.uc.Projects(c.UserContext(), sessionID(c), mapper.ToProjectFilter(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProjects(projects))
}

// PostProjects adds a project.
func (h *Handler) PostProjects(c *fiber.Ctx) error {
	var body api.ProjectInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := mapper.FromAPIProjectInput(body)
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.AddProject(c.UserContext(), sessionID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIProject(*p))
}

// GetProjectsId returns one project.
func (h *Handler) GetProjectsId(c *fiber.Ctx, id int64) error {
	p, err := h.uc.Project(c.UserContext(), sessionID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*p))
}

// PutProjectsId replaces a project, progress included.
func (h *Handler) PutProjectsId(c *fiber.Ctx, id int64) error {
	var body api.ProjectUpdate
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	upd, err := mapper.FromAPIProjectUpdate(body)
	if err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.UpdateProject(c.UserContext(), sessionID(c), id, upd)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIProject(*p))
}
