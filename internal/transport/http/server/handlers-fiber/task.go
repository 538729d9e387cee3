package handlers_fiber

import (
	"net/http"

	"tasksphere/internal/api"
	"tasksphere/internal/entities"
	"tasksphere/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetTasks lists tasks with project and assignee names.
func (h *Handler) GetTasks(c *fiber.Ctx, params api.GetTasksParams) error {
	tasks, err := h.uc.Tasks(c.UserContext(), sessionID(c), mapper.ToTaskFilter(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITasks(tasks))
}

// PostTasks adds a task to an existing project and member.
func (h *Handler) PostTasks(c *fiber.Ctx) error {
	var body api.TaskInput
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in, err := mapper.FromAPITaskInput(body)
	if err != nil {
		return writeError(c, err)
	}

	t, err := h.uc.AddTask(c.UserContext(), sessionID(c), in)
	if err != nil {
		h.log.Infow("task rejected", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITask(*t))
}

// GetTasksId returns one task.
func (h *Handler) GetTasksId(c *fiber.Ctx, id int64) error {
	t, err := h.uc.Task(c.UserContext(), sessionID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*t))
}

// PostTasksIdStatus moves a task to another status.
func (h *Handler) PostTasksIdStatus(c *fiber.Ctx, id int64) error {
	var body api.TaskStatusUpdate
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}

	t, err := h.uc.SetTaskStatus(c.UserContext(), sessionID(c), id, entities.TaskStatus(body.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITask(*t))
}
