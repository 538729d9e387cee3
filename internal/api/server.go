package api

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /sessions)
	PostSessions(c *fiber.Ctx) error
	// (DELETE /sessions)
	DeleteSessions(c *fiber.Ctx) error

	// (GET /projects)
	GetProjects(c *fiber.Ctx, params GetProjectsParams) error
	// (POST /projects)
	PostProjects(c *fiber.Ctx) error
	// (GET /projects/{id})
	GetProjectsId(c *fiber.Ctx, id int64) error
	// (PUT /projects/{id})
	PutProjectsId(c *fiber.Ctx, id int64) error

	// (GET /tasks)
	GetTasks(c *fiber.Ctx, params GetTasksParams) error
	// (POST /tasks)
	PostTasks(c *fiber.Ctx) error
	// (GET /tasks/{id})
	GetTasksId(c *fiber.Ctx, id int64) error
	// (POST /tasks/{id}/status)
	PostTasksIdStatus(c *fiber.Ctx, id int64) error

	// (GET /team)
	GetTeam(c *fiber.Ctx) error
	// (POST /team)
	PostTeam(c *fiber.Ctx) error
	// (GET /team/{id})
	GetTeamId(c *fiber.Ctx, id int64) error
	// (POST /team/{id}/rename)
	PostTeamIdRename(c *fiber.Ctx, id int64) error

	// (GET /settings)
	GetSettings(c *fiber.Ctx) error
	// (PUT /settings)
	PutSettings(c *fiber.Ctx) error

	// (GET /stats/summary)
	GetStatsSummary(c *fiber.Ctx) error
	// (GET /stats/dashboard)
	GetStatsDashboard(c *fiber.Ctx) error
	// (GET /stats/analytics)
	GetStatsAnalytics(c *fiber.Ctx) error
}

// ServerInterfaceWrapper converts path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func queryString(c *fiber.Ctx, name string) *string {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	return &v
}

func queryInt64(c *fiber.Ctx, name string) (*int64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return &n, nil
}

func (siw *ServerInterfaceWrapper) withID(fn func(*fiber.Ctx, int64) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}
		return fn(c, id)
	}
}

// GetProjects operation middleware
func (siw *ServerInterfaceWrapper) GetProjects(c *fiber.Ctx) error {
	return siw.Handler.GetProjects(c, GetProjectsParams{
		Status: queryString(c, "status"),
		Q:      queryString(c, "q"),
	})
}

// GetTasks operation middleware
func (siw *ServerInterfaceWrapper) GetTasks(c *fiber.Ctx) error {
	var (
		params GetTasksParams
		err    error
	)
	if params.ProjectId, err = queryInt64(c, "project_id"); err != nil {
		return err
	}
	if params.AssigneeId, err = queryInt64(c, "assignee_id"); err != nil {
		return err
	}
	params.Status = queryString(c, "status")
	params.Priority = queryString(c, "priority")
	params.Q = queryString(c, "q")
	return siw.Handler.GetTasks(c, params)
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []fiber.Handler
}

// RegisterHandlers creates http.Handler with routing matching the API.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	for _, m := range options.Middlewares {
		router.Use(m)
	}

	base := options.BaseURL

	router.Post(base+"/sessions", si.PostSessions)
	router.Delete(base+"/sessions", si.DeleteSessions)

	router.Get(base+"/projects", wrapper.GetProjects)
	router.Post(base+"/projects", si.PostProjects)
	router.Get(base+"/projects/:id", wrapper.withID(si.GetProjectsId))
	router.Put(base+"/projects/:id", wrapper.withID(si.PutProjectsId))

	router.Get(base+"/tasks", wrapper.GetTasks)
	router.Post(base+"/tasks", si.PostTasks)
	router.Get(base+"/tasks/:id", wrapper.withID(si.GetTasksId))
	router.Post(base+"/tasks/:id/status", wrapper.withID(si.PostTasksIdStatus))

	router.Get(base+"/team", si.GetTeam)
	router.Post(base+"/team", si.PostTeam)
	router.Get(base+"/team/:id", wrapper.withID(si.GetTeamId))
	router.Post(base+"/team/:id/rename", wrapper.withID(si.PostTeamIdRename))

	router.Get(base+"/settings", si.GetSettings)
	router.Put(base+"/settings", si.PutSettings)

	router.Get(base+"/stats/summary", si.GetStatsSummary)
	router.Get(base+"/stats/dashboard", si.GetStatsDashboard)
	router.Get(base+"/stats/analytics", si.GetStatsAnalytics)
}
