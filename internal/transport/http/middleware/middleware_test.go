package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMetricsCountsRequestsAndMutations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg, func() int { return 3 })
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Post("/projects", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusCreated) })
	app.Post("/tasks", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusUnprocessableEntity) })
	app.Get("/projects/:id", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/projects", nil),
		httptest.NewRequest(http.MethodPost, "/tasks", nil),
		httptest.NewRequest(http.MethodGet, "/projects/7", nil),
	} {
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("projects", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("tasks", "rejected")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "/projects/:id", "200")))

	count, err := testutil.GatherAndCount(reg, "tasksphere_active_sessions")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNewMetricsRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg, func() int { return 0 })
	require.NoError(t, err)
	_, err = NewMetrics(reg, func() int { return 0 })
	require.Error(t, err)
}

func TestMutatedEntity(t *testing.T) {
	entity, ok := mutatedEntity(fiber.MethodPost, "/team/:id/rename")
	require.True(t, ok)
	require.Equal(t, "team", entity)

	_, ok = mutatedEntity(fiber.MethodGet, "/team")
	require.False(t, ok)
	_, ok = mutatedEntity(fiber.MethodPost, "/sessions")
	require.False(t, ok)
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/fail", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/fail"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Session-ID", "s-1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, "s-1", entries[0].ContextMap()["session_id"])
}

func TestRequestLoggerUsesFiberErrorCode(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/projects/:id", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid format for parameter id")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "down")
	})

	cases := []struct {
		path   string
		status int
		level  zapcore.Level
	}{
		{path: "/projects/abc", status: http.StatusBadRequest, level: zapcore.InfoLevel},
		{path: "/missing", status: http.StatusNotFound, level: zapcore.InfoLevel},
		{path: "/boom", status: http.StatusServiceUnavailable, level: zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, tc.status, resp.StatusCode)
	}

	entries := logs.All()
	require.Len(t, entries, len(cases))
	for i, tc := range cases {
		require.Equal(t, int64(tc.status), entries[i].ContextMap()["status"], tc.path)
		require.Equal(t, tc.level, entries[i].Level, tc.path)
	}
}
