package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tasksphere/internal/api"
	"tasksphere/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (int, api.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, testErr := app.Test(req)
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestWriteErrorValidationListsFields(t *testing.T) {
	status, body := serveError(t, &entities.ValidationError{
		Entity: "project",
		Fields: []entities.FieldError{
			{Field: "name", Message: "is required"},
			{Field: "team_size", Message: "must be between 1 and 20"},
		},
	})

	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, api.VALIDATION, body.Error.Code)
	require.Equal(t, []api.FieldError{
		{Field: "name", Message: "is required"},
		{Field: "team_size", Message: "must be between 1 and 20"},
	}, body.Error.Fields)
}

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   api.ErrorResponseErrorCode
	}{
		{
			name:   "invalid_argument",
			err:    fmt.Errorf("%w: project id must be positive", entities.ErrInvalidArgument),
			status: http.StatusBadRequest,
			code:   api.INVALIDARGUMENT,
		},
		{
			name:   "reference",
			err:    &entities.ReferenceNotFoundError{Kind: "project", ID: 9},
			status: http.StatusUnprocessableEntity,
			code:   api.REFERENCENOTFOUND,
		},
		{
			name:   "session",
			err:    entities.ErrSessionNotFound,
			status: http.StatusNotFound,
			code:   api.SESSIONNOTFOUND,
		},
		{
			name:   "task",
			err:    entities.ErrTaskNotFound,
			status: http.StatusNotFound,
			code:   api.NOTFOUND,
		},
		{
			name:   "path_param",
			err:    fiber.NewError(fiber.StatusBadRequest, "Invalid format for parameter id"),
			status: http.StatusBadRequest,
			code:   api.INVALIDARGUMENT,
		},
		{
			name:   "unknown",
			err:    fmt.Errorf("boom"),
			status: http.StatusInternalServerError,
			code:   api.INTERNAL,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			status, body := serveError(t, tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.code, body.Error.Code)
			require.Empty(t, body.Error.Fields)
		})
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	_, body := serveError(t, fmt.Errorf("lookup projects: index corrupted"))
	require.Equal(t, "internal error", body.Error.Message)
}

func TestWriteErrorReferenceMessage(t *testing.T) {
	_, body := serveError(t, &entities.ReferenceNotFoundError{Kind: "team member", ID: 4})
	require.Equal(t, "team member 4 does not exist", body.Error.Message)
}
