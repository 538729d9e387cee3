package handlers_fiber

import (
	"errors"
	"net/http"

	"tasksphere/internal/api"
	"tasksphere/internal/entities"
	"tasksphere/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	var (
		verr  *entities.ValidationError
		fiErr *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		resp := errorResponse(api.VALIDATION, verr.Error())
		resp.Error.Fields = mapper.ToAPIFieldErrors(verr.Fields)
		return c.Status(http.StatusBadRequest).JSON(resp)
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrValidation):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrReferenceNotFound):
		status = http.StatusUnprocessableEntity
		code = api.REFERENCENOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrSessionNotFound):
		status = http.StatusNotFound
		code = api.SESSIONNOTFOUND
		msg = "session not found or expired"
	case errors.Is(err, entities.ErrProjectNotFound), errors.Is(err, entities.ErrTaskNotFound), errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.As(err, &fiErr):
		status = fiErr.Code
		msg = fiErr.Message
		switch {
		case status == http.StatusNotFound:
			code = api.NOTFOUND
		case status < http.StatusInternalServerError:
			code = api.INVALIDARGUMENT
		}
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorDetail{Code: code, Message: msg}}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
}

// ErrorHandler renders errors returned past the handlers, such as malformed
// path parameters or unknown routes, in the API error format.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}
