package webapi

import (
	"errors"

	"github.com/amirasaad/itsobank/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
}

// ErrorResponseJSON writes a problem+json response.
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	detail string,
) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps domain and fiber errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// errorHandler is the fiber.Config ErrorHandler for anything that escapes a route.
func errorHandler(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	return ErrorResponseJSON(c, status, statusTitle(status), err.Error())
}

func statusTitle(status int) string {
	if msg := utils.StatusMessage(status); msg != "" {
		return msg
	}
	return "Error"
}
