package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// requestValidationError marks input rejected before any use case ran.
type requestValidationError struct {
	cause error
}

func newRequestValidationError(cause error) error {
	return &requestValidationError{cause: cause}
}

func (e *requestValidationError) Error() string {
	return e.cause.Error()
}

func (e *requestValidationError) Unwrap() error {
	return e.cause
}

// statusAndMessage maps an error returned by a handler to the response status and message.
func statusAndMessage(c echo.Context, err error) (int, string) {
	var (
		httpErr     *echo.HTTPError
		validation  *requestValidationError
		notFound    *errs.ObjectNotFoundError
		invalidRef  *errs.InvalidReferenceError
		exhausted   *errs.AllocationExhaustedError
		alreadyUsed *errs.ObjectAlreadyExistsError
	)

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, "Invalid request: " + validation.Error()

	case errors.As(err, &httpErr):
		if httpErr.Code == http.StatusNotFound && httpErr.Internal == nil {
			return http.StatusNotFound, fmt.Sprintf("Route %s not found", c.Request().URL.RequestURI())
		}
		if httpErr.Code == http.StatusMethodNotAllowed {
			return http.StatusNotFound, fmt.Sprintf("Route %s not found", c.Request().URL.RequestURI())
		}
		return httpErr.Code, fmt.Sprint(httpErr.Message)

	case errors.As(err, &notFound):
		return http.StatusNotFound, fmt.Sprintf("%s with UID %v not found", capitalize(notFound.ParamName), notFound.ID)

	case errors.As(err, &invalidRef):
		msg := "One or more product UIDs are invalid"
		if len(invalidRef.IDs) > 0 {
			msg += ": " + strings.Join(invalidRef.IDs, ", ")
		}
		return http.StatusBadRequest, msg

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, validationMessage(err)

	case errors.As(err, &alreadyUsed):
		return http.StatusConflict, fmt.Sprintf("%s with UID %v already exists", capitalize(alreadyUsed.ParamName), alreadyUsed.ID)

	case errors.As(err, &exhausted):
		return http.StatusServiceUnavailable, "Could not allocate a unique identifier, please retry"

	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// validationMessage joins the messages of every domain validation error in err.
func validationMessage(err error) string {
	var parts []string
	var walk func(error)
	walk = func(e error) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		parts = append(parts, e.Error())
	}
	walk(err)
	return strings.Join(parts, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NewHTTPErrorHandler writes every error as the failure envelope. Server errors are logged
// with the request id; client errors are left to the request logger.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := statusAndMessage(c, err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Int("status", status),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, Envelope{
				Success:    false,
				StatusCode: status,
				Message:    message,
			})
		}
		if writeErr != nil {
			logger.Warn("write error response", zap.Error(writeErr))
		}
	}
}
