package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"manufacturing/internal/generated/servers"
	"manufacturing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "internal server error"

// NewErrorHandler renders every failure as the servers.Error envelope.
// Internal failures are logged and their message is not exposed.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := ErrorResponse(err)
		if body.Kind == string(errs.KindInternal) {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}

// ErrorResponse maps err to its envelope. Errors raised by echo itself or by
// request validation keep their HTTP status.
func ErrorResponse(err error) servers.Error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		kind := kindOfStatus(he.Code)
		message := fmt.Sprint(he.Message)
		if kind == errs.KindInternal {
			message = internalErrorMessage
		}
		return servers.Error{Code: he.Code, Kind: string(kind), Message: message}
	}

	kind := errs.KindOf(err)
	switch kind {
	case errs.KindValidation:
		return servers.Error{Code: http.StatusBadRequest, Kind: string(kind), Message: err.Error()}
	case errs.KindNotFound:
		return servers.Error{Code: http.StatusNotFound, Kind: string(kind), Message: err.Error()}
	case errs.KindConflict, errs.KindIntegrity:
		return servers.Error{Code: http.StatusConflict, Kind: string(kind), Message: err.Error()}
	default:
		return servers.Error{
			Code:    http.StatusInternalServerError,
			Kind:    string(errs.KindInternal),
			Message: internalErrorMessage,
		}
	}
}

func kindOfStatus(code int) errs.Kind {
	switch {
	case code == http.StatusNotFound:
		return errs.KindNotFound
	case code == http.StatusConflict:
		return errs.KindConflict
	case code >= http.StatusInternalServerError:
		return errs.KindInternal
	default:
		return errs.KindValidation
	}
}
