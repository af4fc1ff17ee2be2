package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/qa-service/internal/domain/qa"
	apperrors "github.com/yanqian/qa-service/pkg/errors"
)

const (
	codeInvalidBody   = "invalid_body"
	codeRouteNotFound = "route_not_found"
	codeRateLimited   = "rate_limit_exceeded"

	routeNotFoundMessage = "Route not found"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

type statusRule struct {
	legacy       int
	conventional int
}

// taxonomyStatus maps every qa error code to its response status. Legacy
// clients expect 416 for all validation and storage failures.
var taxonomyStatus = map[string]statusRule{
	qa.CodeParseError:          {legacy: http.StatusRequestedRangeNotSatisfiable, conventional: http.StatusBadRequest},
	qa.CodeMissingParameters:   {legacy: http.StatusRequestedRangeNotSatisfiable, conventional: http.StatusBadRequest},
	qa.CodeStartGreaterThanEnd: {legacy: http.StatusRequestedRangeNotSatisfiable, conventional: http.StatusBadRequest},
	qa.CodeEndExceedsLength:    {legacy: http.StatusRequestedRangeNotSatisfiable, conventional: http.StatusBadRequest},
	qa.CodeStorageError:        {legacy: http.StatusRequestedRangeNotSatisfiable, conventional: http.StatusInternalServerError},
	qa.CodeItemNotFound:        {legacy: http.StatusNotFound, conventional: http.StatusNotFound},
}

// translateError resolves any error raised while serving a request into the
// response to send. Unrecognized errors are reported as a missing route so
// internals never reach the client.
func translateError(err error, legacy bool) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return routeNotFound(err)
	}
	rule, ok := taxonomyStatus[appErr.Code]
	if !ok {
		return routeNotFound(err)
	}

	status := rule.conventional
	if legacy {
		status = rule.legacy
	}
	message := appErr.Error()
	if appErr.Code == qa.CodeStorageError {
		message = appErr.Message
	}
	return &HTTPError{Status: status, Code: appErr.Code, Message: message, Err: err}
}

func routeNotFound(err error) *HTTPError {
	return NewHTTPError(http.StatusNotFound, codeRouteNotFound, routeNotFoundMessage, err)
}

func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
