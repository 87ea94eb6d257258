package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

const internalErrorMessage = "Something went wrong on our side. Please try again later."

// Err is the failure envelope of every JSON endpoint.
type Err struct {
	HTTPStatusCode int                       `json:"-"`
	Success        bool                      `json:"success" example:"false"`
	Message        string                    `json:"message" example:"Item not found."`
	Errors         []*domain.ValidationError `json:"errors,omitempty"`
	Err            error                     `json:"-"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

// WithMessage replaces the message shown to the client.
func (e *Err) WithMessage(message string) *Err {
	e.Message = message

	return e
}

// RenderErr writes e as JSON. Server-side failures are logged, the rest are not.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	e := &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
		Err:            err,
	}

	if vErr, ok := domain.AsValidationError(err); ok {
		e.Message = vErr.Message
		e.Errors = []*domain.ValidationError{vErr}
	}

	return e
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        fmt.Sprintf("%s not found.", resource),
		Err:            fmt.Errorf("%s with %s %v not found", resource, key, value),
	}
}

// ErrValidationFailed reports every problem of a validate-only request at once.
func ErrValidationFailed(err error) *Err {
	e := &Err{
		HTTPStatusCode: http.StatusUnprocessableEntity,
		Message:        "Validation failed.",
		Err:            err,
	}

	var errs domain.ValidationErrors
	if errors.As(err, &errs) {
		e.Errors = errs
	} else if vErr, ok := domain.AsValidationError(err); ok {
		e.Errors = []*domain.ValidationError{vErr}
	}

	return e
}

func ErrGone(message string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusGone,
		Message:        message,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        internalErrorMessage,
		Err:            err,
	}
}
