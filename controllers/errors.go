package controllers

import (
	"errors"

	"github.com/doker312/aroras-kitchen-orderflow-app/pkg/resp"
	"github.com/doker312/aroras-kitchen-orderflow-app/services"

	"github.com/gin-gonic/gin"
)

// serviceError maps domain errors onto the response envelope.
func serviceError(c *gin.Context, err error) {
	var fields services.FieldErrors
	switch {
	case errors.As(err, &fields):
		resp.ValidationFailed(c, fields)
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrSubtotalMismatch):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
