package controllers

import (
	"errors"

	"github.com/nitishmehan/Eatsy/pkg/resp"
	"github.com/nitishmehan/Eatsy/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service failure vocabulary onto HTTP statuses in
// one place.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotDelivered):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrAlreadyReviewed):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
