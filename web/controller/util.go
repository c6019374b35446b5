// Package controller provides the HTTP handlers of the course-admin
// service. Handlers bind whitelisted request bodies, call the service
// layer, and render every outcome in the fixed response envelope.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"course-admin/logger"
	"course-admin/util/errs"
	"course-admin/web/entity"

	"github.com/gin-gonic/gin"
)

// jsonData sends a success envelope with HTTP 200.
func jsonData(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, entity.Msg{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// jsonCreated sends a success envelope with HTTP 201.
func jsonCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, entity.Msg{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// jsonFailure classifies an error into the response taxonomy: validation
// failures and conflicts map to 400, missing resources to 404,
// everything else to 500.
func jsonFailure(c *gin.Context, err error) {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, entity.Msg{
			Message: "request parameters are invalid.",
			Errors:  validationErr.Messages,
		})
		return
	}

	var conflictErr *errs.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusBadRequest, entity.Msg{
			Message: "request parameters are invalid.",
			Errors:  []string{conflictErr.Message},
		})
		return
	}

	var notFoundErr *errs.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, entity.Msg{
			Message: "resource does not exist.",
			Errors:  []string{notFoundErr.Error()},
		})
		return
	}

	logger.Error("unexpected error:", err)
	c.JSON(http.StatusInternalServerError, entity.Msg{
		Message: "server error.",
		Errors:  []string{err.Error()},
	})
}

// jsonBadBody reports a request body that could not be bound.
func jsonBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, entity.Msg{
		Message: "request parameters are invalid.",
		Errors:  []string{"invalid request body."},
	})
}

// pathId parses the :id path parameter as an unsigned integer. A
// non-numeric id behaves like an id that matches no row.
func pathId(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errs.NewNotFoundError("resource", 0)
	}
	return uint(id), nil
}
