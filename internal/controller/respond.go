package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jvictorino/briefly/internal/dto"
	"github.com/jvictorino/briefly/pkg/fault"
)

// RespondError translates the fault taxonomy to an HTTP response: not-found
// to 404, validation faults to 400 with every failed field, client faults to
// 400, everything else to an opaque 500.
func RespondError(ctx *gin.Context, err error) {
	if errors.Is(err, fault.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Resource not found"})
		return
	}
	if fields, ok := fault.ValidationFields(err); ok {
		ctx.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: "Validation failed",
			Fields:  fields,
		})
		return
	}
	if fault.IsClientError(err) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
}
