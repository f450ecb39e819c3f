package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
)

// parseID reads a positive integer path parameter. It writes the 400
// response itself and reports false when the parameter is malformed.
func parseID(ctx *gin.Context, param, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid "+label+" ID").
			WithField(param).
			WithDetails(apperrors.FieldError{Field: param, Message: label + " ID must be a positive number"})
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into req, answering 400 when it is not
// valid JSON for the request shape.
func bindJSON(ctx *gin.Context, req interface{}, label string) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" data").
			WithField("body").
			WithDetails(apperrors.FieldError{Field: "body", Message: err.Error()})
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
