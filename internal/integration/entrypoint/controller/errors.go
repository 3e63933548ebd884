// Package controller implements the ledger service's HTTP handlers.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainerror "github.com/finance-tracker/client/internal/domain/error"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/client/internal/integration/entrypoint/middleware"
)

// Details of the ledger service's error responses.
const (
	detailAccountNotFound  = "Account not found"
	detailGoalNotFound     = "Goal not found"
	detailPlatformNotFound = "Platform not found"
	detailInternal         = "Internal server error"
)

// requireUser extracts the authenticated user ID, answering 401 when the
// request did not pass the auth middleware.
func requireUser(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		middleware.Unauthorized(ctx, "Not authenticated")
		return 0, false
	}
	return userID, true
}

// pathID parses a numeric path parameter, answering 422 when it is not one.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Detail: []dto.ValidationIssue{{
				Loc:  []string{"path", name},
				Msg:  "value is not a valid integer",
				Type: "type_error.integer",
			}},
		})
		return 0, false
	}
	return id, true
}

// respondValidationError answers 422 with one issue per failed field.
func respondValidationError(ctx *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Detail: []dto.ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}},
		})
		return
	}

	issues := make([]dto.ValidationIssue, 0, len(validationErrs))
	for _, fe := range validationErrs {
		issues = append(issues, dto.ValidationIssue{
			Loc:  []string{"body", strings.ToLower(fe.Field())},
			Msg:  validationMessage(fe),
			Type: "value_error." + fe.Tag(),
		})
	}
	ctx.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Detail: issues})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min", "max":
		return fe.Field() + " has an invalid length"
	default:
		return fe.Field() + " is invalid"
	}
}

// respondError maps repository errors onto HTTP responses.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrAccountNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: detailAccountNotFound})
	case errors.Is(err, domainerror.ErrGoalNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: detailGoalNotFound})
	case errors.Is(err, domainerror.ErrPlatformNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: detailPlatformNotFound})
	default:
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: detailInternal})
	}
}
