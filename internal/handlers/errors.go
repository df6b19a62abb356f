package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the JSON error body of every handler.
type ErrorResponse = apperrors.AppError

// respondWithError maps a service error onto a status code and writes it.
// Unexpected errors are logged and reported with fallback.
func respondWithError(c *gin.Context, err error, fallback string) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
	case errors.Is(err, apperrors.ErrValidation):
		appErr = apperrors.NewBadRequestError(strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error()+": "))
	case errors.Is(err, apperrors.ErrUnauthorized):
		appErr = apperrors.NewUnauthorizedError("Unauthorized")
	case errors.Is(err, apperrors.ErrDuplicate):
		appErr = apperrors.NewConflictError(strings.TrimPrefix(err.Error(), apperrors.ErrDuplicate.Error()+": "))
	case errors.Is(err, apperrors.ErrNotFound):
		appErr = apperrors.NewAppError(http.StatusNotFound, "Resource not found", err)
	case errors.Is(err, context.DeadlineExceeded):
		appErr = apperrors.NewGatewayTimeoutError("Request timed out")
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallback, slog.String("error", err.Error()))
		appErr = apperrors.NewInternalServerError(fallback)
	}
	c.AbortWithStatusJSON(appErr.Code, appErr)
}

// respondWithBindError reports a request that failed binding or validation.
func respondWithBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))
	appErr := apperrors.NewBadRequestError("Invalid request: " + bindErrorMessage(err))
	c.AbortWithStatusJSON(appErr.Code, appErr)
}

// bindErrorMessage turns validator failures into short field messages.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without":
		return field + " is required"
	case "appemail":
		return "invalid email format"
	case "strongpassword":
		return "password must be at least 8 characters and contain an uppercase letter, a lowercase letter and a number"
	case "accounttype":
		return "account type must be farmer, individual or company"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "min":
		return field + " must be at least " + fe.Param()
	}
	return field + " is invalid"
}
