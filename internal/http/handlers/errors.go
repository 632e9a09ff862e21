package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/flow"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/http/middleware"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/validate"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain and validator errors to HTTP
// responses. Field-level errors ride along in details so the form can
// attach them to inputs.
func RespondDomainError(c *gin.Context, err error) {
	var fieldErrs validate.FieldErrors
	var reviewErrs flow.ReviewErrors

	switch {
	case errors.As(err, &fieldErrs):
		respondError(c, http.StatusBadRequest, "validation_error", "some fields are invalid", fieldErrs)
	case errors.As(err, &reviewErrs):
		respondError(c, http.StatusBadRequest, "validation_error", "some fields are invalid", reviewErrs)
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
