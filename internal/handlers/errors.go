package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lavadevv/timeable-api/internal/models"
	"github.com/lavadevv/timeable-api/pkg/errors"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondSuccess sends the standard success envelope
func respondSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError sends an error envelope and attaches the error to the gin
// context so the observability middleware can include the reason in the
// request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, models.APIResponse{
		Success: false,
		Message: message,
	})
}

// respondFieldErrors sends a client-side validation failure with a
// per-field message map.
func respondFieldErrors(c *gin.Context, fields map[string]string, err error) {
	attachError(c, err)
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Success: false,
		Message: "Validation failed",
		Data:    fields,
	})
}

// respondServiceError maps a service error onto the HTTP taxonomy:
// unauthorized -> 401, invalid input -> 400, translation -> 500 with a
// data-processing message, upstream unavailable -> 500, anything else ->
// 500 with no internal detail.
func respondServiceError(c *gin.Context, err error, failureMessage string) {
	switch {
	case errors.Is(err, errors.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "Authentication failed: "+err.Error(), err)
	case errors.Is(err, errors.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, errors.ErrTranslation):
		respondError(c, http.StatusInternalServerError, "Data processing error", err)
	case errors.Is(err, errors.ErrUpstreamUnavailable):
		respondError(c, http.StatusInternalServerError, failureMessage+": "+err.Error(), err)
	default:
		respondError(c, http.StatusInternalServerError, "An unexpected error occurred", err)
	}
}
