package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/lavadevv/timeable-api/internal/models"
)

// TimeableService is the service contract the handlers depend on.
type TimeableService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthenticatedProfile, error)
	GetTerms(ctx context.Context, token string) ([]models.Term, error)
	GetSchedule(ctx context.Context, token, termCode string) (*models.Schedule, error)
}

type AuthHandler struct {
	service TimeableService
}

func NewAuthHandler(service TimeableService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login authenticates the caller against the upstream system and returns
// the mapped profile with the opaque session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFieldErrors(c, ParseValidationErrors(err), err)
		return
	}

	profile, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Authentication failed")
		return
	}

	respondSuccess(c, "Login successful", profile)
}
