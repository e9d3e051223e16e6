package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lavadevv/timeable-api/internal/models"
)

type TimetableHandler struct {
	service TimeableService
}

func NewTimetableHandler(service TimeableService) *TimetableHandler {
	return &TimetableHandler{service: service}
}

// authToken pulls the Authorization header; the token is forwarded to the
// upstream verbatim, never parsed or validated here.
func authToken(c *gin.Context) (string, bool) {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if token == "" {
		respondFieldErrors(c, map[string]string{
			"Authorization": "Authorization header is required",
		}, nil)
		return "", false
	}
	return token, true
}

// GetTerms returns the list of academic terms available to the caller.
func (h *TimetableHandler) GetTerms(c *gin.Context) {
	token, ok := authToken(c)
	if !ok {
		return
	}

	terms, err := h.service.GetTerms(c.Request.Context(), token)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve terms")
		return
	}

	respondSuccess(c, "Terms retrieved successfully", terms)
}

// GetSchedule returns the lesson-period table and weekly timetable for a term.
func (h *TimetableHandler) GetSchedule(c *gin.Context) {
	token, ok := authToken(c)
	if !ok {
		return
	}

	var req models.GetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFieldErrors(c, ParseValidationErrors(err), err)
		return
	}

	schedule, err := h.service.GetSchedule(c.Request.Context(), token, req.TermCode)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve schedule")
		return
	}

	respondSuccess(c, "Schedule retrieved successfully", schedule)
}
