package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/http/response"
	"github.com/feelbite/moodmenu-backend/internal/services"
)

type AnalyticsHandler struct {
	analytics services.AnalyticsService
}

func NewAnalyticsHandler(analytics services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GET /api/admin/analytics
func (h *AnalyticsHandler) GetAllAnalytics(c *gin.Context) {
	rows, err := h.analytics.AllAnalytics(c.Request.Context())
	if err != nil {
		respondServiceError(c, "analytics_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"analytics": rows})
}

// GET /api/admin/analytics/:mood
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	mood := types.Mood(c.Param("mood"))
	if !mood.Valid() {
		response.RespondError(c, http.StatusNotFound, "mood_not_found", fmt.Errorf("unknown mood %q", mood))
		return
	}
	row, err := h.analytics.Analytics(c.Request.Context(), mood)
	if err != nil {
		respondServiceError(c, "analytics_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"analytics": row})
}

type resetRequest struct {
	Mood *types.Mood `json:"mood"`
}

// POST /api/admin/analytics/reset
//
// A null or absent mood resets every counter in the store.
func (h *AnalyticsHandler) ResetStatistics(c *gin.Context) {
	var req resetRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
			return
		}
	}
	if err := h.analytics.Reset(c.Request.Context(), req.Mood); err != nil {
		respondServiceError(c, "reset_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"reset": true})
}
