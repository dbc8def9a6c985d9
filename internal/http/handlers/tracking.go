package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/http/response"
	"github.com/feelbite/moodmenu-backend/internal/services"
)

type TrackingHandler struct {
	analytics services.AnalyticsService
	feedback  services.FeedbackService
}

func NewTrackingHandler(analytics services.AnalyticsService, feedback services.FeedbackService) *TrackingHandler {
	return &TrackingHandler{analytics: analytics, feedback: feedback}
}

type trackShownRequest struct {
	Mood    types.Mood `json:"mood"`
	ItemIDs []string   `json:"item_ids"`
}

// POST /api/track/shown
//
// Exposure events for surfaces that render recommendations they fetched
// earlier; the recommendation endpoint itself already counts its own results.
func (h *TrackingHandler) TrackShown(c *gin.Context) {
	var req trackShownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.analytics.RecordShown(c.Request.Context(), req.Mood, req.ItemIDs); err != nil {
		respondServiceError(c, "track_shown_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"tracked": true})
}

type trackOrderedRequest struct {
	Mood    types.Mood `json:"mood"`
	OrderID string     `json:"order_id"`
	ItemIDs []string   `json:"item_ids"`
}

// POST /api/track/ordered
func (h *TrackingHandler) TrackOrdered(c *gin.Context) {
	var req trackOrderedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.analytics.RecordOrdered(c.Request.Context(), req.Mood, req.ItemIDs); err != nil {
		respondServiceError(c, "track_ordered_failed", err)
		return
	}
	// Ordering is the moment the reflection timer starts.
	h.feedback.ArmPrompt(c.Request.Context(), req.OrderID)
	response.RespondOK(c, gin.H{"tracked": true})
}
