package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/http/response"
	"github.com/feelbite/moodmenu-backend/internal/services"
)

type RecommendationHandler struct {
	recs services.RecommendationService
}

func NewRecommendationHandler(recs services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recs: recs}
}

type recommendationRequest struct {
	Mood  types.Mood       `json:"mood"`
	Items []types.MenuItem `json:"items"`
}

// POST /api/recommendations
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if req.Mood == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("mood required"))
		return
	}
	scored, err := h.recs.GetRecommendations(c.Request.Context(), req.Mood, req.Items)
	if err != nil {
		respondServiceError(c, "recommendations_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"mood": req.Mood, "recommendations": scored})
}
