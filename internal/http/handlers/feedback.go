package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/http/response"
	"github.com/feelbite/moodmenu-backend/internal/services"
)

type FeedbackHandler struct {
	feedback services.FeedbackService
}

func NewFeedbackHandler(feedback services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// POST /api/feedback
func (h *FeedbackHandler) RecordFeedback(c *gin.Context) {
	var req services.RecordFeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	rec, err := h.feedback.Record(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "record_feedback_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"feedback": rec})
}

// GET /api/feedback/prompt?order_id=...&mood=...
func (h *FeedbackHandler) PromptState(c *gin.Context) {
	orderID := c.Query("order_id")
	if orderID == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_query", fmt.Errorf("order_id required"))
		return
	}
	mood := types.Mood(c.Query("mood"))
	state, err := h.feedback.PromptState(c.Request.Context(), orderID, mood)
	if err != nil {
		respondServiceError(c, "prompt_state_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"prompt": state})
}
