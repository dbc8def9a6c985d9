package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/http/response"
	"github.com/feelbite/moodmenu-backend/internal/services"
)

type MoodHandler struct {
	moods services.MoodService
}

func NewMoodHandler(moods services.MoodService) *MoodHandler {
	return &MoodHandler{moods: moods}
}

// GET /api/moods
func (h *MoodHandler) ListMoods(c *gin.Context) {
	defs, err := h.moods.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, "list_moods_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"moods": defs})
}

// GET /api/moods/:mood
func (h *MoodHandler) GetMood(c *gin.Context) {
	mood := types.Mood(c.Param("mood"))
	if !mood.Valid() {
		response.RespondError(c, http.StatusNotFound, "mood_not_found", fmt.Errorf("unknown mood %q", mood))
		return
	}
	def, err := h.moods.Get(c.Request.Context(), mood)
	if err != nil {
		respondServiceError(c, "get_mood_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"mood": def})
}
