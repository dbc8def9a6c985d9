package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/http/response"
	"github.com/feelbite/moodmenu-backend/internal/services"
)

// AdminHandler serves the operator surface: scoring weights and mood
// definition management.
type AdminHandler struct {
	config services.ConfigService
	moods  services.MoodService
}

func NewAdminHandler(config services.ConfigService, moods services.MoodService) *AdminHandler {
	return &AdminHandler{config: config, moods: moods}
}

// GET /api/admin/config
func (h *AdminHandler) GetConfig(c *gin.Context) {
	cfg, err := h.config.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, "get_config_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"config": cfg})
}

// PATCH /api/admin/config
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var req services.UpdateConfigInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	cfg, err := h.config.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, "update_config_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"config": cfg})
}

// GET /api/admin/moods
func (h *AdminHandler) ListAllMoods(c *gin.Context) {
	defs, err := h.moods.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, "list_moods_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"moods": defs})
}

// GET /api/admin/benefits?mood=...
func (h *AdminHandler) ListBenefits(c *gin.Context) {
	mood := types.Mood(c.Query("mood"))
	rows, err := h.moods.ListBenefits(c.Request.Context(), mood)
	if err != nil {
		respondServiceError(c, "list_benefits_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"benefits": rows})
}

type upsertBenefitsRequest struct {
	Benefits []services.UpsertBenefitInput `json:"benefits"`
}

// PUT /api/admin/benefits
func (h *AdminHandler) UpsertBenefits(c *gin.Context) {
	var req upsertBenefitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if len(req.Benefits) == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("benefits required"))
		return
	}
	rows, err := h.moods.UpsertBenefits(c.Request.Context(), req.Benefits)
	if err != nil {
		respondServiceError(c, "upsert_benefits_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"benefits": rows})
}

// PATCH /api/admin/moods/:mood
func (h *AdminHandler) UpdateMood(c *gin.Context) {
	mood := types.Mood(c.Param("mood"))
	if !mood.Valid() {
		response.RespondError(c, http.StatusNotFound, "mood_not_found", fmt.Errorf("unknown mood %q", mood))
		return
	}
	var req services.UpdateMoodInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	def, err := h.moods.Update(c.Request.Context(), mood, req)
	if err != nil {
		respondServiceError(c, "update_mood_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"mood": def})
}
