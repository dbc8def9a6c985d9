package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	feedbackrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/feedback"
	moodrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/mood"
	"github.com/feelbite/moodmenu-backend/internal/http/response"
	"github.com/feelbite/moodmenu-backend/internal/platform/apierr"
	"github.com/feelbite/moodmenu-backend/internal/services"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses;
// fallbackCode labels the 500 path only.
func respondServiceError(c *gin.Context, fallbackCode string, err error) {
	ae := classify(fallbackCode, err)
	response.RespondError(c, ae.Status, ae.Code, err)
}

func classify(fallbackCode string, err error) *apierr.Error {
	var ae *apierr.Error
	switch {
	case errors.As(err, &ae):
		return ae
	case errors.Is(err, services.ErrValidation):
		return apierr.New(http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, services.ErrMoodNotFound), errors.Is(err, moodrepos.ErrDefinitionNotFound):
		return apierr.New(http.StatusNotFound, "mood_not_found", err)
	case errors.Is(err, feedbackrepos.ErrConfigNotFound):
		return apierr.New(http.StatusNotFound, "config_not_found", err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierr.New(http.StatusConflict, "conflict", err)
	default:
		return apierr.New(http.StatusInternalServerError, fallbackCode, err)
	}
}
