package app

import (
	"github.com/gin-gonic/gin"

	apphttp "github.com/feelbite/moodmenu-backend/internal/http"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return apphttp.NewRouter(apphttp.RouterConfig{
		Log:         log,
		ServiceName: cfg.ServiceName,
		AdminAuth:   middleware.AdminAuth,

		MoodHandler:           handlers.Mood,
		RecommendationHandler: handlers.Recommendation,
		TrackingHandler:       handlers.Tracking,
		FeedbackHandler:       handlers.Feedback,
		AnalyticsHandler:      handlers.Analytics,
		AdminHandler:          handlers.Admin,

		HealthHandler: handlers.Health,
	})
}
