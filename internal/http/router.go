package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/feelbite/moodmenu-backend/internal/http/handlers"
	httpMW "github.com/feelbite/moodmenu-backend/internal/http/middleware"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string

	AdminAuth *httpMW.AdminAuth

	MoodHandler           *httpH.MoodHandler
	RecommendationHandler *httpH.RecommendationHandler
	TrackingHandler       *httpH.TrackingHandler
	FeedbackHandler       *httpH.FeedbackHandler
	AnalyticsHandler      *httpH.AnalyticsHandler
	AdminHandler          *httpH.AdminHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "moodmenu"
	}
	r.Use(otelgin.Middleware(serviceName))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Customer surface (public)
		if cfg.MoodHandler != nil {
			api.GET("/moods", cfg.MoodHandler.ListMoods)
			api.GET("/moods/:mood", cfg.MoodHandler.GetMood)
		}
		if cfg.RecommendationHandler != nil {
			api.POST("/recommendations", cfg.RecommendationHandler.GetRecommendations)
		}
		if cfg.TrackingHandler != nil {
			api.POST("/track/shown", cfg.TrackingHandler.TrackShown)
			api.POST("/track/ordered", cfg.TrackingHandler.TrackOrdered)
		}
		if cfg.FeedbackHandler != nil {
			api.POST("/feedback", cfg.FeedbackHandler.RecordFeedback)
			api.GET("/feedback/prompt", cfg.FeedbackHandler.PromptState)
		}
	}

	admin := api.Group("/admin")
	{
		if cfg.AdminAuth != nil {
			admin.Use(cfg.AdminAuth.RequireAdmin())
		}

		if cfg.AnalyticsHandler != nil {
			admin.GET("/analytics", cfg.AnalyticsHandler.GetAllAnalytics)
			admin.GET("/analytics/:mood", cfg.AnalyticsHandler.GetAnalytics)
			admin.POST("/analytics/reset", cfg.AnalyticsHandler.ResetStatistics)
		}
		if cfg.AdminHandler != nil {
			admin.GET("/config", cfg.AdminHandler.GetConfig)
			admin.PATCH("/config", cfg.AdminHandler.UpdateConfig)
			admin.GET("/moods", cfg.AdminHandler.ListAllMoods)
			admin.PATCH("/moods/:mood", cfg.AdminHandler.UpdateMood)
			admin.GET("/benefits", cfg.AdminHandler.ListBenefits)
			admin.PUT("/benefits", cfg.AdminHandler.UpsertBenefits)
		}
	}

	return r
}
