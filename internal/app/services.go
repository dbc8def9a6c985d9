package app

import (
	"gorm.io/gorm"

	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
	"github.com/feelbite/moodmenu-backend/internal/services"
)

type Services struct {
	Moods           services.MoodService
	Config          services.ConfigService
	TimeContext     services.TimeContextService
	Analytics       services.AnalyticsService
	Feedback        services.FeedbackService
	Recommendations services.RecommendationService
}

func wireServices(db *gorm.DB, log *logger.Logger, repos Repos, clients Clients) Services {
	moods := services.NewMoodService(db, log, repos.Definitions, repos.Benefits)
	config := services.NewConfigService(db, log, repos.Config)
	timectx := services.NewTimeContextService()
	analytics := services.NewAnalyticsService(db, log, repos.Statistics, repos.ItemStatistics, config)
	feedback := services.NewFeedbackService(db, log, repos.Definitions, repos.Records, analytics, config, clients.Prompts)
	recs := services.NewRecommendationService(db, log,
		repos.Definitions, repos.ItemStatistics, repos.Benefits, repos.Records,
		config, timectx, analytics,
	)
	return Services{
		Moods:           moods,
		Config:          config,
		TimeContext:     timectx,
		Analytics:       analytics,
		Feedback:        feedback,
		Recommendations: recs,
	}
}
