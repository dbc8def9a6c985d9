package app

import (
	httpH "github.com/feelbite/moodmenu-backend/internal/http/handlers"
)

type Handlers struct {
	Health         *httpH.HealthHandler
	Mood           *httpH.MoodHandler
	Recommendation *httpH.RecommendationHandler
	Tracking       *httpH.TrackingHandler
	Feedback       *httpH.FeedbackHandler
	Analytics      *httpH.AnalyticsHandler
	Admin          *httpH.AdminHandler
}

func wireHandlers(svcs Services) Handlers {
	return Handlers{
		Health:         httpH.NewHealthHandler(),
		Mood:           httpH.NewMoodHandler(svcs.Moods),
		Recommendation: httpH.NewRecommendationHandler(svcs.Recommendations),
		Tracking:       httpH.NewTrackingHandler(svcs.Analytics, svcs.Feedback),
		Feedback:       httpH.NewFeedbackHandler(svcs.Feedback),
		Analytics:      httpH.NewAnalyticsHandler(svcs.Analytics),
		Admin:          httpH.NewAdminHandler(svcs.Config, svcs.Moods),
	}
}
