package domain

import "time"

// MoodStatistic holds the per-mood aggregate counters. Rows are created
// lazily on the first event for a mood and only ever change through atomic
// increments or an administrative reset. totalOrdered is allowed to exceed
// totalShown (an item can be ordered without having gone through the
// recommendation surface); derived rates clamp instead of asserting.
type MoodStatistic struct {
	Mood          Mood      `gorm:"column:mood;primaryKey" json:"mood"`
	TotalShown    int64     `gorm:"column:total_shown;not null;default:0" json:"total_shown"`
	TotalOrdered  int64     `gorm:"column:total_ordered;not null;default:0" json:"total_ordered"`
	FeedbackCount int64     `gorm:"column:feedback_count;not null;default:0" json:"feedback_count"`
	ImprovedCount int64     `gorm:"column:improved_count;not null;default:0" json:"improved_count"`
	SameCount     int64     `gorm:"column:same_count;not null;default:0" json:"same_count"`
	WorseCount    int64     `gorm:"column:worse_count;not null;default:0" json:"worse_count"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (MoodStatistic) TableName() string { return "mood_statistic" }

// MoodAnalytics is the derived, read-only view over a MoodStatistic computed
// against the current FeedbackConfig. Nothing here is stored.
type MoodAnalytics struct {
	Mood             Mood    `json:"mood"`
	TotalShown       int64   `json:"total_shown"`
	TotalOrdered     int64   `json:"total_ordered"`
	OrderRate        float64 `json:"order_rate"`
	FeedbackCount    int64   `json:"feedback_count"`
	ImprovedCount    int64   `json:"improved_count"`
	SameCount        int64   `json:"same_count"`
	WorseCount       int64   `json:"worse_count"`
	ImprovementRate  float64 `json:"improvement_rate"`
	HistoricalScore  float64 `json:"historical_score"`
	BaselineReached  bool    `json:"baseline_reached"`
	BaselineProgress float64 `json:"baseline_progress"`
	FeedbackEnabled  bool    `json:"feedback_enabled"`
}
