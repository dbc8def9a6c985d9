package domain

import "time"

const FeedbackConfigID = 1

// FeedbackConfig is the process-wide tuning row. There is exactly one row
// (ID = FeedbackConfigID); updates replace the whole row and bump Version so
// readers never observe a partially applied weight set.
type FeedbackConfig struct {
	ID      int   `gorm:"column:id;primaryKey" json:"-"`
	Version int64 `gorm:"column:version;not null;default:1" json:"version"`

	// Maximum point contribution per scoring factor.
	MoodBenefitWeight       float64 `gorm:"column:mood_benefit_weight;not null;default:20" json:"mood_benefit_weight"`
	PreferredCategoryWeight float64 `gorm:"column:preferred_category_weight;not null;default:10" json:"preferred_category_weight"`
	HistoricalDataWeight    float64 `gorm:"column:historical_data_weight;not null;default:15" json:"historical_data_weight"`
	FeaturedItemWeight      float64 `gorm:"column:featured_item_weight;not null;default:5" json:"featured_item_weight"`
	PriceRangeWeight        float64 `gorm:"column:price_range_weight;not null;default:5" json:"price_range_weight"`
	TimeOfDayWeight         float64 `gorm:"column:time_of_day_weight;not null;default:5" json:"time_of_day_weight"`

	// OrderRateWeight + FeedbackRateWeight must sum to 1.0; together they
	// compose the historical score.
	OrderRateWeight    float64 `gorm:"column:order_rate_weight;not null;default:0.6" json:"order_rate_weight"`
	FeedbackRateWeight float64 `gorm:"column:feedback_rate_weight;not null;default:0.4" json:"feedback_rate_weight"`

	BaselineThreshold      int64 `gorm:"column:baseline_threshold;not null;default:50" json:"baseline_threshold"`
	FeedbackEnabled        bool  `gorm:"column:feedback_enabled;not null;default:false" json:"feedback_enabled"`
	AutoEnableFeedback     bool  `gorm:"column:auto_enable_feedback;not null;default:true" json:"auto_enable_feedback"`
	ReflectionDelayMinutes int   `gorm:"column:reflection_delay_minutes;not null;default:30" json:"reflection_delay_minutes"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

func (FeedbackConfig) TableName() string { return "feedback_config" }

// DefaultFeedbackConfig returns the row created on first boot.
func DefaultFeedbackConfig() *FeedbackConfig {
	return &FeedbackConfig{
		ID:                      FeedbackConfigID,
		Version:                 1,
		MoodBenefitWeight:       20,
		PreferredCategoryWeight: 10,
		HistoricalDataWeight:    15,
		FeaturedItemWeight:      5,
		PriceRangeWeight:        5,
		TimeOfDayWeight:         5,
		OrderRateWeight:         0.6,
		FeedbackRateWeight:      0.4,
		BaselineThreshold:       50,
		FeedbackEnabled:         false,
		AutoEnableFeedback:      true,
		ReflectionDelayMinutes:  30,
	}
}
