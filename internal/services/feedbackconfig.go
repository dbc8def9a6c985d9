package services

import (
	"context"
	"fmt"
	"math"
	"sync"

	"gorm.io/gorm"

	feedbackrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/feedback"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// ConfigService hands out consistent FeedbackConfig snapshots and applies
// administrative updates as a whole-row replace. The snapshot cache means a
// scorer mid-request always works against one complete weight set.
type ConfigService interface {
	Get(ctx context.Context) (types.FeedbackConfig, error)
	Update(ctx context.Context, in UpdateConfigInput) (types.FeedbackConfig, error)
}

// UpdateConfigInput carries partial updates; nil means "unchanged".
type UpdateConfigInput struct {
	MoodBenefitWeight       *float64 `json:"mood_benefit_weight"`
	PreferredCategoryWeight *float64 `json:"preferred_category_weight"`
	HistoricalDataWeight    *float64 `json:"historical_data_weight"`
	FeaturedItemWeight      *float64 `json:"featured_item_weight"`
	PriceRangeWeight        *float64 `json:"price_range_weight"`
	TimeOfDayWeight         *float64 `json:"time_of_day_weight"`
	OrderRateWeight         *float64 `json:"order_rate_weight"`
	FeedbackRateWeight      *float64 `json:"feedback_rate_weight"`
	BaselineThreshold       *int64   `json:"baseline_threshold"`
	FeedbackEnabled         *bool    `json:"feedback_enabled"`
	AutoEnableFeedback      *bool    `json:"auto_enable_feedback"`
	ReflectionDelayMinutes  *int     `json:"reflection_delay_minutes"`
}

type configService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo feedbackrepos.ConfigRepo

	mu     sync.RWMutex
	cached *types.FeedbackConfig
}

func NewConfigService(db *gorm.DB, log *logger.Logger, repo feedbackrepos.ConfigRepo) ConfigService {
	return &configService{db: db, log: log.With("service", "ConfigService"), repo: repo}
}

func (s *configService) Get(ctx context.Context) (types.FeedbackConfig, error) {
	s.mu.RLock()
	if s.cached != nil {
		cfg := *s.cached
		s.mu.RUnlock()
		return cfg, nil
	}
	s.mu.RUnlock()

	cfg, err := s.repo.Get(ctx, nil)
	if err != nil {
		return types.FeedbackConfig{}, err
	}
	s.mu.Lock()
	s.cached = cfg
	s.mu.Unlock()
	return *cfg, nil
}

func (s *configService) Update(ctx context.Context, in UpdateConfigInput) (types.FeedbackConfig, error) {
	cur, err := s.repo.Get(ctx, nil)
	if err != nil {
		return types.FeedbackConfig{}, err
	}

	next := *cur
	applyWeight := func(dst *float64, src *float64, name string) error {
		if src == nil {
			return nil
		}
		if *src < 0 {
			return fmt.Errorf("%w: %s must be >= 0", ErrValidation, name)
		}
		*dst = *src
		return nil
	}
	for _, w := range []struct {
		dst  *float64
		src  *float64
		name string
	}{
		{&next.MoodBenefitWeight, in.MoodBenefitWeight, "mood_benefit_weight"},
		{&next.PreferredCategoryWeight, in.PreferredCategoryWeight, "preferred_category_weight"},
		{&next.HistoricalDataWeight, in.HistoricalDataWeight, "historical_data_weight"},
		{&next.FeaturedItemWeight, in.FeaturedItemWeight, "featured_item_weight"},
		{&next.PriceRangeWeight, in.PriceRangeWeight, "price_range_weight"},
		{&next.TimeOfDayWeight, in.TimeOfDayWeight, "time_of_day_weight"},
		{&next.OrderRateWeight, in.OrderRateWeight, "order_rate_weight"},
		{&next.FeedbackRateWeight, in.FeedbackRateWeight, "feedback_rate_weight"},
	} {
		if err := applyWeight(w.dst, w.src, w.name); err != nil {
			return types.FeedbackConfig{}, err
		}
	}
	if in.BaselineThreshold != nil {
		if *in.BaselineThreshold <= 0 {
			return types.FeedbackConfig{}, fmt.Errorf("%w: baseline_threshold must be > 0", ErrValidation)
		}
		next.BaselineThreshold = *in.BaselineThreshold
	}
	if in.ReflectionDelayMinutes != nil {
		if *in.ReflectionDelayMinutes < 0 {
			return types.FeedbackConfig{}, fmt.Errorf("%w: reflection_delay_minutes must be >= 0", ErrValidation)
		}
		next.ReflectionDelayMinutes = *in.ReflectionDelayMinutes
	}
	if in.FeedbackEnabled != nil {
		next.FeedbackEnabled = *in.FeedbackEnabled
	}
	if in.AutoEnableFeedback != nil {
		next.AutoEnableFeedback = *in.AutoEnableFeedback
	}

	if math.Abs(next.OrderRateWeight+next.FeedbackRateWeight-1.0) > 1e-9 {
		return types.FeedbackConfig{}, fmt.Errorf("%w: order_rate_weight + feedback_rate_weight must equal 1.0", ErrValidation)
	}

	if err := s.repo.Replace(ctx, nil, &next); err != nil {
		return types.FeedbackConfig{}, err
	}

	s.mu.Lock()
	snapshot := next
	s.cached = &snapshot
	s.mu.Unlock()

	s.log.Info("Feedback config updated", "version", next.Version)
	return next, nil
}
